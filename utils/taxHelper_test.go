package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(value string) decimal.Decimal {
	result, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return result
}

func TestCalculateLineAmounts(t *testing.T) {
	tests := []struct {
		name         string
		qty          string
		unitPrice    string
		discount     string
		wantSubtotal string
		wantTotal    string
	}{
		{"no discount", "10", "1500", "0", "15000", "15000"},
		{"with discount", "10", "1500", "500", "15000", "14500"},
		{"fractional qty", "2.5", "1000", "0", "2500", "2500"},
		{"zero qty", "0", "1500", "0", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, total := CalculateLineAmounts(d(tt.qty), d(tt.unitPrice), d(tt.discount))
			if !subtotal.Equal(d(tt.wantSubtotal)) {
				t.Errorf("subtotal = %s, want %s", subtotal, tt.wantSubtotal)
			}
			if !total.Equal(d(tt.wantTotal)) {
				t.Errorf("total = %s, want %s", total, tt.wantTotal)
			}
		})
	}
}

func TestCalculateDiscountAmount(t *testing.T) {
	tests := []struct {
		name         string
		subTotal     string
		discount     string
		discountType string
		want         string
	}{
		{"percentage", "10000", "10", "P", "1000"},
		{"fixed", "10000", "750", "F", "750"},
		{"zero discount", "10000", "0", "P", "0"},
		{"percentage rounding", "999", "7.5", "P", "74.925"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDiscountAmount(d(tt.subTotal), d(tt.discount), tt.discountType)
			if !got.Equal(d(tt.want)) {
				t.Errorf("CalculateDiscountAmount() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculatePpnPphAmount(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		isPpn   bool
		ppnRate string
		isPph   bool
		pphRate string
		want    string
	}{
		{"ppn only", "1000000", true, "11", false, "0", "110000"},
		{"pph only", "1000000", false, "0", true, "2", "-20000"},
		{"ppn and pph", "1000000", true, "11", true, "2", "90000"},
		{"neither", "1000000", false, "11", false, "2", "0"},
		{"zero base", "0", true, "11", true, "2", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePpnPphAmount(d(tt.base), tt.isPpn, d(tt.ppnRate), tt.isPph, d(tt.pphRate))
			if !got.Equal(d(tt.want)) {
				t.Errorf("CalculatePpnPphAmount() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculateDocumentTotal(t *testing.T) {
	got := CalculateDocumentTotal(d("100000"), d("5000"), d("10450"))
	if !got.Equal(d("105450")) {
		t.Errorf("CalculateDocumentTotal() = %s, want 105450", got)
	}
}
