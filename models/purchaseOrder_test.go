package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMapPurchaseOrderItems(t *testing.T) {
	items := mapPurchaseOrderItems([]NewPurchaseOrderItem{
		{ProductId: 1, Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(1500), Discount: decimal.NewFromInt(500)},
		{ProductId: 2, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(250)},
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].Subtotal.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("item 0 subtotal = %s, want 15000", items[0].Subtotal)
	}
	if !items[0].Total.Equal(decimal.NewFromInt(14500)) {
		t.Errorf("item 0 total = %s, want 14500", items[0].Total)
	}
	if !items[1].Total.Equal(decimal.NewFromInt(500)) {
		t.Errorf("item 1 total = %s, want 500", items[1].Total)
	}
}

func TestComputeOrderTotals(t *testing.T) {
	items := []PurchaseOrderItem{
		{Total: decimal.NewFromInt(600000)},
		{Total: decimal.NewFromInt(400000)},
	}

	tests := []struct {
		name      string
		isPpn     bool
		ppnRate   string
		isPph     bool
		pphRate   string
		wantTax   string
		wantTotal string
	}{
		{"no tax", false, "0", false, "0", "0", "1000000"},
		{"ppn 11", true, "11", false, "0", "110000", "1110000"},
		{"ppn 11 pph 2", true, "11", true, "2", "90000", "1090000"},
		{"pph only", false, "0", true, "2", "-20000", "980000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ppnRate, _ := decimal.NewFromString(tt.ppnRate)
			pphRate, _ := decimal.NewFromString(tt.pphRate)
			subtotal, taxAmount, totalAmount := computeOrderTotals(items, tt.isPpn, ppnRate, tt.isPph, pphRate)
			if !subtotal.Equal(decimal.NewFromInt(1000000)) {
				t.Errorf("subtotal = %s, want 1000000", subtotal)
			}
			wantTax, _ := decimal.NewFromString(tt.wantTax)
			if !taxAmount.Equal(wantTax) {
				t.Errorf("taxAmount = %s, want %s", taxAmount, tt.wantTax)
			}
			wantTotal, _ := decimal.NewFromString(tt.wantTotal)
			if !totalAmount.Equal(wantTotal) {
				t.Errorf("totalAmount = %s, want %s", totalAmount, tt.wantTotal)
			}
		})
	}
}
