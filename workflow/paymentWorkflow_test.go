package workflow

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/amirrdn/acounting-api/models"
)

func TestApplyPaymentToInvoice(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		paid          int64
		amount        int64
		wantPaid      int64
		wantRemaining int64
		wantStatus    models.PurchaseInvoiceStatus
		wantErr       bool
	}{
		{"first partial payment", 1000, 0, 400, 400, 600, models.PurchaseInvoiceStatusPaidPartial, false},
		{"second partial payment", 1000, 400, 300, 700, 300, models.PurchaseInvoiceStatusPaidPartial, false},
		{"settles invoice", 1000, 700, 300, 1000, 0, models.PurchaseInvoiceStatusPaidFull, false},
		{"full in one go", 1000, 0, 1000, 1000, 0, models.PurchaseInvoiceStatusPaidFull, false},
		{"overpayment", 1000, 700, 301, 0, 0, "", true},
		{"zero amount", 1000, 0, 0, 0, 0, "", true},
		{"negative amount", 1000, 0, -100, 0, 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid, remaining, status, err := ApplyPaymentToInvoice(
				decimal.NewFromInt(tt.total),
				decimal.NewFromInt(tt.paid),
				decimal.NewFromInt(tt.amount),
			)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !paid.Equal(decimal.NewFromInt(tt.wantPaid)) {
				t.Errorf("paid = %s, want %d", paid, tt.wantPaid)
			}
			if !remaining.Equal(decimal.NewFromInt(tt.wantRemaining)) {
				t.Errorf("remaining = %s, want %d", remaining, tt.wantRemaining)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %s, want %s", status, tt.wantStatus)
			}
		})
	}
}

func TestReversePaymentOnInvoice(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		paid          int64
		amount        int64
		wantPaid      int64
		wantRemaining int64
		wantStatus    models.PurchaseInvoiceStatus
	}{
		{"reverse only payment", 1000, 400, 400, 0, 1000, models.PurchaseInvoiceStatusUnpaid},
		{"reverse one of two", 1000, 700, 300, 400, 600, models.PurchaseInvoiceStatusPaidPartial},
		{"reverse on settled invoice", 1000, 1000, 400, 600, 400, models.PurchaseInvoiceStatusPaidPartial},
		{"reverse more than paid clamps", 1000, 100, 400, 0, 1000, models.PurchaseInvoiceStatusUnpaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid, remaining, status := ReversePaymentOnInvoice(
				decimal.NewFromInt(tt.total),
				decimal.NewFromInt(tt.paid),
				decimal.NewFromInt(tt.amount),
			)
			if !paid.Equal(decimal.NewFromInt(tt.wantPaid)) {
				t.Errorf("paid = %s, want %d", paid, tt.wantPaid)
			}
			if !remaining.Equal(decimal.NewFromInt(tt.wantRemaining)) {
				t.Errorf("remaining = %s, want %d", remaining, tt.wantRemaining)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %s, want %s", status, tt.wantStatus)
			}
		})
	}
}
