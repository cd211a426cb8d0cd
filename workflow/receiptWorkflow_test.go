package workflow

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/amirrdn/acounting-api/models"
)

func quantities(pairs map[int]int64) map[int]decimal.Decimal {
	result := make(map[int]decimal.Decimal, len(pairs))
	for productId, qty := range pairs {
		result[productId] = decimal.NewFromInt(qty)
	}
	return result
}

func TestRollupOrderStatus(t *testing.T) {
	tests := []struct {
		name     string
		ordered  map[int]int64
		received map[int]int64
		want     models.PurchaseOrderStatus
	}{
		{
			"nothing received",
			map[int]int64{1: 10, 2: 5},
			map[int]int64{},
			models.PurchaseOrderStatusSent,
		},
		{
			"one line partially received",
			map[int]int64{1: 10, 2: 5},
			map[int]int64{1: 4},
			models.PurchaseOrderStatusReceivedPartial,
		},
		{
			"one line full, one missing",
			map[int]int64{1: 10, 2: 5},
			map[int]int64{1: 10},
			models.PurchaseOrderStatusReceivedPartial,
		},
		{
			"all lines full",
			map[int]int64{1: 10, 2: 5},
			map[int]int64{1: 10, 2: 5},
			models.PurchaseOrderStatusReceivedFull,
		},
		{
			"over receipt still counts full",
			map[int]int64{1: 10},
			map[int]int64{1: 12},
			models.PurchaseOrderStatusReceivedFull,
		},
		{
			"accumulated across receipts",
			map[int]int64{1: 10},
			map[int]int64{1: 10},
			models.PurchaseOrderStatusReceivedFull,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RollupOrderStatus(quantities(tt.ordered), quantities(tt.received))
			if got != tt.want {
				t.Errorf("RollupOrderStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRollupOrderStatusEmptyOrder(t *testing.T) {
	got := RollupOrderStatus(map[int]decimal.Decimal{}, map[int]decimal.Decimal{})
	if got != models.PurchaseOrderStatusSent {
		t.Errorf("empty order = %s, want %s", got, models.PurchaseOrderStatusSent)
	}
}
