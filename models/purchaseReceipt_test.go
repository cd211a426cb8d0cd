package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMapPurchaseReceiptItemsCopiesOrderLines(t *testing.T) {
	order := &PurchaseOrder{
		Items: []PurchaseOrderItem{
			{ProductId: 1, Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(1500)},
			{ProductId: 2, Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(250)},
		},
	}

	items := mapPurchaseReceiptItems(order, []NewPurchaseReceiptItem{
		{ProductId: 1, ReceivedQuantity: decimal.NewFromInt(6), Condition: "DAMAGED"},
		{ProductId: 2, ReceivedQuantity: decimal.NewFromInt(4)},
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	// ordered quantity and price come from the order line, always
	if !items[0].OrderedQuantity.Equal(decimal.NewFromInt(10)) {
		t.Errorf("item 0 ordered quantity = %s, want 10", items[0].OrderedQuantity)
	}
	if !items[0].UnitPrice.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("item 0 unit price = %s, want 1500", items[0].UnitPrice)
	}
	if !items[1].OrderedQuantity.Equal(decimal.NewFromInt(4)) {
		t.Errorf("item 1 ordered quantity = %s, want 4", items[1].OrderedQuantity)
	}
	if !items[1].UnitPrice.Equal(decimal.NewFromInt(250)) {
		t.Errorf("item 1 unit price = %s, want 250", items[1].UnitPrice)
	}

	if !items[0].ReceivedQuantity.Equal(decimal.NewFromInt(6)) {
		t.Errorf("item 0 received quantity = %s, want 6", items[0].ReceivedQuantity)
	}
	if items[0].Condition != "DAMAGED" {
		t.Errorf("item 0 condition = %q, want DAMAGED", items[0].Condition)
	}
	if items[1].Condition != "GOOD" {
		t.Errorf("item 1 condition = %q, want default GOOD", items[1].Condition)
	}
}
