package models

import "testing"

func TestPurchaseRequestStatusCanTransition(t *testing.T) {
	tests := []struct {
		from PurchaseRequestStatus
		to   PurchaseRequestStatus
		want bool
	}{
		{PurchaseRequestStatusDraft, PurchaseRequestStatusPending, true},
		{PurchaseRequestStatusPending, PurchaseRequestStatusApproved, true},
		{PurchaseRequestStatusPending, PurchaseRequestStatusRejected, true},
		{PurchaseRequestStatusDraft, PurchaseRequestStatusApproved, false},
		{PurchaseRequestStatusApproved, PurchaseRequestStatusRejected, false},
		{PurchaseRequestStatusRejected, PurchaseRequestStatusPending, false},
		{PurchaseRequestStatusDraft, PurchaseRequestStatusDraft, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPurchaseOrderStatusCanTransition(t *testing.T) {
	tests := []struct {
		from PurchaseOrderStatus
		to   PurchaseOrderStatus
		want bool
	}{
		{PurchaseOrderStatusDraft, PurchaseOrderStatusApproved, true},
		{PurchaseOrderStatusApproved, PurchaseOrderStatusSent, true},
		{PurchaseOrderStatusSent, PurchaseOrderStatusReceivedPartial, true},
		{PurchaseOrderStatusSent, PurchaseOrderStatusReceivedFull, true},
		{PurchaseOrderStatusReceivedPartial, PurchaseOrderStatusReceivedFull, true},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusSent, false},
		{PurchaseOrderStatusReceivedFull, PurchaseOrderStatusDraft, false},
		{PurchaseOrderStatusApproved, PurchaseOrderStatusReceivedFull, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPurchaseReceiptStatusCanTransition(t *testing.T) {
	if !PurchaseReceiptStatusDraft.CanTransition(PurchaseReceiptStatusCompleted) {
		t.Error("DRAFT -> COMPLETED should be allowed")
	}
	if !PurchaseReceiptStatusCompleted.CanTransition(PurchaseReceiptStatusDraft) {
		t.Error("COMPLETED -> DRAFT should be allowed")
	}
	if PurchaseReceiptStatusDraft.CanTransition(PurchaseReceiptStatusDraft) {
		t.Error("DRAFT -> DRAFT should not be allowed")
	}
}

func TestPurchaseInvoiceStatusCanTransition(t *testing.T) {
	tests := []struct {
		from PurchaseInvoiceStatus
		to   PurchaseInvoiceStatus
		want bool
	}{
		{PurchaseInvoiceStatusUnpaid, PurchaseInvoiceStatusPaidPartial, true},
		{PurchaseInvoiceStatusUnpaid, PurchaseInvoiceStatusPaidFull, true},
		{PurchaseInvoiceStatusPaidPartial, PurchaseInvoiceStatusPaidFull, true},
		{PurchaseInvoiceStatusPaidFull, PurchaseInvoiceStatusUnpaid, true},
		{PurchaseInvoiceStatusUnpaid, PurchaseInvoiceStatusUnpaid, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
