package models

// Explicit transition tables per document. Everything not listed is illegal;
// callers surface utils.ErrorInvalidTransition.

var purchaseRequestTransitions = map[PurchaseRequestStatus][]PurchaseRequestStatus{
	PurchaseRequestStatusDraft:   {PurchaseRequestStatusPending},
	PurchaseRequestStatusPending: {PurchaseRequestStatusApproved, PurchaseRequestStatusRejected},
}

func (s PurchaseRequestStatus) CanTransition(to PurchaseRequestStatus) bool {
	for _, next := range purchaseRequestTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

var purchaseOrderTransitions = map[PurchaseOrderStatus][]PurchaseOrderStatus{
	PurchaseOrderStatusDraft:           {PurchaseOrderStatusApproved},
	PurchaseOrderStatusApproved:        {PurchaseOrderStatusSent},
	PurchaseOrderStatusSent:            {PurchaseOrderStatusReceivedPartial, PurchaseOrderStatusReceivedFull},
	PurchaseOrderStatusReceivedPartial: {PurchaseOrderStatusReceivedFull},
}

func (s PurchaseOrderStatus) CanTransition(to PurchaseOrderStatus) bool {
	for _, next := range purchaseOrderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Receipt completion is reversible: COMPLETED can go back to DRAFT (reject).
var purchaseReceiptTransitions = map[PurchaseReceiptStatus][]PurchaseReceiptStatus{
	PurchaseReceiptStatusDraft:     {PurchaseReceiptStatusCompleted},
	PurchaseReceiptStatusCompleted: {PurchaseReceiptStatusDraft},
}

func (s PurchaseReceiptStatus) CanTransition(to PurchaseReceiptStatus) bool {
	for _, next := range purchaseReceiptTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

var purchaseInvoiceTransitions = map[PurchaseInvoiceStatus][]PurchaseInvoiceStatus{
	PurchaseInvoiceStatusUnpaid:      {PurchaseInvoiceStatusPaidPartial, PurchaseInvoiceStatusPaidFull},
	PurchaseInvoiceStatusPaidPartial: {PurchaseInvoiceStatusPaidFull, PurchaseInvoiceStatusUnpaid},
	// PAID_FULL drops back only when a payment is deleted
	PurchaseInvoiceStatusPaidFull: {PurchaseInvoiceStatusPaidPartial, PurchaseInvoiceStatusUnpaid},
}

func (s PurchaseInvoiceStatus) CanTransition(to PurchaseInvoiceStatus) bool {
	for _, next := range purchaseInvoiceTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
