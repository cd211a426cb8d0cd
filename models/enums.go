package models

import (
	"encoding/json"
	"errors"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSales      Role = "sales"
	RolePurchase   Role = "purchase"
	RoleAccounting Role = "accounting"
	RoleInventory  Role = "inventory"
	RoleCashier    Role = "cashier"
	RoleManager    Role = "manager"
	RoleFinance    Role = "finance"
)

var roles = map[string]Role{
	"admin":      RoleAdmin,
	"sales":      RoleSales,
	"purchase":   RolePurchase,
	"accounting": RoleAccounting,
	"inventory":  RoleInventory,
	"cashier":    RoleCashier,
	"manager":    RoleManager,
	"finance":    RoleFinance,
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("role must be string")
	}
	role, ok := roles[str]
	if !ok {
		return errors.New("invalid role")
	}
	*r = role
	return nil
}

type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

func (t *AccountType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("account type must be string")
	}
	switch str {
	case "ASSET":
		*t = AccountTypeAsset
	case "LIABILITY":
		*t = AccountTypeLiability
	case "EQUITY":
		*t = AccountTypeEquity
	case "REVENUE":
		*t = AccountTypeRevenue
	case "EXPENSE":
		*t = AccountTypeExpense
	default:
		return errors.New("invalid account type")
	}
	return nil
}

type PurchaseRequestStatus string

const (
	PurchaseRequestStatusDraft    PurchaseRequestStatus = "DRAFT"
	PurchaseRequestStatusPending  PurchaseRequestStatus = "PENDING"
	PurchaseRequestStatusApproved PurchaseRequestStatus = "APPROVED"
	PurchaseRequestStatusRejected PurchaseRequestStatus = "REJECTED"
)

func (s *PurchaseRequestStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("purchase request status must be string")
	}
	statuses := map[string]PurchaseRequestStatus{
		"DRAFT":    PurchaseRequestStatusDraft,
		"PENDING":  PurchaseRequestStatusPending,
		"APPROVED": PurchaseRequestStatusApproved,
		"REJECTED": PurchaseRequestStatusRejected,
	}
	status, ok := statuses[str]
	if !ok {
		return errors.New("invalid purchase request status")
	}
	*s = status
	return nil
}

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft           PurchaseOrderStatus = "DRAFT"
	PurchaseOrderStatusApproved        PurchaseOrderStatus = "APPROVED"
	PurchaseOrderStatusSent            PurchaseOrderStatus = "SENT"
	PurchaseOrderStatusReceivedPartial PurchaseOrderStatus = "RECEIVED_PARTIAL"
	PurchaseOrderStatusReceivedFull    PurchaseOrderStatus = "RECEIVED_FULL"
)

func (s *PurchaseOrderStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("purchase order status must be string")
	}
	statuses := map[string]PurchaseOrderStatus{
		"DRAFT":            PurchaseOrderStatusDraft,
		"APPROVED":         PurchaseOrderStatusApproved,
		"SENT":             PurchaseOrderStatusSent,
		"RECEIVED_PARTIAL": PurchaseOrderStatusReceivedPartial,
		"RECEIVED_FULL":    PurchaseOrderStatusReceivedFull,
	}
	status, ok := statuses[str]
	if !ok {
		return errors.New("invalid purchase order status")
	}
	*s = status
	return nil
}

type PurchaseReceiptStatus string

const (
	PurchaseReceiptStatusDraft     PurchaseReceiptStatus = "DRAFT"
	PurchaseReceiptStatusCompleted PurchaseReceiptStatus = "COMPLETED"
)

func (s *PurchaseReceiptStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("purchase receipt status must be string")
	}
	switch str {
	case "DRAFT":
		*s = PurchaseReceiptStatusDraft
	case "COMPLETED":
		*s = PurchaseReceiptStatusCompleted
	default:
		return errors.New("invalid purchase receipt status")
	}
	return nil
}

type PurchaseInvoiceStatus string

const (
	PurchaseInvoiceStatusUnpaid      PurchaseInvoiceStatus = "UNPAID"
	PurchaseInvoiceStatusPaidPartial PurchaseInvoiceStatus = "PAID_PARTIAL"
	PurchaseInvoiceStatusPaidFull    PurchaseInvoiceStatus = "PAID_FULL"
)

func (s *PurchaseInvoiceStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("purchase invoice status must be string")
	}
	switch str {
	case "UNPAID":
		*s = PurchaseInvoiceStatusUnpaid
	case "PAID_PARTIAL":
		*s = PurchaseInvoiceStatusPaidPartial
	case "PAID_FULL":
		*s = PurchaseInvoiceStatusPaidFull
	default:
		return errors.New("invalid purchase invoice status")
	}
	return nil
}

// approval checklist result on purchase requests
type CheckResult string

const (
	CheckResultOk    CheckResult = "OK"
	CheckResultNotOk CheckResult = "NOT_OK"
)

func (r *CheckResult) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("check result must be string")
	}
	switch str {
	case "OK":
		*r = CheckResultOk
	case "NOT_OK":
		*r = CheckResultNotOk
	default:
		return errors.New("invalid check result")
	}
	return nil
}

type RejectionReason string

const (
	RejectionReasonBudgetExceeded RejectionReason = "BUDGET_EXCEEDED"
	RejectionReasonSupplierIssue  RejectionReason = "SUPPLIER_ISSUE"
	RejectionReasonStockAvailable RejectionReason = "STOCK_AVAILABLE"
	RejectionReasonOther          RejectionReason = "OTHER"
)

func (r *RejectionReason) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("rejection reason must be string")
	}
	reasons := map[string]RejectionReason{
		"BUDGET_EXCEEDED": RejectionReasonBudgetExceeded,
		"SUPPLIER_ISSUE":  RejectionReasonSupplierIssue,
		"STOCK_AVAILABLE": RejectionReasonStockAvailable,
		"OTHER":           RejectionReasonOther,
	}
	reason, ok := reasons[str]
	if !ok {
		return errors.New("invalid rejection reason")
	}
	*r = reason
	return nil
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCheck        PaymentMethod = "CHECK"
)

func (m *PaymentMethod) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("payment method must be string")
	}
	switch str {
	case "CASH":
		*m = PaymentMethodCash
	case "BANK_TRANSFER":
		*m = PaymentMethodBankTransfer
	case "CHECK":
		*m = PaymentMethodCheck
	default:
		return errors.New("invalid payment method")
	}
	return nil
}

type CashBankType string

const (
	CashBankTypeIn       CashBankType = "CASH_IN"
	CashBankTypeOut      CashBankType = "CASH_OUT"
	CashBankTypeTransfer CashBankType = "TRANSFER"
)

func (t *CashBankType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("cash bank type must be string")
	}
	switch str {
	case "CASH_IN":
		*t = CashBankTypeIn
	case "CASH_OUT":
		*t = CashBankTypeOut
	case "TRANSFER":
		*t = CashBankTypeTransfer
	default:
		return errors.New("invalid cash bank type")
	}
	return nil
}

type CashBankStatus string

const (
	CashBankStatusPending  CashBankStatus = "PENDING"
	CashBankStatusApproved CashBankStatus = "APPROVED"
)

type StockMovementType string

const (
	StockMovementTypePurchaseIn  StockMovementType = "PURCHASE_IN"
	StockMovementTypeTransferIn  StockMovementType = "TRANSFER_IN"
	StockMovementTypeTransferOut StockMovementType = "TRANSFER_OUT"
	StockMovementTypeOpname      StockMovementType = "OPNAME"
	StockMovementTypeAdjustment  StockMovementType = "ADJUSTMENT"
)

func (t *StockMovementType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("stock movement type must be string")
	}
	types := map[string]StockMovementType{
		"PURCHASE_IN":  StockMovementTypePurchaseIn,
		"TRANSFER_IN":  StockMovementTypeTransferIn,
		"TRANSFER_OUT": StockMovementTypeTransferOut,
		"OPNAME":       StockMovementTypeOpname,
		"ADJUSTMENT":   StockMovementTypeAdjustment,
	}
	movementType, ok := types[str]
	if !ok {
		return errors.New("invalid stock movement type")
	}
	*t = movementType
	return nil
}

type StockDocumentStatus string

const (
	StockDocumentStatusDraft    StockDocumentStatus = "DRAFT"
	StockDocumentStatusApproved StockDocumentStatus = "APPROVED"
)

func (s *StockDocumentStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("stock document status must be string")
	}
	switch str {
	case "DRAFT":
		*s = StockDocumentStatusDraft
	case "APPROVED":
		*s = StockDocumentStatusApproved
	default:
		return errors.New("invalid stock document status")
	}
	return nil
}
