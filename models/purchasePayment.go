package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type PurchasePayment struct {
	ID                int              `gorm:"primary_key" json:"id"`
	PaymentNumber     string           `gorm:"size:50;uniqueIndex;not null" json:"payment_number"`
	PurchaseInvoiceId int              `gorm:"index;not null" json:"purchase_invoice_id"`
	PurchaseInvoice   *PurchaseInvoice `json:"purchase_invoice,omitempty"`
	PaymentDate       time.Time        `gorm:"not null" json:"payment_date"`
	Amount            decimal.Decimal  `gorm:"type:decimal(20,4);not null" json:"amount"`
	PaymentMethod     PaymentMethod    `gorm:"size:20;not null;default:'CASH'" json:"payment_method"`
	AccountId         *int             `gorm:"index" json:"account_id"`
	Account           *Account         `json:"account,omitempty"`
	Reference         string           `gorm:"size:100" json:"reference"`
	Notes             string           `gorm:"type:text" json:"notes"`
	CreatedById       int              `json:"created_by_id"`
	CreatedBy         *User            `json:"created_by,omitempty"`
	CreatedAt         time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewPurchasePayment struct {
	PurchaseInvoiceId int             `json:"purchase_invoice_id" binding:"required"`
	PaymentDate       time.Time       `json:"payment_date" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	AccountId         *int            `json:"account_id"`
	Reference         string          `json:"reference"`
	Notes             string          `json:"notes"`
}

func GetPurchasePayment(ctx context.Context, id int) (*PurchasePayment, error) {
	payment, err := utils.FetchModel[PurchasePayment](ctx, id,
		"PurchaseInvoice", "PurchaseInvoice.Supplier", "Account", "CreatedBy")
	if err != nil {
		return nil, err
	}
	if payment.CreatedBy != nil {
		payment.CreatedBy.PrepareGive()
	}
	return payment, nil
}

func GetPurchasePaymentsAll(ctx context.Context) ([]*PurchasePayment, error) {
	db := config.GetDB()
	var results []*PurchasePayment
	err := db.WithContext(ctx).
		Preload("PurchaseInvoice").Preload("PurchaseInvoice.Supplier").
		Preload("Account").
		Order("payment_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GeneratePaymentNumber previews the next payment number without creating
// a payment. The series is still advanced so the number is never reused.
func GeneratePaymentNumber(ctx context.Context) (string, error) {
	return GenerateDocumentNumber(ctx, SeriesModulePurchasePayment)
}
