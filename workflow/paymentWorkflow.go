package workflow

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/models"
	"github.com/amirrdn/acounting-api/utils"
)

// ApplyPaymentToInvoice recomputes an invoice's paid balance after adding
// amount. Overpayment is rejected.
func ApplyPaymentToInvoice(totalAmount, paidAmount, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, models.PurchaseInvoiceStatus, error) {
	if !amount.IsPositive() {
		return decimal.Zero, decimal.Zero, "", errors.New("payment amount must be positive")
	}
	newPaid := paidAmount.Add(amount)
	if newPaid.GreaterThan(totalAmount) {
		return decimal.Zero, decimal.Zero, "", errors.New("payment exceeds remaining invoice amount")
	}
	remaining := totalAmount.Sub(newPaid)
	status := models.PurchaseInvoiceStatusPaidPartial
	if remaining.IsZero() {
		status = models.PurchaseInvoiceStatusPaidFull
	}
	return newPaid, remaining, status, nil
}

// ReversePaymentOnInvoice recomputes the balance after removing amount.
func ReversePaymentOnInvoice(totalAmount, paidAmount, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, models.PurchaseInvoiceStatus) {
	newPaid := paidAmount.Sub(amount)
	if newPaid.IsNegative() {
		newPaid = decimal.Zero
	}
	remaining := totalAmount.Sub(newPaid)
	status := models.PurchaseInvoiceStatusUnpaid
	if newPaid.IsPositive() {
		status = models.PurchaseInvoiceStatusPaidPartial
	}
	if remaining.IsZero() {
		status = models.PurchaseInvoiceStatusPaidFull
	}
	return newPaid, remaining, status
}

// postPaymentCashOut records the cash movement for a payment posted against
// an account. The entry is created approved, there is no separate review step
// for payment-driven cash out.
func postPaymentCashOut(tx *gorm.DB, payment *models.PurchasePayment, userId int) error {
	number, err := models.NextDocumentNumber(tx, models.SeriesModuleCashBank)
	if err != nil {
		return err
	}
	now := time.Now()
	transaction := models.CashBankTransaction{
		TransactionNumber: number,
		Type:              models.CashBankTypeOut,
		TransactionDate:   payment.PaymentDate,
		AccountId:         *payment.AccountId,
		Amount:            payment.Amount,
		Description:       "Pembayaran " + payment.PaymentNumber,
		Status:            models.CashBankStatusApproved,
		PurchasePaymentId: &payment.ID,
		CreatedById:       userId,
		ApprovedById:      userId,
		ApprovedAt:        &now,
	}
	return tx.Create(&transaction).Error
}

// CreatePurchasePayment posts a payment against an invoice. A per-invoice
// lock serializes concurrent postings so the balance never goes negative.
func CreatePurchasePayment(ctx context.Context, input *models.NewPurchasePayment) (*models.PurchasePayment, error) {
	logger := config.GetLogger()

	if input.AccountId != nil {
		if err := utils.ValidateResourceId[models.Account](ctx, *input.AccountId); err != nil {
			return nil, errors.New("account not found")
		}
	}
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCash
	}

	release, err := utils.PostingLock(ctx, "purchase_invoice", strconv.Itoa(input.PurchaseInvoiceId),
		"paymentWorkflow.go", "CreatePurchasePayment")
	if err != nil {
		return nil, err
	}
	defer release()

	userId, _ := utils.GetUserIdFromContext(ctx)
	payment := models.PurchasePayment{
		PurchaseInvoiceId: input.PurchaseInvoiceId,
		PaymentDate:       input.PaymentDate,
		Amount:            input.Amount,
		PaymentMethod:     paymentMethod,
		AccountId:         input.AccountId,
		Reference:         input.Reference,
		Notes:             input.Notes,
		CreatedById:       userId,
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoice models.PurchaseInvoice
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&invoice, input.PurchaseInvoiceId).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("purchase invoice not found")
		} else if err != nil {
			return err
		}

		newPaid, remaining, status, err := ApplyPaymentToInvoice(invoice.TotalAmount, invoice.PaidAmount, input.Amount)
		if err != nil {
			return err
		}

		number, err := models.NextDocumentNumber(tx, models.SeriesModulePurchasePayment)
		if err != nil {
			return err
		}
		payment.PaymentNumber = number
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if payment.AccountId != nil {
			if err := postPaymentCashOut(tx, &payment, userId); err != nil {
				return err
			}
		}

		return tx.Model(&invoice).Updates(map[string]interface{}{
			"PaidAmount":      newPaid,
			"RemainingAmount": remaining,
			"Status":          status,
		}).Error
	})
	if err != nil {
		config.LogError(logger, "paymentWorkflow.go", "CreatePurchasePayment", "Transaction", input, err)
		return nil, err
	}

	utils.RemoveInstanceRedis[models.PurchaseInvoice](input.PurchaseInvoiceId)
	return &payment, nil
}

// DeletePurchasePayment removes a payment and restores the invoice balance.
func DeletePurchasePayment(ctx context.Context, id int) (*models.PurchasePayment, error) {
	logger := config.GetLogger()

	payment, err := utils.FetchModel[models.PurchasePayment](ctx, id)
	if err != nil {
		return nil, err
	}

	release, err := utils.PostingLock(ctx, "purchase_invoice", strconv.Itoa(payment.PurchaseInvoiceId),
		"paymentWorkflow.go", "DeletePurchasePayment")
	if err != nil {
		return nil, err
	}
	defer release()

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoice models.PurchaseInvoice
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&invoice, payment.PurchaseInvoiceId).Error
		if err != nil {
			return err
		}

		newPaid, remaining, status := ReversePaymentOnInvoice(invoice.TotalAmount, invoice.PaidAmount, payment.Amount)
		if err := tx.Where("purchase_payment_id = ?", payment.ID).
			Delete(&models.CashBankTransaction{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&payment).Error; err != nil {
			return err
		}
		return tx.Model(&invoice).Updates(map[string]interface{}{
			"PaidAmount":      newPaid,
			"RemainingAmount": remaining,
			"Status":          status,
		}).Error
	})
	if err != nil {
		config.LogError(logger, "paymentWorkflow.go", "DeletePurchasePayment", "Transaction", id, err)
		return nil, err
	}

	utils.RemoveInstanceRedis[models.PurchaseInvoice](payment.PurchaseInvoiceId)
	return payment, nil
}
