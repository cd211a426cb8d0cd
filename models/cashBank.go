package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type CashBankTransaction struct {
	ID                   int             `gorm:"primary_key" json:"id"`
	TransactionNumber    string          `gorm:"size:50;uniqueIndex;not null" json:"transaction_number"`
	Type                 CashBankType    `gorm:"size:20;not null" json:"type"`
	TransactionDate      time.Time       `gorm:"not null" json:"transaction_date"`
	AccountId            int             `gorm:"index;not null" json:"account_id"`
	Account              *Account        `json:"account,omitempty"`
	DestinationAccountId *int            `gorm:"index" json:"destination_account_id"`
	DestinationAccount   *Account        `json:"destination_account,omitempty"`
	Amount               decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Description          string          `gorm:"type:text" json:"description"`
	Status               CashBankStatus  `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	PurchasePaymentId    *int            `gorm:"index" json:"purchase_payment_id,omitempty"`
	CreatedById          int             `json:"created_by_id"`
	CreatedBy            *User           `json:"created_by,omitempty"`
	ApprovedById         int             `json:"approved_by_id"`
	ApprovedAt           *time.Time      `json:"approved_at"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCashBankTransaction struct {
	TransactionDate      time.Time       `json:"transaction_date" binding:"required"`
	AccountId            int             `json:"account_id" binding:"required"`
	DestinationAccountId *int            `json:"destination_account_id"`
	Amount               decimal.Decimal `json:"amount" binding:"required"`
	Description          string          `json:"description"`
}

type CashBankFilter struct {
	Type      *CashBankType
	AccountId *int
	StartDate *time.Time
	EndDate   *time.Time
}

type CashflowSummary struct {
	TotalIn      decimal.Decimal        `json:"total_in"`
	TotalOut     decimal.Decimal        `json:"total_out"`
	Net          decimal.Decimal        `json:"net"`
	Transactions []*CashBankTransaction `json:"transactions"`
}

func (input *NewCashBankTransaction) validate(ctx context.Context, transactionType CashBankType) error {
	if !input.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	if err := utils.ValidateResourceId[Account](ctx, input.AccountId); err != nil {
		return errors.New("account not found")
	}
	if transactionType == CashBankTypeTransfer {
		if input.DestinationAccountId == nil {
			return errors.New("destination account is required for transfers")
		}
		if *input.DestinationAccountId == input.AccountId {
			return errors.New("destination account must differ from source account")
		}
		if err := utils.ValidateResourceId[Account](ctx, *input.DestinationAccountId); err != nil {
			return errors.New("destination account not found")
		}
	}
	return nil
}

func CreateCashBankTransaction(ctx context.Context, transactionType CashBankType, input *NewCashBankTransaction) (*CashBankTransaction, error) {
	if err := input.validate(ctx, transactionType); err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	transaction := CashBankTransaction{
		Type:            transactionType,
		TransactionDate: input.TransactionDate,
		AccountId:       input.AccountId,
		Amount:          input.Amount,
		Description:     input.Description,
		Status:          CashBankStatusPending,
		CreatedById:     userId,
	}
	if transactionType == CashBankTypeTransfer {
		transaction.DestinationAccountId = input.DestinationAccountId
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := NextDocumentNumber(tx, SeriesModuleCashBank)
		if err != nil {
			return err
		}
		transaction.TransactionNumber = number
		return tx.Create(&transaction).Error
	})
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func ApproveCashBankTransaction(ctx context.Context, id int) (*CashBankTransaction, error) {
	transaction, err := utils.FetchModel[CashBankTransaction](ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction.Status != CashBankStatusPending {
		return nil, errors.New("transaction is already approved")
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	now := time.Now()
	db := config.GetDB()
	err = db.WithContext(ctx).Model(transaction).Updates(map[string]interface{}{
		"Status":       CashBankStatusApproved,
		"ApprovedById": userId,
		"ApprovedAt":   &now,
	}).Error
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func GetCashBankTransactionsAll(ctx context.Context, filter CashBankFilter) ([]*CashBankTransaction, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).
		Preload("Account").Preload("DestinationAccount").Preload("CreatedBy")
	if filter.Type != nil {
		dbCtx = dbCtx.Where("type = ?", *filter.Type)
	}
	if filter.AccountId != nil {
		dbCtx = dbCtx.Where("account_id = ? OR destination_account_id = ?", *filter.AccountId, *filter.AccountId)
	}
	if filter.StartDate != nil {
		dbCtx = dbCtx.Where("transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		dbCtx = dbCtx.Where("transaction_date <= ?", *filter.EndDate)
	}

	var results []*CashBankTransaction
	if err := dbCtx.Order("transaction_date DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	for _, transaction := range results {
		if transaction.CreatedBy != nil {
			transaction.CreatedBy.PrepareGive()
		}
	}
	return results, nil
}

// GetCashflow sums approved movements over the filter range. Transfers net
// to zero and are excluded from the totals.
func GetCashflow(ctx context.Context, filter CashBankFilter) (*CashflowSummary, error) {
	transactions, err := GetCashBankTransactionsAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := CashflowSummary{
		TotalIn:      decimal.Zero,
		TotalOut:     decimal.Zero,
		Transactions: make([]*CashBankTransaction, 0, len(transactions)),
	}
	for _, transaction := range transactions {
		if transaction.Status != CashBankStatusApproved {
			continue
		}
		summary.Transactions = append(summary.Transactions, transaction)
		switch transaction.Type {
		case CashBankTypeIn:
			summary.TotalIn = summary.TotalIn.Add(transaction.Amount)
		case CashBankTypeOut:
			summary.TotalOut = summary.TotalOut.Add(transaction.Amount)
		}
	}
	summary.Net = summary.TotalIn.Sub(summary.TotalOut)
	return &summary, nil
}
