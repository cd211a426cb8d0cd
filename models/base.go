package models

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirrdn/acounting-api/config"
)

// DocumentNumberSeries keeps one row per document module (PR, PO, GR, INV,
// PAY, CB). The sequence is advanced under a row lock inside the creating
// transaction so numbers stay gapless per process.
type DocumentNumberSeries struct {
	ID         int       `gorm:"primary_key" json:"id"`
	Module     string    `gorm:"size:10;uniqueIndex;not null" json:"module"`
	Prefix     string    `gorm:"size:10;not null" json:"prefix"`
	SequenceNo int64     `gorm:"not null;default:0" json:"sequence_no"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

const (
	SeriesModulePurchaseRequest = "PR"
	SeriesModulePurchaseOrder   = "PO"
	SeriesModuleGoodsReceipt    = "GR"
	SeriesModulePurchaseInvoice = "INV"
	SeriesModulePurchasePayment = "PAY"
	SeriesModuleCashBank        = "CB"
	SeriesModuleStockTransfer   = "ST"
	SeriesModuleStockOpname     = "SO"
	SeriesModuleStockAdjustment = "ADJ"
)

// NextDocumentNumber advances the module's series and formats
// PREFIX-YYYYMM-NNNN.
func NextDocumentNumber(tx *gorm.DB, module string) (string, error) {
	var series DocumentNumberSeries
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("module = ?", module).
		First(&series).Error
	if err == gorm.ErrRecordNotFound {
		series = DocumentNumberSeries{Module: module, Prefix: module}
		if err := tx.Create(&series).Error; err != nil {
			return "", err
		}
	} else if err != nil {
		return "", err
	}

	series.SequenceNo++
	if err := tx.Model(&series).UpdateColumn("sequence_no", series.SequenceNo).Error; err != nil {
		return "", err
	}

	return FormatDocumentNumber(series.Prefix, time.Now(), series.SequenceNo), nil
}

func FormatDocumentNumber(prefix string, t time.Time, seq int64) string {
	return fmt.Sprintf("%s-%d%02d-%04d", prefix, t.Year(), int(t.Month()), seq)
}

// GenerateDocumentNumber runs NextDocumentNumber in its own transaction.
// Used by the preview endpoint; document creation advances the series inside
// the creating transaction instead.
func GenerateDocumentNumber(ctx context.Context, module string) (string, error) {
	db := config.GetDB()
	var number string
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		number, txErr = NextDocumentNumber(tx, module)
		return txErr
	})
	return number, err
}

// MigrateAll keeps the schema in sync on startup.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Account{},
		&Customer{},
		&Supplier{},
		&Product{},
		&Branch{},
		&Department{},
		&Warehouse{},
		&DocumentNumberSeries{},
		&PurchaseRequest{},
		&PurchaseRequestItem{},
		&PurchaseOrder{},
		&PurchaseOrderItem{},
		&PurchaseReceipt{},
		&PurchaseReceiptItem{},
		&PurchaseInvoice{},
		&PurchaseInvoiceItem{},
		&PurchasePayment{},
		&CashBankTransaction{},
		&ProductStock{},
		&StockMovement{},
		&StockTransfer{},
		&StockTransferItem{},
		&StockOpname{},
		&StockOpnameItem{},
		&StockAdjustment{},
		&Budget{},
		&BudgetDetail{},
	)
}
