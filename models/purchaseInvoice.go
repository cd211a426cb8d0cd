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

type PurchaseInvoice struct {
	ID                int                   `gorm:"primary_key" json:"id"`
	InvoiceNumber     string                `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	SupplierInvoiceNo string                `gorm:"size:50" json:"supplier_invoice_no"`
	PurchaseOrderId   *int                  `gorm:"index" json:"purchase_order_id"`
	PurchaseOrder     *PurchaseOrder        `json:"purchase_order,omitempty"`
	SupplierId        int                   `gorm:"index;not null" json:"supplier_id"`
	Supplier          *Supplier             `json:"supplier,omitempty"`
	InvoiceDate       time.Time             `gorm:"not null" json:"invoice_date"`
	DueDate           *time.Time            `json:"due_date"`
	Status            PurchaseInvoiceStatus `gorm:"type:enum('UNPAID','PAID_PARTIAL','PAID_FULL');not null;default:'UNPAID'" json:"status"`
	IsPpn             *bool                 `gorm:"not null;default:false" json:"is_ppn"`
	IsPph             *bool                 `gorm:"not null;default:false" json:"is_pph"`
	PpnRate           decimal.Decimal       `gorm:"type:decimal(10,4);default:0" json:"ppn_rate"`
	PphRate           decimal.Decimal       `gorm:"type:decimal(10,4);default:0" json:"pph_rate"`
	Subtotal          decimal.Decimal       `gorm:"type:decimal(20,4);default:0" json:"subtotal"`
	TaxAmount         decimal.Decimal       `gorm:"type:decimal(20,4);default:0" json:"tax_amount"`
	TotalAmount       decimal.Decimal       `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	PaidAmount        decimal.Decimal       `gorm:"type:decimal(20,4);default:0" json:"paid_amount"`
	RemainingAmount   decimal.Decimal       `gorm:"type:decimal(20,4);default:0" json:"remaining_amount"`
	Notes             string                `gorm:"type:text" json:"notes"`
	Items             []PurchaseInvoiceItem `gorm:"foreignKey:PurchaseInvoiceId" json:"items"`
	CreatedAt         time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

type PurchaseInvoiceItem struct {
	ID                int             `gorm:"primary_key" json:"id"`
	PurchaseInvoiceId int             `gorm:"index;not null" json:"purchase_invoice_id"`
	ProductId         int             `gorm:"index;not null" json:"product_id"`
	Product           *Product        `json:"product,omitempty"`
	Quantity          decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	Discount          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	Subtotal          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"subtotal"`
	Total             decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
}

type NewPurchaseInvoice struct {
	SupplierInvoiceNo string                   `json:"supplier_invoice_no"`
	PurchaseOrderId   *int                     `json:"purchase_order_id"`
	SupplierId        int                      `json:"supplier_id" binding:"required"`
	InvoiceDate       time.Time                `json:"invoice_date" binding:"required"`
	DueDate           *time.Time               `json:"due_date"`
	IsPpn             *bool                    `json:"is_ppn"`
	IsPph             *bool                    `json:"is_pph"`
	PpnRate           decimal.Decimal          `json:"ppn_rate"`
	PphRate           decimal.Decimal          `json:"pph_rate"`
	Notes             string                   `json:"notes"`
	Items             []NewPurchaseInvoiceItem `json:"items" binding:"required,dive"`
}

type NewPurchaseInvoiceItem struct {
	ProductId int             `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
}

func (input *NewPurchaseInvoice) validate(ctx context.Context) error {
	if len(input.Items) == 0 {
		return errors.New("at least one item is required")
	}
	if err := utils.ValidateResourceId[Supplier](ctx, input.SupplierId); err != nil {
		return errors.New("supplier not found")
	}
	if input.PurchaseOrderId != nil {
		if err := utils.ValidateResourceId[PurchaseOrder](ctx, *input.PurchaseOrderId); err != nil {
			return errors.New("purchase order not found")
		}
	}
	productIds := make([]int, 0, len(input.Items))
	for _, item := range input.Items {
		if !item.Quantity.IsPositive() {
			return errors.New("item quantity must be positive")
		}
		productIds = append(productIds, item.ProductId)
	}
	if err := utils.ValidateResourcesId[Product](ctx, productIds); err != nil {
		return errors.New("product not found")
	}
	return nil
}

func mapPurchaseInvoiceItems(input []NewPurchaseInvoiceItem) []PurchaseInvoiceItem {
	items := make([]PurchaseInvoiceItem, 0, len(input))
	for _, item := range input {
		subtotal, total := utils.CalculateLineAmounts(item.Quantity, item.UnitPrice, item.Discount)
		items = append(items, PurchaseInvoiceItem{
			ProductId: item.ProductId,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
			Subtotal:  subtotal,
			Total:     total,
		})
	}
	return items
}

func computeInvoiceTotals(items []PurchaseInvoiceItem, isPpn bool, ppnRate decimal.Decimal, isPph bool, pphRate decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}
	taxAmount := utils.CalculatePpnPphAmount(subtotal, isPpn, ppnRate, isPph, pphRate)
	return subtotal, taxAmount, subtotal.Add(taxAmount)
}

func CreatePurchaseInvoice(ctx context.Context, input *NewPurchaseInvoice) (*PurchaseInvoice, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	isPpn := input.IsPpn
	if isPpn == nil {
		isPpn = utils.NewFalse()
	}
	isPph := input.IsPph
	if isPph == nil {
		isPph = utils.NewFalse()
	}

	items := mapPurchaseInvoiceItems(input.Items)
	subtotal, taxAmount, totalAmount := computeInvoiceTotals(items, *isPpn, input.PpnRate, *isPph, input.PphRate)

	invoice := PurchaseInvoice{
		SupplierInvoiceNo: input.SupplierInvoiceNo,
		PurchaseOrderId:   input.PurchaseOrderId,
		SupplierId:        input.SupplierId,
		InvoiceDate:       input.InvoiceDate,
		DueDate:           input.DueDate,
		Status:            PurchaseInvoiceStatusUnpaid,
		IsPpn:             isPpn,
		IsPph:             isPph,
		PpnRate:           input.PpnRate,
		PphRate:           input.PphRate,
		Subtotal:          subtotal,
		TaxAmount:         taxAmount,
		TotalAmount:       totalAmount,
		PaidAmount:        decimal.Zero,
		RemainingAmount:   totalAmount,
		Notes:             input.Notes,
		Items:             items,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := NextDocumentNumber(tx, SeriesModulePurchaseInvoice)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = number
		return tx.Create(&invoice).Error
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func UpdatePurchaseInvoice(ctx context.Context, id int, input *NewPurchaseInvoice) (*PurchaseInvoice, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	invoice, err := utils.FetchModel[PurchaseInvoice](ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != PurchaseInvoiceStatusUnpaid {
		return nil, errors.New("invoices with payments cannot be edited")
	}

	isPpn := input.IsPpn
	if isPpn == nil {
		isPpn = invoice.IsPpn
	}
	isPph := input.IsPph
	if isPph == nil {
		isPph = invoice.IsPph
	}

	items := mapPurchaseInvoiceItems(input.Items)
	subtotal, taxAmount, totalAmount := computeInvoiceTotals(items, *isPpn, input.PpnRate, *isPph, input.PphRate)

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"SupplierInvoiceNo": input.SupplierInvoiceNo,
			"PurchaseOrderId":   input.PurchaseOrderId,
			"SupplierId":        input.SupplierId,
			"InvoiceDate":       input.InvoiceDate,
			"DueDate":           input.DueDate,
			"IsPpn":             *isPpn,
			"IsPph":             *isPph,
			"PpnRate":           input.PpnRate,
			"PphRate":           input.PphRate,
			"Subtotal":          subtotal,
			"TaxAmount":         taxAmount,
			"TotalAmount":       totalAmount,
			"RemainingAmount":   totalAmount,
			"Notes":             input.Notes,
		}
		if err := tx.Model(invoice).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("purchase_invoice_id = ?", invoice.ID).Delete(&PurchaseInvoiceItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseInvoiceId = invoice.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return GetPurchaseInvoice(ctx, id)
}

// DeletePurchaseInvoice refuses while payments reference the invoice.
func DeletePurchaseInvoice(ctx context.Context, id int) (*PurchaseInvoice, error) {
	invoice, err := utils.FetchModel[PurchaseInvoice](ctx, id)
	if err != nil {
		return nil, err
	}

	paymentCount, err := utils.ResourceCountWhere[PurchasePayment](ctx, "purchase_invoice_id = ?", id)
	if err != nil {
		return nil, err
	}
	if paymentCount > 0 {
		return nil, errors.New("invoice has payments")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_invoice_id = ?", id).Delete(&PurchaseInvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&invoice).Error
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func GetPurchaseInvoice(ctx context.Context, id int) (*PurchaseInvoice, error) {
	return utils.FetchModel[PurchaseInvoice](ctx, id,
		"Items", "Items.Product", "Supplier", "PurchaseOrder")
}

func GetPurchaseInvoicesAll(ctx context.Context) ([]*PurchaseInvoice, error) {
	db := config.GetDB()
	var results []*PurchaseInvoice
	err := db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Preload("Supplier").Preload("PurchaseOrder").
		Order("invoice_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetUnpaidInvoicesBySupplier lists invoices that still carry a balance,
// used when entering a payment.
func GetUnpaidInvoicesBySupplier(ctx context.Context, supplierId int) ([]*PurchaseInvoice, error) {
	db := config.GetDB()
	var results []*PurchaseInvoice
	err := db.WithContext(ctx).
		Where("supplier_id = ? AND status <> ?", supplierId, PurchaseInvoiceStatusPaidFull).
		Order("due_date ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
