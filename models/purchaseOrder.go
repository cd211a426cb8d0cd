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

type PurchaseOrder struct {
	ID                   int                 `gorm:"primary_key" json:"id"`
	PoNumber             string              `gorm:"size:50;uniqueIndex;not null" json:"po_number"`
	PurchaseRequestId    *int                `gorm:"index" json:"purchase_request_id"`
	PurchaseRequest      *PurchaseRequest    `json:"purchase_request,omitempty"`
	SupplierId           int                 `gorm:"index;not null" json:"supplier_id"`
	Supplier             *Supplier           `json:"supplier,omitempty"`
	BranchId             int                 `gorm:"index;not null" json:"branch_id"`
	Branch               *Branch             `json:"branch,omitempty"`
	OrderDate            time.Time           `gorm:"not null" json:"order_date"`
	ExpectedDeliveryDate *time.Time          `json:"expected_delivery_date"`
	PaymentTerms         string              `gorm:"size:20;default:'CASH'" json:"payment_terms"`
	Status               PurchaseOrderStatus `gorm:"type:enum('DRAFT','APPROVED','SENT','RECEIVED_PARTIAL','RECEIVED_FULL');not null;default:'DRAFT'" json:"status"`
	IsPpn                *bool               `gorm:"not null;default:false" json:"is_ppn"`
	IsPph                *bool               `gorm:"not null;default:false" json:"is_pph"`
	PpnRate              decimal.Decimal     `gorm:"type:decimal(10,4);default:0" json:"ppn_rate"`
	PphRate              decimal.Decimal     `gorm:"type:decimal(10,4);default:0" json:"pph_rate"`
	Subtotal             decimal.Decimal     `gorm:"type:decimal(20,4);default:0" json:"subtotal"`
	TaxAmount            decimal.Decimal     `gorm:"type:decimal(20,4);default:0" json:"tax_amount"`
	TotalAmount          decimal.Decimal     `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	Notes                string              `gorm:"type:text" json:"notes"`
	ApprovalNotes        string              `gorm:"type:text" json:"approval_notes"`
	AttachmentUrl        string              `gorm:"size:255" json:"attachment_url"`
	ApprovedById         int                 `json:"approved_by_id"`
	ApprovedAt           *time.Time          `json:"approved_at"`
	Items                []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderId" json:"items"`
	CreatedAt            time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

type PurchaseOrderItem struct {
	ID              int             `gorm:"primary_key" json:"id"`
	PurchaseOrderId int             `gorm:"index;not null" json:"purchase_order_id"`
	ProductId       int             `gorm:"index;not null" json:"product_id"`
	Product         *Product        `json:"product,omitempty"`
	Quantity        decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	Unit            string          `gorm:"size:20" json:"unit"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	Discount        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	Tax             decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"subtotal"`
	Total           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
}

type NewPurchaseOrder struct {
	PurchaseRequestId    *int                   `json:"purchase_request_id"`
	SupplierId           int                    `json:"supplier_id" binding:"required"`
	BranchId             int                    `json:"branch_id" binding:"required"`
	OrderDate            time.Time              `json:"order_date" binding:"required"`
	ExpectedDeliveryDate *time.Time             `json:"expected_delivery_date"`
	PaymentTerms         string                 `json:"payment_terms"`
	IsPpn                *bool                  `json:"is_ppn"`
	IsPph                *bool                  `json:"is_pph"`
	PpnRate              decimal.Decimal        `json:"ppn_rate"`
	PphRate              decimal.Decimal        `json:"pph_rate"`
	Notes                string                 `json:"notes"`
	Items                []NewPurchaseOrderItem `json:"items" binding:"dive"`
}

type NewPurchaseOrderItem struct {
	ProductId int             `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Tax       decimal.Decimal `json:"tax"`
}

func (input *NewPurchaseOrder) validate(ctx context.Context) error {
	if len(input.Items) == 0 {
		return errors.New("at least one item is required")
	}
	if err := utils.ValidateResourceId[Supplier](ctx, input.SupplierId); err != nil {
		return errors.New("supplier not found")
	}
	if err := utils.ValidateResourceId[Branch](ctx, input.BranchId); err != nil {
		return errors.New("branch not found")
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

	// an order may reference a request only when that request is approved
	if input.PurchaseRequestId != nil {
		request, err := utils.FetchModel[PurchaseRequest](ctx, *input.PurchaseRequestId)
		if err != nil {
			return errors.New("purchase request not found")
		}
		if request.Status != PurchaseRequestStatusApproved {
			return errors.New("purchase request is not approved")
		}
	}
	return nil
}

// mapPurchaseOrderItems computes per-line subtotal/total the same way the
// order form does: subtotal = qty * unitPrice, total = subtotal - discount.
func mapPurchaseOrderItems(input []NewPurchaseOrderItem) []PurchaseOrderItem {
	items := make([]PurchaseOrderItem, 0, len(input))
	for _, item := range input {
		subtotal, total := utils.CalculateLineAmounts(item.Quantity, item.UnitPrice, item.Discount)
		items = append(items, PurchaseOrderItem{
			ProductId: item.ProductId,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
			Tax:       item.Tax,
			Subtotal:  subtotal,
			Total:     total,
		})
	}
	return items
}

// aggregate tax is applied over the sum of line totals:
// taxAmount = base*ppnRate/100 - base*pphRate/100
func computeOrderTotals(items []PurchaseOrderItem, isPpn bool, ppnRate decimal.Decimal, isPph bool, pphRate decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}
	taxAmount := utils.CalculatePpnPphAmount(subtotal, isPpn, ppnRate, isPph, pphRate)
	totalAmount := subtotal.Add(taxAmount)
	return subtotal, taxAmount, totalAmount
}

// seedItemsFromRequest copies an approved request's lines onto the order.
// Unit price falls back to the product's cost when it has one.
func seedItemsFromRequest(ctx context.Context, requestId int) ([]NewPurchaseOrderItem, error) {
	request, err := GetPurchaseRequest(ctx, requestId)
	if err != nil {
		return nil, errors.New("purchase request not found")
	}
	items := make([]NewPurchaseOrderItem, 0, len(request.Items))
	for _, line := range request.Items {
		unitPrice := decimal.Zero
		if line.Product != nil {
			unitPrice = line.Product.Cost
		}
		items = append(items, NewPurchaseOrderItem{
			ProductId: line.ProductId,
			Quantity:  line.Quantity,
			Unit:      line.Unit,
			UnitPrice: unitPrice,
		})
	}
	return items, nil
}

func CreatePurchaseOrder(ctx context.Context, input *NewPurchaseOrder, attachmentUrl string) (*PurchaseOrder, error) {
	if input.PurchaseRequestId != nil && len(input.Items) == 0 {
		seeded, err := seedItemsFromRequest(ctx, *input.PurchaseRequestId)
		if err != nil {
			return nil, err
		}
		input.Items = seeded
	}
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
	paymentTerms := input.PaymentTerms
	if paymentTerms == "" {
		paymentTerms = "CASH"
	}

	items := mapPurchaseOrderItems(input.Items)
	subtotal, taxAmount, totalAmount := computeOrderTotals(items, *isPpn, input.PpnRate, *isPph, input.PphRate)

	order := PurchaseOrder{
		PurchaseRequestId:    input.PurchaseRequestId,
		SupplierId:           input.SupplierId,
		BranchId:             input.BranchId,
		OrderDate:            input.OrderDate,
		ExpectedDeliveryDate: input.ExpectedDeliveryDate,
		PaymentTerms:         paymentTerms,
		Status:               PurchaseOrderStatusDraft,
		IsPpn:                isPpn,
		IsPph:                isPph,
		PpnRate:              input.PpnRate,
		PphRate:              input.PphRate,
		Subtotal:             subtotal,
		TaxAmount:            taxAmount,
		TotalAmount:          totalAmount,
		Notes:                input.Notes,
		AttachmentUrl:        attachmentUrl,
		Items:                items,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := NextDocumentNumber(tx, SeriesModulePurchaseOrder)
		if err != nil {
			return err
		}
		order.PoNumber = number
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func UpdatePurchaseOrder(ctx context.Context, id int, input *NewPurchaseOrder, attachmentUrl string) (*PurchaseOrder, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	order, err := utils.FetchModel[PurchaseOrder](ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != PurchaseOrderStatusDraft {
		return nil, errors.New("only draft orders can be edited")
	}

	isPpn := input.IsPpn
	if isPpn == nil {
		isPpn = order.IsPpn
	}
	isPph := input.IsPph
	if isPph == nil {
		isPph = order.IsPph
	}

	items := mapPurchaseOrderItems(input.Items)
	subtotal, taxAmount, totalAmount := computeOrderTotals(items, *isPpn, input.PpnRate, *isPph, input.PphRate)

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"PurchaseRequestId":    input.PurchaseRequestId,
			"SupplierId":           input.SupplierId,
			"BranchId":             input.BranchId,
			"OrderDate":            input.OrderDate,
			"ExpectedDeliveryDate": input.ExpectedDeliveryDate,
			"IsPpn":                *isPpn,
			"IsPph":                *isPph,
			"PpnRate":              input.PpnRate,
			"PphRate":              input.PphRate,
			"Subtotal":             subtotal,
			"TaxAmount":            taxAmount,
			"TotalAmount":          totalAmount,
			"Notes":                input.Notes,
		}
		if input.PaymentTerms != "" {
			updates["PaymentTerms"] = input.PaymentTerms
		}
		if attachmentUrl != "" {
			updates["AttachmentUrl"] = attachmentUrl
		}
		if err := tx.Model(order).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("purchase_order_id = ?", order.ID).Delete(&PurchaseOrderItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseOrderId = order.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}

	return GetPurchaseOrder(ctx, id)
}

func DeletePurchaseOrder(ctx context.Context, id int) (*PurchaseOrder, error) {
	order, err := utils.FetchModel[PurchaseOrder](ctx, id)
	if err != nil {
		return nil, err
	}

	usedCount, err := utils.ResourceCountWhere[PurchaseReceipt](ctx, "purchase_order_id = ?", id)
	if err != nil {
		return nil, err
	}
	if usedCount > 0 {
		return nil, errors.New("order has goods receipts")
	}
	usedCount, err = utils.ResourceCountWhere[PurchaseInvoice](ctx, "purchase_order_id = ?", id)
	if err != nil {
		return nil, err
	}
	if usedCount > 0 {
		return nil, errors.New("order has invoices")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_order_id = ?", id).Delete(&PurchaseOrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func GetPurchaseOrder(ctx context.Context, id int) (*PurchaseOrder, error) {
	return utils.FetchModel[PurchaseOrder](ctx, id, "Items", "Items.Product", "Supplier", "Branch", "PurchaseRequest")
}

func GetPurchaseOrdersAll(ctx context.Context) ([]*PurchaseOrder, error) {
	db := config.GetDB()
	var results []*PurchaseOrder
	err := db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Preload("Supplier").Preload("Branch").
		Order("order_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// UpdatePurchaseOrderStatus applies one explicit transition.
func UpdatePurchaseOrderStatus(ctx context.Context, id int, status PurchaseOrderStatus, approvalNotes string) (*PurchaseOrder, error) {
	order, err := utils.FetchModel[PurchaseOrder](ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransition(status) {
		return nil, utils.ErrorInvalidTransition
	}

	updates := map[string]interface{}{"Status": status}
	if approvalNotes != "" {
		updates["ApprovalNotes"] = approvalNotes
	}
	if status == PurchaseOrderStatusApproved {
		userId, _ := utils.GetUserIdFromContext(ctx)
		now := time.Now()
		updates["ApprovedById"] = userId
		updates["ApprovedAt"] = &now
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(order).Updates(updates).Error; err != nil {
		return nil, err
	}
	return GetPurchaseOrder(ctx, id)
}
