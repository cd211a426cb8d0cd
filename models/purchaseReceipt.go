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

type PurchaseReceipt struct {
	ID              int                   `gorm:"primary_key" json:"id"`
	ReceiptNumber   string                `gorm:"size:50;uniqueIndex;not null" json:"receipt_number"`
	PurchaseOrderId int                   `gorm:"index;not null" json:"purchase_order_id"`
	PurchaseOrder   *PurchaseOrder        `json:"purchase_order,omitempty"`
	WarehouseId     int                   `gorm:"index;not null" json:"warehouse_id"`
	Warehouse       *Warehouse            `json:"warehouse,omitempty"`
	ReceiptDate     time.Time             `gorm:"not null" json:"receipt_date"`
	Status          PurchaseReceiptStatus `gorm:"type:enum('DRAFT','COMPLETED');not null;default:'DRAFT'" json:"status"`
	Notes           string                `gorm:"type:text" json:"notes"`
	ReceivedById    int                   `json:"received_by_id"`
	ReceivedBy      *User                 `json:"received_by,omitempty"`
	Items           []PurchaseReceiptItem `gorm:"foreignKey:PurchaseReceiptId" json:"items"`
	CreatedAt       time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

// OrderedQuantity and UnitPrice are copied from the order when the receipt
// is created and are never editable afterwards.
type PurchaseReceiptItem struct {
	ID                int             `gorm:"primary_key" json:"id"`
	PurchaseReceiptId int             `gorm:"index;not null" json:"purchase_receipt_id"`
	ProductId         int             `gorm:"index;not null" json:"product_id"`
	Product           *Product        `json:"product,omitempty"`
	OrderedQuantity   decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"ordered_quantity"`
	ReceivedQuantity  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"received_quantity"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	Condition         string          `gorm:"size:50;default:'GOOD'" json:"condition"`
	Notes             string          `gorm:"size:255" json:"notes"`
}

type NewPurchaseReceipt struct {
	PurchaseOrderId int                      `json:"purchase_order_id" binding:"required"`
	WarehouseId     int                      `json:"warehouse_id" binding:"required"`
	ReceiptDate     time.Time                `json:"receipt_date" binding:"required"`
	Notes           string                   `json:"notes"`
	Items           []NewPurchaseReceiptItem `json:"items" binding:"required,dive"`
}

type NewPurchaseReceiptItem struct {
	ProductId        int             `json:"product_id" binding:"required"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity" binding:"required"`
	Condition        string          `json:"condition"`
	Notes            string          `json:"notes"`
}

func (input *NewPurchaseReceipt) validate(ctx context.Context) (*PurchaseOrder, error) {
	if len(input.Items) == 0 {
		return nil, errors.New("at least one item is required")
	}
	if err := utils.ValidateResourceId[Warehouse](ctx, input.WarehouseId); err != nil {
		return nil, errors.New("warehouse not found")
	}

	order, err := GetPurchaseOrder(ctx, input.PurchaseOrderId)
	if err != nil {
		return nil, errors.New("purchase order not found")
	}
	if order.Status != PurchaseOrderStatusSent &&
		order.Status != PurchaseOrderStatusReceivedPartial {
		return nil, errors.New("purchase order is not open for receiving")
	}

	orderItems := make(map[int]PurchaseOrderItem, len(order.Items))
	for _, item := range order.Items {
		orderItems[item.ProductId] = item
	}
	for _, item := range input.Items {
		if item.ReceivedQuantity.IsNegative() {
			return nil, errors.New("received quantity cannot be negative")
		}
		if _, ok := orderItems[item.ProductId]; !ok {
			return nil, errors.New("product is not on the purchase order")
		}
	}
	return order, nil
}

// mapPurchaseReceiptItems pairs every received line with its order line so
// ordered quantity and price always come from the order.
func mapPurchaseReceiptItems(order *PurchaseOrder, input []NewPurchaseReceiptItem) []PurchaseReceiptItem {
	orderItems := make(map[int]PurchaseOrderItem, len(order.Items))
	for _, item := range order.Items {
		orderItems[item.ProductId] = item
	}

	items := make([]PurchaseReceiptItem, 0, len(input))
	for _, item := range input {
		orderItem := orderItems[item.ProductId]
		condition := item.Condition
		if condition == "" {
			condition = "GOOD"
		}
		items = append(items, PurchaseReceiptItem{
			ProductId:        item.ProductId,
			OrderedQuantity:  orderItem.Quantity,
			ReceivedQuantity: item.ReceivedQuantity,
			UnitPrice:        orderItem.UnitPrice,
			Condition:        condition,
			Notes:            item.Notes,
		})
	}
	return items
}

func CreatePurchaseReceipt(ctx context.Context, input *NewPurchaseReceipt) (*PurchaseReceipt, error) {
	order, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	receipt := PurchaseReceipt{
		PurchaseOrderId: input.PurchaseOrderId,
		WarehouseId:     input.WarehouseId,
		ReceiptDate:     input.ReceiptDate,
		Status:          PurchaseReceiptStatusDraft,
		Notes:           input.Notes,
		ReceivedById:    userId,
		Items:           mapPurchaseReceiptItems(order, input.Items),
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := NextDocumentNumber(tx, SeriesModuleGoodsReceipt)
		if err != nil {
			return err
		}
		receipt.ReceiptNumber = number
		return tx.Create(&receipt).Error
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// UpdatePurchaseReceipt replaces received quantities on a draft receipt.
// Ordered quantities and prices are re-read from the order, never from input.
func UpdatePurchaseReceipt(ctx context.Context, id int, input *NewPurchaseReceipt) (*PurchaseReceipt, error) {
	receipt, err := utils.FetchModel[PurchaseReceipt](ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt.Status != PurchaseReceiptStatusDraft {
		return nil, errors.New("only draft receipts can be edited")
	}

	input.PurchaseOrderId = receipt.PurchaseOrderId
	order, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}
	items := mapPurchaseReceiptItems(order, input.Items)

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"WarehouseId": input.WarehouseId,
			"ReceiptDate": input.ReceiptDate,
			"Notes":       input.Notes,
		}
		if err := tx.Model(receipt).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("purchase_receipt_id = ?", receipt.ID).Delete(&PurchaseReceiptItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseReceiptId = receipt.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return GetPurchaseReceipt(ctx, id)
}

func DeletePurchaseReceipt(ctx context.Context, id int) (*PurchaseReceipt, error) {
	receipt, err := utils.FetchModel[PurchaseReceipt](ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt.Status == PurchaseReceiptStatusCompleted {
		return nil, errors.New("completed receipts cannot be deleted")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_receipt_id = ?", id).Delete(&PurchaseReceiptItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&receipt).Error
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func GetPurchaseReceipt(ctx context.Context, id int) (*PurchaseReceipt, error) {
	return utils.FetchModel[PurchaseReceipt](ctx, id,
		"Items", "Items.Product", "PurchaseOrder", "PurchaseOrder.Supplier", "Warehouse", "ReceivedBy")
}

func GetPurchaseReceiptsAll(ctx context.Context) ([]*PurchaseReceipt, error) {
	db := config.GetDB()
	var results []*PurchaseReceipt
	err := db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Preload("PurchaseOrder").Preload("PurchaseOrder.Supplier").
		Preload("Warehouse").Preload("ReceivedBy").
		Order("receipt_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	for _, receipt := range results {
		if receipt.ReceivedBy != nil {
			receipt.ReceivedBy.PrepareGive()
		}
	}
	return results, nil
}
