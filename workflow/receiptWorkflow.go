package workflow

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/models"
	"github.com/amirrdn/acounting-api/utils"
)

// RollupOrderStatus derives the order's receiving status from ordered and
// received quantities per product. Every line fully received means
// RECEIVED_FULL, anything received at all means RECEIVED_PARTIAL.
func RollupOrderStatus(ordered, received map[int]decimal.Decimal) models.PurchaseOrderStatus {
	anyReceived := false
	allReceived := len(ordered) > 0
	for productId, orderedQty := range ordered {
		receivedQty := received[productId]
		if receivedQty.IsPositive() {
			anyReceived = true
		}
		if receivedQty.LessThan(orderedQty) {
			allReceived = false
		}
	}
	if allReceived {
		return models.PurchaseOrderStatusReceivedFull
	}
	if anyReceived {
		return models.PurchaseOrderStatusReceivedPartial
	}
	return models.PurchaseOrderStatusSent
}

func receivedByProduct(tx *gorm.DB, orderId int) (map[int]decimal.Decimal, error) {
	var receipts []models.PurchaseReceipt
	err := tx.Preload("Items").
		Where("purchase_order_id = ? AND status = ?", orderId, models.PurchaseReceiptStatusCompleted).
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}

	received := make(map[int]decimal.Decimal)
	for _, receipt := range receipts {
		for _, item := range receipt.Items {
			received[item.ProductId] = received[item.ProductId].Add(item.ReceivedQuantity)
		}
	}
	return received, nil
}

func syncOrderStatus(tx *gorm.DB, orderId int) error {
	var order models.PurchaseOrder
	if err := tx.Preload("Items").First(&order, orderId).Error; err != nil {
		return err
	}

	ordered := make(map[int]decimal.Decimal, len(order.Items))
	for _, item := range order.Items {
		ordered[item.ProductId] = ordered[item.ProductId].Add(item.Quantity)
	}
	received, err := receivedByProduct(tx, orderId)
	if err != nil {
		return err
	}

	status := RollupOrderStatus(ordered, received)
	if status == order.Status {
		return nil
	}
	return tx.Model(&order).Update("Status", status).Error
}

// CompletePurchaseReceipt posts the receipt's stock and rolls the order
// status up. The whole posting is one transaction.
func CompletePurchaseReceipt(ctx context.Context, id int) (*models.PurchaseReceipt, error) {
	logger := config.GetLogger()

	receipt, err := utils.FetchModel[models.PurchaseReceipt](ctx, id, "Items")
	if err != nil {
		return nil, err
	}
	if !receipt.Status.CanTransition(models.PurchaseReceiptStatusCompleted) {
		return nil, utils.ErrorInvalidTransition
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range receipt.Items {
			if !item.ReceivedQuantity.IsPositive() {
				continue
			}
			movement := models.StockMovement{
				ProductId:     item.ProductId,
				WarehouseId:   receipt.WarehouseId,
				Type:          models.StockMovementTypePurchaseIn,
				Quantity:      item.ReceivedQuantity,
				ReferenceType: "PURCHASE_RECEIPT",
				ReferenceId:   receipt.ID,
				MovementDate:  receipt.ReceiptDate,
			}
			if err := models.ApplyStockMovement(ctx, tx, &movement); err != nil {
				return err
			}
		}
		if err := tx.Model(receipt).Update("Status", models.PurchaseReceiptStatusCompleted).Error; err != nil {
			return err
		}
		return syncOrderStatus(tx, receipt.PurchaseOrderId)
	})
	if err != nil {
		config.LogError(logger, "receiptWorkflow.go", "CompletePurchaseReceipt", "Transaction", id, err)
		return nil, err
	}

	utils.RemoveInstanceRedis[models.PurchaseOrder](receipt.PurchaseOrderId)
	return models.GetPurchaseReceipt(ctx, id)
}

// ReopenPurchaseReceipt reverses the posted stock and rolls the order back.
func ReopenPurchaseReceipt(ctx context.Context, id int) (*models.PurchaseReceipt, error) {
	logger := config.GetLogger()

	receipt, err := utils.FetchModel[models.PurchaseReceipt](ctx, id, "Items")
	if err != nil {
		return nil, err
	}
	if !receipt.Status.CanTransition(models.PurchaseReceiptStatusDraft) {
		return nil, utils.ErrorInvalidTransition
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range receipt.Items {
			if !item.ReceivedQuantity.IsPositive() {
				continue
			}
			movement := models.StockMovement{
				ProductId:     item.ProductId,
				WarehouseId:   receipt.WarehouseId,
				Type:          models.StockMovementTypePurchaseIn,
				Quantity:      item.ReceivedQuantity.Neg(),
				ReferenceType: "PURCHASE_RECEIPT_REVERSAL",
				ReferenceId:   receipt.ID,
				MovementDate:  receipt.ReceiptDate,
			}
			if err := models.ApplyStockMovement(ctx, tx, &movement); err != nil {
				return err
			}
		}
		if err := tx.Model(receipt).Update("Status", models.PurchaseReceiptStatusDraft).Error; err != nil {
			return err
		}
		return syncOrderStatus(tx, receipt.PurchaseOrderId)
	})
	if err != nil {
		config.LogError(logger, "receiptWorkflow.go", "ReopenPurchaseReceipt", "Transaction", id, err)
		return nil, err
	}

	utils.RemoveInstanceRedis[models.PurchaseOrder](receipt.PurchaseOrderId)
	return models.GetPurchaseReceipt(ctx, id)
}

// UpdatePurchaseReceiptStatus dispatches a status change to the matching
// posting routine.
func UpdatePurchaseReceiptStatus(ctx context.Context, id int, status models.PurchaseReceiptStatus) (*models.PurchaseReceipt, error) {
	switch status {
	case models.PurchaseReceiptStatusCompleted:
		return CompletePurchaseReceipt(ctx, id)
	case models.PurchaseReceiptStatusDraft:
		return ReopenPurchaseReceipt(ctx, id)
	default:
		return nil, errors.New("unknown receipt status")
	}
}
