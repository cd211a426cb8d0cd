package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type StockSummary struct {
	TotalProducts  int64           `json:"total_products"`
	TotalQuantity  decimal.Decimal `json:"total_quantity"`
	LowStockCount  int64           `json:"low_stock_count"`
	LowStockItems  []*ProductStock `json:"low_stock_items"`
	TotalWarehouse int64           `json:"total_warehouses"`
}

type FinanceSummary struct {
	UnpaidInvoiceCount  int64           `json:"unpaid_invoice_count"`
	TotalPayable        decimal.Decimal `json:"total_payable"`
	PendingRequestCount int64           `json:"pending_request_count"`
	OpenOrderCount      int64           `json:"open_order_count"`
	MonthCashIn         decimal.Decimal `json:"month_cash_in"`
	MonthCashOut        decimal.Decimal `json:"month_cash_out"`
	MonthPaymentTotal   decimal.Decimal `json:"month_payment_total"`
}

func GetStockSummary(ctx context.Context) (*StockSummary, error) {
	db := config.GetDB()
	summary := StockSummary{TotalQuantity: decimal.Zero}

	if err := db.WithContext(ctx).Model(&Product{}).Count(&summary.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&Warehouse{}).Count(&summary.TotalWarehouse).Error; err != nil {
		return nil, err
	}

	var totalQuantity decimal.NullDecimal
	err := db.WithContext(ctx).Model(&ProductStock{}).
		Select("SUM(quantity)").Scan(&totalQuantity).Error
	if err != nil {
		return nil, err
	}
	if totalQuantity.Valid {
		summary.TotalQuantity = totalQuantity.Decimal
	}

	// low stock compares each warehouse balance against the product minimum
	err = db.WithContext(ctx).Model(&ProductStock{}).
		Preload("Product").Preload("Warehouse").
		Joins("JOIN products ON products.id = product_stocks.product_id").
		Where("product_stocks.quantity < products.minimum_stock").
		Find(&summary.LowStockItems).Error
	if err != nil {
		return nil, err
	}
	summary.LowStockCount = int64(len(summary.LowStockItems))
	return &summary, nil
}

func GetFinanceSummary(ctx context.Context) (*FinanceSummary, error) {
	db := config.GetDB()
	summary := FinanceSummary{
		TotalPayable:      decimal.Zero,
		MonthCashIn:       decimal.Zero,
		MonthCashOut:      decimal.Zero,
		MonthPaymentTotal: decimal.Zero,
	}

	err := db.WithContext(ctx).Model(&PurchaseInvoice{}).
		Where("status <> ?", PurchaseInvoiceStatusPaidFull).
		Count(&summary.UnpaidInvoiceCount).Error
	if err != nil {
		return nil, err
	}

	var payable decimal.NullDecimal
	err = db.WithContext(ctx).Model(&PurchaseInvoice{}).
		Select("SUM(remaining_amount)").
		Where("status <> ?", PurchaseInvoiceStatusPaidFull).
		Scan(&payable).Error
	if err != nil {
		return nil, err
	}
	if payable.Valid {
		summary.TotalPayable = payable.Decimal
	}

	err = db.WithContext(ctx).Model(&PurchaseRequest{}).
		Where("status = ?", PurchaseRequestStatusPending).
		Count(&summary.PendingRequestCount).Error
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).Model(&PurchaseOrder{}).
		Where("status IN ?", []PurchaseOrderStatus{
			PurchaseOrderStatusApproved,
			PurchaseOrderStatusSent,
			PurchaseOrderStatusReceivedPartial,
		}).
		Count(&summary.OpenOrderCount).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart, monthEnd := utils.GetMonthRange(now.Year(), now.Month())

	var cashIn decimal.NullDecimal
	err = db.WithContext(ctx).Model(&CashBankTransaction{}).
		Select("SUM(amount)").
		Where("type = ? AND status = ? AND transaction_date BETWEEN ? AND ?",
			CashBankTypeIn, CashBankStatusApproved, monthStart, monthEnd).
		Scan(&cashIn).Error
	if err != nil {
		return nil, err
	}
	if cashIn.Valid {
		summary.MonthCashIn = cashIn.Decimal
	}

	var cashOut decimal.NullDecimal
	err = db.WithContext(ctx).Model(&CashBankTransaction{}).
		Select("SUM(amount)").
		Where("type = ? AND status = ? AND transaction_date BETWEEN ? AND ?",
			CashBankTypeOut, CashBankStatusApproved, monthStart, monthEnd).
		Scan(&cashOut).Error
	if err != nil {
		return nil, err
	}
	if cashOut.Valid {
		summary.MonthCashOut = cashOut.Decimal
	}

	var payments decimal.NullDecimal
	err = db.WithContext(ctx).Model(&PurchasePayment{}).
		Select("SUM(amount)").
		Where("payment_date BETWEEN ? AND ?", monthStart, monthEnd).
		Scan(&payments).Error
	if err != nil {
		return nil, err
	}
	if payments.Valid {
		summary.MonthPaymentTotal = payments.Decimal
	}

	return &summary, nil
}
