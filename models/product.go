package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type Product struct {
	ID           int             `gorm:"primary_key" json:"id"`
	Sku          string          `gorm:"size:50;uniqueIndex;not null" json:"sku" binding:"required"`
	Name         string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Unit         string          `gorm:"size:20;default:'pcs'" json:"unit"`
	Price        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	Cost         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"cost"`
	MinimumStock decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"minimum_stock"`
	IsActive     *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProduct struct {
	Sku          string          `json:"sku" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	IsActive     *bool           `json:"is_active"`
}

func (input *NewProduct) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[Product](ctx, "sku", input.Sku, id); err != nil {
		return err
	}
	if input.Price.IsNegative() || input.Cost.IsNegative() {
		return errors.New("price and cost must not be negative")
	}
	return nil
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	isActive := input.IsActive
	if isActive == nil {
		isActive = utils.NewTrue()
	}
	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	product := Product{
		Sku:          input.Sku,
		Name:         input.Name,
		Unit:         unit,
		Price:        input.Price,
		Cost:         input.Cost,
		MinimumStock: input.MinimumStock,
		IsActive:     isActive,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	utils.RemoveListRedis[Product]()
	return &product, nil
}

func UpdateProduct(ctx context.Context, id int, input *NewProduct) (*Product, error) {
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	product, err := utils.FetchModel[Product](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	updates := map[string]interface{}{
		"Sku":          input.Sku,
		"Name":         input.Name,
		"Price":        input.Price,
		"Cost":         input.Cost,
		"MinimumStock": input.MinimumStock,
	}
	if input.Unit != "" {
		updates["Unit"] = input.Unit
	}
	if input.IsActive != nil {
		updates["IsActive"] = *input.IsActive
	}
	if err := db.WithContext(ctx).Model(product).Updates(updates).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Product](id)
	return product, nil
}

func DeleteProduct(ctx context.Context, id int) (*Product, error) {
	product, err := utils.FetchModel[Product](ctx, id)
	if err != nil {
		return nil, err
	}

	usedCount, err := utils.ResourceCountWhere[PurchaseRequestItem](ctx, "product_id = ?", id)
	if err != nil {
		return nil, err
	}
	if usedCount > 0 {
		return nil, errors.New("product used in purchase requests")
	}
	usedCount, err = utils.ResourceCountWhere[StockMovement](ctx, "product_id = ?", id)
	if err != nil {
		return nil, err
	}
	if usedCount > 0 {
		return nil, errors.New("product has stock movements")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&product).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Product](id)
	return product, nil
}

func GetProduct(ctx context.Context, id int) (*Product, error) {
	return GetResource[Product](ctx, id)
}

func GetProductsAll(ctx context.Context) ([]*Product, error) {
	return ListAllResource[Product](ctx, "name")
}
