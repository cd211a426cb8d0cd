package models

import (
	"context"
	"errors"
	"time"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type Warehouse struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Code      string    `gorm:"size:20;uniqueIndex;not null" json:"code" binding:"required"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	BranchId  int       `gorm:"index" json:"branch_id"`
	Branch    *Branch   `json:"branch,omitempty"`
	Address   string    `gorm:"type:text" json:"address"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewWarehouse struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	BranchId int    `json:"branch_id"`
	Address  string `json:"address"`
	IsActive *bool  `json:"is_active"`
}

func (input *NewWarehouse) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[Warehouse](ctx, "code", input.Code, id); err != nil {
		return err
	}
	if input.BranchId > 0 {
		if err := utils.ValidateResourceId[Branch](ctx, input.BranchId); err != nil {
			return errors.New("branch not found")
		}
	}
	return nil
}

func CreateWarehouse(ctx context.Context, input *NewWarehouse) (*Warehouse, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	isActive := input.IsActive
	if isActive == nil {
		isActive = utils.NewTrue()
	}

	warehouse := Warehouse{
		Code:     input.Code,
		Name:     input.Name,
		BranchId: input.BranchId,
		Address:  input.Address,
		IsActive: isActive,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&warehouse).Error; err != nil {
		return nil, err
	}
	utils.RemoveListRedis[Warehouse]()
	return &warehouse, nil
}

func UpdateWarehouse(ctx context.Context, id int, input *NewWarehouse) (*Warehouse, error) {
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	warehouse, err := utils.FetchModel[Warehouse](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	updates := map[string]interface{}{
		"Code":     input.Code,
		"Name":     input.Name,
		"BranchId": input.BranchId,
		"Address":  input.Address,
	}
	if input.IsActive != nil {
		updates["IsActive"] = *input.IsActive
	}
	if err := db.WithContext(ctx).Model(warehouse).Updates(updates).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Warehouse](id)
	return warehouse, nil
}

func DeleteWarehouse(ctx context.Context, id int) (*Warehouse, error) {
	warehouse, err := utils.FetchModel[Warehouse](ctx, id)
	if err != nil {
		return nil, err
	}

	usedCount, err := utils.ResourceCountWhere[ProductStock](ctx, "warehouse_id = ?", id)
	if err != nil {
		return nil, err
	}
	if usedCount > 0 {
		return nil, errors.New("warehouse has stock records")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&warehouse).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Warehouse](id)
	return warehouse, nil
}

func GetWarehouse(ctx context.Context, id int) (*Warehouse, error) {
	return GetResource[Warehouse](ctx, id)
}

func GetWarehousesAll(ctx context.Context) ([]*Warehouse, error) {
	return ListAllResource[Warehouse](ctx, "name")
}
