package models

import (
	"context"
	"errors"
	"time"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type Branch struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Code      string    `gorm:"size:20;uniqueIndex;not null" json:"code" binding:"required"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"size:20" json:"phone"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewBranch struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"is_active"`
}

func (input *NewBranch) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[Branch](ctx, "code", input.Code, id); err != nil {
		return err
	}
	return utils.ValidateUnique[Branch](ctx, "name", input.Name, id)
}

func CreateBranch(ctx context.Context, input *NewBranch) (*Branch, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	isActive := input.IsActive
	if isActive == nil {
		isActive = utils.NewTrue()
	}

	branch := Branch{
		Code:     input.Code,
		Name:     input.Name,
		Address:  input.Address,
		Phone:    input.Phone,
		IsActive: isActive,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&branch).Error; err != nil {
		return nil, err
	}
	utils.RemoveListRedis[Branch]()
	return &branch, nil
}

func UpdateBranch(ctx context.Context, id int, input *NewBranch) (*Branch, error) {
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	branch, err := utils.FetchModel[Branch](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	updates := map[string]interface{}{
		"Code":    input.Code,
		"Name":    input.Name,
		"Address": input.Address,
		"Phone":   input.Phone,
	}
	if input.IsActive != nil {
		updates["IsActive"] = *input.IsActive
	}
	if err := db.WithContext(ctx).Model(branch).Updates(updates).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Branch](id)
	return branch, nil
}

func DeleteBranch(ctx context.Context, id int) (*Branch, error) {
	branch, err := utils.FetchModel[Branch](ctx, id)
	if err != nil {
		return nil, err
	}

	usedCount, err := utils.ResourceCountWhere[PurchaseRequest](ctx, "branch_id = ?", id)
	if err != nil {
		return nil, err
	}
	if usedCount > 0 {
		return nil, errors.New("branch used in purchase requests")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&branch).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Branch](id)
	return branch, nil
}

func GetBranch(ctx context.Context, id int) (*Branch, error) {
	return GetResource[Branch](ctx, id)
}

func GetBranchesAll(ctx context.Context) ([]*Branch, error) {
	return ListAllResource[Branch](ctx, "name")
}
