package models

import (
	"context"
	"errors"
	"time"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type Account struct {
	ID          int         `gorm:"primary_key" json:"id"`
	Code        string      `gorm:"size:20;uniqueIndex;not null" json:"code" binding:"required"`
	Name        string      `gorm:"size:100;not null" json:"name" binding:"required"`
	Type        AccountType `gorm:"type:enum('ASSET','LIABILITY','EQUITY','REVENUE','EXPENSE');not null" json:"type" binding:"required"`
	Category    string      `gorm:"size:100" json:"category"`
	Description string      `gorm:"type:text" json:"description"`
	IsActive    *bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewAccount struct {
	Code        string      `json:"code" binding:"required"`
	Name        string      `json:"name" binding:"required"`
	Type        AccountType `json:"type" binding:"required"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	IsActive    *bool       `json:"is_active"`
}

// validate input for both create & update. (id = 0 for create)
func (input *NewAccount) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[Account](ctx, "code", input.Code, id); err != nil {
		return err
	}
	if err := utils.ValidateUnique[Account](ctx, "name", input.Name, id); err != nil {
		return err
	}
	return nil
}

func CreateAccount(ctx context.Context, input *NewAccount) (*Account, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	isActive := input.IsActive
	if isActive == nil {
		isActive = utils.NewTrue()
	}

	account := Account{
		Code:        input.Code,
		Name:        input.Name,
		Type:        input.Type,
		Category:    input.Category,
		Description: input.Description,
		IsActive:    isActive,
	}

	db := config.GetDB()
	// db action
	if err := db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, err
	}
	utils.RemoveListRedis[Account]()
	return &account, nil
}

func UpdateAccount(ctx context.Context, id int, input *NewAccount) (*Account, error) {
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	account, err := utils.FetchModel[Account](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	updates := map[string]interface{}{
		"Code":        input.Code,
		"Name":        input.Name,
		"Type":        input.Type,
		"Category":    input.Category,
		"Description": input.Description,
	}
	if input.IsActive != nil {
		updates["IsActive"] = *input.IsActive
	}
	if err := db.WithContext(ctx).Model(account).Updates(updates).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Account](id)
	return account, nil
}

func DeleteAccount(ctx context.Context, id int) (*Account, error) {
	account, err := utils.FetchModel[Account](ctx, id)
	if err != nil {
		return nil, err
	}

	// Do not delete if referenced by documents
	usedCount, err := utils.ResourceCountWhere[CashBankTransaction](ctx, "account_id = ? OR destination_account_id = ?", id, id)
	if err != nil {
		return nil, err
	}
	if usedCount > 0 {
		return nil, errors.New("account used in transactions")
	}
	usedCount, err = utils.ResourceCountWhere[BudgetDetail](ctx, "account_id = ?", id)
	if err != nil {
		return nil, err
	}
	if usedCount > 0 {
		return nil, errors.New("account used in budgets")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&account).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Account](id)
	return account, nil
}

func GetAccount(ctx context.Context, id int) (*Account, error) {
	return GetResource[Account](ctx, id)
}

func GetAccountsAll(ctx context.Context, accountTypes []AccountType) ([]*Account, error) {
	if len(accountTypes) == 0 {
		return ListAllResource[Account](ctx, "code")
	}

	db := config.GetDB()
	var results []*Account
	err := db.WithContext(ctx).
		Where("type IN ?", accountTypes).
		Order("code").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
