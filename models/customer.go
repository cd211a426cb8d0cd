package models

import (
	"context"
	"errors"
	"time"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type Customer struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Code      string    `gorm:"size:20;uniqueIndex;not null" json:"code" binding:"required"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email     string    `gorm:"size:100" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCustomer struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsActive *bool  `json:"is_active"`
}

func (input *NewCustomer) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[Customer](ctx, "code", input.Code, id); err != nil {
		return err
	}
	if err := utils.ValidateUnique[Customer](ctx, "name", input.Name, id); err != nil {
		return err
	}
	if input.Email != "" {
		if !utils.IsValidEmail(input.Email) {
			return errors.New("invalid email")
		}
		if err := utils.ValidateUnique[Customer](ctx, "email", input.Email, id); err != nil {
			return err
		}
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return errors.New("invalid phone number")
		}
	}
	return nil
}

func CreateCustomer(ctx context.Context, input *NewCustomer) (*Customer, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	isActive := input.IsActive
	if isActive == nil {
		isActive = utils.NewTrue()
	}

	customer := Customer{
		Code:     input.Code,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		IsActive: isActive,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}
	utils.RemoveListRedis[Customer]()
	return &customer, nil
}

func UpdateCustomer(ctx context.Context, id int, input *NewCustomer) (*Customer, error) {
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	customer, err := utils.FetchModel[Customer](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	updates := map[string]interface{}{
		"Code":    input.Code,
		"Name":    input.Name,
		"Email":   input.Email,
		"Phone":   input.Phone,
		"Address": input.Address,
	}
	if input.IsActive != nil {
		updates["IsActive"] = *input.IsActive
	}
	if err := db.WithContext(ctx).Model(customer).Updates(updates).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Customer](id)
	return customer, nil
}

func DeleteCustomer(ctx context.Context, id int) (*Customer, error) {
	customer, err := utils.FetchModel[Customer](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&customer).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Customer](id)
	return customer, nil
}

func GetCustomer(ctx context.Context, id int) (*Customer, error) {
	return GetResource[Customer](ctx, id)
}

func GetCustomersAll(ctx context.Context) ([]*Customer, error) {
	return ListAllResource[Customer](ctx, "name")
}
