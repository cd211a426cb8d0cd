package models

import (
	"context"
	"errors"
	"time"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type Supplier struct {
	ID            int       `gorm:"primary_key" json:"id"`
	Code          string    `gorm:"size:20;uniqueIndex;not null" json:"code" binding:"required"`
	Name          string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email         string    `gorm:"size:100" json:"email"`
	Phone         string    `gorm:"size:20" json:"phone"`
	ContactPerson string    `gorm:"size:100" json:"contact_person"`
	Address       string    `gorm:"type:text" json:"address"`
	Npwp          string    `gorm:"size:30" json:"npwp"`
	IsActive      *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewSupplier struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ContactPerson string `json:"contact_person"`
	Address       string `json:"address"`
	Npwp          string `json:"npwp"`
	IsActive      *bool  `json:"is_active"`
}

// validate input for both create & update. (id = 0 for create)
func (input *NewSupplier) validate(ctx context.Context, id int) error {
	// validate unique code & name
	if err := utils.ValidateUnique[Supplier](ctx, "code", input.Code, id); err != nil {
		return err
	}
	if err := utils.ValidateUnique[Supplier](ctx, "name", input.Name, id); err != nil {
		return err
	}
	// validate email
	if input.Email != "" {
		if !utils.IsValidEmail(input.Email) {
			return errors.New("invalid email")
		}
		if err := utils.ValidateUnique[Supplier](ctx, "email", input.Email, id); err != nil {
			return err
		}
	}
	// validate phone
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return errors.New("invalid phone number")
		}
	}
	return nil
}

func CreateSupplier(ctx context.Context, input *NewSupplier) (*Supplier, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	isActive := input.IsActive
	if isActive == nil {
		isActive = utils.NewTrue()
	}

	supplier := Supplier{
		Code:          input.Code,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		ContactPerson: input.ContactPerson,
		Address:       input.Address,
		Npwp:          input.Npwp,
		IsActive:      isActive,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&supplier).Error; err != nil {
		return nil, err
	}
	utils.RemoveListRedis[Supplier]()
	return &supplier, nil
}

func UpdateSupplier(ctx context.Context, id int, input *NewSupplier) (*Supplier, error) {
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	supplier, err := utils.FetchModel[Supplier](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	updates := map[string]interface{}{
		"Code":          input.Code,
		"Name":          input.Name,
		"Email":         input.Email,
		"Phone":         input.Phone,
		"ContactPerson": input.ContactPerson,
		"Address":       input.Address,
		"Npwp":          input.Npwp,
	}
	if input.IsActive != nil {
		updates["IsActive"] = *input.IsActive
	}
	if err := db.WithContext(ctx).Model(supplier).Updates(updates).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Supplier](id)
	return supplier, nil
}

func DeleteSupplier(ctx context.Context, id int) (*Supplier, error) {
	supplier, err := utils.FetchModel[Supplier](ctx, id)
	if err != nil {
		return nil, err
	}

	// Do not delete if used in purchase documents
	usedCount, err := utils.ResourceCountWhere[PurchaseOrder](ctx, "supplier_id = ?", id)
	if err != nil {
		return nil, err
	}
	if usedCount > 0 {
		return nil, errors.New("supplier used in purchase orders")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&supplier).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Supplier](id)
	return supplier, nil
}

func GetSupplier(ctx context.Context, id int) (*Supplier, error) {
	return GetResource[Supplier](ctx, id)
}

func GetSuppliersAll(ctx context.Context) ([]*Supplier, error) {
	return ListAllResource[Supplier](ctx, "name")
}
