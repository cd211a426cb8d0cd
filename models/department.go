package models

import (
	"context"
	"errors"
	"time"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type Department struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name" binding:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewDepartment struct {
	Name string `json:"name" binding:"required"`
}

func CreateDepartment(ctx context.Context, input *NewDepartment) (*Department, error) {
	if err := utils.ValidateUnique[Department](ctx, "name", input.Name, 0); err != nil {
		return nil, err
	}

	department := Department{Name: input.Name}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&department).Error; err != nil {
		return nil, err
	}
	utils.RemoveListRedis[Department]()
	return &department, nil
}

func UpdateDepartment(ctx context.Context, id int, input *NewDepartment) (*Department, error) {
	if err := utils.ValidateUnique[Department](ctx, "name", input.Name, id); err != nil {
		return nil, err
	}

	department, err := utils.FetchModel[Department](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(department).Update("Name", input.Name).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Department](id)
	return department, nil
}

func DeleteDepartment(ctx context.Context, id int) (*Department, error) {
	department, err := utils.FetchModel[Department](ctx, id)
	if err != nil {
		return nil, err
	}

	usedCount, err := utils.ResourceCountWhere[Budget](ctx, "department_id = ?", id)
	if err != nil {
		return nil, err
	}
	if usedCount > 0 {
		return nil, errors.New("department is referenced by a budget")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&department).Error; err != nil {
		return nil, err
	}
	utils.RemoveInstanceRedis[Department](id)
	return department, nil
}

func GetDepartment(ctx context.Context, id int) (*Department, error) {
	return GetResource[Department](ctx, id)
}

func GetDepartmentsAll(ctx context.Context) ([]*Department, error) {
	return ListAllResource[Department](ctx, "name")
}
