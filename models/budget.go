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

type Budget struct {
	ID           int            `gorm:"primary_key" json:"id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Year         int            `gorm:"index;not null" json:"year"`
	DepartmentId *int           `gorm:"index" json:"department_id"`
	Department   *Department    `json:"department,omitempty"`
	Description  string         `gorm:"type:text" json:"description"`
	Details      []BudgetDetail `gorm:"foreignKey:BudgetId" json:"details"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// BudgetDetail carries one amount column per calendar month. Total is always
// recomputed from the months, never taken from input.
type BudgetDetail struct {
	ID        int             `gorm:"primary_key" json:"id"`
	BudgetId  int             `gorm:"index;not null" json:"budget_id"`
	AccountId int             `gorm:"index;not null" json:"account_id"`
	Account   *Account        `json:"account,omitempty"`
	January   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"january"`
	February  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"february"`
	March     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"march"`
	April     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"april"`
	May       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"may"`
	June      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"june"`
	July      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"july"`
	August    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"august"`
	September decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"september"`
	October   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"october"`
	November  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"november"`
	December  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"december"`
	Total     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
}

type NewBudget struct {
	Name         string            `json:"name" binding:"required"`
	Year         int               `json:"year" binding:"required"`
	DepartmentId *int              `json:"department_id"`
	Description  string            `json:"description"`
	Details      []NewBudgetDetail `json:"details" binding:"required,dive"`
}

type NewBudgetDetail struct {
	AccountId int             `json:"account_id" binding:"required"`
	January   decimal.Decimal `json:"january"`
	February  decimal.Decimal `json:"february"`
	March     decimal.Decimal `json:"march"`
	April     decimal.Decimal `json:"april"`
	May       decimal.Decimal `json:"may"`
	June      decimal.Decimal `json:"june"`
	July      decimal.Decimal `json:"july"`
	August    decimal.Decimal `json:"august"`
	September decimal.Decimal `json:"september"`
	October   decimal.Decimal `json:"october"`
	November  decimal.Decimal `json:"november"`
	December  decimal.Decimal `json:"december"`
}

// Months lists the detail's amounts in calendar order.
func (d *BudgetDetail) Months() [12]decimal.Decimal {
	return [12]decimal.Decimal{
		d.January, d.February, d.March, d.April,
		d.May, d.June, d.July, d.August,
		d.September, d.October, d.November, d.December,
	}
}

// MonthAmount returns the budgeted amount for month 1..12.
func (d *BudgetDetail) MonthAmount(month int) decimal.Decimal {
	if month < 1 || month > 12 {
		return decimal.Zero
	}
	return d.Months()[month-1]
}

func ComputeBudgetDetailTotal(d *BudgetDetail) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range d.Months() {
		total = total.Add(amount)
	}
	return total
}

func (input *NewBudget) validate(ctx context.Context) error {
	if len(input.Details) == 0 {
		return errors.New("at least one detail line is required")
	}
	if input.Year < 2000 || input.Year > 2100 {
		return errors.New("invalid year")
	}
	if input.DepartmentId != nil {
		if err := utils.ValidateResourceId[Department](ctx, *input.DepartmentId); err != nil {
			return errors.New("department not found")
		}
	}
	accountIds := make([]int, 0, len(input.Details))
	for _, detail := range input.Details {
		accountIds = append(accountIds, detail.AccountId)
	}
	if len(utils.UniqueSlice(accountIds)) != len(accountIds) {
		return errors.New("duplicate account in budget details")
	}
	return utils.ValidateResourcesId[Account](ctx, accountIds)
}

func mapBudgetDetails(input []NewBudgetDetail) []BudgetDetail {
	details := make([]BudgetDetail, 0, len(input))
	for _, d := range input {
		detail := BudgetDetail{
			AccountId: d.AccountId,
			January:   d.January,
			February:  d.February,
			March:     d.March,
			April:     d.April,
			May:       d.May,
			June:      d.June,
			July:      d.July,
			August:    d.August,
			September: d.September,
			October:   d.October,
			November:  d.November,
			December:  d.December,
		}
		detail.Total = ComputeBudgetDetailTotal(&detail)
		details = append(details, detail)
	}
	return details
}

func CreateBudget(ctx context.Context, input *NewBudget) (*Budget, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	budget := Budget{
		Name:         input.Name,
		Year:         input.Year,
		DepartmentId: input.DepartmentId,
		Description:  input.Description,
		Details:      mapBudgetDetails(input.Details),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&budget).Error; err != nil {
		return nil, err
	}
	return &budget, nil
}

func UpdateBudget(ctx context.Context, id int, input *NewBudget) (*Budget, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	budget, err := utils.FetchModel[Budget](ctx, id)
	if err != nil {
		return nil, err
	}

	details := mapBudgetDetails(input.Details)
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"Name":         input.Name,
			"Year":         input.Year,
			"DepartmentId": input.DepartmentId,
			"Description":  input.Description,
		}
		if err := tx.Model(budget).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("budget_id = ?", budget.ID).Delete(&BudgetDetail{}).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].BudgetId = budget.ID
		}
		return tx.Create(&details).Error
	})
	if err != nil {
		return nil, err
	}
	return GetBudget(ctx, id)
}

func DeleteBudget(ctx context.Context, id int) (*Budget, error) {
	budget, err := utils.FetchModel[Budget](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", id).Delete(&BudgetDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&budget).Error
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

func GetBudget(ctx context.Context, id int) (*Budget, error) {
	return utils.FetchModel[Budget](ctx, id, "Details", "Details.Account", "Department")
}

func GetBudgetsAll(ctx context.Context, year *int) ([]*Budget, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).
		Preload("Details").Preload("Details.Account").
		Preload("Department")
	if year != nil {
		dbCtx = dbCtx.Where("year = ?", *year)
	}
	var results []*Budget
	if err := dbCtx.Order("year DESC, name ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func GetBudgetDetailsAll(ctx context.Context, budgetId *int) ([]*BudgetDetail, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Account")
	if budgetId != nil {
		dbCtx = dbCtx.Where("budget_id = ?", *budgetId)
	}
	var results []*BudgetDetail
	if err := dbCtx.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
