package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/models"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

type BudgetReportRow struct {
	AccountId   int                 `json:"account_id"`
	AccountCode string              `json:"account_code"`
	AccountName string              `json:"account_name"`
	Budget      [12]decimal.Decimal `json:"budget"`
	Actual      [12]decimal.Decimal `json:"actual"`
	TotalBudget decimal.Decimal     `json:"total_budget"`
	TotalActual decimal.Decimal     `json:"total_actual"`
	Variance    decimal.Decimal     `json:"variance"`
}

type BudgetReport struct {
	Year        int                `json:"year"`
	Rows        []*BudgetReportRow `json:"rows"`
	TotalBudget decimal.Decimal    `json:"total_budget"`
	TotalActual decimal.Decimal    `json:"total_actual"`
}

type actualRecord struct {
	AccountId int
	Month     int
	Amount    decimal.Decimal
}

// actuals are the approved cash-out transactions booked against the
// budget's accounts, grouped per calendar month
func getActualsByAccount(ctx context.Context, year int) (map[int][12]decimal.Decimal, error) {
	sql := `
SELECT
    account_id,
    MONTH(transaction_date) AS month,
    SUM(amount) AS amount
FROM
    cash_bank_transactions
WHERE
    type = 'CASH_OUT'
    AND status = 'APPROVED'
    AND YEAR(transaction_date) = ?
GROUP BY
    account_id, MONTH(transaction_date);
`
	var records []*actualRecord
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, year).Scan(&records).Error; err != nil {
		return nil, err
	}

	actuals := make(map[int][12]decimal.Decimal)
	for _, record := range records {
		if record.Month < 1 || record.Month > 12 {
			continue
		}
		months := actuals[record.AccountId]
		months[record.Month-1] = months[record.Month-1].Add(record.Amount)
		actuals[record.AccountId] = months
	}
	return actuals, nil
}

// GetBudgetReport lays the year's budget lines next to actual spending.
// Details of every budget for the year are merged per account.
func GetBudgetReport(ctx context.Context, year int) (*BudgetReport, error) {
	budgets, err := models.GetBudgetsAll(ctx, &year)
	if err != nil {
		return nil, err
	}
	actuals, err := getActualsByAccount(ctx, year)
	if err != nil {
		return nil, err
	}

	rowsByAccount := make(map[int]*BudgetReportRow)
	order := make([]int, 0)
	for _, budget := range budgets {
		for i := range budget.Details {
			detail := &budget.Details[i]
			row, ok := rowsByAccount[detail.AccountId]
			if !ok {
				row = &BudgetReportRow{AccountId: detail.AccountId}
				if detail.Account != nil {
					row.AccountCode = detail.Account.Code
					row.AccountName = detail.Account.Name
				}
				rowsByAccount[detail.AccountId] = row
				order = append(order, detail.AccountId)
			}
			for month, amount := range detail.Months() {
				row.Budget[month] = row.Budget[month].Add(amount)
			}
		}
	}

	report := BudgetReport{
		Year:        year,
		Rows:        make([]*BudgetReportRow, 0, len(order)),
		TotalBudget: decimal.Zero,
		TotalActual: decimal.Zero,
	}
	for _, accountId := range order {
		row := rowsByAccount[accountId]
		row.Actual = actuals[accountId]
		for month := 0; month < 12; month++ {
			row.TotalBudget = row.TotalBudget.Add(row.Budget[month])
			row.TotalActual = row.TotalActual.Add(row.Actual[month])
		}
		row.Variance = row.TotalBudget.Sub(row.TotalActual)
		report.TotalBudget = report.TotalBudget.Add(row.TotalBudget)
		report.TotalActual = report.TotalActual.Add(row.TotalActual)
		report.Rows = append(report.Rows, row)
	}
	return &report, nil
}

// ExportBudgetReportExcel renders the report as a spreadsheet, one account
// per row with budget and actual columns per month.
func ExportBudgetReportExcel(ctx context.Context, year int) (*excelize.File, error) {
	report, err := GetBudgetReport(ctx, year)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Sheet1"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Budget Report %d", year))
	f.SetCellValue(sheet, "A2", "Account Code")
	f.SetCellValue(sheet, "B2", "Account Name")
	for month, name := range monthNames {
		budgetCol, _ := excelize.ColumnNumberToName(3 + month*2)
		actualCol, _ := excelize.ColumnNumberToName(4 + month*2)
		f.SetCellValue(sheet, budgetCol+"2", name+" Budget")
		f.SetCellValue(sheet, actualCol+"2", name+" Actual")
	}
	totalBudgetCol, _ := excelize.ColumnNumberToName(27)
	totalActualCol, _ := excelize.ColumnNumberToName(28)
	varianceCol, _ := excelize.ColumnNumberToName(29)
	f.SetCellValue(sheet, totalBudgetCol+"2", "Total Budget")
	f.SetCellValue(sheet, totalActualCol+"2", "Total Actual")
	f.SetCellValue(sheet, varianceCol+"2", "Variance")

	for i, row := range report.Rows {
		rowNo := fmt.Sprint(i + 3)
		f.SetCellValue(sheet, "A"+rowNo, row.AccountCode)
		f.SetCellValue(sheet, "B"+rowNo, row.AccountName)
		for month := 0; month < 12; month++ {
			budgetCol, _ := excelize.ColumnNumberToName(3 + month*2)
			actualCol, _ := excelize.ColumnNumberToName(4 + month*2)
			budgetAmount, _ := row.Budget[month].Float64()
			actualAmount, _ := row.Actual[month].Float64()
			f.SetCellValue(sheet, budgetCol+rowNo, budgetAmount)
			f.SetCellValue(sheet, actualCol+rowNo, actualAmount)
		}
		totalBudget, _ := row.TotalBudget.Float64()
		totalActual, _ := row.TotalActual.Float64()
		variance, _ := row.Variance.Float64()
		f.SetCellValue(sheet, totalBudgetCol+rowNo, totalBudget)
		f.SetCellValue(sheet, totalActualCol+rowNo, totalActual)
		f.SetCellValue(sheet, varianceCol+rowNo, variance)
	}
	return f, nil
}
