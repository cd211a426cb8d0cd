package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeBudgetDetailTotal(t *testing.T) {
	detail := BudgetDetail{
		January:  decimal.NewFromInt(1000),
		February: decimal.NewFromInt(2000),
		June:     decimal.NewFromInt(500),
		December: decimal.NewFromInt(1500),
	}
	// untouched months default to zero value decimals
	got := ComputeBudgetDetailTotal(&detail)
	if !got.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("ComputeBudgetDetailTotal() = %s, want 5000", got)
	}
}

func TestBudgetDetailMonthAmount(t *testing.T) {
	detail := BudgetDetail{
		January:  decimal.NewFromInt(100),
		December: decimal.NewFromInt(1200),
	}
	tests := []struct {
		month int
		want  int64
	}{
		{1, 100},
		{2, 0},
		{12, 1200},
		{0, 0},
		{13, 0},
	}
	for _, tt := range tests {
		if got := detail.MonthAmount(tt.month); !got.Equal(decimal.NewFromInt(tt.want)) {
			t.Errorf("MonthAmount(%d) = %s, want %d", tt.month, got, tt.want)
		}
	}
}

func TestMapBudgetDetailsComputesTotal(t *testing.T) {
	details := mapBudgetDetails([]NewBudgetDetail{
		{
			AccountId: 1,
			January:   decimal.NewFromInt(10),
			February:  decimal.NewFromInt(20),
			March:     decimal.NewFromInt(30),
		},
	})
	if len(details) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(details))
	}
	if !details[0].Total.Equal(decimal.NewFromInt(60)) {
		t.Errorf("Total = %s, want 60", details[0].Total)
	}
}
