package models

import (
	"strings"

	"github.com/ledgerlight/backend/internal/categories"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// BudgetPeriods are the valid values for Budget.Period.
var BudgetPeriods = []string{"weekly", "monthly", "quarterly", "yearly"}

// Budget represents a spending ceiling for a single category.
type Budget struct {
	DefaultModel
	CategoryID string          `json:"categoryId" example:"food"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"400"`
	Period     string          `json:"period" example:"monthly"` // Informational, does not bound the aggregation window
	Notes      string          `json:"notes,omitempty" example:"Holiday months run higher"`
}

// BudgetStatus is the derived state of a budget for a set of expenses.
// It is never persisted and has to be recomputed whenever the budget or
// the expense set in scope changes.
type BudgetStatus struct {
	Spent        decimal.Decimal `json:"spent" example:"150"`
	Remaining    decimal.Decimal `json:"remaining" example:"-50"`
	Percentage   decimal.Decimal `json:"percentage" example:"150"`
	IsOverBudget bool            `json:"isOverBudget" example:"true"`
}

// Status computes the budget status over the expenses in scope. Only
// expenses matching the budget's category count towards it.
func (b Budget) Status(expenses []Expense) BudgetStatus {
	spent := decimal.Zero
	for _, expense := range expenses {
		if expense.CategoryID == b.CategoryID {
			spent = spent.Add(expense.Amount)
		}
	}

	remaining := b.Amount.Sub(spent)

	percentage := decimal.Zero
	if !b.Amount.IsZero() {
		percentage = spent.Div(b.Amount).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return BudgetStatus{
		Spent:        spent,
		Remaining:    remaining,
		Percentage:   percentage,
		IsOverBudget: remaining.IsNegative(),
	}
}

// BeforeSave trims whitespace.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Notes = strings.TrimSpace(b.Notes)
	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(b.Amount) {
		return ErrBudgetAmountNotPositive
	}

	if !categories.Valid(b.CategoryID) {
		return ErrBudgetCategoryInvalid
	}

	if !slices.Contains(BudgetPeriods, b.Period) {
		return ErrBudgetPeriodInvalid
	}

	return nil
}
