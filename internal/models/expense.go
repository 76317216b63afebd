package models

import (
	"strings"

	"github.com/ledgerlight/backend/internal/categories"
	"github.com/ledgerlight/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RecurringFrequencies are the valid values for Expense.RecurringFrequency.
var RecurringFrequencies = []string{"daily", "weekly", "biweekly", "monthly", "quarterly", "yearly"}

// Expense represents a single recorded expense.
type Expense struct {
	DefaultModel
	Title              string          `json:"title" example:"Weekly groceries"`
	Amount             decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"54.30"`
	CategoryID         string          `json:"categoryId" example:"food"` // ID in the category reference data, empty for uncategorized
	Date               types.Date      `json:"date" example:"2024-01-05"`
	Notes              string          `json:"notes,omitempty" example:"Includes birthday cake"`
	IsRecurring        bool            `json:"isRecurring" example:"false"`
	RecurringFrequency string          `json:"recurringFrequency,omitempty" example:"monthly"` // Only meaningful when isRecurring is true
	ReceiptURL         string          `json:"receiptUrl,omitempty" example:"https://files.example.com/receipts/42"`
}

// CategoryName returns the display name of the expense's category.
func (e Expense) CategoryName() string {
	return categories.Name(e.CategoryID)
}

// BeforeSave trims whitespace and sets a default date.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Notes = strings.TrimSpace(e.Notes)

	if !e.IsRecurring {
		e.RecurringFrequency = ""
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Title == "" {
		return ErrExpenseTitleEmpty
	}

	if !decimal.Decimal.IsPositive(e.Amount) {
		return ErrExpenseAmountNotPositive
	}

	if e.IsRecurring && !slices.Contains(RecurringFrequencies, e.RecurringFrequency) {
		return ErrRecurringFrequencyInvalid
	}

	return nil
}
