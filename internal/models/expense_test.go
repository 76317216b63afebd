package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ledgerlight/backend/internal/models"
	"github.com/ledgerlight/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestExpenseAfterSave() {
	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{
			"negative amount",
			models.Expense{Title: "Lunch", Amount: decimal.NewFromFloat(-10)},
			models.ErrExpenseAmountNotPositive,
		},
		{
			"empty title",
			models.Expense{Title: "   ", Amount: decimal.NewFromFloat(10)},
			models.ErrExpenseTitleEmpty,
		},
		{
			"invalid recurring frequency",
			models.Expense{Title: "Rent", Amount: decimal.NewFromFloat(750), IsRecurring: true, RecurringFrequency: "fortnightly"},
			models.ErrRecurringFrequencyInvalid,
		},
		{
			"valid",
			models.Expense{Title: "Rent", Amount: decimal.NewFromFloat(750), IsRecurring: true, RecurringFrequency: "monthly"},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			expense := tt.expense
			_ = expense.BeforeSave(&gorm.DB{})
			assert.Equal(t, tt.err, expense.AfterSave(&gorm.DB{}))
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseTrimWhitespace() {
	title := "  Cinema tickets  \t"
	notes := " Two seats    "

	expense := suite.createTestExpense(models.Expense{
		Title:  title,
		Amount: decimal.NewFromFloat(24),
		Notes:  notes,
	})

	assert.Equal(suite.T(), strings.TrimSpace(title), expense.Title)
	assert.Equal(suite.T(), strings.TrimSpace(notes), expense.Notes)
}

func (suite *TestSuiteStandard) TestExpenseRecurringFrequencyCleared() {
	expense := suite.createTestExpense(models.Expense{
		Title:              "One-off",
		Amount:             decimal.NewFromFloat(5),
		IsRecurring:        false,
		RecurringFrequency: "monthly",
	})

	assert.Empty(suite.T(), expense.RecurringFrequency, "frequency must be cleared for non-recurring expenses")
}

func (suite *TestSuiteStandard) TestExpenseDateRoundTrip() {
	date := types.NewDate(2024, time.February, 29)
	created := suite.createTestExpense(models.Expense{Date: date})

	var expense models.Expense
	err := models.DB.First(&expense, created.ID).Error
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), expense.Date.Equal(date), "got %s, want %s", expense.Date, date)
}

func (suite *TestSuiteStandard) TestExpenseCategoryName() {
	tests := []struct {
		categoryID string
		name       string
	}{
		{"food", "Food & Dining"},
		{"", "Uncategorized"},
		{"unknown-id", "Uncategorized"},
	}

	for _, tt := range tests {
		expense := models.Expense{CategoryID: tt.categoryID}
		assert.Equal(suite.T(), tt.name, expense.CategoryName())
	}
}
