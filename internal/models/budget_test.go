package models_test

import (
	"testing"

	"github.com/ledgerlight/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBudgetAfterSave() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{
			"negative amount",
			models.Budget{CategoryID: "food", Amount: decimal.NewFromFloat(-10), Period: "monthly"},
			models.ErrBudgetAmountNotPositive,
		},
		{
			"unknown category",
			models.Budget{CategoryID: "gambling", Amount: decimal.NewFromFloat(100), Period: "monthly"},
			models.ErrBudgetCategoryInvalid,
		},
		{
			"invalid period",
			models.Budget{CategoryID: "food", Amount: decimal.NewFromFloat(100), Period: "daily"},
			models.ErrBudgetPeriodInvalid,
		},
		{
			"valid",
			models.Budget{CategoryID: "food", Amount: decimal.NewFromFloat(100), Period: "monthly"},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			budget := tt.budget
			assert.Equal(t, tt.err, budget.AfterSave(&gorm.DB{}))
		})
	}
}

// TestBudgetStatus verifies the derived values for a budget of 100 with
// 150 spent in its category: spent=150, remaining=-50, percentage=150,
// over budget.
func (suite *TestSuiteStandard) TestBudgetStatus() {
	budget := models.Budget{CategoryID: "food", Amount: decimal.NewFromFloat(100), Period: "monthly"}

	expenses := []models.Expense{
		{Title: "Groceries", CategoryID: "food", Amount: decimal.NewFromFloat(100)},
		{Title: "Dinner", CategoryID: "food", Amount: decimal.NewFromFloat(50)},
		{Title: "Bus pass", CategoryID: "transportation", Amount: decimal.NewFromFloat(30)},
	}

	status := budget.Status(expenses)

	assert.True(suite.T(), status.Spent.Equal(decimal.NewFromFloat(150)), "spent is %s", status.Spent)
	assert.True(suite.T(), status.Remaining.Equal(decimal.NewFromFloat(-50)), "remaining is %s", status.Remaining)
	assert.True(suite.T(), status.Percentage.Equal(decimal.NewFromFloat(150)), "percentage is %s", status.Percentage)
	assert.True(suite.T(), status.IsOverBudget)
}

func (suite *TestSuiteStandard) TestBudgetStatusEmptyScope() {
	budget := suite.createTestBudget(models.Budget{})

	status := budget.Status(nil)

	assert.True(suite.T(), status.Spent.IsZero())
	assert.True(suite.T(), status.Remaining.Equal(budget.Amount))
	assert.True(suite.T(), status.Percentage.IsZero())
	assert.False(suite.T(), status.IsOverBudget)
}
