package report

import (
	"github.com/ledgerlight/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Summary holds the derived statistics for an expense subset.
type Summary struct {
	Total   decimal.Decimal `json:"total" example:"350"`
	Average decimal.Decimal `json:"average" example:"116.67"` // Total divided by count, rounded to 2 decimal places
	Count   int             `json:"count" example:"3"`
	Highest models.Expense  `json:"highest"`
	Lowest  models.Expense  `json:"lowest"`
}

// Summarize computes the summary statistics for an expense subset.
//
// When several expenses share the extreme amount, the first one in the
// subset's order wins. For an empty subset all statistics are zero and
// the extrema are zero-valued expenses.
func Summarize(expenses []models.Expense) Summary {
	summary := Summary{
		Total:   decimal.Zero,
		Average: decimal.Zero,
	}

	if len(expenses) == 0 {
		return summary
	}

	summary.Count = len(expenses)
	summary.Highest = expenses[0]
	summary.Lowest = expenses[0]

	for _, expense := range expenses {
		summary.Total = summary.Total.Add(expense.Amount)

		if expense.Amount.GreaterThan(summary.Highest.Amount) {
			summary.Highest = expense
		}

		if expense.Amount.LessThan(summary.Lowest.Amount) {
			summary.Lowest = expense
		}
	}

	summary.Average = summary.Total.Div(decimal.NewFromInt(int64(summary.Count))).Round(2)

	return summary
}
