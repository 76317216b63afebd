// Package report implements the aggregation, filtering and chart data
// computation for expense reports.
//
// All functions are pure: they operate on the expense slice passed in,
// never mutate it and keep no state between calls.
package report

import (
	"strconv"
	"time"

	"github.com/ledgerlight/backend/internal/models"
	"github.com/ledgerlight/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Bucket is a single aggregation slot holding a summed amount.
type Bucket struct {
	Label  string          `json:"label" example:"January"`
	Amount decimal.Decimal `json:"amount" example:"150"`
}

// GroupByDay buckets the expenses of a specific month by day.
//
// The result always has one bucket per calendar day of the month, in
// ascending day order. Days without expenses have an amount of zero.
// Expenses dated outside the month contribute nothing.
func GroupByDay(expenses []models.Expense, year int, month time.Month) []Bucket {
	days := types.DaysIn(year, month)

	buckets := make([]Bucket, days)
	for i := range buckets {
		buckets[i] = Bucket{Label: strconv.Itoa(i + 1), Amount: decimal.Zero}
	}

	for _, expense := range expenses {
		if !expense.Date.InMonth(year, month) {
			continue
		}

		day := expense.Date.Day()
		buckets[day-1].Amount = buckets[day-1].Amount.Add(expense.Amount)
	}

	return buckets
}

// GroupByMonth buckets the expenses of a specific year by month.
//
// The result always has twelve buckets in calendar order. Months
// without expenses have an amount of zero.
func GroupByMonth(expenses []models.Expense, year int) []Bucket {
	buckets := make([]Bucket, 12)
	for i := range buckets {
		buckets[i] = Bucket{Label: time.Month(i + 1).String(), Amount: decimal.Zero}
	}

	for _, expense := range expenses {
		if expense.Date.Year() != year {
			continue
		}

		month := int(expense.Date.Month())
		buckets[month-1].Amount = buckets[month-1].Amount.Add(expense.Amount)
	}

	return buckets
}

// GroupByCategory buckets the expenses by category display name.
//
// Only categories present in the input produce buckets, in the order
// they are first encountered. Expenses without a valid category are
// collected under the uncategorized label.
func GroupByCategory(expenses []models.Expense) []Bucket {
	var buckets []Bucket
	index := make(map[string]int)

	for _, expense := range expenses {
		name := expense.CategoryName()

		i, ok := index[name]
		if !ok {
			i = len(buckets)
			index[name] = i
			buckets = append(buckets, Bucket{Label: name, Amount: decimal.Zero})
		}

		buckets[i].Amount = buckets[i].Amount.Add(expense.Amount)
	}

	return buckets
}
