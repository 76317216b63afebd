package report

import (
	"strings"

	"github.com/ledgerlight/backend/internal/models"
	"github.com/ledgerlight/backend/internal/types"
	"github.com/shopspring/decimal"
)

// FilterSet is a composable set of predicates for expense subsets.
//
// All fields are pointers to distinguish "not set" from zero values; a
// nil field imposes no constraint on its dimension. The predicates are
// independent, so the filter is idempotent and the dimensions can be
// checked in any order.
type FilterSet struct {
	StartDate  *types.Date      // Earliest date, inclusive
	EndDate    *types.Date      // Latest date, inclusive
	Category   *string          // Exact match on the category ID
	MinAmount  *decimal.Decimal // Minimum amount, inclusive
	MaxAmount  *decimal.Decimal // Maximum amount, inclusive
	SearchTerm *string          // Case-insensitive substring match on title or notes
}

// Apply returns the expenses matching all set predicates.
//
// The input is never mutated and the result is a new slice, so the
// same base collection can be filtered repeatedly with different
// filter sets. Contradictory bounds yield an empty result, not an
// error.
func (f FilterSet) Apply(expenses []models.Expense) []models.Expense {
	subset := make([]models.Expense, 0, len(expenses))

	for _, expense := range expenses {
		if f.Matches(expense) {
			subset = append(subset, expense)
		}
	}

	return subset
}

// Matches reports whether a single expense passes all set predicates.
func (f FilterSet) Matches(expense models.Expense) bool {
	if f.StartDate != nil && expense.Date.Before(*f.StartDate) {
		return false
	}

	if f.EndDate != nil && expense.Date.After(*f.EndDate) {
		return false
	}

	if f.Category != nil && expense.CategoryID != *f.Category {
		return false
	}

	if f.MinAmount != nil && expense.Amount.LessThan(*f.MinAmount) {
		return false
	}

	if f.MaxAmount != nil && expense.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}

	if f.SearchTerm != nil {
		term := strings.ToLower(*f.SearchTerm)

		inTitle := strings.Contains(strings.ToLower(expense.Title), term)
		inNotes := expense.Notes != "" && strings.Contains(strings.ToLower(expense.Notes), term)

		if !inTitle && !inNotes {
			return false
		}
	}

	return true
}
