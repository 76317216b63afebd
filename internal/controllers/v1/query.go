package v1

import (
	"github.com/ledgerlight/backend/internal/models"
	"github.com/ledgerlight/backend/internal/report"
	"gorm.io/gorm"
)

// expenseQuery builds the store query for a filter set.
//
// Date, category and amount bounds are pushed down to the store. The
// free-text search cannot be expressed server-side consistently across
// both backends and is applied as a residual filter in fetchExpenses.
//
// The ordering fixes the iteration order all derived statistics are
// computed in: date descending, ties broken by creation time.
func expenseQuery(filter report.FilterSet) *gorm.DB {
	q := models.DB.Model(&models.Expense{}).Order("date DESC, created_at DESC")

	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}

	if filter.EndDate != nil {
		q = q.Where("date <= ?", *filter.EndDate)
	}

	if filter.Category != nil {
		q = q.Where("category_id = ?", *filter.Category)
	}

	if filter.MinAmount != nil {
		q = q.Where("amount >= ?", *filter.MinAmount)
	}

	if filter.MaxAmount != nil {
		q = q.Where("amount <= ?", *filter.MaxAmount)
	}

	return q
}

// fetchExpenses returns all expenses matching the filter set, with the
// residual predicates applied.
func fetchExpenses(filter report.FilterSet) ([]models.Expense, error) {
	var expenses []models.Expense
	err := expenseQuery(filter).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	residual := report.FilterSet{SearchTerm: filter.SearchTerm}
	return residual.Apply(expenses), nil
}
