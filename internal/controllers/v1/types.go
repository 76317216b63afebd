// Package v1 implements the v1 API of the backend.
package v1

import (
	"github.com/google/uuid"
	"github.com/ledgerlight/backend/internal/report"
	"github.com/ledgerlight/backend/internal/types"
	"github.com/shopspring/decimal"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// Pagination contains metadata for paginated list responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // Number of items in the current response
	Total  int64 `json:"total" example:"827"` // Total number of items matching the filter
	Offset uint  `json:"offset" example:"0"`  // Offset of the first returned item
	Limit  int   `json:"limit" example:"50"`  // Maximum number of returned items
}

// ExpenseQueryFilter are the query parameters mapping to the filter set.
// Absent parameters impose no constraint.
type ExpenseQueryFilter struct {
	From     string `form:"from" example:"2024-01-01"`     // Earliest date, inclusive
	To       string `form:"to" example:"2024-12-31"`       // Latest date, inclusive
	Category string `form:"category" example:"food"`       // Category ID, "all" or empty for no constraint
	Min      string `form:"min" example:"10"`              // Minimum amount, inclusive
	Max      string `form:"max" example:"500"`             // Maximum amount, inclusive
	Search   string `form:"search" example:"groceries"`    // Case-insensitive search in title and notes
	Offset   uint   `form:"offset" example:"0"`            // Offset of the first returned expense
	Limit    int    `form:"limit" example:"50"`            // Maximum number of returned expenses
}

// filterSet converts the bound query parameters into the filter set
// used by the report and export computations.
func (f ExpenseQueryFilter) filterSet() (report.FilterSet, error) {
	var filter report.FilterSet

	if f.From != "" {
		date, err := types.ParseDate(f.From)
		if err != nil {
			return report.FilterSet{}, err
		}
		filter.StartDate = &date
	}

	if f.To != "" {
		date, err := types.ParseDate(f.To)
		if err != nil {
			return report.FilterSet{}, err
		}
		filter.EndDate = &date
	}

	if f.Category != "" && f.Category != "all" {
		category := f.Category
		filter.Category = &category
	}

	if f.Min != "" {
		min, err := decimal.NewFromString(f.Min)
		if err != nil {
			return report.FilterSet{}, err
		}
		filter.MinAmount = &min
	}

	if f.Max != "" {
		max, err := decimal.NewFromString(f.Max)
		if err != nil {
			return report.FilterSet{}, err
		}
		filter.MaxAmount = &max
	}

	if f.Search != "" {
		search := f.Search
		filter.SearchTerm = &search
	}

	return filter, nil
}
