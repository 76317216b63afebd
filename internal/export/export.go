// Package export renders filtered, aggregated expense data into
// downloadable documents.
//
// Three formats are supported: delimited text (CSV), spreadsheet
// workbook (XLSX) and a paginated document (PDF). All renderers are
// stateless and derive everything from their inputs, so concurrent
// exports cannot interfere.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledgerlight/backend/internal/categories"
	"github.com/ledgerlight/backend/internal/models"
	"github.com/ledgerlight/backend/internal/report"
	"github.com/ledgerlight/backend/internal/types"
	"golang.org/x/exp/slices"
)

// Format selects the document format of an export.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// Formats lists all supported formats.
var Formats = []Format{FormatCSV, FormatXLSX, FormatPDF}

var ErrUnknownFormat = errors.New("the specified export format is not supported")

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

// Valid reports whether the format is supported.
func (f Format) Valid() bool {
	return slices.Contains(Formats, f)
}

// ReportType selects the active report a document is rendered for.
type ReportType string

const (
	ReportDaily    ReportType = "daily"    // Days of one month
	ReportMonthly  ReportType = "monthly"  // Months of one year
	ReportCategory ReportType = "category" // Spending by category
)

// Options are the user-selected export options. Any combination of the
// section toggles is valid, including all off.
type Options struct {
	IncludeSummary bool        `json:"includeSummary"`     // Render the summary statistics section
	IncludeChart   bool        `json:"includeChart"`       // Render the chart section (PDF only)
	IncludeDetails bool        `json:"includeDetails"`     // Render the expense detail listing
	MaxItems       int         `json:"maxItems"`           // Cap for the detail listing, 0 means all
	DateFrom       *types.Date `json:"dateFrom,omitempty"` // Additional inclusive lower date bound, applied at export time
	DateTo         *types.Date `json:"dateTo,omitempty"`   // Additional inclusive upper date bound, applied at export time
}

// DefaultOptions returns the options used when the caller specifies none:
// all sections enabled, no cap, no additional date bounds.
func DefaultOptions() Options {
	return Options{
		IncludeSummary: true,
		IncludeChart:   true,
		IncludeDetails: true,
	}
}

// ReportContext carries the active report scope with its precomputed
// aggregation results. Summary and Buckets describe the full report
// scope and are not affected by the detail cap.
type ReportContext struct {
	Type       ReportType      `json:"type"`
	Year       int             `json:"year,omitempty"`
	Month      time.Month      `json:"month,omitempty"`
	CategoryID string          `json:"categoryId,omitempty"` // Set when a category report is scoped to one category
	Buckets    []report.Bucket `json:"buckets"`
	Summary    report.Summary  `json:"summary"`
}

// Title returns the human-readable document title for the report scope.
func (ctx ReportContext) Title() string {
	switch ctx.Type {
	case ReportDaily:
		return fmt.Sprintf("Daily Expense Report - %s %d", ctx.Month, ctx.Year)
	case ReportMonthly:
		return fmt.Sprintf("Monthly Expense Report - %d", ctx.Year)
	default:
		if ctx.CategoryID != "" {
			return fmt.Sprintf("Expense Report - %s", categories.Name(ctx.CategoryID))
		}
		return "Expense Report by Category"
	}
}

// baseFilename derives the extension-less output filename from the
// report type and scope. The name is deterministic: lower-cased, with
// whitespace replaced by hyphens.
func (ctx ReportContext) baseFilename() string {
	var name string

	switch ctx.Type {
	case ReportDaily:
		name = fmt.Sprintf("daily-%s-%d", ctx.Month, ctx.Year)
	case ReportMonthly:
		name = fmt.Sprintf("monthly-%d", ctx.Year)
	default:
		if ctx.CategoryID != "" {
			name = categories.Name(ctx.CategoryID)
		} else {
			name = "category-summary"
		}
	}

	name = strings.ToLower(name)
	return strings.Join(strings.Fields(name), "-")
}

// Document is a rendered export document.
type Document struct {
	Data     []byte
	Filename string // Includes the per-format extension
}

// Export renders the filtered expense subset into a document of the
// requested format.
//
// The expenses passed in are the output of the filter layer for the
// active report scope; the export-time date bounds and the detail cap
// from the options are applied on top. The renderer may be nil, in
// which case the chart section is omitted.
func Export(format Format, expenses []models.Expense, ctx ReportContext, opts Options, renderer ChartRenderer) (Document, error) {
	if !format.Valid() {
		return Document{}, ErrUnknownFormat
	}

	details := prepare(expenses, opts)

	var data []byte
	var err error

	switch format {
	case FormatCSV:
		data, err = renderCSV(details, ctx, opts)
	case FormatXLSX:
		data, err = renderXLSX(details, ctx, opts)
	case FormatPDF:
		data, err = renderPDF(details, ctx, opts, renderer)
	}

	if err != nil {
		return Document{}, fmt.Errorf("rendering %s document failed: %w", format, err)
	}

	return Document{
		Data:     data,
		Filename: ctx.baseFilename() + format.Extension(),
	}, nil
}

// prepare applies the export-time date bounds, sorts by date descending
// and caps the result to MaxItems when a cap is set.
//
// Date ties are broken by creation time, newest first, so the order is
// deterministic for a given store state.
func prepare(expenses []models.Expense, opts Options) []models.Expense {
	bounds := report.FilterSet{
		StartDate: opts.DateFrom,
		EndDate:   opts.DateTo,
	}
	details := bounds.Apply(expenses)

	slices.SortStableFunc(details, func(a, b models.Expense) int {
		if !a.Date.Equal(b.Date) {
			if a.Date.After(b.Date) {
				return -1
			}
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if opts.MaxItems > 0 && len(details) > opts.MaxItems {
		details = details[:opts.MaxItems]
	}

	return details
}

// recurringLabel renders the recurring flag for detail listings.
func recurringLabel(expense models.Expense) string {
	if expense.IsRecurring {
		return "yes"
	}
	return "no"
}

const placeholderMessage = "No content selected for this export"
