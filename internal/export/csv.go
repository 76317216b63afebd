package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/ledgerlight/backend/internal/models"
)

// renderCSV renders the delimited-text document.
//
// Quoting follows RFC 4180: fields containing the delimiter, a quote
// or a newline are wrapped in quotes with inner quotes doubled, so the
// output re-parses to the original values.
func renderCSV(details []models.Expense, ctx ReportContext, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	var records [][]string

	if opts.IncludeSummary {
		records = append(records,
			[]string{ctx.Title()},
			[]string{},
			[]string{"Total", ctx.Summary.Total.StringFixed(2)},
			[]string{"Average", ctx.Summary.Average.StringFixed(2)},
			[]string{"Count", fmt.Sprint(ctx.Summary.Count)},
			[]string{"Highest", ctx.Summary.Highest.Title, ctx.Summary.Highest.Amount.StringFixed(2)},
			[]string{"Lowest", ctx.Summary.Lowest.Title, ctx.Summary.Lowest.Amount.StringFixed(2)},
		)

		if len(ctx.Buckets) > 0 {
			records = append(records, []string{})
			for _, bucket := range ctx.Buckets {
				records = append(records, []string{bucket.Label, bucket.Amount.StringFixed(2)})
			}
		}
	}

	if opts.IncludeSummary && opts.IncludeDetails {
		records = append(records, []string{}, []string{"DETAILED EXPENSES"})
	}

	if opts.IncludeDetails {
		records = append(records, []string{"date", "title", "category", "amount", "notes", "recurring"})
		for _, expense := range details {
			records = append(records, []string{
				expense.Date.String(),
				expense.Title,
				expense.CategoryName(),
				expense.Amount.StringFixed(2),
				expense.Notes,
				recurringLabel(expense),
			})
		}
	}

	if len(records) == 0 {
		records = append(records, []string{placeholderMessage})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write CSV records: %w", err)
	}

	return buf.Bytes(), nil
}
