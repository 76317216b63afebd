package export

import (
	"bytes"
	"fmt"

	"github.com/ledgerlight/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Summary"
	sheetExpenses = "Expenses"
)

// numFmtCurrency is the excelize built-in #,##0.00 format.
const numFmtCurrency = 4

// renderXLSX renders the spreadsheet workbook.
func renderXLSX(details []models.Expense, ctx ReportContext, opts Options) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, err
	}

	currencyStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: numFmtCurrency,
	})
	if err != nil {
		return nil, err
	}

	// A workbook must contain at least one sheet, so the default sheet
	// is renamed to the first enabled section. With no sections at all
	// it becomes a placeholder.
	switch {
	case opts.IncludeSummary:
		if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
			return nil, err
		}
	case opts.IncludeDetails:
		if err := f.SetSheetName("Sheet1", sheetExpenses); err != nil {
			return nil, err
		}
	default:
		if err := f.SetSheetName("Sheet1", "Report"); err != nil {
			return nil, err
		}
		if err := f.SetCellValue("Report", "A1", placeholderMessage); err != nil {
			return nil, err
		}
	}

	if opts.IncludeSummary {
		if err := writeSummarySheet(f, ctx, titleStyle, currencyStyle); err != nil {
			return nil, err
		}
	}

	if opts.IncludeDetails {
		if opts.IncludeSummary {
			if _, err := f.NewSheet(sheetExpenses); err != nil {
				return nil, err
			}
		}
		if err := writeExpensesSheet(f, details, headerStyle, currencyStyle); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, ctx ReportContext, titleStyle, currencyStyle int) error {
	if err := f.SetCellValue(sheetSummary, "A1", ctx.Title()); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSummary, "A1", "A1", titleStyle); err != nil {
		return err
	}

	// Row 2 stays blank, statistics start at row 3.
	rows := []struct {
		label string
		value interface{}
	}{
		{"Total", ctx.Summary.Total.InexactFloat64()},
		{"Average", ctx.Summary.Average.InexactFloat64()},
		{"Count", ctx.Summary.Count},
		{"Highest", ctx.Summary.Highest.Amount.InexactFloat64()},
		{"Lowest", ctx.Summary.Lowest.Amount.InexactFloat64()},
	}

	row := 3
	for _, r := range rows {
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), r.label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), r.value); err != nil {
			return err
		}
		if r.label != "Count" {
			if err := f.SetCellStyle(sheetSummary, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), currencyStyle); err != nil {
				return err
			}
		}
		row++
	}

	// Blank row, then the per-bucket breakdown.
	row++
	for _, bucket := range ctx.Buckets {
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), bucket.Label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), bucket.Amount.InexactFloat64()); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetSummary, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), currencyStyle); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(sheetSummary, "A", "A", 24); err != nil {
		return err
	}
	return f.SetColWidth(sheetSummary, "B", "B", 16)
}

func writeExpensesSheet(f *excelize.File, details []models.Expense, headerStyle, currencyStyle int) error {
	headers := []string{"Date", "Title", "Category", "Amount", "Notes", "Recurring"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheetExpenses, cell, header); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetExpenses, "A1", "F1", headerStyle); err != nil {
		return err
	}

	for i, expense := range details {
		row := i + 2

		if err := f.SetCellValue(sheetExpenses, fmt.Sprintf("A%d", row), expense.Date.String()); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetExpenses, fmt.Sprintf("B%d", row), expense.Title); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetExpenses, fmt.Sprintf("C%d", row), expense.CategoryName()); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetExpenses, fmt.Sprintf("D%d", row), expense.Amount.InexactFloat64()); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetExpenses, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), currencyStyle); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetExpenses, fmt.Sprintf("E%d", row), expense.Notes); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetExpenses, fmt.Sprintf("F%d", row), recurringLabel(expense)); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetExpenses, "A", "A", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetExpenses, "B", "B", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetExpenses, "C", "C", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetExpenses, "D", "D", 12); err != nil {
		return err
	}
	return f.SetColWidth(sheetExpenses, "E", "E", 32)
}
