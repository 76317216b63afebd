package v1_test

import (
	"net/http"
	"strings"

	v1 "github.com/ledgerlight/backend/internal/controllers/v1"
	"github.com/ledgerlight/backend/internal/export"
	"github.com/ledgerlight/backend/internal/types"
	"github.com/ledgerlight/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsExport() {
	t := suite.T()

	recorder := test.Request(t, http.MethodOptions, "/v1/export", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExportValidation() {
	t := suite.T()

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"unknown format", `{ "format": "docx", "reportType": "daily", "year": 2024, "month": 3 }`},
		{"unknown report type", `{ "format": "csv", "reportType": "weekly", "year": 2024 }`},
		{"daily without year", `{ "format": "csv", "reportType": "daily", "month": 3 }`},
		{"daily with month out of range", `{ "format": "csv", "reportType": "daily", "year": 2024, "month": 0 }`},
	}

	for _, tt := range tests {
		recorder := test.Request(t, http.MethodPost, "/v1/export", tt.body)
		test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestExportCSV() {
	t := suite.T()

	_ = createTestExpense(t, v1.ExpenseEditable{Title: "Groceries", Amount: decimal.NewFromInt(50), Date: types.NewDate(2024, 3, 5)})
	_ = createTestExpense(t, v1.ExpenseEditable{Title: "Taxi", CategoryID: "transportation", Amount: decimal.NewFromInt(20), Date: types.NewDate(2024, 3, 10)})

	recorder := test.Request(t, http.MethodPost, "/v1/export", v1.ExportRequest{
		Format:     "csv",
		ReportType: "daily",
		Year:       2024,
		Month:      3,
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="daily-march-2024.csv"`, recorder.Header().Get("Content-Disposition"))

	body := recorder.Body.String()
	assert.Contains(t, body, "Daily Expense Report - March 2024")
	assert.Contains(t, body, "Total,70.00")
	assert.Contains(t, body, "Groceries")
}

func (suite *TestSuiteStandard) TestExportXLSXFilename() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "/v1/export", v1.ExportRequest{
		Format:     "xlsx",
		ReportType: "monthly",
		Year:       2024,
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	assert.Equal(t, `attachment; filename="monthly-2024.xlsx"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
}

func (suite *TestSuiteStandard) TestExportPDF() {
	t := suite.T()

	_ = createTestExpense(t, v1.ExpenseEditable{Amount: decimal.NewFromInt(50), Date: types.NewDate(2024, 3, 5)})

	recorder := test.Request(t, http.MethodPost, "/v1/export", v1.ExportRequest{
		Format:     "pdf",
		ReportType: "category",
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="category-summary.pdf"`, recorder.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(recorder.Body.String(), "%PDF"), "Document does not start with the PDF magic bytes")
}

// TestExportMaxItems verifies the cap applies to the detail listing
// while the summary still covers the full scope.
func (suite *TestSuiteStandard) TestExportMaxItems() {
	t := suite.T()

	for i := 1; i <= 5; i++ {
		_ = createTestExpense(t, v1.ExpenseEditable{Amount: decimal.NewFromInt(10), Date: types.NewDate(2024, 3, i)})
	}

	opts := export.DefaultOptions()
	opts.MaxItems = 2

	recorder := test.Request(t, http.MethodPost, "/v1/export", v1.ExportRequest{
		Format:     "csv",
		ReportType: "daily",
		Year:       2024,
		Month:      3,
		Options:    &opts,
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	body := recorder.Body.String()
	assert.Contains(t, body, "Count,5")

	// Detail rows are the only lines starting with a date
	assert.Equal(t, 2, strings.Count(body, "2024-03-"))
}

// TestExportRemembersFormat verifies a completed export updates the
// persisted format preference.
func (suite *TestSuiteStandard) TestExportRemembersFormat() {
	t := suite.T()

	recorder := test.Request(t, http.MethodGet, "/v1/preferences/export-format", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var format v1.ExportFormatResponse
	test.DecodeResponse(t, &recorder, &format)
	assert.Equal(t, "csv", format.Data, "The format preference must default to csv")

	recorder = test.Request(t, http.MethodPost, "/v1/export", v1.ExportRequest{
		Format:     "xlsx",
		ReportType: "monthly",
		Year:       2024,
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	recorder = test.Request(t, http.MethodGet, "/v1/preferences/export-format", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	test.DecodeResponse(t, &recorder, &format)
	assert.Equal(t, "xlsx", format.Data)
}
