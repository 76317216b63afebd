package v1_test

import (
	"net/http"

	v1 "github.com/ledgerlight/backend/internal/controllers/v1"
	"github.com/ledgerlight/backend/internal/types"
	"github.com/ledgerlight/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestReportQueryValidation() {
	t := suite.T()

	tests := []struct {
		name string
		path string
	}{
		{"daily without year", "/v1/reports/daily?month=3"},
		{"daily without month", "/v1/reports/daily?year=2024"},
		{"daily with month out of range", "/v1/reports/daily?year=2024&month=13"},
		{"monthly without year", "/v1/reports/monthly"},
	}

	for _, tt := range tests {
		recorder := test.Request(t, http.MethodGet, tt.path, "")
		test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestDailyReport() {
	t := suite.T()

	_ = createTestExpense(t, v1.ExpenseEditable{Amount: decimal.NewFromInt(50), Date: types.NewDate(2024, 3, 5)})
	_ = createTestExpense(t, v1.ExpenseEditable{Amount: decimal.NewFromInt(30), Date: types.NewDate(2024, 3, 5)})
	_ = createTestExpense(t, v1.ExpenseEditable{Amount: decimal.NewFromInt(20), Date: types.NewDate(2024, 3, 28)})

	// Outside the month, must not appear
	_ = createTestExpense(t, v1.ExpenseEditable{Amount: decimal.NewFromInt(99), Date: types.NewDate(2024, 4, 1)})

	recorder := test.Request(t, http.MethodGet, "/v1/reports/daily?year=2024&month=3", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(t, &recorder, &response)

	require.Len(t, response.Data.Buckets, 31)
	assert.True(t, response.Data.Buckets[4].Amount.Equal(decimal.NewFromInt(80)), "Bucket for day 5 is %s", response.Data.Buckets[4].Amount)
	assert.True(t, response.Data.Buckets[27].Amount.Equal(decimal.NewFromInt(20)))
	assert.True(t, response.Data.Buckets[0].Amount.IsZero())

	assert.Equal(t, 3, response.Data.Summary.Count)
	assert.True(t, response.Data.Summary.Total.Equal(decimal.NewFromInt(100)))

	require.Len(t, response.Data.Chart.Labels, 31)
	require.Len(t, response.Data.Chart.Datasets, 1)
	assert.InDelta(t, 80, response.Data.Chart.Datasets[0].Values[4], 0.001)
}

// TestDailyReportLeapYear verifies February gets 29 buckets in a leap
// year and 28 otherwise.
func (suite *TestSuiteStandard) TestDailyReportLeapYear() {
	t := suite.T()

	recorder := test.Request(t, http.MethodGet, "/v1/reports/daily?year=2024&month=2", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Len(t, response.Data.Buckets, 29)

	recorder = test.Request(t, http.MethodGet, "/v1/reports/daily?year=2023&month=2", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	test.DecodeResponse(t, &recorder, &response)
	assert.Len(t, response.Data.Buckets, 28)
}

func (suite *TestSuiteStandard) TestMonthlyReport() {
	t := suite.T()

	_ = createTestExpense(t, v1.ExpenseEditable{Amount: decimal.NewFromInt(100), Date: types.NewDate(2024, 1, 15)})
	_ = createTestExpense(t, v1.ExpenseEditable{Amount: decimal.NewFromInt(200), Date: types.NewDate(2024, 6, 1)})
	_ = createTestExpense(t, v1.ExpenseEditable{Amount: decimal.NewFromInt(300), Date: types.NewDate(2023, 6, 1)})

	recorder := test.Request(t, http.MethodGet, "/v1/reports/monthly?year=2024", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(t, &recorder, &response)

	require.Len(t, response.Data.Buckets, 12)
	assert.Equal(t, "January", response.Data.Buckets[0].Label)
	assert.True(t, response.Data.Buckets[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, response.Data.Buckets[5].Amount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 2, response.Data.Summary.Count)
}

func (suite *TestSuiteStandard) TestCategoryReport() {
	t := suite.T()

	_ = createTestExpense(t, v1.ExpenseEditable{CategoryID: "food", Amount: decimal.NewFromInt(50), Date: types.NewDate(2024, 3, 5)})
	_ = createTestExpense(t, v1.ExpenseEditable{CategoryID: "transportation", Amount: decimal.NewFromInt(20), Date: types.NewDate(2024, 3, 6)})
	_ = createTestExpense(t, v1.ExpenseEditable{CategoryID: "food", Amount: decimal.NewFromInt(30), Date: types.NewDate(2024, 3, 7)})

	recorder := test.Request(t, http.MethodGet, "/v1/reports/categories", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(t, &recorder, &response)

	// Only categories with expenses appear
	require.Len(t, response.Data.Buckets, 2)

	amounts := make(map[string]string)
	for _, bucket := range response.Data.Buckets {
		amounts[bucket.Label] = bucket.Amount.String()
	}
	assert.Equal(t, "80", amounts["Food & Dining"])
	assert.Equal(t, "20", amounts["Transportation"])

	// The summary covers the same expense set
	assert.Equal(t, 3, response.Data.Summary.Count)
	assert.True(t, response.Data.Summary.Total.Equal(decimal.NewFromInt(100)))
}
