package v1_test

import (
	"net/http"

	v1 "github.com/ledgerlight/backend/internal/controllers/v1"
	"github.com/ledgerlight/backend/internal/types"
	"github.com/ledgerlight/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsExpense() {
	t := suite.T()

	recorder := test.Request(t, http.MethodOptions, "/v1/expenses", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "GET, POST", recorder.Header().Get("allow"))

	expense := createTestExpense(t, v1.ExpenseEditable{})
	recorder = test.Request(t, http.MethodOptions, expensePath(expense), "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "GET, PATCH, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	t := suite.T()

	expense := createTestExpense(t, v1.ExpenseEditable{
		Title:  "Cinema tickets",
		Amount: decimal.NewFromFloat(24.50),
	})

	assert.Equal(t, "Cinema tickets", expense.Data.Title)
	assert.True(t, expense.Data.Amount.Equal(decimal.NewFromFloat(24.50)))

	var saved v1.ExpenseResponse
	recorder := test.Request(t, http.MethodGet, expensePath(expense), "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)
	test.DecodeResponse(t, &recorder, &saved)

	assert.Equal(t, expense.Data.ID, saved.Data.ID)
	assert.Equal(t, expense.Data.Title, saved.Data.Title)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	t := suite.T()

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"broken json", `{ "title": "half`},
		{"missing title", `{ "amount": "10", "categoryId": "food", "date": "2024-01-01" }`},
		{"negative amount", `{ "title": "Refund", "amount": "-10", "categoryId": "food", "date": "2024-01-01" }`},
		{"invalid frequency", `{ "title": "Rent", "amount": "10", "categoryId": "housing", "date": "2024-01-01", "isRecurring": true, "recurringFrequency": "fortnightly" }`},
	}

	for _, tt := range tests {
		recorder := test.Request(t, http.MethodPost, "/v1/expenses", tt.body)
		test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGetExpensesFiltered() {
	t := suite.T()

	_ = createTestExpense(t, v1.ExpenseEditable{Title: "Groceries", CategoryID: "food", Amount: decimal.NewFromInt(50), Date: types.NewDate(2024, 3, 1)})
	_ = createTestExpense(t, v1.ExpenseEditable{Title: "Taxi", CategoryID: "transportation", Amount: decimal.NewFromInt(20), Date: types.NewDate(2024, 3, 10)})
	_ = createTestExpense(t, v1.ExpenseEditable{Title: "Dinner", CategoryID: "food", Amount: decimal.NewFromInt(80), Date: types.NewDate(2024, 4, 2), Notes: "Anniversary"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"no filter", "", 3},
		{"category", "?category=food", 2},
		{"category all", "?category=all", 3},
		{"date range", "?from=2024-03-01&to=2024-03-31", 2},
		{"amount range", "?min=30&max=100", 2},
		{"search in title", "?search=taxi", 1},
		{"search in notes", "?search=anniversary", 1},
		{"search without match", "?search=vacation", 0},
		{"contradictory bounds", "?from=2024-05-01&to=2024-04-01", 0},
	}

	for _, tt := range tests {
		recorder := test.Request(t, http.MethodGet, "/v1/expenses"+tt.query, "")
		test.AssertHTTPStatus(t, &recorder, http.StatusOK)

		var response v1.ExpenseListResponse
		test.DecodeResponse(t, &recorder, &response)
		assert.Len(t, response.Data, tt.count, "Wrong number of results for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestGetExpensesOrder() {
	t := suite.T()

	_ = createTestExpense(t, v1.ExpenseEditable{Title: "Older", Date: types.NewDate(2024, 3, 1)})
	_ = createTestExpense(t, v1.ExpenseEditable{Title: "Newest", Date: types.NewDate(2024, 3, 20)})
	_ = createTestExpense(t, v1.ExpenseEditable{Title: "Middle", Date: types.NewDate(2024, 3, 10)})

	recorder := test.Request(t, http.MethodGet, "/v1/expenses", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(t, &recorder, &response)

	titles := make([]string, 0, len(response.Data))
	for _, expense := range response.Data {
		titles = append(titles, expense.Title)
	}
	assert.Equal(t, []string{"Newest", "Middle", "Older"}, titles)
}

func (suite *TestSuiteStandard) TestGetExpensesPagination() {
	t := suite.T()

	for i := 0; i < 5; i++ {
		_ = createTestExpense(t, v1.ExpenseEditable{Date: types.NewDate(2024, 3, i+1)})
	}

	recorder := test.Request(t, http.MethodGet, "/v1/expenses?offset=2&limit=2", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Len(t, response.Data, 2)
	assert.Equal(t, int64(5), response.Pagination.Total)
	assert.Equal(t, uint(2), response.Pagination.Offset)
	assert.Equal(t, 2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestGetExpenseNotFound() {
	t := suite.T()

	recorder := test.Request(t, http.MethodGet, "/v1/expenses/5b95e1a9-522d-4a36-9074-32f7c15846a9", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)

	recorder = test.Request(t, http.MethodGet, "/v1/expenses/NotAUUID", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	t := suite.T()

	expense := createTestExpense(t, v1.ExpenseEditable{Title: "Bus ticket", CategoryID: "transportation"})

	recorder := test.Request(t, http.MethodPatch, expensePath(expense), v1.ExpenseEditable{
		Title:      "Train ticket",
		Amount:     decimal.NewFromInt(42),
		CategoryID: "travel",
		Date:       types.NewDate(2024, 3, 16),
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(t, &recorder, &updated)

	assert.Equal(t, "Train ticket", updated.Data.Title)
	assert.Equal(t, "travel", updated.Data.CategoryID)
	assert.True(t, updated.Data.Amount.Equal(decimal.NewFromInt(42)))
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	t := suite.T()

	expense := createTestExpense(t, v1.ExpenseEditable{})

	recorder := test.Request(t, http.MethodDelete, expensePath(expense), "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, expensePath(expense), "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}
