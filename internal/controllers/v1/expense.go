package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlight/backend/internal/httputil"
	"github.com/ledgerlight/backend/internal/models"
	"github.com/ledgerlight/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// ExpenseEditable contains all values of an expense that can be set by
// the client. An update replaces all of them.
type ExpenseEditable struct {
	Title              string          `json:"title" binding:"required" example:"Weekly groceries"`
	Amount             decimal.Decimal `json:"amount" example:"54.30"`
	CategoryID         string          `json:"categoryId" example:"food"`
	Date               types.Date      `json:"date" example:"2024-01-05"`
	Notes              string          `json:"notes" example:""`
	IsRecurring        bool            `json:"isRecurring" example:"false"`
	RecurringFrequency string          `json:"recurringFrequency" example:""`
	ReceiptURL         string          `json:"receiptUrl" example:""`
}

func (e ExpenseEditable) model() models.Expense {
	return models.Expense{
		Title:              e.Title,
		Amount:             e.Amount,
		CategoryID:         e.CategoryID,
		Date:               e.Date,
		Notes:              e.Notes,
		IsRecurring:        e.IsRecurring,
		RecurringFrequency: e.RecurringFrequency,
		ReceiptURL:         e.ReceiptURL,
	}
}

// expenseFields are the columns replaced by an update.
var expenseFields = []string{"Title", "Amount", "CategoryID", "Date", "Notes", "IsRecurring", "RecurringFrequency", "ReceiptURL"}

type ExpenseResponse struct {
	Data models.Expense `json:"data"`
}

type ExpenseListResponse struct {
	Data       []models.Expense `json:"data"`
	Pagination *Pagination      `json:"pagination"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Expense{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httpError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expense := editable.model()
	err = models.DB.Create(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/expenses [get]
// @Param			from		query	string	false	"Earliest date, inclusive"
// @Param			to			query	string	false	"Latest date, inclusive"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			min			query	string	false	"Minimum amount, inclusive"
// @Param			max			query	string	false	"Maximum amount, inclusive"
// @Param			search		query	string	false	"Search for this text in title and notes"
// @Param			offset		query	uint	false	"The offset of the first Expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	var query ExpenseQueryFilter

	// Almost every parameter is bound into a string, binding only fails
	// for non-numeric pagination parameters and those fall back to the
	// defaults
	_ = c.ShouldBind(&query)

	filter, err := query.filterSet()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expenses, err := fetchExpenses(filter)
	if err != nil {
		c.JSON(status(err), httpError{Error: models.ErrGeneral.Error()})
		return
	}

	total := int64(len(expenses))

	// Pagination happens after the residual filtering so the total
	// reflects everything that matches the filter set.
	if query.Offset > 0 {
		if int(query.Offset) > len(expenses) {
			expenses = []models.Expense{}
		} else {
			expenses = expenses[query.Offset:]
		}
	}

	limit := 50
	if query.Limit != 0 {
		limit = query.Limit
	}
	if limit >= 0 && len(expenses) > limit {
		expenses = expenses[:limit]
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: expenses,
		Pagination: &Pagination{
			Count:  len(expenses),
			Total:  total,
			Offset: query.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: expense})
}

// @Summary		Update expense
// @Description	Updates an existing expense, replacing all its mutable fields
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&expense).Select(expenseFields).Updates(editable.model()).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
