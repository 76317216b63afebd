package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlight/backend/internal/httputil"
	"github.com/ledgerlight/backend/internal/models"
	"github.com/ledgerlight/backend/internal/report"
	"github.com/ledgerlight/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// BudgetEditable contains all values of a budget that can be set by
// the client. An update replaces all of them.
type BudgetEditable struct {
	CategoryID string          `json:"categoryId" binding:"required" example:"food"`
	Amount     decimal.Decimal `json:"amount" example:"400"`
	Period     string          `json:"period" example:"monthly"`
	Notes      string          `json:"notes" example:""`
}

func (b BudgetEditable) model() models.Budget {
	return models.Budget{
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Period:     b.Period,
		Notes:      b.Notes,
	}
}

var budgetFields = []string{"CategoryID", "Amount", "Period", "Notes"}

// BudgetWithStatus is a budget together with its derived status for the
// requested scope.
type BudgetWithStatus struct {
	models.Budget
	Status models.BudgetStatus `json:"status"`
}

type BudgetResponse struct {
	Data BudgetWithStatus `json:"data"`
}

type BudgetListResponse struct {
	Data []BudgetWithStatus `json:"data"`
}

// budgetScope returns the expenses the status of a budget is computed
// over. The scope defaults to the current month and can be moved with
// the month query parameter. Yearly budgets widen the scope to the
// whole year.
func budgetScope(budget models.Budget, year int, month time.Month) report.FilterSet {
	var start, end types.Date
	if budget.Period == "yearly" {
		start = types.NewDate(year, time.January, 1)
		end = types.NewDate(year, time.December, 31)
	} else {
		start = types.NewDate(year, month, 1)
		end = types.NewDate(year, month, types.DaysIn(year, month))
	}

	category := budget.CategoryID
	return report.FilterSet{
		StartDate: &start,
		EndDate:   &end,
		Category:  &category,
	}
}

// withStatus attaches the derived status for the scope to a budget.
func withStatus(budget models.Budget, year int, month time.Month) (BudgetWithStatus, error) {
	expenses, err := fetchExpenses(budgetScope(budget, year, month))
	if err != nil {
		return BudgetWithStatus{}, err
	}

	return BudgetWithStatus{
		Budget: budget,
		Status: budget.Status(expenses),
	}, nil
}

// statusScope parses the optional month query parameter, "2006-01"
// format. It defaults to the current month.
func statusScope(c *gin.Context) (int, time.Month, error) {
	value := c.Query("month")
	if value == "" {
		now := time.Now().UTC()
		return now.Year(), now.Month(), nil
	}

	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, err
	}

	return t.Year(), t.Month(), nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budget
// @Description	Creates a new budget
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	budget := editable.model()
	err = models.DB.Create(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	year, month, err := statusScope(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data, err := withStatus(budget, year, month)
	if err != nil {
		c.JSON(status(err), httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: data})
}

// @Summary		Get budgets
// @Description	Returns a list of budgets with their status
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month	query	string	false	"Month the status is computed for, 2006-01 format. Defaults to the current month."
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	year, month, err := statusScope(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var budgets []models.Budget
	err = models.DB.Order("created_at ASC").Find(&budgets).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: models.ErrGeneral.Error()})
		return
	}

	data := make([]BudgetWithStatus, 0, len(budgets))
	for _, budget := range budgets {
		entry, err := withStatus(budget, year, month)
		if err != nil {
			c.JSON(status(err), httpError{Error: models.ErrGeneral.Error()})
			return
		}
		data = append(data, entry)
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget with its status
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	query	string	false	"Month the status is computed for, 2006-01 format. Defaults to the current month."
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	year, month, err := statusScope(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data, err := withStatus(budget, year, month)
	if err != nil {
		c.JSON(status(err), httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: data})
}

// @Summary		Update budget
// @Description	Updates an existing budget, replacing all its mutable fields
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&budget).Select(budgetFields).Updates(editable.model()).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	year, month, err := statusScope(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data, err := withStatus(budget, year, month)
	if err != nil {
		c.JSON(status(err), httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: data})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
