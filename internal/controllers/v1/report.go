package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlight/backend/internal/httputil"
	"github.com/ledgerlight/backend/internal/models"
	"github.com/ledgerlight/backend/internal/report"
	"github.com/ledgerlight/backend/internal/types"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/daily", OptionsReport)
	r.GET("/daily", GetDailyReport)

	r.OPTIONS("/monthly", OptionsReport)
	r.GET("/monthly", GetMonthlyReport)

	r.OPTIONS("/categories", OptionsReport)
	r.GET("/categories", GetCategoryReport)
}

// Report is the full aggregation result for one report scope.
type Report struct {
	Buckets []report.Bucket  `json:"buckets"`
	Summary report.Summary   `json:"summary"`
	Chart   report.ChartData `json:"chart"`
}

type ReportResponse struct {
	Data Report `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/daily [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// yearFromQuery parses the mandatory year query parameter.
func yearFromQuery(c *gin.Context) (int, error) {
	value := c.Query("year")
	if value == "" {
		return 0, errYearNotSetInQuery
	}

	return strconv.Atoi(value)
}

// monthFromQuery parses the mandatory month query parameter, 1 to 12.
func monthFromQuery(c *gin.Context) (time.Month, error) {
	value := c.Query("month")
	if value == "" {
		return 0, errMonthNotSetInQuery
	}

	month, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	if month < 1 || month > 12 {
		return 0, errMonthOutOfRange
	}

	return time.Month(month), nil
}

// monthExpenses returns all expenses of the month, honoring the
// residual query filters except the date bounds, which the scope fixes.
func monthExpenses(c *gin.Context, year int, month time.Month) ([]models.Expense, error) {
	var query ExpenseQueryFilter
	_ = c.ShouldBind(&query)

	filter, err := query.filterSet()
	if err != nil {
		return nil, err
	}

	start := types.NewDate(year, month, 1)
	end := types.NewDate(year, month, types.DaysIn(year, month))
	filter.StartDate = &start
	filter.EndDate = &end

	return fetchExpenses(filter)
}

// yearExpenses returns all expenses of the year, honoring the residual
// query filters except the date bounds, which the scope fixes.
func yearExpenses(c *gin.Context, year int) ([]models.Expense, error) {
	var query ExpenseQueryFilter
	_ = c.ShouldBind(&query)

	filter, err := query.filterSet()
	if err != nil {
		return nil, err
	}

	start := types.NewDate(year, time.January, 1)
	end := types.NewDate(year, time.December, 31)
	filter.StartDate = &start
	filter.EndDate = &end

	return fetchExpenses(filter)
}

// @Summary		Daily report
// @Description	Returns the by-day aggregation for a month, one bucket per calendar day
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			year		query	int		true	"Year of the month to aggregate"
// @Param			month		query	int		true	"Month to aggregate, 1 to 12"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			min			query	string	false	"Minimum amount, inclusive"
// @Param			max			query	string	false	"Maximum amount, inclusive"
// @Param			search		query	string	false	"Search for this text in title and notes"
// @Router			/v1/reports/daily [get]
func GetDailyReport(c *gin.Context) {
	year, err := yearFromQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expenses, err := monthExpenses(c, year, month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	buckets := report.GroupByDay(expenses, year, month)
	c.JSON(http.StatusOK, ReportResponse{Data: Report{
		Buckets: buckets,
		Summary: report.Summarize(expenses),
		Chart:   report.ToChartData(buckets),
	}})
}

// @Summary		Monthly report
// @Description	Returns the by-month aggregation for a year, twelve buckets in calendar order
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			year		query	int		true	"Year to aggregate"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			min			query	string	false	"Minimum amount, inclusive"
// @Param			max			query	string	false	"Maximum amount, inclusive"
// @Param			search		query	string	false	"Search for this text in title and notes"
// @Router			/v1/reports/monthly [get]
func GetMonthlyReport(c *gin.Context) {
	year, err := yearFromQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expenses, err := yearExpenses(c, year)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	buckets := report.GroupByMonth(expenses, year)
	c.JSON(http.StatusOK, ReportResponse{Data: Report{
		Buckets: buckets,
		Summary: report.Summarize(expenses),
		Chart:   report.ToChartData(buckets),
	}})
}

// @Summary		Category report
// @Description	Returns the by-category aggregation for the filtered expense set
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			from	query	string	false	"Earliest date, inclusive"
// @Param			to		query	string	false	"Latest date, inclusive"
// @Param			min		query	string	false	"Minimum amount, inclusive"
// @Param			max		query	string	false	"Maximum amount, inclusive"
// @Param			search	query	string	false	"Search for this text in title and notes"
// @Router			/v1/reports/categories [get]
func GetCategoryReport(c *gin.Context) {
	var query ExpenseQueryFilter
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

	buckets := report.GroupByCategory(expenses)
	c.JSON(http.StatusOK, ReportResponse{Data: Report{
		Buckets: buckets,
		Summary: report.Summarize(expenses),
		Chart:   report.ToChartData(buckets),
	}})
}
