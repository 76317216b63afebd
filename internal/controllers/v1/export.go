package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlight/backend/internal/export"
	"github.com/ledgerlight/backend/internal/httputil"
	"github.com/ledgerlight/backend/internal/models"
	"github.com/ledgerlight/backend/internal/report"
	"github.com/ledgerlight/backend/internal/types"
	"golang.org/x/sync/singleflight"
)

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.POST("", CreateExport)
}

// chartRenderer rasterizes the chart section of PDF exports.
var chartRenderer export.ChartRenderer = export.BarChartRenderer{}

// exportGroup collapses identical concurrent export requests into a
// single render, so double-clicking a download button does not produce
// the work twice.
var exportGroup singleflight.Group

// ExportRequest is the body of an export request. The filter fields
// mirror the expense list query parameters.
type ExportRequest struct {
	Format     string          `json:"format" binding:"required" example:"xlsx"`
	ReportType string          `json:"reportType" binding:"required" example:"daily"`
	Year       int             `json:"year" example:"2024"`
	Month      int             `json:"month" example:"3"`
	Category   string          `json:"category" example:""`
	Min        string          `json:"min" example:""`
	Max        string          `json:"max" example:""`
	Search     string          `json:"search" example:""`
	Options    *export.Options `json:"options"`
}

// scope converts the request into the report scope filter. The date
// bounds come from the report type, everything else from the filter
// fields.
func (r ExportRequest) scope() (report.FilterSet, error) {
	query := ExpenseQueryFilter{
		Category: r.Category,
		Min:      r.Min,
		Max:      r.Max,
		Search:   r.Search,
	}

	filter, err := query.filterSet()
	if err != nil {
		return report.FilterSet{}, err
	}

	switch export.ReportType(r.ReportType) {
	case export.ReportDaily:
		if r.Year == 0 {
			return report.FilterSet{}, errYearNotSetInQuery
		}
		if r.Month < 1 || r.Month > 12 {
			return report.FilterSet{}, errMonthOutOfRange
		}

		month := time.Month(r.Month)
		start := types.NewDate(r.Year, month, 1)
		end := types.NewDate(r.Year, month, types.DaysIn(r.Year, month))
		filter.StartDate = &start
		filter.EndDate = &end

	case export.ReportMonthly:
		if r.Year == 0 {
			return report.FilterSet{}, errYearNotSetInQuery
		}

		start := types.NewDate(r.Year, time.January, 1)
		end := types.NewDate(r.Year, time.December, 31)
		filter.StartDate = &start
		filter.EndDate = &end

	case export.ReportCategory:
		// No implied date bounds.

	default:
		return report.FilterSet{}, errExportReportTypeInvalid
	}

	return filter, nil
}

// context builds the report context with the full-scope aggregation
// results. The detail cap from the options does not affect these.
func (r ExportRequest) context(expenses []models.Expense) export.ReportContext {
	ctx := export.ReportContext{
		Type:    export.ReportType(r.ReportType),
		Year:    r.Year,
		Month:   time.Month(r.Month),
		Summary: report.Summarize(expenses),
	}

	switch ctx.Type {
	case export.ReportDaily:
		ctx.Buckets = report.GroupByDay(expenses, r.Year, time.Month(r.Month))
	case export.ReportMonthly:
		ctx.Buckets = report.GroupByMonth(expenses, r.Year)
	default:
		ctx.Buckets = report.GroupByCategory(expenses)
		if r.Category != "" && r.Category != "all" {
			ctx.CategoryID = r.Category
		}
	}

	return ctx
}

// key returns the deduplication key for the request. Two requests with
// the same key render the same document for the same store state.
func (r ExportRequest) key() string {
	data, err := json.Marshal(r)
	if err != nil {
		// Marshaling a plain struct of scalars cannot fail, but fall
		// back to a unique key rather than collapsing unrelated work.
		return fmt.Sprintf("export-%d", time.Now().UnixNano())
	}

	return string(data)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Export report
// @Description	Renders the selected report into a downloadable CSV, XLSX or PDF document
// @Tags			Export
// @Accept			json
// @Produce		text/csv
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce		application/pdf
// @Success		200	{file}		file
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			request	body	ExportRequest	true	"Export request"
// @Router			/v1/export [post]
func CreateExport(c *gin.Context) {
	var request ExportRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	format := export.Format(request.Format)
	if !format.Valid() {
		c.JSON(http.StatusBadRequest, httpError{Error: errExportFormatInvalid.Error()})
		return
	}

	filter, err := request.scope()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	opts := export.DefaultOptions()
	if request.Options != nil {
		opts = *request.Options
	}

	result, err, _ := exportGroup.Do(request.key(), func() (any, error) {
		expenses, err := fetchExpenses(filter)
		if err != nil {
			return nil, err
		}

		return export.Export(format, expenses, request.context(expenses), opts, chartRenderer)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: errExportFailed.Error()})
		return
	}

	document := result.(export.Document)

	// Remember the chosen format for the next export dialog. A failure
	// here does not invalidate the rendered document.
	_ = models.SetPreference(models.PreferenceLastExportFormat, string(format))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", document.Filename))
	c.Data(http.StatusOK, format.ContentType(), document.Data)
}
