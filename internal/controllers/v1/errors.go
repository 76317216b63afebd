package v1

import (
	"errors"
	"net/http"

	"github.com/ledgerlight/backend/internal/models"
	"gorm.io/gorm"
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errYearNotSetInQuery  = errors.New("the year query parameter must be set")
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errMonthOutOfRange    = errors.New("the month query parameter must be between 1 and 12")
)

// Export errors
var (
	errExportFormatInvalid     = errors.New("the specified export format is invalid, supported formats are csv, xlsx and pdf")
	errExportReportTypeInvalid = errors.New("the specified report type is invalid, supported types are daily, monthly and category")
	errExportFailed            = errors.New("the export failed, please try again")
)
