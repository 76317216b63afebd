package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlight/backend/internal/export"
	"github.com/ledgerlight/backend/internal/httputil"
	"github.com/ledgerlight/backend/internal/models"
)

// RegisterPreferenceRoutes registers the routes for preferences with
// the RouterGroup that is passed.
func RegisterPreferenceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/export-format", OptionsExportFormat)
	r.GET("/export-format", GetExportFormat)
}

type ExportFormatResponse struct {
	Data string `json:"data" example:"xlsx"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Preferences
// @Success		204
// @Router			/v1/preferences/export-format [options]
func OptionsExportFormat(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get last export format
// @Description	Returns the format of the last completed export, csv if none has happened yet
// @Tags			Preferences
// @Produce		json
// @Success		200	{object}	ExportFormatResponse
// @Failure		500	{object}	httpError
// @Router			/v1/preferences/export-format [get]
func GetExportFormat(c *gin.Context) {
	value, err := models.GetPreference(models.PreferenceLastExportFormat, string(export.FormatCSV))
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.JSON(http.StatusOK, ExportFormatResponse{Data: value})
}
