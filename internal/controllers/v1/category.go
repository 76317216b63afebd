package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlight/backend/internal/categories"
	"github.com/ledgerlight/backend/internal/httputil"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategoryList)
	r.GET("", GetCategories)
}

type CategoryListResponse struct {
	Data []categories.Category `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the fixed list of expense categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: categories.All()})
}
