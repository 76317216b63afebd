package v1_test

import (
	"net/http"

	v1 "github.com/ledgerlight/backend/internal/controllers/v1"
	"github.com/ledgerlight/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOptionsCategories() {
	t := suite.T()

	recorder := test.Request(t, http.MethodOptions, "/v1/categories", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetCategories() {
	t := suite.T()

	recorder := test.Request(t, http.MethodGet, "/v1/categories", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(t, &recorder, &response)

	require.Len(t, response.Data, 11)
	assert.Equal(t, "food", response.Data[0].ID)
	assert.Equal(t, "Food & Dining", response.Data[0].Name)
}
