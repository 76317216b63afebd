package models_test

import (
	"github.com/ledgerlight/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPreferenceFallback() {
	value, err := models.GetPreference(models.PreferenceLastExportFormat, "csv")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "csv", value)
}

func (suite *TestSuiteStandard) TestPreferenceUpsert() {
	require.NoError(suite.T(), models.SetPreference(models.PreferenceLastExportFormat, "xlsx"))
	require.NoError(suite.T(), models.SetPreference(models.PreferenceLastExportFormat, "pdf"))

	value, err := models.GetPreference(models.PreferenceLastExportFormat, "csv")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "pdf", value)

	var count int64
	models.DB.Model(&models.Preference{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count, "upsert must not create duplicate keys")
}
