package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceLastExportFormat stores the format of the last completed export.
const PreferenceLastExportFormat = "lastExportFormat"

// Preference is a single key-value setting persisted across sessions.
type Preference struct {
	DefaultModel
	Key   string `json:"key" gorm:"uniqueIndex" example:"lastExportFormat"`
	Value string `json:"value" example:"xlsx"`
}

// GetPreference returns the stored value for a key, or the fallback if
// the key has never been written.
func GetPreference(key, fallback string) (string, error) {
	var preference Preference
	err := DB.Where(&Preference{Key: key}).First(&preference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}

	return preference.Value, nil
}

// SetPreference writes the value for a key, creating it when needed.
func SetPreference(key, value string) error {
	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Preference{Key: key, Value: value}).Error
}
