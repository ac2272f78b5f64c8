// internals/features/calendar/holidays/model/property_season_holiday_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertySeasonHolidayModel is the reconciled many-to-many row between a
// holiday and a property. Rows are only ever written by the reconciliation
// service; a stale row is deleted and recreated, never updated in place,
// so created_by/created_at stay honest.
type PropertySeasonHolidayModel struct {
	PropertySeasonHolidayID uuid.UUID `json:"property_season_holiday_id" gorm:"column:property_season_holiday_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// (property_id, holiday_id) is unique
	PropertySeasonHolidayPropertyID uuid.UUID `json:"property_season_holiday_property_id" gorm:"column:property_season_holiday_property_id;type:uuid;not null;uniqueIndex:uq_property_season_holidays_pair"`
	PropertySeasonHolidayHolidayID  uuid.UUID `json:"property_season_holiday_holiday_id"  gorm:"column:property_season_holiday_holiday_id;type:uuid;not null;uniqueIndex:uq_property_season_holidays_pair"`

	PropertySeasonHolidayIsPeakSeason bool `json:"property_season_holiday_is_peak_season" gorm:"column:property_season_holiday_is_peak_season;not null"`

	PropertySeasonHolidayCreatedBy uuid.UUID  `json:"property_season_holiday_created_by" gorm:"column:property_season_holiday_created_by;type:uuid;not null"`
	PropertySeasonHolidayUpdatedBy *uuid.UUID `json:"property_season_holiday_updated_by,omitempty" gorm:"column:property_season_holiday_updated_by;type:uuid"`

	PropertySeasonHolidayCreatedAt time.Time `json:"property_season_holiday_created_at" gorm:"column:property_season_holiday_created_at;type:timestamptz;not null;autoCreateTime"`
	PropertySeasonHolidayUpdatedAt time.Time `json:"property_season_holiday_updated_at" gorm:"column:property_season_holiday_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (PropertySeasonHolidayModel) TableName() string { return "property_season_holidays" }
