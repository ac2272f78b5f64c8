// internals/features/calendar/holidays/model/holiday_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type HolidayModel struct {
	HolidayID uuid.UUID `json:"holiday_id"   gorm:"column:holiday_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// (name, year) is unique; a duplicate create is a conflict, not an update
	HolidayName string `json:"holiday_name" gorm:"column:holiday_name;type:varchar(200);not null;uniqueIndex:uq_holidays_name_year"`
	HolidayYear int    `json:"holiday_year" gorm:"column:holiday_year;not null;uniqueIndex:uq_holidays_name_year"`

	HolidayStartDate time.Time `json:"holiday_start_date" gorm:"column:holiday_start_date;type:date;not null"`
	HolidayEndDate   time.Time `json:"holiday_end_date"   gorm:"column:holiday_end_date;type:date;not null"`

	HolidayCreatedBy uuid.UUID  `json:"holiday_created_by" gorm:"column:holiday_created_by;type:uuid;not null"`
	HolidayUpdatedBy *uuid.UUID `json:"holiday_updated_by,omitempty" gorm:"column:holiday_updated_by;type:uuid"`

	HolidayCreatedAt time.Time `json:"holiday_created_at" gorm:"column:holiday_created_at;type:timestamptz;not null;autoCreateTime"`
	HolidayUpdatedAt time.Time `json:"holiday_updated_at" gorm:"column:holiday_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (HolidayModel) TableName() string { return "holidays" }
