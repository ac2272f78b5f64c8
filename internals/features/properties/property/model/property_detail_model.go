// internals/features/properties/property/model/property_detail_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyDetailModel carries the rental-calendar side of a property.
// The peak season range is nullable; season classification is impossible
// until both dates are set.
type PropertyDetailModel struct {
	PropertyDetailID uuid.UUID `json:"property_detail_id" gorm:"column:property_detail_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	PropertyDetailPropertyID uuid.UUID `json:"property_detail_property_id" gorm:"column:property_detail_property_id;type:uuid;not null;uniqueIndex:uq_property_details_property"`

	PropertyDetailPeakSeasonStart *time.Time `json:"property_detail_peak_season_start,omitempty" gorm:"column:property_detail_peak_season_start;type:date"`
	PropertyDetailPeakSeasonEnd   *time.Time `json:"property_detail_peak_season_end,omitempty"   gorm:"column:property_detail_peak_season_end;type:date"`

	PropertyDetailCheckInTime  *string `json:"property_detail_check_in_time,omitempty"  gorm:"column:property_detail_check_in_time;type:varchar(8)"`
	PropertyDetailCheckOutTime *string `json:"property_detail_check_out_time,omitempty" gorm:"column:property_detail_check_out_time;type:varchar(8)"`

	PropertyDetailHouseRules *string `json:"property_detail_house_rules,omitempty" gorm:"column:property_detail_house_rules;type:text"`

	PropertyDetailCreatedAt time.Time `json:"property_detail_created_at" gorm:"column:property_detail_created_at;type:timestamptz;not null;autoCreateTime"`
	PropertyDetailUpdatedAt time.Time `json:"property_detail_updated_at" gorm:"column:property_detail_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (PropertyDetailModel) TableName() string { return "property_details" }
