// internals/features/properties/property/model/property_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyModel struct {
	PropertyID uuid.UUID `json:"property_id" gorm:"column:property_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	PropertyName string  `json:"property_name" gorm:"column:property_name;type:varchar(200);not null"`
	PropertyCity string  `json:"property_city" gorm:"column:property_city;type:varchar(100);not null"`
	PropertyAddr *string `json:"property_address,omitempty" gorm:"column:property_address;type:text"`

	PropertyBedrooms  int `json:"property_bedrooms"  gorm:"column:property_bedrooms;not null;default:0"`
	PropertyMaxGuests int `json:"property_max_guests" gorm:"column:property_max_guests;not null;default:0"`

	// free-form amenity list, e.g. ["pool","sauna"]
	PropertyAmenities datatypes.JSON `json:"property_amenities,omitempty" gorm:"column:property_amenities;type:jsonb"`

	PropertyIsActive bool `json:"property_is_active" gorm:"column:property_is_active;not null;default:true"`

	PropertyCreatedBy uuid.UUID  `json:"property_created_by" gorm:"column:property_created_by;type:uuid;not null"`
	PropertyUpdatedBy *uuid.UUID `json:"property_updated_by,omitempty" gorm:"column:property_updated_by;type:uuid"`

	PropertyCreatedAt time.Time      `json:"property_created_at" gorm:"column:property_created_at;type:timestamptz;not null;autoCreateTime"`
	PropertyUpdatedAt time.Time      `json:"property_updated_at" gorm:"column:property_updated_at;type:timestamptz;not null;autoUpdateTime"`
	PropertyDeletedAt gorm.DeletedAt `json:"property_deleted_at,omitempty" gorm:"column:property_deleted_at;index"`
}

func (PropertyModel) TableName() string { return "properties" }
