package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyImageModel struct {
	PropertyImageID uuid.UUID `gorm:"column:property_image_id;type:uuid;default:gen_random_uuid();primaryKey" json:"property_image_id"`

	PropertyImagePropertyID uuid.UUID `gorm:"column:property_image_property_id;type:uuid;not null;index" json:"property_image_property_id"`

	// public path of the stored webp file
	PropertyImageURL     string  `gorm:"column:property_image_url;type:text;not null" json:"property_image_url"`
	PropertyImageCaption *string `gorm:"column:property_image_caption;type:varchar(200)" json:"property_image_caption,omitempty"`
	PropertyImageIsCover bool    `gorm:"column:property_image_is_cover;not null;default:false" json:"property_image_is_cover"`

	PropertyImageUploadedBy uuid.UUID `gorm:"column:property_image_uploaded_by;type:uuid;not null" json:"property_image_uploaded_by"`

	PropertyImageCreatedAt time.Time      `gorm:"column:property_image_created_at;type:timestamptz;not null;autoCreateTime" json:"property_image_created_at"`
	PropertyImageDeletedAt gorm.DeletedAt `gorm:"column:property_image_deleted_at;index" json:"property_image_deleted_at,omitempty"`
}

func (PropertyImageModel) TableName() string { return "property_images" }
