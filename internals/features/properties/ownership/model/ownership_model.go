package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnershipModel is one fractional share of a property. The share is a
// percentage; the sum over a property must stay at or below 100.
type OwnershipModel struct {
	OwnershipID uuid.UUID `gorm:"column:ownership_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ownership_id"`

	OwnershipPropertyID uuid.UUID `gorm:"column:ownership_property_id;type:uuid;not null;uniqueIndex:uq_ownerships_property_user" json:"ownership_property_id"`
	OwnershipUserID     uuid.UUID `gorm:"column:ownership_user_id;type:uuid;not null;uniqueIndex:uq_ownerships_property_user" json:"ownership_user_id"`

	OwnershipSharePercent float64 `gorm:"column:ownership_share_percent;type:numeric(5,2);not null;check:ownership_share_percent > 0" json:"ownership_share_percent"`

	OwnershipCreatedBy uuid.UUID `gorm:"column:ownership_created_by;type:uuid;not null" json:"ownership_created_by"`

	OwnershipCreatedAt time.Time      `gorm:"column:ownership_created_at;type:timestamptz;not null;autoCreateTime" json:"ownership_created_at"`
	OwnershipUpdatedAt time.Time      `gorm:"column:ownership_updated_at;type:timestamptz;not null;autoUpdateTime" json:"ownership_updated_at"`
	OwnershipDeletedAt gorm.DeletedAt `gorm:"column:ownership_deleted_at;index" json:"ownership_deleted_at,omitempty"`
}

func (OwnershipModel) TableName() string { return "ownerships" }
