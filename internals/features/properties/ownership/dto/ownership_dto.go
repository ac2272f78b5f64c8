// file: internals/features/properties/ownership/dto/ownership_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "villashare_backend/internals/features/properties/ownership/model"
)

type CreateOwnershipRequest struct {
	OwnershipPropertyID   uuid.UUID `json:"ownership_property_id" validate:"required,uuid4"`
	OwnershipUserID       uuid.UUID `json:"ownership_user_id" validate:"required,uuid4"`
	OwnershipSharePercent float64   `json:"ownership_share_percent" validate:"required,gt=0,lte=100"`
}

type UpdateOwnershipShareRequest struct {
	OwnershipSharePercent float64 `json:"ownership_share_percent" validate:"required,gt=0,lte=100"`
}

type OwnershipResponse struct {
	OwnershipID           uuid.UUID `json:"ownership_id"`
	OwnershipPropertyID   uuid.UUID `json:"ownership_property_id"`
	OwnershipUserID       uuid.UUID `json:"ownership_user_id"`
	OwnershipSharePercent float64   `json:"ownership_share_percent"`
	OwnershipCreatedAt    time.Time `json:"ownership_created_at"`
}

func FromModelOwnership(o *m.OwnershipModel) *OwnershipResponse {
	return &OwnershipResponse{
		OwnershipID:           o.OwnershipID,
		OwnershipPropertyID:   o.OwnershipPropertyID,
		OwnershipUserID:       o.OwnershipUserID,
		OwnershipSharePercent: o.OwnershipSharePercent,
		OwnershipCreatedAt:    o.OwnershipCreatedAt,
	}
}
