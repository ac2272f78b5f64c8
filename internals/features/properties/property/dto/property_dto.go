// file: internals/features/properties/property/dto/property_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "villashare_backend/internals/features/properties/property/model"
)

/* =========================
   Requests
   ========================= */

type CreatePropertyRequest struct {
	PropertyName      string         `json:"property_name" validate:"required,max=200"`
	PropertyCity      string         `json:"property_city" validate:"required,max=100"`
	PropertyAddr      *string        `json:"property_address" validate:"omitempty,max=2000"`
	PropertyBedrooms  int            `json:"property_bedrooms" validate:"gte=0,lte=50"`
	PropertyMaxGuests int            `json:"property_max_guests" validate:"required,gt=0,lte=100"`
	PropertyAmenities datatypes.JSON `json:"property_amenities" validate:"omitempty"`
}

func (r CreatePropertyRequest) ToModel(actorID uuid.UUID) *m.PropertyModel {
	return &m.PropertyModel{
		PropertyName:      r.PropertyName,
		PropertyCity:      r.PropertyCity,
		PropertyAddr:      r.PropertyAddr,
		PropertyBedrooms:  r.PropertyBedrooms,
		PropertyMaxGuests: r.PropertyMaxGuests,
		PropertyAmenities: r.PropertyAmenities,
		PropertyIsActive:  true,
		PropertyCreatedBy: actorID,
	}
}

type UpdatePropertyRequest struct {
	PropertyName      *string         `json:"property_name" validate:"omitempty,max=200"`
	PropertyCity      *string         `json:"property_city" validate:"omitempty,max=100"`
	PropertyAddr      *string         `json:"property_address" validate:"omitempty,max=2000"`
	PropertyBedrooms  *int            `json:"property_bedrooms" validate:"omitempty,gte=0,lte=50"`
	PropertyMaxGuests *int            `json:"property_max_guests" validate:"omitempty,gt=0,lte=100"`
	PropertyAmenities *datatypes.JSON `json:"property_amenities"`
	PropertyIsActive  *bool           `json:"property_is_active"`
}

// UpsertPropertyDetailRequest writes the calendar side of a property.
// Peak season dates come as a pair; sending one without the other is an
// error, sending null for both clears the range.
type UpsertPropertyDetailRequest struct {
	PropertyDetailPeakSeasonStart *string `json:"property_detail_peak_season_start" validate:"omitempty,datetime=2006-01-02"`
	PropertyDetailPeakSeasonEnd   *string `json:"property_detail_peak_season_end" validate:"omitempty,datetime=2006-01-02"`
	PropertyDetailCheckInTime     *string `json:"property_detail_check_in_time" validate:"omitempty,max=8"`
	PropertyDetailCheckOutTime    *string `json:"property_detail_check_out_time" validate:"omitempty,max=8"`
	PropertyDetailHouseRules      *string `json:"property_detail_house_rules" validate:"omitempty,max=5000"`
}

func (r UpsertPropertyDetailRequest) PeakSeasonRange() (*time.Time, *time.Time, error) {
	if (r.PropertyDetailPeakSeasonStart == nil) != (r.PropertyDetailPeakSeasonEnd == nil) {
		return nil, nil, errors.New("peak season start and end must be set together")
	}
	if r.PropertyDetailPeakSeasonStart == nil {
		return nil, nil, nil
	}
	start, err := time.Parse("2006-01-02", *r.PropertyDetailPeakSeasonStart)
	if err != nil {
		return nil, nil, errors.New("property_detail_peak_season_start must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", *r.PropertyDetailPeakSeasonEnd)
	if err != nil {
		return nil, nil, errors.New("property_detail_peak_season_end must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, nil, errors.New("peak season end must be >= start")
	}
	return &start, &end, nil
}

type ListPropertiesQuery struct {
	City   *string `query:"city" validate:"omitempty,max=100"`
	Active *bool   `query:"active"`
	Q      *string `query:"q" validate:"omitempty,max=200"`
	Limit  int     `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset int     `query:"offset" validate:"omitempty,gte=0"`
}

func (q *ListPropertiesQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

/* =========================
   Responses
   ========================= */

type PropertyResponse struct {
	PropertyID        uuid.UUID      `json:"property_id"`
	PropertyName      string         `json:"property_name"`
	PropertyCity      string         `json:"property_city"`
	PropertyAddr      *string        `json:"property_address,omitempty"`
	PropertyBedrooms  int            `json:"property_bedrooms"`
	PropertyMaxGuests int            `json:"property_max_guests"`
	PropertyAmenities datatypes.JSON `json:"property_amenities,omitempty"`
	PropertyIsActive  bool           `json:"property_is_active"`
	PropertyCreatedAt time.Time      `json:"property_created_at"`
}

func FromModelProperty(p *m.PropertyModel) *PropertyResponse {
	return &PropertyResponse{
		PropertyID:        p.PropertyID,
		PropertyName:      p.PropertyName,
		PropertyCity:      p.PropertyCity,
		PropertyAddr:      p.PropertyAddr,
		PropertyBedrooms:  p.PropertyBedrooms,
		PropertyMaxGuests: p.PropertyMaxGuests,
		PropertyAmenities: p.PropertyAmenities,
		PropertyIsActive:  p.PropertyIsActive,
		PropertyCreatedAt: p.PropertyCreatedAt,
	}
}

type PropertyDetailResponse struct {
	PropertyDetailID              uuid.UUID `json:"property_detail_id"`
	PropertyDetailPropertyID      uuid.UUID `json:"property_detail_property_id"`
	PropertyDetailPeakSeasonStart *string   `json:"property_detail_peak_season_start,omitempty"`
	PropertyDetailPeakSeasonEnd   *string   `json:"property_detail_peak_season_end,omitempty"`
	PropertyDetailCheckInTime     *string   `json:"property_detail_check_in_time,omitempty"`
	PropertyDetailCheckOutTime    *string   `json:"property_detail_check_out_time,omitempty"`
	PropertyDetailHouseRules      *string   `json:"property_detail_house_rules,omitempty"`
}

func FromModelPropertyDetail(pd *m.PropertyDetailModel) *PropertyDetailResponse {
	resp := &PropertyDetailResponse{
		PropertyDetailID:           pd.PropertyDetailID,
		PropertyDetailPropertyID:   pd.PropertyDetailPropertyID,
		PropertyDetailCheckInTime:  pd.PropertyDetailCheckInTime,
		PropertyDetailCheckOutTime: pd.PropertyDetailCheckOutTime,
		PropertyDetailHouseRules:   pd.PropertyDetailHouseRules,
	}
	if pd.PropertyDetailPeakSeasonStart != nil {
		s := pd.PropertyDetailPeakSeasonStart.Format("2006-01-02")
		resp.PropertyDetailPeakSeasonStart = &s
	}
	if pd.PropertyDetailPeakSeasonEnd != nil {
		e := pd.PropertyDetailPeakSeasonEnd.Format("2006-01-02")
		resp.PropertyDetailPeakSeasonEnd = &e
	}
	return resp
}

type PropertyWithDetailResponse struct {
	Property *PropertyResponse       `json:"property"`
	Detail   *PropertyDetailResponse `json:"detail,omitempty"`
}
