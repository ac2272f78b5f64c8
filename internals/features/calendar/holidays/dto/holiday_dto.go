// file: internals/features/calendar/holidays/dto/holiday_dto.go
package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "villashare_backend/internals/features/calendar/holidays/model"
	svc "villashare_backend/internals/features/calendar/holidays/service"
)

/* =========================================================
   Patch types (tri-state)
   - Patch[T]           : not-set | set(value)
   - PatchNullable[T]   : not-set | set(null) | set(value)
   ========================================================= */

type Patch[T any] struct {
	Set   bool
	Value T
}

func (p *Patch[T]) UnmarshalJSON(b []byte) error {
	// Any presence in JSON means Set=true (even if zero value)
	p.Set = true
	return json.Unmarshal(b, &p.Value)
}

func (p Patch[T]) IsSet() bool { return p.Set }

type PatchNullable[T any] struct {
	Set   bool // field key present?
	Valid bool // true => has Value, false => explicit null
	Value T
}

func (p *PatchNullable[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Valid = false
		return nil
	}
	p.Valid = true
	return json.Unmarshal(b, &p.Value)
}

func (p PatchNullable[T]) IsSet() bool { return p.Set }

/* =========================================================
   Helpers
   ========================================================= */

func parseDateYYYYMMDD(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	return t, err == nil
}

func dateYMD(t time.Time) string { return t.Format("2006-01-02") }

/* =========================================================
   1) REQUESTS
   ========================================================= */

// Create
type CreateHolidayRequest struct {
	HolidayName string `json:"holiday_name" validate:"required,max=200"`
	HolidayYear int    `json:"holiday_year" validate:"required,min=1900,max=2200"`

	// Dates in "YYYY-MM-DD"
	HolidayStartDate string `json:"holiday_start_date" validate:"required,datetime=2006-01-02"`
	HolidayEndDate   string `json:"holiday_end_date"   validate:"required,datetime=2006-01-02"`

	// optional target property list; duplicates count once
	PropertyIDs []uuid.UUID `json:"property_ids" validate:"omitempty,dive,uuid4"`
}

func (r *CreateHolidayRequest) ToInput(actorID uuid.UUID) (svc.CreateHolidayInput, error) {
	start, ok := parseDateYYYYMMDD(r.HolidayStartDate)
	if !ok {
		return svc.CreateHolidayInput{}, errors.New("invalid holiday_start_date (expected YYYY-MM-DD)")
	}
	end, ok := parseDateYYYYMMDD(r.HolidayEndDate)
	if !ok {
		return svc.CreateHolidayInput{}, errors.New("invalid holiday_end_date (expected YYYY-MM-DD)")
	}
	if end.Before(start) {
		return svc.CreateHolidayInput{}, errors.New("holiday_end_date must be >= holiday_start_date")
	}
	return svc.CreateHolidayInput{
		Name:        strings.TrimSpace(r.HolidayName),
		Year:        r.HolidayYear,
		StartDate:   start,
		EndDate:     end,
		PropertyIDs: r.PropertyIDs,
		ActorID:     actorID,
	}, nil
}

// Patch (partial update)
// property_ids: absent = keep the mapping set, [] = reconcile to empty.
type PatchHolidayRequest struct {
	HolidayName Patch[string] `json:"holiday_name"`
	HolidayYear Patch[int]    `json:"holiday_year"`

	// Dates in "YYYY-MM-DD" (must be valid when present)
	HolidayStartDate Patch[string] `json:"holiday_start_date"`
	HolidayEndDate   Patch[string] `json:"holiday_end_date"`

	PropertyIDs Patch[[]uuid.UUID] `json:"property_ids"`
}

func (p *PatchHolidayRequest) ToInput(holidayID, actorID uuid.UUID) (svc.UpdateHolidayInput, error) {
	in := svc.UpdateHolidayInput{HolidayID: holidayID, ActorID: actorID}

	if p.HolidayName.IsSet() {
		name := strings.TrimSpace(p.HolidayName.Value)
		if name == "" {
			return in, errors.New("holiday_name cannot be empty when set")
		}
		if len(name) > 200 {
			return in, errors.New("holiday_name max length is 200")
		}
		in.Name = &name
	}
	if p.HolidayYear.IsSet() {
		year := p.HolidayYear.Value
		if year < 1900 || year > 2200 {
			return in, errors.New("holiday_year out of range")
		}
		in.Year = &year
	}

	if p.HolidayStartDate.IsSet() {
		t, ok := parseDateYYYYMMDD(p.HolidayStartDate.Value)
		if !ok {
			return in, errors.New("invalid holiday_start_date (expected YYYY-MM-DD)")
		}
		in.StartDate = &t
	}
	if p.HolidayEndDate.IsSet() {
		t, ok := parseDateYYYYMMDD(p.HolidayEndDate.Value)
		if !ok {
			return in, errors.New("invalid holiday_end_date (expected YYYY-MM-DD)")
		}
		in.EndDate = &t
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return in, errors.New("holiday_end_date must be >= holiday_start_date")
	}

	if p.PropertyIDs.IsSet() {
		ids := p.PropertyIDs.Value
		if ids == nil {
			ids = []uuid.UUID{}
		}
		in.PropertyIDs = &ids
	}

	return in, nil
}

/* =========================================================
   2) QUERY (list/filter)
   ========================================================= */

type ListHolidaysQuery struct {
	Year *int    `query:"year" validate:"omitempty,min=1900,max=2200"`
	Q    *string `query:"q"    validate:"omitempty,max=200"`

	Limit  int `query:"limit"  validate:"omitempty,min=1,max=200"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

func (q *ListHolidaysQuery) Normalize() {
	if q.Limit == 0 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Q != nil {
		v := strings.TrimSpace(*q.Q)
		if v == "" {
			q.Q = nil
		} else {
			q.Q = &v
		}
	}
}

/* =========================================================
   3) RESPONSES
   ========================================================= */

type HolidayResponse struct {
	HolidayID uuid.UUID `json:"holiday_id"`

	HolidayName string `json:"holiday_name"`
	HolidayYear int    `json:"holiday_year"`

	HolidayStartDate string `json:"holiday_start_date"` // YYYY-MM-DD
	HolidayEndDate   string `json:"holiday_end_date"`   // YYYY-MM-DD

	HolidayCreatedBy uuid.UUID  `json:"holiday_created_by"`
	HolidayUpdatedBy *uuid.UUID `json:"holiday_updated_by,omitempty"`

	HolidayCreatedAt time.Time `json:"holiday_created_at"`
	HolidayUpdatedAt time.Time `json:"holiday_updated_at"`
}

func FromModelHoliday(h *m.HolidayModel) *HolidayResponse {
	if h == nil {
		return nil
	}
	return &HolidayResponse{
		HolidayID:        h.HolidayID,
		HolidayName:      h.HolidayName,
		HolidayYear:      h.HolidayYear,
		HolidayStartDate: dateYMD(h.HolidayStartDate),
		HolidayEndDate:   dateYMD(h.HolidayEndDate),
		HolidayCreatedBy: h.HolidayCreatedBy,
		HolidayUpdatedBy: h.HolidayUpdatedBy,
		HolidayCreatedAt: h.HolidayCreatedAt,
		HolidayUpdatedAt: h.HolidayUpdatedAt,
	}
}

type PropertySeasonHolidayResponse struct {
	PropertySeasonHolidayID           uuid.UUID `json:"property_season_holiday_id"`
	PropertySeasonHolidayPropertyID   uuid.UUID `json:"property_season_holiday_property_id"`
	PropertySeasonHolidayHolidayID    uuid.UUID `json:"property_season_holiday_holiday_id"`
	PropertySeasonHolidayIsPeakSeason bool      `json:"property_season_holiday_is_peak_season"`
	PropertySeasonHolidayCreatedAt    time.Time `json:"property_season_holiday_created_at"`
}

func FromModelMapping(row *m.PropertySeasonHolidayModel) *PropertySeasonHolidayResponse {
	if row == nil {
		return nil
	}
	return &PropertySeasonHolidayResponse{
		PropertySeasonHolidayID:           row.PropertySeasonHolidayID,
		PropertySeasonHolidayPropertyID:   row.PropertySeasonHolidayPropertyID,
		PropertySeasonHolidayHolidayID:    row.PropertySeasonHolidayHolidayID,
		PropertySeasonHolidayIsPeakSeason: row.PropertySeasonHolidayIsPeakSeason,
		PropertySeasonHolidayCreatedAt:    row.PropertySeasonHolidayCreatedAt,
	}
}

type HolidayWithMappingsResponse struct {
	Holiday  *HolidayResponse                 `json:"holiday"`
	Mappings []*PropertySeasonHolidayResponse `json:"mappings"`
}

func FromModelHolidayWithMappings(h *m.HolidayModel, rows []m.PropertySeasonHolidayModel) *HolidayWithMappingsResponse {
	out := &HolidayWithMappingsResponse{
		Holiday:  FromModelHoliday(h),
		Mappings: make([]*PropertySeasonHolidayResponse, 0, len(rows)),
	}
	for i := range rows {
		out.Mappings = append(out.Mappings, FromModelMapping(&rows[i]))
	}
	return out
}
