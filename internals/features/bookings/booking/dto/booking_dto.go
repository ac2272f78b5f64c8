// file: internals/features/bookings/booking/dto/booking_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	m "villashare_backend/internals/features/bookings/booking/model"
)

/* =========================
   Requests
   ========================= */

type CreateBookingRequest struct {
	BookingPropertyID uuid.UUID `json:"booking_property_id" validate:"required,uuid4"`
	BookingCheckIn    string    `json:"booking_check_in" validate:"required,datetime=2006-01-02"`
	BookingCheckOut   string    `json:"booking_check_out" validate:"required,datetime=2006-01-02"`
	BookingGuests     int       `json:"booking_guests" validate:"required,gt=0"`
	BookingNotes      *string   `json:"booking_notes" validate:"omitempty,max=2000"`
}

func (r CreateBookingRequest) ToModel(userID uuid.UUID) (*m.BookingModel, error) {
	checkIn, err := time.Parse("2006-01-02", r.BookingCheckIn)
	if err != nil {
		return nil, errors.New("booking_check_in must be YYYY-MM-DD")
	}
	checkOut, err := time.Parse("2006-01-02", r.BookingCheckOut)
	if err != nil {
		return nil, errors.New("booking_check_out must be YYYY-MM-DD")
	}
	if !checkOut.After(checkIn) {
		return nil, errors.New("booking_check_out must be after booking_check_in")
	}
	return &m.BookingModel{
		BookingPropertyID: r.BookingPropertyID,
		BookingUserID:     userID,
		BookingCheckIn:    checkIn,
		BookingCheckOut:   checkOut,
		BookingGuests:     r.BookingGuests,
		BookingStatus:     m.BookingStatusPending,
		BookingNotes:      r.BookingNotes,
	}, nil
}

type UpdateBookingStatusRequest struct {
	BookingStatus string `json:"booking_status" validate:"required,oneof=pending confirmed canceled completed"`
}

type ListBookingsQuery struct {
	PropertyID *uuid.UUID `query:"property_id"`
	Status     *string    `query:"status" validate:"omitempty,oneof=pending confirmed canceled completed"`
	Limit      int        `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset     int        `query:"offset" validate:"omitempty,gte=0"`
}

func (q *ListBookingsQuery) Normalize() {
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

type BookingResponse struct {
	BookingID           uuid.UUID `json:"booking_id"`
	BookingPropertyID   uuid.UUID `json:"booking_property_id"`
	BookingUserID       uuid.UUID `json:"booking_user_id"`
	BookingCheckIn      string    `json:"booking_check_in"`
	BookingCheckOut     string    `json:"booking_check_out"`
	BookingNights       int       `json:"booking_nights"`
	BookingGuests       int       `json:"booking_guests"`
	BookingIsPeakSeason bool      `json:"booking_is_peak_season"`
	BookingStatus       string    `json:"booking_status"`
	BookingNotes        *string   `json:"booking_notes,omitempty"`
	BookingCreatedAt    time.Time `json:"booking_created_at"`
}

func FromModelBooking(b *m.BookingModel) *BookingResponse {
	return &BookingResponse{
		BookingID:           b.BookingID,
		BookingPropertyID:   b.BookingPropertyID,
		BookingUserID:       b.BookingUserID,
		BookingCheckIn:      b.BookingCheckIn.Format("2006-01-02"),
		BookingCheckOut:     b.BookingCheckOut.Format("2006-01-02"),
		BookingNights:       b.Nights(),
		BookingGuests:       b.BookingGuests,
		BookingIsPeakSeason: b.BookingIsPeakSeason,
		BookingStatus:       b.BookingStatus,
		BookingNotes:        b.BookingNotes,
		BookingCreatedAt:    b.BookingCreatedAt,
	}
}
