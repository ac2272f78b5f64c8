package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"
	BookingStatusCompleted = "completed"
)

/* ===================== Model ===================== */

type BookingModel struct {
	BookingID uuid.UUID `gorm:"column:booking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"booking_id"`

	BookingPropertyID uuid.UUID `gorm:"column:booking_property_id;type:uuid;not null;index" json:"booking_property_id"`
	BookingUserID     uuid.UUID `gorm:"column:booking_user_id;type:uuid;not null;index" json:"booking_user_id"`

	BookingCheckIn  time.Time `gorm:"column:booking_check_in;type:date;not null" json:"booking_check_in"`
	BookingCheckOut time.Time `gorm:"column:booking_check_out;type:date;not null" json:"booking_check_out"`
	BookingGuests   int       `gorm:"column:booking_guests;not null;check:booking_guests > 0" json:"booking_guests"`

	// flag copied from the season mapping at booking time, used for pricing
	BookingIsPeakSeason bool `gorm:"column:booking_is_peak_season;not null;default:false" json:"booking_is_peak_season"`

	BookingStatus string  `gorm:"column:booking_status;type:varchar(20);default:'pending'" json:"booking_status"`
	BookingNotes  *string `gorm:"column:booking_notes;type:text" json:"booking_notes,omitempty"`

	BookingCreatedAt time.Time      `gorm:"column:booking_created_at;autoCreateTime" json:"booking_created_at"`
	BookingUpdatedAt time.Time      `gorm:"column:booking_updated_at;autoUpdateTime" json:"booking_updated_at"`
	BookingDeletedAt gorm.DeletedAt `gorm:"column:booking_deleted_at;index" json:"booking_deleted_at,omitempty"`
}

func (BookingModel) TableName() string { return "bookings" }

/* ===================== Helpers ===================== */

// Nights is the stay length; check-out day is not counted.
func (b *BookingModel) Nights() int {
	return int(b.BookingCheckOut.Sub(b.BookingCheckIn).Hours() / 24)
}

func (b *BookingModel) IsCancelable() bool {
	return b.BookingStatus == BookingStatusPending || b.BookingStatus == BookingStatusConfirmed
}
