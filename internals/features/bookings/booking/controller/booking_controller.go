// file: internals/features/bookings/booking/controller/booking_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "villashare_backend/internals/helpers"

	d "villashare_backend/internals/features/bookings/booking/dto"
	m "villashare_backend/internals/features/bookings/booking/model"
	holidayModel "villashare_backend/internals/features/calendar/holidays/model"
	propertyModel "villashare_backend/internals/features/properties/property/model"
)

type BookingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBookingController(db *gorm.DB, v *validator.Validate) *BookingController {
	return &BookingController{DB: db, Validate: v}
}

/* =========================
   PG error mapping
   ========================= */

type pgSQLErr interface{ SQLState() string }

func writePGError(c *fiber.Ctx, err error) error {
	var state string
	var se pgSQLErr
	if errors.As(err, &se) {
		state = se.SQLState()
	} else {
		var pqe *pq.Error
		if errors.As(err, &pqe) {
			state = string(pqe.Code)
		}
	}
	switch state {
	case "23505":
		return helper.JsonError(c, http.StatusConflict, "Duplicate booking")
	case "23503":
		return helper.JsonError(c, http.StatusBadRequest, "Referenced record does not exist")
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

/* =========================
   Create  (User)
   Path: POST /bookings
   ========================= */

func (ctl *BookingController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	booking, err := req.ToModel(userID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.UserContext()

	var property propertyModel.PropertyModel
	if err := ctl.DB.WithContext(ctx).
		First(&property, "property_id = ?", booking.BookingPropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Property not found")
		}
		return writePGError(c, err)
	}
	if !property.PropertyIsActive {
		return helper.JsonError(c, http.StatusConflict, "Property is not open for booking")
	}
	if booking.BookingGuests > property.PropertyMaxGuests {
		return helper.JsonError(c, http.StatusBadRequest, "Guest count exceeds the property limit")
	}

	// overlap with live bookings of the same property
	var overlapping int64
	if err := ctl.DB.WithContext(ctx).Model(&m.BookingModel{}).
		Where("booking_property_id = ?", booking.BookingPropertyID).
		Where("booking_status IN ?", []string{m.BookingStatusPending, m.BookingStatusConfirmed}).
		Where("booking_check_in < ? AND booking_check_out > ?", booking.BookingCheckOut, booking.BookingCheckIn).
		Count(&overlapping).Error; err != nil {
		return writePGError(c, err)
	}
	if overlapping > 0 {
		return helper.JsonError(c, http.StatusConflict, "Property is already booked for the selected dates")
	}

	// the stay is peak priced when it touches a peak season holiday of
	// this property
	var peakHits int64
	if err := ctl.DB.WithContext(ctx).Model(&holidayModel.PropertySeasonHolidayModel{}).
		Joins("JOIN holidays ON holidays.holiday_id = property_season_holidays.property_season_holiday_holiday_id").
		Where("property_season_holidays.property_season_holiday_property_id = ?", booking.BookingPropertyID).
		Where("property_season_holidays.property_season_holiday_is_peak_season = TRUE").
		Where("holidays.holiday_start_date < ? AND holidays.holiday_end_date >= ?", booking.BookingCheckOut, booking.BookingCheckIn).
		Count(&peakHits).Error; err != nil {
		return writePGError(c, err)
	}
	booking.BookingIsPeakSeason = peakHits > 0

	if err := ctl.DB.WithContext(ctx).Create(booking).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonCreated(c, "Booking created", d.FromModelBooking(booking))
}

/* =========================
   Get By ID
   Path: GET /bookings/:id
   ========================= */

func (ctl *BookingController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid booking id")
	}

	var booking m.BookingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&booking, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Booking not found")
		}
		return writePGError(c, err)
	}

	// owners see only their own bookings, admins see all
	if booking.BookingUserID != userID && !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Not your booking")
	}

	return helper.JsonOK(c, "OK", d.FromModelBooking(&booking))
}

/* =========================
   List (mine / admin-all)
   Path: GET /bookings
   ========================= */

func (ctl *BookingController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q d.ListBookingsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	q.Normalize()
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(q); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.BookingModel{})
	if !helper.IsAdmin(c) {
		tx = tx.Where("booking_user_id = ?", userID)
	}
	if q.PropertyID != nil {
		tx = tx.Where("booking_property_id = ?", *q.PropertyID)
	}
	if q.Status != nil {
		tx = tx.Where("booking_status = ?", *q.Status)
	}
	tx = tx.Order("booking_check_in DESC")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.BookingModel
	if err := tx.Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	data := make([]*d.BookingResponse, 0, len(rows))
	for i := range rows {
		data = append(data, d.FromModelBooking(&rows[i]))
	}

	return helper.JsonList(c, "OK", data, helper.BuildPaginationFromOffset(total, q.Offset, q.Limit))
}

/* =========================
   Update Status  (Admin)
   Path: PATCH /bookings/:id/status
   ========================= */

func (ctl *BookingController) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid booking id")
	}

	var req d.UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var booking m.BookingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&booking, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Booking not found")
		}
		return writePGError(c, err)
	}

	booking.BookingStatus = req.BookingStatus
	if err := ctl.DB.WithContext(c.UserContext()).Save(&booking).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Booking status updated", d.FromModelBooking(&booking))
}

/* =========================
   Cancel (owner of the booking)
   Path: POST /bookings/:id/cancel
   ========================= */

func (ctl *BookingController) Cancel(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid booking id")
	}

	var booking m.BookingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&booking, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Booking not found")
		}
		return writePGError(c, err)
	}
	if booking.BookingUserID != userID && !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Not your booking")
	}
	if !booking.IsCancelable() {
		return helper.JsonError(c, http.StatusConflict, "Booking can no longer be canceled")
	}

	booking.BookingStatus = m.BookingStatusCanceled
	if err := ctl.DB.WithContext(c.UserContext()).Save(&booking).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Booking canceled", d.FromModelBooking(&booking))
}
