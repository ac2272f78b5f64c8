package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingController "villashare_backend/internals/features/bookings/booking/controller"
)

func BookingUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := bookingController.NewBookingController(db, validator.New())

	bookings := r.Group("/bookings")
	bookings.Post("/", ctl.Create)
	bookings.Get("/", ctl.List)
	bookings.Get("/:id", ctl.GetByID)
	bookings.Post("/:id/cancel", ctl.Cancel)
}

func BookingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := bookingController.NewBookingController(db, validator.New())

	bookings := r.Group("/bookings")
	bookings.Patch("/:id/status", ctl.UpdateStatus)
}
