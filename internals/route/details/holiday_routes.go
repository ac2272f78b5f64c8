package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holidayController "villashare_backend/internals/features/calendar/holidays/controller"
)

func HolidayPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := holidayController.NewHolidayController(db, validator.New())

	holidays := r.Group("/holidays")
	holidays.Get("/", ctl.List)
	holidays.Get("/:id", ctl.GetByID)
}

func HolidayAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := holidayController.NewHolidayController(db, validator.New())

	holidays := r.Group("/holidays")
	holidays.Post("/", ctl.Create)
	holidays.Patch("/:id", ctl.Patch)
	holidays.Delete("/:id", ctl.Delete)
}
