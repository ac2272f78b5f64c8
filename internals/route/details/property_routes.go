package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ownershipController "villashare_backend/internals/features/properties/ownership/controller"
	propertyController "villashare_backend/internals/features/properties/property/controller"
)

func PropertyPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := propertyController.NewPropertyController(db, validator.New())

	properties := r.Group("/properties")
	properties.Get("/", ctl.List)
	properties.Get("/:id", ctl.GetByID)
}

func PropertyAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := propertyController.NewPropertyController(db, v)
	ownCtl := ownershipController.NewOwnershipController(db, v)

	properties := r.Group("/properties")
	properties.Post("/", ctl.Create)
	properties.Patch("/:id", ctl.Update)
	properties.Put("/:id/details", ctl.UpsertDetails)
	properties.Delete("/:id", ctl.Delete)

	ownerships := r.Group("/ownerships")
	ownerships.Post("/", ownCtl.Create)
	ownerships.Patch("/:id", ownCtl.UpdateShare)
	ownerships.Get("/property/:property_id", ownCtl.ListByProperty)
	ownerships.Delete("/:id", ownCtl.Delete)
}
