package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentController "villashare_backend/internals/features/media/documents/controller"
	imageController "villashare_backend/internals/features/media/images/controller"
)

func MediaPublicRoutes(r fiber.Router, db *gorm.DB) {
	imgCtl := imageController.NewPropertyImageController(db)

	r.Get("/properties/:property_id/images", imgCtl.ListByProperty)
}

func MediaAdminRoutes(r fiber.Router, db *gorm.DB) {
	imgCtl := imageController.NewPropertyImageController(db)
	docCtl := documentController.NewPropertyDocumentController(db)

	r.Post("/properties/:property_id/images", imgCtl.Upload)
	r.Delete("/images/:id", imgCtl.Delete)

	r.Post("/properties/:property_id/documents", docCtl.Upload)
	r.Get("/properties/:property_id/documents", docCtl.ListByProperty)
	r.Delete("/documents/:id", docCtl.Delete)
}
