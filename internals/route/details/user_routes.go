package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "villashare_backend/internals/features/users/user/controller"
)

func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db, validator.New())

	users := r.Group("/users")
	users.Get("/me", ctl.Me)
	users.Patch("/me", ctl.UpdateMe)
}

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db, validator.New())

	users := r.Group("/users")
	users.Get("/", ctl.List)
	users.Patch("/:id/active", ctl.SetActive)
}
