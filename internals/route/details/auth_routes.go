package details

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "villashare_backend/internals/features/users/auth/controller"
	"villashare_backend/internals/middlewares"
	authMiddleware "villashare_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/refresh-token", ctl.RefreshToken)
	auth.Post("/logout", ctl.Logout)

	// change-password needs a live session
	authPrivate := app.Group("/api/u/auth",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	authPrivate.Post("/change-password", ctl.ChangePassword)
}
