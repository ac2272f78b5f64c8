// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "villashare_backend/internals/middlewares/auth"
	routeDetails "villashare_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → no JWT (webhook, open listings)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (any signed-in user)
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ADMIN
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.OnlyRolesSlice("Admin access required", "admin"),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserUserRoutes(private, db)
	routeDetails.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Property routes...")
	routeDetails.PropertyPublicRoutes(public, db)
	routeDetails.PropertyAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Holiday routes...")
	routeDetails.HolidayPublicRoutes(public, db)
	routeDetails.HolidayAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Booking routes...")
	routeDetails.BookingUserRoutes(private, db)
	routeDetails.BookingAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Payment routes...")
	routeDetails.PaymentPublicRoutes(public, db)
	routeDetails.PaymentUserRoutes(private, db)

	log.Println("[INFO] Mounting Media routes...")
	routeDetails.MediaPublicRoutes(public, db)
	routeDetails.MediaAdminRoutes(admin, db)
}
