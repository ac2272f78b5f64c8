package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "villashare_backend/internals/features/bookings/payment/controller"
)

func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db, validator.New())

	payments := r.Group("/payments")
	payments.Get("/webhook", ctl.MidtransWebhookPing)
	payments.Post("/webhook", ctl.MidtransWebhook)
}

func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db, validator.New())

	payments := r.Group("/payments")
	payments.Post("/", ctl.Checkout)
	payments.Get("/booking/:booking_id", ctl.GetByBooking)
}
