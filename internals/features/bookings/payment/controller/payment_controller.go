// file: internals/features/bookings/payment/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "villashare_backend/internals/helpers"

	bookingModel "villashare_backend/internals/features/bookings/booking/model"
	d "villashare_backend/internals/features/bookings/payment/dto"
	m "villashare_backend/internals/features/bookings/payment/model"
	paymentService "villashare_backend/internals/features/bookings/payment/service"
	userModel "villashare_backend/internals/features/users/user/model"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB, v *validator.Validate) *PaymentController {
	return &PaymentController{DB: db, Validate: v}
}

func (ctl *PaymentController) MidtransWebhookPing(c *fiber.Ctx) error {
	log.Println("✅ Midtrans ping (GET) received")
	return c.Status(fiber.StatusOK).SendString("OK")
}

/* =========================
   Checkout  (User)
   Path: POST /payments
   Creates the payment row and returns a Snap token.
   ========================= */

func (ctl *PaymentController) Checkout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	ctx := c.UserContext()

	var booking bookingModel.BookingModel
	if err := ctl.DB.WithContext(ctx).
		First(&booking, "booking_id = ?", req.PaymentBookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Booking not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if booking.BookingUserID != userID {
		return helper.JsonError(c, http.StatusForbidden, "Not your booking")
	}
	if booking.BookingStatus != bookingModel.BookingStatusPending {
		return helper.JsonError(c, http.StatusConflict, "Booking is not awaiting payment")
	}

	// one live payment per booking
	var pending int64
	if err := ctl.DB.WithContext(ctx).Model(&m.PaymentModel{}).
		Where("payment_booking_id = ?", booking.BookingID).
		Where("payment_status IN ?", []string{m.PaymentStatusPending, m.PaymentStatusPaid}).
		Count(&pending).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if pending > 0 {
		return helper.JsonError(c, http.StatusConflict, "Booking already has an active payment")
	}

	payment := m.PaymentModel{
		PaymentBookingID: booking.BookingID,
		PaymentUserID:    userID,
		PaymentAmount:    req.PaymentAmount,
		PaymentStatus:    m.PaymentStatusPending,
		PaymentOrderID:   fmt.Sprintf("BOOKING-%d", time.Now().UnixNano()),
		PaymentGateway:   "midtrans",
	}
	if err := ctl.DB.WithContext(ctx).Create(&payment).Error; err != nil {
		log.Println("[ERROR] Failed to create payment:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to create payment")
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(ctx).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	token, redirectURL, err := paymentService.GenerateSnapToken(payment, user.UserName, user.UserEmail)
	if err != nil {
		log.Println("[ERROR] GenerateSnapToken failed:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to create payment token")
	}

	payment.PaymentToken = &token
	if err := ctl.DB.WithContext(ctx).Model(&payment).
		Update("payment_token", &token).Error; err != nil {
		log.Println("[ERROR] Failed to update token:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to store payment token")
	}

	return helper.JsonCreated(c, "OK", d.SnapCheckoutResponse{
		OrderID:     payment.PaymentOrderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

/* =========================
   Webhook  (Public, called by Midtrans)
   Path: POST /payments/webhook
   ========================= */

func (ctl *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid webhook body")
	}

	if err := paymentService.HandlePaymentStatusWebhook(ctl.DB.WithContext(c.UserContext()), body); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{"processed": true})
}

/* =========================
   Get By Booking
   Path: GET /payments/booking/:booking_id
   ========================= */

func (ctl *PaymentController) GetByBooking(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	bookingID, err := uuid.Parse(strings.TrimSpace(c.Params("booking_id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid booking id")
	}

	var rows []m.PaymentModel
	tx := ctl.DB.WithContext(c.UserContext()).
		Where("payment_booking_id = ?", bookingID).
		Order("payment_created_at DESC")
	if !helper.IsAdmin(c) {
		tx = tx.Where("payment_user_id = ?", userID)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	data := make([]*d.PaymentResponse, 0, len(rows))
	for i := range rows {
		data = append(data, d.FromModelPayment(&rows[i]))
	}
	return helper.JsonOK(c, "OK", data)
}
