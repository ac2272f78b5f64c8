package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	bookingModel "villashare_backend/internals/features/bookings/booking/model"
	paymentModel "villashare_backend/internals/features/bookings/payment/model"
)

// HandlePaymentStatusWebhook processes a Midtrans status notification. A
// settled payment also confirms the booking it belongs to.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var payment paymentModel.PaymentModel
	if err := db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		log.Println("[ERROR] Payment not found:", err)
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	confirmBooking := false
	switch status {
	case "capture", "settlement":
		now := time.Now()
		payment.PaymentStatus = paymentModel.PaymentStatusPaid
		payment.PaymentPaidAt = &now
		confirmBooking = true

	case "expire":
		payment.PaymentStatus = paymentModel.PaymentStatusExpired
	case "cancel":
		payment.PaymentStatus = paymentModel.PaymentStatusCanceled
	default:
		log.Println("[INFO] Status not processed:", status)
	}

	if method, ok := body["payment_type"].(string); ok && method != "" {
		payment.PaymentMethod = &method
	}

	if err := db.Save(&payment).Error; err != nil {
		log.Println("[ERROR] Failed to save payment status:", err)
		return err
	}

	if confirmBooking {
		if err := db.Model(&bookingModel.BookingModel{}).
			Where("booking_id = ? AND booking_status = ?", payment.PaymentBookingID, bookingModel.BookingStatusPending).
			Update("booking_status", bookingModel.BookingStatusConfirmed).Error; err != nil {
			log.Println("[ERROR] Failed to confirm booking:", err)
			return err
		}
	}

	return nil
}
