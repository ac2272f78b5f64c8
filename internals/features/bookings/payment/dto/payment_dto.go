// file: internals/features/bookings/payment/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "villashare_backend/internals/features/bookings/payment/model"
)

type CreatePaymentRequest struct {
	PaymentBookingID uuid.UUID `json:"payment_booking_id" validate:"required,uuid4"`
	PaymentAmount    int       `json:"payment_amount" validate:"required,gt=0"`
}

type PaymentResponse struct {
	PaymentID        uuid.UUID  `json:"payment_id"`
	PaymentBookingID uuid.UUID  `json:"payment_booking_id"`
	PaymentUserID    uuid.UUID  `json:"payment_user_id"`
	PaymentAmount    int        `json:"payment_amount"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentOrderID   string     `json:"payment_order_id"`
	PaymentGateway   string     `json:"payment_gateway"`
	PaymentMethod    *string    `json:"payment_method,omitempty"`
	PaymentPaidAt    *time.Time `json:"payment_paid_at,omitempty"`
	PaymentCreatedAt time.Time  `json:"payment_created_at"`
}

func FromModelPayment(p *m.PaymentModel) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:        p.PaymentID,
		PaymentBookingID: p.PaymentBookingID,
		PaymentUserID:    p.PaymentUserID,
		PaymentAmount:    p.PaymentAmount,
		PaymentStatus:    p.PaymentStatus,
		PaymentOrderID:   p.PaymentOrderID,
		PaymentGateway:   p.PaymentGateway,
		PaymentMethod:    p.PaymentMethod,
		PaymentPaidAt:    p.PaymentPaidAt,
		PaymentCreatedAt: p.PaymentCreatedAt,
	}
}

// SnapCheckoutResponse is what the frontend needs to open the Snap popup.
type SnapCheckoutResponse struct {
	OrderID     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}
