package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusExpired  = "expired"
	PaymentStatusCanceled = "canceled"
)

/* ===================== Model ===================== */

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentBookingID uuid.UUID `gorm:"column:payment_booking_id;type:uuid;not null;index" json:"payment_booking_id"`
	PaymentUserID    uuid.UUID `gorm:"column:payment_user_id;type:uuid;not null;index" json:"payment_user_id"`

	PaymentAmount int `gorm:"column:payment_amount;not null;check:payment_amount > 0" json:"payment_amount"`

	PaymentStatus  string `gorm:"column:payment_status;type:varchar(20);default:'pending'" json:"payment_status"`
	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(100);not null;unique" json:"payment_order_id"`

	PaymentToken   *string `gorm:"column:payment_token;type:text" json:"payment_token,omitempty"`
	PaymentGateway string  `gorm:"column:payment_gateway;type:varchar(50);default:'midtrans'" json:"payment_gateway"`
	PaymentMethod  *string `gorm:"column:payment_method;type:varchar(50)" json:"payment_method,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
