// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	UserName  string `json:"user_name"  gorm:"column:user_name;type:varchar(100);not null"`
	UserEmail string `json:"user_email" gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_users_email"`

	// bcrypt hash; empty for Google-only accounts
	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(100)"`

	UserRole     string  `json:"user_role"  gorm:"column:user_role;type:varchar(20);not null;default:'owner'"`
	UserPhone    *string `json:"user_phone,omitempty" gorm:"column:user_phone;type:varchar(30)"`
	UserGoogleID *string `json:"-" gorm:"column:user_google_id;type:varchar(64)"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }
