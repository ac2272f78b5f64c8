// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "villashare_backend/internals/features/users/user/model"
)

type UpdateUserRequest struct {
	UserName  *string `json:"user_name" validate:"omitempty,min=2,max=100"`
	UserPhone *string `json:"user_phone" validate:"omitempty,max=30"`
}

type SetUserActiveRequest struct {
	UserIsActive *bool `json:"user_is_active" validate:"required"`
}

type ListUsersQuery struct {
	Q      *string `query:"q" validate:"omitempty,max=100"`
	Role   *string `query:"role" validate:"omitempty,oneof=owner admin"`
	Limit  int     `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset int     `query:"offset" validate:"omitempty,gte=0"`
}

func (q *ListUsersQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserPhone     *string   `json:"user_phone,omitempty"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func FromModelUser(u *m.UserModel) *UserResponse {
	return &UserResponse{
		UserID:        u.UserID,
		UserName:      u.UserName,
		UserEmail:     u.UserEmail,
		UserRole:      u.UserRole,
		UserPhone:     u.UserPhone,
		UserIsActive:  u.UserIsActive,
		UserCreatedAt: u.UserCreatedAt,
	}
}
