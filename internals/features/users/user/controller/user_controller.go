// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "villashare_backend/internals/helpers"

	d "villashare_backend/internals/features/users/user/dto"
	m "villashare_backend/internals/features/users/user/model"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

/* =========================
   Me (profile of the caller)
   Path: GET /users/me
   ========================= */

func (ctl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", d.FromModelUser(&user))
}

/* =========================
   Update Me
   Path: PATCH /users/me
   ========================= */

func (ctl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "User not found")
	}

	if req.UserName != nil {
		user.UserName = strings.TrimSpace(*req.UserName)
	}
	if req.UserPhone != nil {
		user.UserPhone = req.UserPhone
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Profile updated", d.FromModelUser(&user))
}

/* =========================
   List  (Admin)
   Path: GET /users
   ========================= */

func (ctl *UserController) List(c *fiber.Ctx) error {
	var q d.ListUsersQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	q.Normalize()
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(q); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.UserModel{})
	if q.Q != nil {
		kw := "%" + strings.ToLower(*q.Q) + "%"
		tx = tx.Where("LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ?", kw, kw)
	}
	if q.Role != nil {
		tx = tx.Where("user_role = ?", *q.Role)
	}
	tx = tx.Order("user_created_at DESC")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.UserModel
	if err := tx.Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	data := make([]*d.UserResponse, 0, len(rows))
	for i := range rows {
		data = append(data, d.FromModelUser(&rows[i]))
	}

	return helper.JsonList(c, "OK", data, helper.BuildPaginationFromOffset(total, q.Offset, q.Limit))
}

/* =========================
   Set Active  (Admin)
   Path: PATCH /users/:id/active
   ========================= */

func (ctl *UserController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid user id")
	}

	var req d.SetUserActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	user.UserIsActive = *req.UserIsActive
	if err := ctl.DB.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "User updated", d.FromModelUser(&user))
}
