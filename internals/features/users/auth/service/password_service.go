// internals/features/users/auth/service/password_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "villashare_backend/internals/features/users/user/model"
	helper "villashare_backend/internals/helpers"
)

/* ==========================
   CHANGE PASSWORD
   POST /api/u/auth/change-password
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "new_password must be at least 8 characters")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	if user.UserPassword == "" {
		return helper.JsonError(c, fiber.StatusConflict, "Account uses Google sign-in")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(input.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password", string(newHash)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
