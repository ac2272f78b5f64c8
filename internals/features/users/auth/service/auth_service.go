// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"villashare_backend/internals/configs"
	userModel "villashare_backend/internals/features/users/user/model"
	helper "villashare_backend/internals/helpers"
)

/* ==========================
   REGISTER
   POST /api/auth/register
========================== */

type RegisterInput struct {
	UserName     string  `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail    string  `json:"user_email" validate:"required,email"`
	UserPassword string  `json:"user_password" validate:"required,min=8,max=72"`
	UserPhone    *string `json:"user_phone" validate:"omitempty,max=30"`
}

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	input.UserEmail = strings.ToLower(strings.TrimSpace(input.UserEmail))
	input.UserName = strings.TrimSpace(input.UserName)
	if input.UserName == "" || input.UserEmail == "" || len(input.UserPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "user_name, user_email and a password of at least 8 characters are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName:     input.UserName,
		UserEmail:    input.UserEmail,
		UserPassword: string(hashed),
		UserPhone:    input.UserPhone,
		UserRole:     "owner",
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registration successful", fiber.Map{
		"user_id":    user.UserID,
		"user_name":  user.UserName,
		"user_email": user.UserEmail,
	})
}

/* ==========================
   LOGIN
   POST /api/auth/login
========================== */

type LoginInput struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	email := strings.ToLower(strings.TrimSpace(input.UserEmail))

	var user userModel.UserModel
	if err := db.First(&user, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email or password incorrect")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}
	if user.UserPassword == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account uses Google sign-in")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(input.UserPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email or password incorrect")
	}

	return issueTokens(c, db, user)
}

/* ==========================
   LOGIN GOOGLE
   POST /api/auth/login-google
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	err = db.First(&user, "user_google_id = ?", googleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = userModel.UserModel{
			UserName:     name,
			UserEmail:    strings.ToLower(email),
			UserGoogleID: &googleID,
			UserRole:     "owner",
			UserIsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}

	return issueTokens(c, db, user)
}
