// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"villashare_backend/internals/configs"
	authModel "villashare_backend/internals/features/users/auth/model"
	userModel "villashare_backend/internals/features/users/user/model"
	helper "villashare_backend/internals/helpers"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func signToken(user userModel.UserModel, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.UserID.String(),
		"id":   user.UserID.String(),
		"role": user.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// issueTokens signs a fresh access/refresh pair, stores the refresh hash
// and sets both cookies.
func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	accessToken, err := signToken(user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign access token")
	}
	refreshToken, err := signToken(user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign refresh token")
	}

	ua := c.Get("User-Agent")
	ip := c.IP()
	row := authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      computeRefreshHash(refreshToken, configs.JWTRefreshSecret),
		RefreshTokenExpiresAt: time.Now().Add(refreshTokenTTL),
		RefreshTokenUserAgent: &ua,
		RefreshTokenIP:        &ip,
	}
	if err := db.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	secure := configs.GetEnv("COOKIE_SECURE", "true") == "true"
	c.Cookie(&fiber.Cookie{
		Name: "access_token", Value: accessToken,
		Expires: time.Now().Add(accessTokenTTL), HTTPOnly: true, Secure: secure, SameSite: "Lax", Path: "/",
	})
	c.Cookie(&fiber.Cookie{
		Name: "refresh_token", Value: refreshToken,
		Expires: time.Now().Add(refreshTokenTTL), HTTPOnly: true, Secure: secure, SameSite: "Lax", Path: "/",
	})

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"user_id":    user.UserID,
			"user_name":  user.UserName,
			"user_email": user.UserEmail,
			"user_role":  user.UserRole,
		},
	})
}

/* ==========================
   REFRESH TOKEN
   POST /api/auth/refresh-token
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	hash := computeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
	var row authModel.RefreshTokenModel
	if err := db.
		Where("refresh_token_hash = ? AND refresh_token_revoked_at IS NULL AND refresh_token_expires_at > NOW()", hash).
		First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token unknown")
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "User not found")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}

	// rotate: old token is gone from now on
	if err := db.Delete(&authModel.RefreshTokenModel{}, "refresh_token_hash = ?", hash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}

	return issueTokens(c, db, user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		hash := computeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
		_ = db.Delete(&authModel.RefreshTokenModel{}, "refresh_token_hash = ?", hash).Error
	}

	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})

	return helper.JsonOK(c, "Logged out", nil)
}
