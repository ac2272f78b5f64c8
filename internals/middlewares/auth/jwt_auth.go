package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use the access_token cookie when no Bearer header
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Take the token: Authorization: Bearer xxx (or cookie when allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals("jwt_claims", claims)

		// user_id: prefer id, then sub, then user_id
		switch {
		case strClaim(claims, "id") != "":
			c.Locals("user_id", strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals("user_id", strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals("user_id", strClaim(claims, "user_id"))
		}

		if v := strClaim(claims, "role"); v != "" {
			c.Locals("role", v)
		}

		// fail fast when user_id is not a UUID
		if s, ok := c.Locals("user_id").(string); ok {
			if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid user_id on token")
			}
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// OnlyRolesSlice restricts a route to the given roles.
func OnlyRolesSlice(message string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, message)
	}
}
