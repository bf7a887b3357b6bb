// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	helper "kampusku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi bearer JWT lalu menaruh
// (user_id, role, campus_id) ke Locals — semua operasi inti
// membaca triple ini sebagai precondition.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// Validasi exp (dengan sedikit leeway utk clock skew)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// Simpan triple (identity, role, tenant) ke context
		for _, key := range []string{helper.LocUserID, helper.LocRole, helper.LocCampusID} {
			v, ok := claims[key].(string)
			if !ok || strings.TrimSpace(v) == "" {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - klaim "+key+" tidak ada di token")
			}
			c.Locals(key, v)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// Cookie dulu (SPA), lalu Authorization header
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	auth := c.Get("Authorization")
	const p = "Bearer "
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):]), nil
	}
	return "", fmt.Errorf("Unauthorized - Token tidak ditemukan")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token tanpa exp")
	}
	expFloat, ok := expVal.(float64)
	if !ok {
		return fmt.Errorf("exp bukan angka")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fmt.Errorf("token expired pada %s", expTime)
	}
	return nil
}
