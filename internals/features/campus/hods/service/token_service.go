// file: internals/features/campus/hods/service/token_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"kampusku_backend/internals/configs"
)

const accessTTLDefault = 24 * time.Hour

// CreateAccessToken menerbitkan JWT berisi triple
// (user_id, role, campus_id) yang dibaca AuthMiddleware.
func CreateAccessToken(userID, campusID uuid.UUID, role string) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   userID.String(),
		"role":      role,
		"campus_id": campusID.String(),
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menandatangani token")
	}
	return signed, nil
}
