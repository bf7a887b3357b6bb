// file: internals/features/campus/hods/service/otp_service_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/constants"
	hodModel "kampusku_backend/internals/features/campus/hods/model"

	"github.com/golang-jwt/jwt/v4"
)

func badRequest(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestCheckOtp(t *testing.T) {
	t.Run("tidak ada OTP outstanding", func(t *testing.T) {
		var m hodModel.CampusModel
		badRequest(t, CheckOtp(&m, hodModel.CampusOtpPurposeRegister, "123456"))
	})

	t.Run("OTP kedaluwarsa", func(t *testing.T) {
		var m hodModel.CampusModel
		m.SetOtp(hodModel.CampusOtpPurposeRegister, "123456", time.Now().Add(-time.Minute))
		badRequest(t, CheckOtp(&m, hodModel.CampusOtpPurposeRegister, "123456"))
	})

	t.Run("kode salah", func(t *testing.T) {
		var m hodModel.CampusModel
		m.SetOtp(hodModel.CampusOtpPurposeRegister, "123456", time.Now().Add(time.Minute))
		badRequest(t, CheckOtp(&m, hodModel.CampusOtpPurposeRegister, "654321"))
	})

	t.Run("kode cocok (dengan spasi) lolos", func(t *testing.T) {
		var m hodModel.CampusModel
		m.SetOtp(hodModel.CampusOtpPurposeUpdate, "123456", time.Now().Add(time.Minute))
		assert.NoError(t, CheckOtp(&m, hodModel.CampusOtpPurposeUpdate, " 123456 "))
	})

	t.Run("tujuan terpisah tidak saling verifikasi", func(t *testing.T) {
		var m hodModel.CampusModel
		m.SetOtp(hodModel.CampusOtpPurposeRegister, "123456", time.Now().Add(time.Minute))
		badRequest(t, CheckOtp(&m, hodModel.CampusOtpPurposeDelete, "123456"))
	})
}

func TestCreateAccessToken(t *testing.T) {
	orig := configs.JWTSecret
	defer func() { configs.JWTSecret = orig }()

	t.Run("secret kosong = error", func(t *testing.T) {
		configs.JWTSecret = ""
		_, err := CreateAccessToken(uuid.New(), uuid.New(), constants.RoleHod)
		assert.Error(t, err)
	})

	t.Run("klaim bisa dibaca balik", func(t *testing.T) {
		configs.JWTSecret = "test-secret"
		userID, campusID := uuid.New(), uuid.New()

		signed, err := CreateAccessToken(userID, campusID, constants.RoleProfessor)
		require.NoError(t, err)

		parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims, ok := parsed.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, userID.String(), claims["user_id"])
		assert.Equal(t, campusID.String(), claims["campus_id"])
		assert.Equal(t, constants.RoleProfessor, claims["role"])
	})
}
