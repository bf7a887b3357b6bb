// file: internals/features/campus/hods/dto/campus_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	hodModel "kampusku_backend/internals/features/campus/hods/model"
)

/* ===================== REQUESTS ===================== */

type RegisterCampusRequest struct {
	CollegeName string `json:"college_name" validate:"required,min=3,max=150"`
	Username    string `json:"username" validate:"required,min=3,max=60"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	AltPassword string `json:"alt_password" validate:"required,min=8"`
}

type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6"`
}

type LoginCampusRequest struct {
	// Username atau email, dua-duanya diterima
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RequestUpdateRequest — perubahan di-stage dulu; baru diterapkan
// setelah OTP update terverifikasi.
type RequestUpdateRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=8"`
	AltPassword *string `json:"alt_password" validate:"omitempty,min=8"`
}

type ConfirmOtpRequest struct {
	Otp string `json:"otp" validate:"required,len=6"`
}

/* ===================== RESPONSES ===================== */

type CampusResponse struct {
	CampusID          uuid.UUID `json:"campus_id"`
	CampusCollegeName string    `json:"campus_college_name"`
	CampusUsername    string    `json:"campus_username"`
	CampusEmail       string    `json:"campus_email"`
	CampusIsVerified  bool      `json:"campus_is_verified"`
	CampusCreatedAt   time.Time `json:"campus_created_at"`
}

func FromCampusModel(m hodModel.CampusModel) CampusResponse {
	return CampusResponse{
		CampusID:          m.CampusID,
		CampusCollegeName: m.CampusCollegeName,
		CampusUsername:    m.CampusUsername,
		CampusEmail:       m.CampusEmail,
		CampusIsVerified:  m.CampusIsVerified,
		CampusCreatedAt:   m.CampusCreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	Campus      CampusResponse `json:"campus"`
}
