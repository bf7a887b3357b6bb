// file: internals/features/campus/hods/model/campus_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Constants
========================= */

// Tujuan OTP yang dikenal (satu OTP outstanding per tujuan)
const (
	CampusOtpPurposeRegister = "register"
	CampusOtpPurposeUpdate   = "update"
	CampusOtpPurposeDelete   = "delete"
)

/* =========================
   Model
========================= */

// CampusModel = akun HOD/kampus, tenant teratas semua entitas lain.
type CampusModel struct {
	// PK
	CampusID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:campus_id" json:"campus_id"`

	// Identitas
	CampusCollegeName string `gorm:"type:varchar(150);not null;column:campus_college_name" json:"campus_college_name"`
	// Unik hanya di antara baris hidup — index parsial dibuat saat
	// migrasi (lihat database.ApplyUniqueIndexes) supaya kampus yang
	// sudah dihapus tidak menyandera username/email-nya selamanya.
	CampusUsername string `gorm:"type:varchar(60);not null;index;column:campus_username" json:"campus_username"`
	CampusEmail    string `gorm:"type:varchar(120);not null;index;column:campus_email" json:"campus_email"`

	// Dua kredensial independen (dua-duanya bcrypt, dua-duanya bisa dipakai login)
	CampusPassword    string `gorm:"type:varchar(100);not null;column:campus_password" json:"-"`
	CampusAltPassword string `gorm:"type:varchar(100);not null;column:campus_alt_password" json:"-"`

	CampusIsVerified bool `gorm:"not null;default:false;column:campus_is_verified" json:"campus_is_verified"`

	// OTP — maksimal satu outstanding per tujuan
	CampusRegisterOtp          *string    `gorm:"type:varchar(12);column:campus_register_otp" json:"-"`
	CampusRegisterOtpExpiresAt *time.Time `gorm:"type:timestamptz;column:campus_register_otp_expires_at" json:"-"`
	CampusUpdateOtp            *string    `gorm:"type:varchar(12);column:campus_update_otp" json:"-"`
	CampusUpdateOtpExpiresAt   *time.Time `gorm:"type:timestamptz;column:campus_update_otp_expires_at" json:"-"`
	CampusDeleteOtp            *string    `gorm:"type:varchar(12);column:campus_delete_otp" json:"-"`
	CampusDeleteOtpExpiresAt   *time.Time `gorm:"type:timestamptz;column:campus_delete_otp_expires_at" json:"-"`

	// Staging update profil — baru diterapkan saat OTP update terverifikasi
	CampusPendingEmail       *string `gorm:"type:varchar(120);column:campus_pending_email" json:"-"`
	CampusPendingPassword    *string `gorm:"type:varchar(100);column:campus_pending_password" json:"-"`
	CampusPendingAltPassword *string `gorm:"type:varchar(100);column:campus_pending_alt_password" json:"-"`

	// Audit
	CampusCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:campus_created_at" json:"campus_created_at"`
	CampusUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:campus_updated_at" json:"campus_updated_at"`
	CampusDeletedAt gorm.DeletedAt `gorm:"column:campus_deleted_at;index" json:"campus_deleted_at,omitempty"`
}

func (CampusModel) TableName() string { return "campuses" }

// ClearOtp mengosongkan OTP untuk satu tujuan (setelah sukses verifikasi / expired).
func (m *CampusModel) ClearOtp(purpose string) {
	switch purpose {
	case CampusOtpPurposeRegister:
		m.CampusRegisterOtp, m.CampusRegisterOtpExpiresAt = nil, nil
	case CampusOtpPurposeUpdate:
		m.CampusUpdateOtp, m.CampusUpdateOtpExpiresAt = nil, nil
	case CampusOtpPurposeDelete:
		m.CampusDeleteOtp, m.CampusDeleteOtpExpiresAt = nil, nil
	}
}

// OtpFor mengembalikan pasangan (kode, expiry) untuk satu tujuan.
func (m *CampusModel) OtpFor(purpose string) (*string, *time.Time) {
	switch purpose {
	case CampusOtpPurposeRegister:
		return m.CampusRegisterOtp, m.CampusRegisterOtpExpiresAt
	case CampusOtpPurposeUpdate:
		return m.CampusUpdateOtp, m.CampusUpdateOtpExpiresAt
	case CampusOtpPurposeDelete:
		return m.CampusDeleteOtp, m.CampusDeleteOtpExpiresAt
	}
	return nil, nil
}

// SetOtp memasang OTP baru untuk satu tujuan (menimpa yang lama).
func (m *CampusModel) SetOtp(purpose, code string, expiresAt time.Time) {
	switch purpose {
	case CampusOtpPurposeRegister:
		m.CampusRegisterOtp, m.CampusRegisterOtpExpiresAt = &code, &expiresAt
	case CampusOtpPurposeUpdate:
		m.CampusUpdateOtp, m.CampusUpdateOtpExpiresAt = &code, &expiresAt
	case CampusOtpPurposeDelete:
		m.CampusDeleteOtp, m.CampusDeleteOtpExpiresAt = &code, &expiresAt
	}
}
