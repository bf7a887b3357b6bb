// file: internals/features/campus/hods/service/otp_service.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hodModel "kampusku_backend/internals/features/campus/hods/model"
	authHelper "kampusku_backend/internals/helpers/auth"
	"kampusku_backend/internals/helpers/mailer"
)

const otpTTL = 10 * time.Minute

var otpSubjects = map[string]string{
	hodModel.CampusOtpPurposeRegister: "Kode verifikasi pendaftaran",
	hodModel.CampusOtpPurposeUpdate:   "Kode konfirmasi perubahan profil",
	hodModel.CampusOtpPurposeDelete:   "Kode konfirmasi penghapusan akun",
}

// IssueOtp membuat OTP baru untuk satu tujuan (menimpa yang outstanding),
// menyimpannya, lalu mengirim email. Gagal kirim email = gagal operasi
// — OTP yang tak pernah sampai tidak berguna.
func IssueOtp(db *gorm.DB, m *hodModel.CampusModel, mail mailer.Mailer, purpose string) error {
	code, err := authHelper.GenerateOtp(6)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat OTP")
	}
	m.SetOtp(purpose, code, time.Now().Add(otpTTL))
	if err := db.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan OTP")
	}
	subject := otpSubjects[purpose]
	body := "Kode OTP Anda: " + code + " (berlaku " + otpTTL.String() + ")"
	if err := mail.Send(m.CampusEmail, subject, body); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengirim email OTP")
	}
	return nil
}

// CheckOtp memverifikasi OTP satu tujuan: cocok & belum expired.
func CheckOtp(m *hodModel.CampusModel, purpose, code string) error {
	stored, expiresAt := m.OtpFor(purpose)
	if stored == nil || expiresAt == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada OTP yang diminta")
	}
	if time.Now().After(*expiresAt) {
		return fiber.NewError(fiber.StatusBadRequest, "OTP sudah kedaluwarsa")
	}
	if strings.TrimSpace(code) != *stored {
		return fiber.NewError(fiber.StatusBadRequest, "OTP salah")
	}
	return nil
}

// StartOtpCleanupScheduler membersihkan kolom OTP yang sudah lewat
// expiry supaya tidak ada kode basi tersimpan.
func StartOtpCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			now := time.Now()
			res := db.Model(&hodModel.CampusModel{}).
				Where("campus_register_otp_expires_at < ?", now).
				Updates(map[string]interface{}{
					"campus_register_otp":            nil,
					"campus_register_otp_expires_at": nil,
				})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] OTP register: %v", res.Error)
			}
			res = db.Model(&hodModel.CampusModel{}).
				Where("campus_update_otp_expires_at < ?", now).
				Updates(map[string]interface{}{
					"campus_update_otp":            nil,
					"campus_update_otp_expires_at": nil,
					"campus_pending_email":         nil,
					"campus_pending_password":      nil,
					"campus_pending_alt_password":  nil,
				})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] OTP update: %v", res.Error)
			}
			res = db.Model(&hodModel.CampusModel{}).
				Where("campus_delete_otp_expires_at < ?", now).
				Updates(map[string]interface{}{
					"campus_delete_otp":            nil,
					"campus_delete_otp_expires_at": nil,
				})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] OTP delete: %v", res.Error)
			}

			time.Sleep(1 * time.Hour)
		}
	}()
}
