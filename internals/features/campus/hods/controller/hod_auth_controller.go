// file: internals/features/campus/hods/controller/hod_auth_controller.go
package controller

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/constants"
	membershipService "kampusku_backend/internals/features/academics/membership/service"
	hodDTO "kampusku_backend/internals/features/campus/hods/dto"
	hodModel "kampusku_backend/internals/features/campus/hods/model"
	hodService "kampusku_backend/internals/features/campus/hods/service"
	helper "kampusku_backend/internals/helpers"
	authHelper "kampusku_backend/internals/helpers/auth"
	"kampusku_backend/internals/helpers/mailer"
)

/* ===============================
   Controller & Constructor
=============================== */

type HodAuthController struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
}

func NewHodAuthController(db *gorm.DB, m mailer.Mailer) *HodAuthController {
	return &HodAuthController{DB: db, Mailer: m}
}

func (ctrl *HodAuthController) findByEmail(email string) (*hodModel.CampusModel, error) {
	var m hodModel.CampusModel
	err := ctrl.DB.First(&m, "LOWER(campus_email) = LOWER(?)", strings.TrimSpace(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Akun kampus tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil akun kampus")
	}
	return &m, nil
}

/* ===============================
   REGISTER + VERIFY
=============================== */

// POST /api/hod/register
func (ctrl *HodAuthController) Register(c *fiber.Ctx) error {
	var req hodDTO.RegisterCampusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Hash kredensial gagal")
	}
	hashedAlt, err := authHelper.HashPassword(req.AltPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Hash kredensial gagal")
	}

	m := hodModel.CampusModel{
		CampusCollegeName: strings.TrimSpace(req.CollegeName),
		CampusUsername:    strings.TrimSpace(req.Username),
		CampusEmail:       strings.ToLower(strings.TrimSpace(req.Email)),
		CampusPassword:    hashed,
		CampusAltPassword: hashedAlt,
		CampusIsVerified:  false,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username atau email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan kampus")
	}

	if err := hodService.IssueOtp(ctrl.DB, &m, ctrl.Mailer, hodModel.CampusOtpPurposeRegister); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Registrasi berhasil, cek email untuk OTP verifikasi", hodDTO.FromCampusModel(m))
}

// POST /api/hod/verify-otp
func (ctrl *HodAuthController) VerifyRegisterOtp(c *fiber.Ctx) error {
	var req hodDTO.VerifyOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := ctrl.findByEmail(req.Email)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := hodService.CheckOtp(m, hodModel.CampusOtpPurposeRegister, req.Otp); err != nil {
		return helper.FromFiberError(c, err)
	}

	m.CampusIsVerified = true
	m.ClearOtp(hodModel.CampusOtpPurposeRegister)
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status verifikasi")
	}
	return helper.JsonOK(c, "Akun kampus terverifikasi", hodDTO.FromCampusModel(*m))
}

/* ===============================
   LOGIN
=============================== */

// POST /api/hod/login — identifier bisa username atau email;
// password utama dan alternate dua-duanya valid.
func (ctrl *HodAuthController) Login(c *fiber.Ctx) error {
	var req hodDTO.LoginCampusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ident := strings.TrimSpace(req.Identifier)
	var m hodModel.CampusModel
	if err := ctrl.DB.
		First(&m, "campus_username = ? OR LOWER(campus_email) = LOWER(?)", ident, ident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Identitas atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil akun kampus")
	}

	if !authHelper.CheckPassword(m.CampusPassword, req.Password) &&
		!authHelper.CheckPassword(m.CampusAltPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identitas atau password salah")
	}
	if !m.CampusIsVerified {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun belum diverifikasi, cek email OTP Anda")
	}

	token, err := hodService.CreateAccessToken(m.CampusID, m.CampusID, constants.RoleHod)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", hodDTO.LoginResponse{
		AccessToken: token,
		Campus:      hodDTO.FromCampusModel(m),
	})
}

// POST /api/hod/login-google — akun harus sudah terdaftar dengan email
// yang sama; Google hanya menggantikan pemeriksaan password.
func (ctrl *HodAuthController) LoginGoogle(c *fiber.Ctx) error {
	var req hodDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID Token tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca ID Token")
	}

	m, err := ctrl.findByEmail(claimSet.Email)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !m.CampusIsVerified {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun belum diverifikasi, cek email OTP Anda")
	}

	token, err := hodService.CreateAccessToken(m.CampusID, m.CampusID, constants.RoleHod)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", hodDTO.LoginResponse{
		AccessToken: token,
		Campus:      hodDTO.FromCampusModel(*m),
	})
}

/* ===============================
   UPDATE PROFIL (2 fase)
=============================== */

// POST /api/hod/request-update — stage perubahan + kirim OTP.
func (ctrl *HodAuthController) RequestUpdate(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req hodDTO.RequestUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Email == nil && req.Password == nil && req.AltPassword == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan yang diminta")
	}

	var m hodModel.CampusModel
	if err := ctrl.DB.First(&m, "campus_id = ?", campusID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Akun kampus tidak ditemukan")
	}

	// Staging: kredensial di-hash SEKARANG, bukan saat confirm —
	// plaintext tidak pernah mampir ke tabel.
	if req.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*req.Email))
		m.CampusPendingEmail = &e
	}
	if req.Password != nil {
		h, err := authHelper.HashPassword(*req.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Hash kredensial gagal")
		}
		m.CampusPendingPassword = &h
	}
	if req.AltPassword != nil {
		h, err := authHelper.HashPassword(*req.AltPassword)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Hash kredensial gagal")
		}
		m.CampusPendingAltPassword = &h
	}

	if err := hodService.IssueOtp(ctrl.DB, &m, ctrl.Mailer, hodModel.CampusOtpPurposeUpdate); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OTP konfirmasi perubahan dikirim ke email", nil)
}

// POST /api/hod/confirm-update — terapkan staging setelah OTP cocok.
func (ctrl *HodAuthController) ConfirmUpdate(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req hodDTO.ConfirmOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m hodModel.CampusModel
	if err := ctrl.DB.First(&m, "campus_id = ?", campusID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Akun kampus tidak ditemukan")
	}
	if err := hodService.CheckOtp(&m, hodModel.CampusOtpPurposeUpdate, req.Otp); err != nil {
		return helper.FromFiberError(c, err)
	}

	if m.CampusPendingEmail != nil {
		m.CampusEmail = *m.CampusPendingEmail
	}
	if m.CampusPendingPassword != nil {
		m.CampusPassword = *m.CampusPendingPassword
	}
	if m.CampusPendingAltPassword != nil {
		m.CampusAltPassword = *m.CampusPendingAltPassword
	}
	m.CampusPendingEmail, m.CampusPendingPassword, m.CampusPendingAltPassword = nil, nil, nil
	m.ClearOtp(hodModel.CampusOtpPurposeUpdate)

	if err := ctrl.DB.Save(&m).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email sudah dipakai akun lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerapkan perubahan")
	}
	return helper.JsonUpdated(c, "Profil kampus diperbarui", hodDTO.FromCampusModel(m))
}

/* ===============================
   DELETE AKUN (2 fase, cascade)
=============================== */

// POST /api/hod/request-delete
func (ctrl *HodAuthController) RequestDelete(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m hodModel.CampusModel
	if err := ctrl.DB.First(&m, "campus_id = ?", campusID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Akun kampus tidak ditemukan")
	}
	if err := hodService.IssueOtp(ctrl.DB, &m, ctrl.Mailer, hodModel.CampusOtpPurposeDelete); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OTP konfirmasi penghapusan dikirim ke email", nil)
}

// POST /api/hod/confirm-delete — OTP cocok → cascade delete seluruh
// isi tenant dalam satu transaksi (lihat membership service).
func (ctrl *HodAuthController) ConfirmDelete(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req hodDTO.ConfirmOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m hodModel.CampusModel
	if err := ctrl.DB.First(&m, "campus_id = ?", campusID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Akun kampus tidak ditemukan")
	}
	if err := hodService.CheckOtp(&m, hodModel.CampusOtpPurposeDelete, req.Otp); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := membershipService.DeleteCampus(ctrl.DB, campusID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Akun kampus dan seluruh datanya dihapus", hodDTO.FromCampusModel(m))
}

/* ===============================
   ME
=============================== */

// GET /api/hod/me
func (ctrl *HodAuthController) Me(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m hodModel.CampusModel
	if err := ctrl.DB.First(&m, "campus_id = ?", campusID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Akun kampus tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", hodDTO.FromCampusModel(m))
}
