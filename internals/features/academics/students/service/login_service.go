// file: internals/features/academics/students/service/login_service.go
package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/features/academics/students/model"
	hodModel "kampusku_backend/internals/features/campus/hods/model"
)

// FindByLoginIdentity mencari akun mahasiswa mengikuti scope identitas:
//   - global: NIM unik lintas kampus, cukup NIM saja
//   - campus: NIM unik HANYA per kampus — wajib disertai
//     campus_username supaya NIM kembar di kampus lain tidak tertukar.
//
// Semua jalur not-found mengembalikan 401 generik.
func FindByLoginIdentity(db *gorm.DB, enrollmentNo, campusUsername string) (*model.StudentModel, error) {
	enrollmentNo = strings.TrimSpace(enrollmentNo)

	var m model.StudentModel
	if configs.IdentityScope == configs.IdentityScopeGlobal {
		err := db.First(&m, "student_enrollment_no = ?", enrollmentNo).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "NIM atau password salah")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil akun mahasiswa")
		}
		return &m, nil
	}

	campusUsername = strings.TrimSpace(campusUsername)
	if campusUsername == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "campus_username wajib diisi")
	}
	var campus hodModel.CampusModel
	if err := db.First(&campus, "campus_username = ?", campusUsername).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "NIM atau password salah")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil akun kampus")
	}

	err := db.First(&m, "student_campus_id = ? AND student_enrollment_no = ?", campus.CampusID, enrollmentNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "NIM atau password salah")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil akun mahasiswa")
	}
	return &m, nil
}
