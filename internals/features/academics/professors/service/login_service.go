// file: internals/features/academics/professors/service/login_service.go
package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/features/academics/professors/model"
	hodModel "kampusku_backend/internals/features/campus/hods/model"
)

// FindByLoginIdentity mencari akun dosen mengikuti scope identitas:
//   - global: identifier = email, unik lintas kampus
//   - campus: identifier = username, unik HANYA per kampus — wajib
//     disertai campus_username supaya dua kampus dengan username dosen
//     yang sama tidak saling tertukar.
//
// Not-found dan kampus tak dikenal dua-duanya 401 generik; endpoint
// login tidak membocorkan akun mana yang ada.
func FindByLoginIdentity(db *gorm.DB, identifier, campusUsername string) (*model.ProfessorModel, error) {
	identifier = strings.TrimSpace(identifier)

	var m model.ProfessorModel
	if configs.IdentityScope == configs.IdentityScopeGlobal {
		err := db.First(&m, "LOWER(professor_email) = LOWER(?)", identifier).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Identitas atau password salah")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil akun dosen")
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
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Identitas atau password salah")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil akun kampus")
	}

	err := db.First(&m, "professor_campus_id = ? AND professor_username = ?", campus.CampusID, identifier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Identitas atau password salah")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil akun dosen")
	}
	return &m, nil
}
