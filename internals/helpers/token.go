// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama locals yang diisi AuthMiddleware setelah verifikasi JWT
const (
	LocUserID   = "user_id"
	LocRole     = "role"
	LocCampusID = "campus_id"
)

// --- util kecil biar gak duplikasi parsing ---
func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
	}
	return id, nil
}

// GetCampusIDFromToken — tenant scope pemanggil (semua role punya ini)
func GetCampusIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocCampusID)
}

// GetUserIDFromToken — identitas pemanggil (hod/professor/student id)
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocUserID)
}

// GetProfessorIDFromToken — identitas pemanggil, hanya valid jika role=professor
func GetProfessorIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if GetRoleFromToken(c) != "professor" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Endpoint ini khusus professor")
	}
	return uuidFromLocals(c, LocUserID)
}

// GetStudentIDFromToken — identitas pemanggil, hanya valid jika role=student
func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if GetRoleFromToken(c) != "student" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Endpoint ini khusus student")
	}
	return uuidFromLocals(c, LocUserID)
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok {
		return s
	}
	return ""
}
