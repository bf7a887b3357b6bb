// file: internals/features/academics/classes/service/class_code_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NextClassCode mengambil nomor kelas berikutnya untuk satu kampus.
// Satu statement atomik (upsert + increment + RETURNING) — dua create
// kelas bersamaan di kampus yang sama tidak akan pernah dapat nomor
// kembar, dan tidak ada read-then-write terpisah.
func NextClassCode(tx *gorm.DB, campusID uuid.UUID) (int, error) {
	var seq int
	err := tx.Raw(`
		INSERT INTO class_counters (class_counter_campus_id, class_counter_seq)
		VALUES (?, 1)
		ON CONFLICT (class_counter_campus_id)
		DO UPDATE SET class_counter_seq = class_counters.class_counter_seq + 1
		RETURNING class_counter_seq
	`, campusID).Scan(&seq).Error
	if err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil nomor kelas")
	}
	return seq, nil
}
