// file: internals/features/academics/membership/service/membership_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "kampusku_backend/internals/features/academics/classes/model"
	membershipModel "kampusku_backend/internals/features/academics/membership/model"
	professorModel "kampusku_backend/internals/features/academics/professors/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	attendanceModel "kampusku_backend/internals/features/attendance/attendance/model"
	hodModel "kampusku_backend/internals/features/campus/hods/model"
)

/* ===============================
   Guard & util
=============================== */

// resolveClass memastikan kelas ada & milik kampus pemanggil.
func resolveClass(db *gorm.DB, campusID, classID uuid.UUID) (*classModel.ClassModel, error) {
	var cls classModel.ClassModel
	if err := db.
		First(&cls, "class_id = ? AND class_campus_id = ?", classID, campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	return &cls, nil
}

// dedupUUIDs buang duplikat sambil mempertahankan urutan.
func dedupUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ensureAllOwned cek SEMUA id ada & milik kampus (all-or-nothing,
// check-then-act: tidak ada write sebelum semua referensi valid).
func ensureAllOwned(db *gorm.DB, table, idCol, campusCol string, campusID uuid.UUID, ids []uuid.UUID) error {
	var n int64
	if err := db.Table(table).
		Where(idCol+" IN ? AND "+campusCol+" = ?", ids, campusID).
		Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa referensi")
	}
	if n != int64(len(ids)) {
		return fiber.NewError(fiber.StatusNotFound, "Ada referensi yang tidak ditemukan di kampus Anda")
	}
	return nil
}

/* ===============================
   Assign / Remove — Student
=============================== */

// AssignStudents menambahkan student ke roster kelas (set semantics:
// duplikat jadi no-op lewat ON CONFLICT DO NOTHING).
func AssignStudents(db *gorm.DB, campusID, classID uuid.UUID, studentIDs []uuid.UUID) error {
	studentIDs = dedupUUIDs(studentIDs)
	if len(studentIDs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Daftar student kosong")
	}
	if _, err := resolveClass(db, campusID, classID); err != nil {
		return err
	}
	if err := ensureAllOwned(db, "students", "student_id", "student_campus_id", campusID, studentIDs); err != nil {
		return err
	}

	rows := make([]membershipModel.ClassStudentModel, 0, len(studentIDs))
	for _, sid := range studentIDs {
		rows = append(rows, membershipModel.ClassStudentModel{
			ClassStudentCampusID:  campusID,
			ClassStudentClassID:   classID,
			ClassStudentStudentID: sid,
		})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambahkan student ke kelas")
	}
	return nil
}

// RemoveStudents melepas student dari roster; referensi yang memang
// tidak terpasang ditoleransi (idempotent).
func RemoveStudents(db *gorm.DB, campusID, classID uuid.UUID, studentIDs []uuid.UUID) error {
	studentIDs = dedupUUIDs(studentIDs)
	if len(studentIDs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Daftar student kosong")
	}
	if _, err := resolveClass(db, campusID, classID); err != nil {
		return err
	}
	if err := db.
		Where("class_student_class_id = ? AND class_student_student_id IN ?", classID, studentIDs).
		Delete(&membershipModel.ClassStudentModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal melepas student dari kelas")
	}
	return nil
}

/* ===============================
   Assign / Remove — Professor
=============================== */

func AssignProfessors(db *gorm.DB, campusID, classID uuid.UUID, professorIDs []uuid.UUID) error {
	professorIDs = dedupUUIDs(professorIDs)
	if len(professorIDs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Daftar professor kosong")
	}
	if _, err := resolveClass(db, campusID, classID); err != nil {
		return err
	}
	if err := ensureAllOwned(db, "professors", "professor_id", "professor_campus_id", campusID, professorIDs); err != nil {
		return err
	}

	rows := make([]membershipModel.ClassProfessorModel, 0, len(professorIDs))
	for _, pid := range professorIDs {
		rows = append(rows, membershipModel.ClassProfessorModel{
			ClassProfessorCampusID:    campusID,
			ClassProfessorClassID:     classID,
			ClassProfessorProfessorID: pid,
		})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambahkan professor ke kelas")
	}
	return nil
}

func RemoveProfessors(db *gorm.DB, campusID, classID uuid.UUID, professorIDs []uuid.UUID) error {
	professorIDs = dedupUUIDs(professorIDs)
	if len(professorIDs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Daftar professor kosong")
	}
	if _, err := resolveClass(db, campusID, classID); err != nil {
		return err
	}
	if err := db.
		Where("class_professor_class_id = ? AND class_professor_professor_id IN ?", classID, professorIDs).
		Delete(&membershipModel.ClassProfessorModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal melepas professor dari kelas")
	}
	return nil
}

/* ===============================
   Roster lookup
=============================== */

// ClassRoster mengembalikan id anggota kelas (student & professor).
func ClassRoster(db *gorm.DB, classID uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	studentIDs := make([]uuid.UUID, 0)
	if err := db.Model(&membershipModel.ClassStudentModel{}).
		Where("class_student_class_id = ?", classID).
		Pluck("class_student_student_id", &studentIDs).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil roster kelas")
	}
	professorIDs := make([]uuid.UUID, 0)
	if err := db.Model(&membershipModel.ClassProfessorModel{}).
		Where("class_professor_class_id = ?", classID).
		Pluck("class_professor_professor_id", &professorIDs).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil roster kelas")
	}
	return studentIDs, professorIDs, nil
}

/* ===============================
   Cascade delete — Class
=============================== */

// DeleteClasses menghapus kelas beserta roster & record absensinya
// dalam SATU transaksi; gagal di tengah = rollback total, tidak ada
// referensi gantung.
func DeleteClasses(db *gorm.DB, campusID uuid.UUID, classIDs []uuid.UUID) error {
	classIDs = dedupUUIDs(classIDs)
	if len(classIDs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Daftar kelas kosong")
	}
	if err := ensureAllOwned(db, "classes", "class_id", "class_campus_id", campusID, classIDs); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_record_class_id IN ?", classIDs).
			Delete(&attendanceModel.AttendanceRecordModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus record absensi kelas")
		}
		if err := tx.Where("class_student_class_id IN ?", classIDs).
			Delete(&membershipModel.ClassStudentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal melepas roster student")
		}
		if err := tx.Where("class_professor_class_id IN ?", classIDs).
			Delete(&membershipModel.ClassProfessorModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal melepas roster professor")
		}
		if err := tx.Where("class_id IN ?", classIDs).
			Delete(&classModel.ClassModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kelas")
		}
		return nil
	})
}

func DeleteClass(db *gorm.DB, campusID, classID uuid.UUID) error {
	return DeleteClasses(db, campusID, []uuid.UUID{classID})
}

/* ===============================
   Cascade delete — Student / Professor
=============================== */

// DeleteStudents: lepas dari semua kelas + hapus record absensinya,
// lalu hapus entitasnya — satu transaksi.
func DeleteStudents(db *gorm.DB, campusID uuid.UUID, studentIDs []uuid.UUID) error {
	studentIDs = dedupUUIDs(studentIDs)
	if len(studentIDs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Daftar student kosong")
	}
	if err := ensureAllOwned(db, "students", "student_id", "student_campus_id", campusID, studentIDs); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_record_student_id IN ?", studentIDs).
			Delete(&attendanceModel.AttendanceRecordModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus record absensi student")
		}
		if err := tx.Where("class_student_student_id IN ?", studentIDs).
			Delete(&membershipModel.ClassStudentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal melepas student dari kelas")
		}
		if err := tx.Where("student_id IN ?", studentIDs).
			Delete(&studentModel.StudentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus student")
		}
		return nil
	})
}

func DeleteStudent(db *gorm.DB, campusID, studentID uuid.UUID) error {
	return DeleteStudents(db, campusID, []uuid.UUID{studentID})
}

// DeleteProfessors: record absensi yang DIA tandai ikut terhapus
// (marked_by), bukan hanya roster-nya.
func DeleteProfessors(db *gorm.DB, campusID uuid.UUID, professorIDs []uuid.UUID) error {
	professorIDs = dedupUUIDs(professorIDs)
	if len(professorIDs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Daftar professor kosong")
	}
	if err := ensureAllOwned(db, "professors", "professor_id", "professor_campus_id", campusID, professorIDs); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_record_marked_by IN ?", professorIDs).
			Delete(&attendanceModel.AttendanceRecordModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus record absensi professor")
		}
		if err := tx.Where("class_professor_professor_id IN ?", professorIDs).
			Delete(&membershipModel.ClassProfessorModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal melepas professor dari kelas")
		}
		if err := tx.Where("professor_id IN ?", professorIDs).
			Delete(&professorModel.ProfessorModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus professor")
		}
		return nil
	})
}

func DeleteProfessor(db *gorm.DB, campusID, professorID uuid.UUID) error {
	return DeleteProfessors(db, campusID, []uuid.UUID{professorID})
}

/* ===============================
   Cascade root — Campus (HOD)
=============================== */

// DeleteCampus menghapus SEMUA yang dimiliki tenant dalam satu
// transaksi all-or-nothing: absensi, roster, kelas, student,
// professor, counter, lalu akun kampusnya sendiri. Gagal sebagian =
// state pra-delete utuh.
func DeleteCampus(db *gorm.DB, campusID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_record_campus_id = ?", campusID).
			Delete(&attendanceModel.AttendanceRecordModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus record absensi kampus")
		}
		if err := tx.Where("class_student_campus_id = ?", campusID).
			Delete(&membershipModel.ClassStudentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus roster student kampus")
		}
		if err := tx.Where("class_professor_campus_id = ?", campusID).
			Delete(&membershipModel.ClassProfessorModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus roster professor kampus")
		}
		if err := tx.Where("class_campus_id = ?", campusID).
			Delete(&classModel.ClassModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kelas kampus")
		}
		if err := tx.Where("student_campus_id = ?", campusID).
			Delete(&studentModel.StudentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus student kampus")
		}
		if err := tx.Where("professor_campus_id = ?", campusID).
			Delete(&professorModel.ProfessorModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus professor kampus")
		}
		if err := tx.Where("class_counter_campus_id = ?", campusID).
			Delete(&classModel.ClassCounterModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus counter kelas kampus")
		}
		if err := tx.Where("campus_id = ?", campusID).
			Delete(&hodModel.CampusModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus akun kampus")
		}
		return nil
	})
}
