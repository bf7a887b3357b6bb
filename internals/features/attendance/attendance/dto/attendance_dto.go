// file: internals/features/attendance/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "kampusku_backend/internals/features/attendance/attendance/model"
)

/* ===================== REQUESTS ===================== */

// MarkEntry — satu pasangan (student, hadir/absen) dari client.
// StudentID sengaja string: yang malformed tidak menggagalkan request,
// cuma dilaporkan skipped.
type MarkEntry struct {
	StudentID string `json:"student_id"`
	Present   bool   `json:"present"`
}

type MarkAttendanceRequest struct {
	ClassID uuid.UUID `json:"class_id" validate:"required"`
	Slot    int       `json:"slot" validate:"required,gte=1"`

	// Salah satu wajib: date_millis (epoch ms, sudah local midnight)
	// atau date "YYYY-MM-DD"
	DateMillis *int64 `json:"date_millis" validate:"omitempty"`
	Date       string `json:"date" validate:"omitempty"`

	Entries []MarkEntry `json:"entries" validate:"required,min=1"`
}

/* ===================== RESPONSES ===================== */

type SkippedEntry struct {
	StudentID string `json:"student_id"`
	Reason    string `json:"reason"`
}

// MarkAttendanceResponse — hasil notify TIDAK ikut kontrak sukses/gagal.
type MarkAttendanceResponse struct {
	Saved   int            `json:"saved"`
	Skipped []SkippedEntry `json:"skipped"`
}

type AttendanceRecordResponse struct {
	AttendanceRecordID        uuid.UUID `json:"attendance_record_id"`
	AttendanceRecordStudentID uuid.UUID `json:"attendance_record_student_id"`
	AttendanceRecordClassID   uuid.UUID `json:"attendance_record_class_id"`
	AttendanceRecordDate      time.Time `json:"attendance_record_date"`
	AttendanceRecordSlot      int       `json:"attendance_record_slot"`
	AttendanceRecordIsPresent bool      `json:"attendance_record_is_present"`
	AttendanceRecordMarkedBy  uuid.UUID `json:"attendance_record_marked_by"`
}

func FromAttendanceRecordModel(m attendanceModel.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordID:        m.AttendanceRecordID,
		AttendanceRecordStudentID: m.AttendanceRecordStudentID,
		AttendanceRecordClassID:   m.AttendanceRecordClassID,
		AttendanceRecordDate:      m.AttendanceRecordDate,
		AttendanceRecordSlot:      m.AttendanceRecordSlot,
		AttendanceRecordIsPresent: m.AttendanceRecordIsPresent,
		AttendanceRecordMarkedBy:  m.AttendanceRecordMarkedBy,
	}
}

func FromAttendanceRecordModels(ms []attendanceModel.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromAttendanceRecordModel(m))
	}
	return out
}

// MonthlySummaryRow — agregat per student dalam satu bulan kalender.
type MonthlySummaryRow struct {
	StudentID    uuid.UUID `json:"student_id" gorm:"column:student_id"`
	EnrollmentNo string    `json:"enrollment_no" gorm:"column:student_enrollment_no"`
	Name         string    `json:"name" gorm:"column:student_name"`
	Presents     int64     `json:"presents" gorm:"column:presents"`
	Total        int64     `json:"total" gorm:"column:total"`
	Percentage   float64   `json:"percentage" gorm:"-"`
}
