// file: internals/features/attendance/attendance/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecordModel — satu mark kehadiran per
// (student, class, tanggal-sesi, slot). Uniqueness komposit ini
// invariant inti sistem; write path hanya lewat recorder (upsert),
// tidak ada delete individual (hanya ikut cascade).
type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	// Tenant
	AttendanceRecordCampusID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_record_campus_id" json:"attendance_record_campus_id"`

	// Kunci komposit
	AttendanceRecordStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_records_key;index;column:attendance_record_student_id" json:"attendance_record_student_id"`
	AttendanceRecordClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_records_key;index;column:attendance_record_class_id" json:"attendance_record_class_id"`
	AttendanceRecordDate      time.Time `gorm:"type:timestamptz;not null;uniqueIndex:uq_attendance_records_key;index;column:attendance_record_date" json:"attendance_record_date"`
	AttendanceRecordSlot      int       `gorm:"not null;check:attendance_record_slot >= 1;uniqueIndex:uq_attendance_records_key;column:attendance_record_slot" json:"attendance_record_slot"`

	AttendanceRecordIsPresent bool      `gorm:"not null;column:attendance_record_is_present" json:"attendance_record_is_present"`
	AttendanceRecordMarkedBy  uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_record_marked_by" json:"attendance_record_marked_by"`

	// Audit
	AttendanceRecordCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:attendance_record_created_at" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:attendance_record_updated_at" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
