// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// StudentModel — mahasiswa, milik satu kampus.
// enrollment_no unik per kampus atau global tergantung IDENTITY_SCOPE
// (index dibuat saat migrasi, lihat database.ApplyUniqueIndexes).
type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// Tenant
	StudentCampusID uuid.UUID `gorm:"type:uuid;not null;index;column:student_campus_id" json:"student_campus_id"`

	StudentEnrollmentNo string  `gorm:"type:varchar(40);not null;column:student_enrollment_no" json:"student_enrollment_no"`
	StudentName         string  `gorm:"type:varchar(120);not null;column:student_name" json:"student_name"`
	StudentSemester     int     `gorm:"not null;check:student_semester >= 1;column:student_semester" json:"student_semester"`
	StudentDivision     *string `gorm:"type:varchar(20);column:student_division" json:"student_division,omitempty"`

	// Kredensial opsional (bcrypt); nil = student belum punya akses login
	StudentPassword *string `gorm:"type:varchar(100);column:student_password" json:"-"`

	// Device token push-notification, set semantics (tanpa duplikat)
	StudentDeviceTokens pq.StringArray `gorm:"type:text[];not null;default:'{}';column:student_device_tokens" json:"student_device_tokens"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
