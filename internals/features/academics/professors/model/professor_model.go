// file: internals/features/academics/professors/model/professor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfessorModel — dosen pengampu, milik satu kampus.
// Identitas login: username (scope kampus) atau email (scope global),
// tergantung IDENTITY_SCOPE; index uniknya dibuat saat migrasi.
type ProfessorModel struct {
	// PK
	ProfessorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:professor_id" json:"professor_id"`

	// Tenant
	ProfessorCampusID uuid.UUID `gorm:"type:uuid;not null;index;column:professor_campus_id" json:"professor_campus_id"`

	ProfessorName     string  `gorm:"type:varchar(120);not null;column:professor_name" json:"professor_name"`
	ProfessorUsername string  `gorm:"type:varchar(60);not null;column:professor_username" json:"professor_username"`
	ProfessorEmail    *string `gorm:"type:varchar(120);column:professor_email" json:"professor_email,omitempty"`

	// bcrypt, tidak pernah plaintext
	ProfessorPassword string `gorm:"type:varchar(100);not null;column:professor_password" json:"-"`

	// Audit
	ProfessorCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:professor_created_at" json:"professor_created_at"`
	ProfessorUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:professor_updated_at" json:"professor_updated_at"`
	ProfessorDeletedAt gorm.DeletedAt `gorm:"column:professor_deleted_at;index" json:"professor_deleted_at,omitempty"`
}

func (ProfessorModel) TableName() string { return "professors" }
