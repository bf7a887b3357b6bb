// file: internals/features/academics/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel — kelas/rombel milik satu kampus.
// class_code = identifier sekuensial human-facing, unik PER kampus
// (di-mint lewat ClassCounterModel, bukan max+1).
type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`

	// Tenant
	ClassCampusID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_classes_campus_code;column:class_campus_id" json:"class_campus_id"`

	ClassCode     int    `gorm:"not null;uniqueIndex:uq_classes_campus_code;column:class_code" json:"class_code"`
	ClassName     string `gorm:"type:varchar(120);not null;column:class_name" json:"class_name"`
	ClassDivision string `gorm:"type:varchar(20);not null;column:class_division" json:"class_division"`

	// Audit
	ClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

// ClassCounterModel — satu baris counter per kampus; satu-satunya
// shared state yang diserialisasi eksplisit. Increment selalu lewat
// satu statement atomik (lihat service.NextClassCode), tidak pernah
// read-then-write terpisah.
type ClassCounterModel struct {
	ClassCounterCampusID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_counter_campus_id" json:"class_counter_campus_id"`
	ClassCounterSeq      int       `gorm:"not null;default:0;column:class_counter_seq" json:"class_counter_seq"`
}

func (ClassCounterModel) TableName() string { return "class_counters" }
