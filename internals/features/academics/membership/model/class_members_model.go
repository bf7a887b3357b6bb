// file: internals/features/academics/membership/model/class_members_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Join rows Class↔Student / Class↔Professor
   Satu-satunya sumber kebenaran relasi roster — kedua "arah"
   dibaca dari tabel yang sama, jadi konsistensi dua arah struktural.
   Penulisnya hanya membership service.
========================= */

type ClassStudentModel struct {
	ClassStudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_student_id" json:"class_student_id"`

	// Tenant (denormalisasi untuk query ber-scope)
	ClassStudentCampusID uuid.UUID `gorm:"type:uuid;not null;index;column:class_student_campus_id" json:"class_student_campus_id"`

	ClassStudentClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_students_pair;column:class_student_class_id" json:"class_student_class_id"`
	ClassStudentStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_students_pair;index;column:class_student_student_id" json:"class_student_student_id"`

	ClassStudentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:class_student_created_at" json:"class_student_created_at"`
}

func (ClassStudentModel) TableName() string { return "class_students" }

type ClassProfessorModel struct {
	ClassProfessorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_professor_id" json:"class_professor_id"`

	ClassProfessorCampusID uuid.UUID `gorm:"type:uuid;not null;index;column:class_professor_campus_id" json:"class_professor_campus_id"`

	ClassProfessorClassID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_professors_pair;column:class_professor_class_id" json:"class_professor_class_id"`
	ClassProfessorProfessorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_professors_pair;index;column:class_professor_professor_id" json:"class_professor_professor_id"`

	ClassProfessorCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:class_professor_created_at" json:"class_professor_created_at"`
}

func (ClassProfessorModel) TableName() string { return "class_professors" }
