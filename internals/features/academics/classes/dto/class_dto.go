// file: internals/features/academics/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/classes/model"
)

/* ===============================
   Request DTO
=============================== */

type CreateClassRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Division string `json:"division" validate:"required,min=1,max=20"`
}

type UpdateClassRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Division *string `json:"division,omitempty" validate:"omitempty,min=1,max=20"`
}

type DeleteClassesRequest struct {
	ClassIDs []uuid.UUID `json:"class_ids" validate:"required,min=1,dive,required"`
}

/* ===============================
   Converter
=============================== */

// ToModel — classCode sudah di-mint dari counter oleh caller.
func (r CreateClassRequest) ToModel(campusID uuid.UUID, classCode int) model.ClassModel {
	return model.ClassModel{
		ClassCampusID: campusID,
		ClassCode:     classCode,
		ClassName:     strings.TrimSpace(r.Name),
		ClassDivision: strings.TrimSpace(r.Division),
	}
}

func (r UpdateClassRequest) ApplyToModel(m *model.ClassModel) {
	if r.Name != nil {
		m.ClassName = strings.TrimSpace(*r.Name)
	}
	if r.Division != nil {
		m.ClassDivision = strings.TrimSpace(*r.Division)
	}
}

/* ===============================
   Response DTO
=============================== */

type ClassResponse struct {
	ClassID   uuid.UUID `json:"class_id"`
	CampusID  uuid.UUID `json:"campus_id"`
	Code      int       `json:"code"`
	Name      string    `json:"name"`
	Division  string    `json:"division"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromClassModel(m model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:   m.ClassID,
		CampusID:  m.ClassCampusID,
		Code:      m.ClassCode,
		Name:      m.ClassName,
		Division:  m.ClassDivision,
		CreatedAt: m.ClassCreatedAt,
		UpdatedAt: m.ClassUpdatedAt,
	}
}

func FromClassModels(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromClassModel(m))
	}
	return out
}

// ClassDetailResponse — kelas + roster (id anggota), untuk GET detail.
type ClassDetailResponse struct {
	ClassResponse
	StudentIDs   []uuid.UUID `json:"student_ids"`
	ProfessorIDs []uuid.UUID `json:"professor_ids"`
}
