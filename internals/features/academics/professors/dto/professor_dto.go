// file: internals/features/academics/professors/dto/professor_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/professors/model"
)

/* ===============================
   Request DTO
=============================== */

type CreateProfessorRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=120"`
	Username string  `json:"username" validate:"required,min=3,max=60"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Password string  `json:"password" validate:"omitempty,min=6,max=72"`
}

type UpdateProfessorRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=60"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}

type LoginProfessorRequest struct {
	Identifier string `json:"identifier" validate:"required,min=3,max=120"`
	Password   string `json:"password" validate:"required,min=6,max=72"`
	// Wajib pada scope identitas kampus: username unik per kampus,
	// jadi login butuh kampusnya disebut eksplisit.
	CampusUsername string `json:"campus_username,omitempty" validate:"omitempty,min=3,max=60"`
}

type DeleteProfessorsRequest struct {
	ProfessorIDs []uuid.UUID `json:"professor_ids" validate:"required,min=1,dive,required"`
}

/* ===============================
   Converter
=============================== */

// ToModel — password SUDAH berupa hash saat dipanggil.
func (r CreateProfessorRequest) ToModel(campusID uuid.UUID, hashedPassword string) model.ProfessorModel {
	var email *string
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		if e != "" {
			email = &e
		}
	}
	return model.ProfessorModel{
		ProfessorCampusID: campusID,
		ProfessorName:     strings.TrimSpace(r.Name),
		ProfessorUsername: strings.TrimSpace(r.Username),
		ProfessorEmail:    email,
		ProfessorPassword: hashedPassword,
	}
}

// ApplyToModel — hanya field non-nil yang diubah; password di-hash oleh caller.
func (r UpdateProfessorRequest) ApplyToModel(m *model.ProfessorModel, hashedPassword *string) {
	if r.Name != nil {
		m.ProfessorName = strings.TrimSpace(*r.Name)
	}
	if r.Username != nil {
		m.ProfessorUsername = strings.TrimSpace(*r.Username)
	}
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		if e == "" {
			m.ProfessorEmail = nil
		} else {
			m.ProfessorEmail = &e
		}
	}
	if hashedPassword != nil {
		m.ProfessorPassword = *hashedPassword
	}
}

/* ===============================
   Response DTO
=============================== */

type ProfessorResponse struct {
	ProfessorID uuid.UUID `json:"professor_id"`
	CampusID    uuid.UUID `json:"campus_id"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	Email       *string   `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProfessorModel(m model.ProfessorModel) ProfessorResponse {
	return ProfessorResponse{
		ProfessorID: m.ProfessorID,
		CampusID:    m.ProfessorCampusID,
		Name:        m.ProfessorName,
		Username:    m.ProfessorUsername,
		Email:       m.ProfessorEmail,
		CreatedAt:   m.ProfessorCreatedAt,
		UpdatedAt:   m.ProfessorUpdatedAt,
	}
}

func FromProfessorModels(ms []model.ProfessorModel) []ProfessorResponse {
	out := make([]ProfessorResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromProfessorModel(m))
	}
	return out
}

type ProfessorLoginResponse struct {
	AccessToken string            `json:"access_token"`
	Professor   ProfessorResponse `json:"professor"`
}
