// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/students/model"
)

/* ===============================
   Request DTO
=============================== */

type CreateStudentRequest struct {
	EnrollmentNo string  `json:"enrollment_no" validate:"required,min=1,max=40"`
	Name         string  `json:"name" validate:"required,min=2,max=120"`
	Semester     int     `json:"semester" validate:"required,min=1"`
	Division     *string `json:"division,omitempty" validate:"omitempty,max=20"`
	Password     string  `json:"password" validate:"omitempty,min=6,max=72"`
}

type UpdateStudentRequest struct {
	EnrollmentNo *string `json:"enrollment_no,omitempty" validate:"omitempty,min=1,max=40"`
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Semester     *int    `json:"semester,omitempty" validate:"omitempty,min=1"`
	Division     *string `json:"division,omitempty" validate:"omitempty,max=20"`
	Password     *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}

type LoginStudentRequest struct {
	EnrollmentNo string `json:"enrollment_no" validate:"required,min=1,max=40"`
	Password     string `json:"password" validate:"required,min=6,max=72"`
	// Wajib pada scope identitas kampus: NIM unik per kampus,
	// jadi login butuh kampusnya disebut eksplisit.
	CampusUsername string `json:"campus_username,omitempty" validate:"omitempty,min=3,max=60"`
}

type DeviceTokenRequest struct {
	Token string `json:"token" validate:"required,min=8,max=512"`
}

type DeleteStudentsRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
}

/* ===============================
   Converter
=============================== */

func (r CreateStudentRequest) ToModel(campusID uuid.UUID, hashedPassword *string) model.StudentModel {
	var division *string
	if r.Division != nil {
		d := strings.TrimSpace(*r.Division)
		if d != "" {
			division = &d
		}
	}
	return model.StudentModel{
		StudentCampusID:     campusID,
		StudentEnrollmentNo: strings.TrimSpace(r.EnrollmentNo),
		StudentName:         strings.TrimSpace(r.Name),
		StudentSemester:     r.Semester,
		StudentDivision:     division,
		StudentPassword:     hashedPassword,
	}
}

func (r UpdateStudentRequest) ApplyToModel(m *model.StudentModel, hashedPassword *string) {
	if r.EnrollmentNo != nil {
		m.StudentEnrollmentNo = strings.TrimSpace(*r.EnrollmentNo)
	}
	if r.Name != nil {
		m.StudentName = strings.TrimSpace(*r.Name)
	}
	if r.Semester != nil {
		m.StudentSemester = *r.Semester
	}
	if r.Division != nil {
		d := strings.TrimSpace(*r.Division)
		if d == "" {
			m.StudentDivision = nil
		} else {
			m.StudentDivision = &d
		}
	}
	if hashedPassword != nil {
		m.StudentPassword = hashedPassword
	}
}

/* ===============================
   Response DTO
=============================== */

type StudentResponse struct {
	StudentID    uuid.UUID `json:"student_id"`
	CampusID     uuid.UUID `json:"campus_id"`
	EnrollmentNo string    `json:"enrollment_no"`
	Name         string    `json:"name"`
	Semester     int       `json:"semester"`
	Division     *string   `json:"division,omitempty"`
	DeviceTokens []string  `json:"device_tokens"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromStudentModel(m model.StudentModel) StudentResponse {
	tokens := make([]string, 0, len(m.StudentDeviceTokens))
	tokens = append(tokens, m.StudentDeviceTokens...)
	return StudentResponse{
		StudentID:    m.StudentID,
		CampusID:     m.StudentCampusID,
		EnrollmentNo: m.StudentEnrollmentNo,
		Name:         m.StudentName,
		Semester:     m.StudentSemester,
		Division:     m.StudentDivision,
		DeviceTokens: tokens,
		CreatedAt:    m.StudentCreatedAt,
		UpdatedAt:    m.StudentUpdatedAt,
	}
}

func FromStudentModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStudentModel(m))
	}
	return out
}

type StudentLoginResponse struct {
	AccessToken string          `json:"access_token"`
	Student     StudentResponse `json:"student"`
}
