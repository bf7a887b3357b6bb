// file: internals/features/academics/membership/dto/membership_dto.go
package dto

import "github.com/google/uuid"

type AssignStudentsRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
}

type AssignProfessorsRequest struct {
	ProfessorIDs []uuid.UUID `json:"professor_ids" validate:"required,min=1,dive,required"`
}
