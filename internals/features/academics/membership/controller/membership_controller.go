// file: internals/features/academics/membership/controller/membership_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	membershipDTO "kampusku_backend/internals/features/academics/membership/dto"
	membershipService "kampusku_backend/internals/features/academics/membership/service"
	helper "kampusku_backend/internals/helpers"
)

// MembershipController — satu-satunya pintu tulis roster kelas;
// controller lain tidak pernah menyentuh tabel join langsung.
type MembershipController struct {
	DB *gorm.DB
}

func NewMembershipController(db *gorm.DB) *MembershipController {
	return &MembershipController{DB: db}
}

var validate = validator.New()

func (ctrl *MembershipController) classParams(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	return campusID, classID, nil
}

/* ===============================
   Students
=============================== */

// POST /api/classes/:class_id/students
func (ctrl *MembershipController) AssignStudents(c *fiber.Ctx) error {
	campusID, classID, err := ctrl.classParams(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req membershipDTO.AssignStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := membershipService.AssignStudents(ctrl.DB, campusID, classID, req.StudentIDs); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Mahasiswa ditambahkan ke kelas", fiber.Map{
		"class_id":    classID,
		"student_ids": req.StudentIDs,
	})
}

// DELETE /api/classes/:class_id/students
func (ctrl *MembershipController) RemoveStudents(c *fiber.Ctx) error {
	campusID, classID, err := ctrl.classParams(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req membershipDTO.AssignStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := membershipService.RemoveStudents(ctrl.DB, campusID, classID, req.StudentIDs); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Mahasiswa dikeluarkan dari kelas", fiber.Map{
		"class_id":    classID,
		"student_ids": req.StudentIDs,
	})
}

/* ===============================
   Professors
=============================== */

// POST /api/classes/:class_id/professors
func (ctrl *MembershipController) AssignProfessors(c *fiber.Ctx) error {
	campusID, classID, err := ctrl.classParams(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req membershipDTO.AssignProfessorsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := membershipService.AssignProfessors(ctrl.DB, campusID, classID, req.ProfessorIDs); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Dosen ditugaskan ke kelas", fiber.Map{
		"class_id":      classID,
		"professor_ids": req.ProfessorIDs,
	})
}

// DELETE /api/classes/:class_id/professors
func (ctrl *MembershipController) RemoveProfessors(c *fiber.Ctx) error {
	campusID, classID, err := ctrl.classParams(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req membershipDTO.AssignProfessorsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := membershipService.RemoveProfessors(ctrl.DB, campusID, classID, req.ProfessorIDs); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Dosen dilepas dari kelas", fiber.Map{
		"class_id":      classID,
		"professor_ids": req.ProfessorIDs,
	})
}
