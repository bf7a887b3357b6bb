// file: internals/features/academics/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDTO "kampusku_backend/internals/features/academics/classes/dto"
	classModel "kampusku_backend/internals/features/academics/classes/model"
	classService "kampusku_backend/internals/features/academics/classes/service"
	membershipService "kampusku_backend/internals/features/academics/membership/service"
	helper "kampusku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

/* ===============================
   CREATE
=============================== */

// POST /api/classes — class_code di-mint dari counter per kampus di
// transaksi yang sama dengan insert; gagal insert = counter tetap maju
// (gap boleh, duplikat tidak).
func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m classModel.ClassModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		code, err := classService.NextClassCode(tx, campusID)
		if err != nil {
			return err
		}
		m = req.ToModel(campusID, code)
		return tx.Create(&m).Error
	})
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode kelas bentrok, coba lagi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", classDTO.FromClassModel(m))
}

/* ===============================
   READ
=============================== */

// GET /api/classes
func (ctrl *ClassController) List(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&classModel.ClassModel{}).
		Where("class_campus_id = ?", campusID)
	if div := strings.TrimSpace(c.Query("division")); div != "" {
		q = q.Where("class_division = ?", div)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(class_name) LIKE ?", like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kelas")
	}

	var rows []classModel.ClassModel
	if err := q.Order("class_code ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}

	return helper.JsonList(c, "ok", classDTO.FromClassModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/classes/:id — kelas + roster id.
func (ctrl *ClassController) GetByID(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var m classModel.ClassModel
	if err := ctrl.DB.
		First(&m, "class_id = ? AND class_campus_id = ?", id, campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	studentIDs, professorIDs, err := membershipService.ClassRoster(ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", classDTO.ClassDetailResponse{
		ClassResponse: classDTO.FromClassModel(m),
		StudentIDs:    studentIDs,
		ProfessorIDs:  professorIDs,
	})
}

/* ===============================
   UPDATE
=============================== */

// PUT /api/classes/:id — class_code tidak pernah berubah.
func (ctrl *ClassController) Update(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m classModel.ClassModel
	if err := ctrl.DB.
		First(&m, "class_id = ? AND class_campus_id = ?", id, campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", classDTO.FromClassModel(m))
}

/* ===============================
   DELETE
=============================== */

// DELETE /api/classes/:id
func (ctrl *ClassController) Delete(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	if err := membershipService.DeleteClass(ctrl.DB, campusID, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": id})
}

// POST /api/classes/delete-bulk
func (ctrl *ClassController) DeleteBulk(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req classDTO.DeleteClassesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := membershipService.DeleteClasses(ctrl.DB, campusID, req.ClassIDs); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_ids": req.ClassIDs})
}
