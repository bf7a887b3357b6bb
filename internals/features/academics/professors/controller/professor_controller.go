// file: internals/features/academics/professors/controller/professor_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/constants"
	membershipService "kampusku_backend/internals/features/academics/membership/service"
	profDTO "kampusku_backend/internals/features/academics/professors/dto"
	profModel "kampusku_backend/internals/features/academics/professors/model"
	profService "kampusku_backend/internals/features/academics/professors/service"
	hodService "kampusku_backend/internals/features/campus/hods/service"
	helper "kampusku_backend/internals/helpers"
	authHelper "kampusku_backend/internals/helpers/auth"
)

type ProfessorController struct {
	DB *gorm.DB
}

func NewProfessorController(db *gorm.DB) *ProfessorController {
	return &ProfessorController{DB: db}
}

var validate = validator.New()

func isUniqueViolationMsg(err error) bool {
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

/* ===============================
   CREATE
=============================== */

// POST /api/professors
func (ctrl *ProfessorController) Create(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req profDTO.CreateProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if configs.IdentityScope == configs.IdentityScopeGlobal && req.Email == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email wajib diisi")
	}

	plain := req.Password
	if plain == "" {
		plain = authHelper.DefaultTempPassword
	}
	hashed, err := authHelper.HashPassword(plain)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Hash kredensial gagal")
	}

	m := req.ToModel(campusID, hashed)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if isUniqueViolationMsg(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Dosen dengan identitas tersebut sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan dosen")
	}
	return helper.JsonCreated(c, "Dosen berhasil ditambahkan", profDTO.FromProfessorModel(m))
}

/* ===============================
   READ
=============================== */

// GET /api/professors
func (ctrl *ProfessorController) List(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&profModel.ProfessorModel{}).
		Where("professor_campus_id = ?", campusID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(professor_name) LIKE ? OR LOWER(professor_username) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung dosen")
	}

	var rows []profModel.ProfessorModel
	if err := q.Order("professor_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar dosen")
	}

	return helper.JsonList(c, "ok", profDTO.FromProfessorModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/professors/:id
func (ctrl *ProfessorController) GetByID(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID dosen tidak valid")
	}

	var m profModel.ProfessorModel
	if err := ctrl.DB.
		First(&m, "professor_id = ? AND professor_campus_id = ?", id, campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Dosen tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil dosen")
	}
	return helper.JsonOK(c, "ok", profDTO.FromProfessorModel(m))
}

/* ===============================
   UPDATE
=============================== */

// PUT /api/professors/:id
func (ctrl *ProfessorController) Update(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID dosen tidak valid")
	}

	var req profDTO.UpdateProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m profModel.ProfessorModel
	if err := ctrl.DB.
		First(&m, "professor_id = ? AND professor_campus_id = ?", id, campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Dosen tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil dosen")
	}

	var hashed *string
	if req.Password != nil {
		h, err := authHelper.HashPassword(*req.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Hash kredensial gagal")
		}
		hashed = &h
	}
	req.ApplyToModel(&m, hashed)

	if err := ctrl.DB.Save(&m).Error; err != nil {
		if isUniqueViolationMsg(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Dosen dengan identitas tersebut sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui dosen")
	}
	return helper.JsonUpdated(c, "Dosen berhasil diperbarui", profDTO.FromProfessorModel(m))
}

/* ===============================
   DELETE
=============================== */

// DELETE /api/professors/:id — kelas yang diampu & record absensi yang
// dia tandai ikut dibersihkan (cascade di membership service).
func (ctrl *ProfessorController) Delete(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID dosen tidak valid")
	}
	if err := membershipService.DeleteProfessor(ctrl.DB, campusID, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Dosen berhasil dihapus", fiber.Map{"professor_id": id})
}

// POST /api/professors/delete-bulk
func (ctrl *ProfessorController) DeleteBulk(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req profDTO.DeleteProfessorsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := membershipService.DeleteProfessors(ctrl.DB, campusID, req.ProfessorIDs); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Dosen berhasil dihapus", fiber.Map{"professor_ids": req.ProfessorIDs})
}

/* ===============================
   LOGIN
=============================== */

// POST /api/professors/login — identifier: email (scope global) atau
// username (scope kampus, wajib disertai campus_username).
func (ctrl *ProfessorController) Login(c *fiber.Ctx) error {
	var req profDTO.LoginProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := profService.FindByLoginIdentity(ctrl.DB, req.Identifier, req.CampusUsername)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if !authHelper.CheckPassword(m.ProfessorPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identitas atau password salah")
	}

	token, err := hodService.CreateAccessToken(m.ProfessorID, m.ProfessorCampusID, constants.RoleProfessor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", profDTO.ProfessorLoginResponse{
		AccessToken: token,
		Professor:   profDTO.FromProfessorModel(*m),
	})
}
