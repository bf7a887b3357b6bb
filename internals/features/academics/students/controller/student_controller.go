// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	membershipService "kampusku_backend/internals/features/academics/membership/service"
	studentDTO "kampusku_backend/internals/features/academics/students/dto"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	studentService "kampusku_backend/internals/features/academics/students/service"
	hodService "kampusku_backend/internals/features/campus/hods/service"
	helper "kampusku_backend/internals/helpers"
	authHelper "kampusku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

func isUniqueViolationMsg(err error) bool {
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

/* ===============================
   CREATE
=============================== */

// POST /api/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	plain := req.Password
	if plain == "" {
		plain = authHelper.DefaultTempPassword
	}
	hashed, err := authHelper.HashPassword(plain)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Hash kredensial gagal")
	}

	m := req.ToModel(campusID, &hashed)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if isUniqueViolationMsg(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "NIM tersebut sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan mahasiswa")
	}
	return helper.JsonCreated(c, "Mahasiswa berhasil ditambahkan", studentDTO.FromStudentModel(m))
}

/* ===============================
   READ
=============================== */

// GET /api/students?semester=&division=&search=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_campus_id = ?", campusID)
	if sem := c.QueryInt("semester"); sem > 0 {
		q = q.Where("student_semester = ?", sem)
	}
	if div := strings.TrimSpace(c.Query("division")); div != "" {
		q = q.Where("student_division = ?", div)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(student_name) LIKE ? OR LOWER(student_enrollment_no) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung mahasiswa")
	}

	var rows []studentModel.StudentModel
	if err := q.Order("student_enrollment_no ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar mahasiswa")
	}

	return helper.JsonList(c, "ok", studentDTO.FromStudentModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mahasiswa tidak valid")
	}

	var m studentModel.StudentModel
	if err := ctrl.DB.
		First(&m, "student_id = ? AND student_campus_id = ?", id, campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mahasiswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mahasiswa")
	}
	return helper.JsonOK(c, "ok", studentDTO.FromStudentModel(m))
}

/* ===============================
   UPDATE
=============================== */

// PUT /api/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mahasiswa tidak valid")
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m studentModel.StudentModel
	if err := ctrl.DB.
		First(&m, "student_id = ? AND student_campus_id = ?", id, campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mahasiswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mahasiswa")
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
			return helper.JsonError(c, fiber.StatusBadRequest, "NIM tersebut sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui mahasiswa")
	}
	return helper.JsonUpdated(c, "Mahasiswa berhasil diperbarui", studentDTO.FromStudentModel(m))
}

/* ===============================
   DELETE
=============================== */

// DELETE /api/students/:id — keanggotaan kelas & record absensi ikut
// dibersihkan (cascade di membership service).
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mahasiswa tidak valid")
	}
	if err := membershipService.DeleteStudent(ctrl.DB, campusID, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Mahasiswa berhasil dihapus", fiber.Map{"student_id": id})
}

// POST /api/students/delete-bulk
func (ctrl *StudentController) DeleteBulk(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req studentDTO.DeleteStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := membershipService.DeleteStudents(ctrl.DB, campusID, req.StudentIDs); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Mahasiswa berhasil dihapus", fiber.Map{"student_ids": req.StudentIDs})
}

/* ===============================
   LOGIN
=============================== */

// POST /api/students/login
func (ctrl *StudentController) Login(c *fiber.Ctx) error {
	var req studentDTO.LoginStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := studentService.FindByLoginIdentity(ctrl.DB, req.EnrollmentNo, req.CampusUsername)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if m.StudentPassword == nil || !authHelper.CheckPassword(*m.StudentPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "NIM atau password salah")
	}

	token, err := hodService.CreateAccessToken(m.StudentID, m.StudentCampusID, constants.RoleStudent)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", studentDTO.StudentLoginResponse{
		AccessToken: token,
		Student:     studentDTO.FromStudentModel(*m),
	})
}

/* ===============================
   DEVICE TOKEN (set semantics)
=============================== */

// POST /api/students/device-tokens — append tanpa duplikat, atomik di DB.
func (ctrl *StudentController) RegisterDeviceToken(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req studentDTO.DeviceTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ? AND NOT (? = ANY(student_device_tokens))", studentID, req.Token).
		Update("student_device_tokens", gorm.Expr("array_append(student_device_tokens, ?)", req.Token))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan device token")
	}
	return helper.JsonOK(c, "Device token terdaftar", fiber.Map{"added": res.RowsAffected > 0})
}

// DELETE /api/students/device-tokens — hilangnya idempotent.
func (ctrl *StudentController) RemoveDeviceToken(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req studentDTO.DeviceTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", studentID).
		Update("student_device_tokens", gorm.Expr("array_remove(student_device_tokens, ?)", req.Token)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus device token")
	}
	return helper.JsonOK(c, "Device token dihapus", nil)
}
