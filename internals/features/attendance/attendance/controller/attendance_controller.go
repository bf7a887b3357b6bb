// file: internals/features/attendance/attendance/controller/attendance_controller.go
package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	attendanceDTO "kampusku_backend/internals/features/attendance/attendance/dto"
	attendanceService "kampusku_backend/internals/features/attendance/attendance/service"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/dbtime"
	"kampusku_backend/internals/helpers/push"
)

type AttendanceController struct {
	DB         *gorm.DB
	Dispatcher push.Dispatcher
}

func NewAttendanceController(db *gorm.DB, dispatcher push.Dispatcher) *AttendanceController {
	return &AttendanceController{DB: db, Dispatcher: dispatcher}
}

var validate = validator.New()

/* ===============================
   MARK (idempotent upsert)
=============================== */

// POST /api/attendance/mark
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	professorID, err := helper.GetProfessorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req attendanceDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := attendanceService.MarkAttendance(
		ctrl.DB, ctrl.Dispatcher, configs.AppTimezone, campusID, professorID, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Absensi tersimpan", resp)
}

/* ===============================
   READ
=============================== */

// GET /api/attendance/class/:class_id?date=2025-08-21&date_millis=...
func (ctrl *AttendanceController) ByClassAndDate(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var millis *int64
	if v := c.Query("date_millis"); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_millis tidak valid")
		}
		millis = &ms
	}
	date, err := dbtime.ResolveSessionDate(millis, c.Query("date"), configs.AppTimezone)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := attendanceService.ListByClassAndDate(ctrl.DB, campusID, classID, date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", attendanceDTO.FromAttendanceRecordModels(rows))
}

// GET /api/attendance/class/:class_id/range?from=2025-08-01&to=2025-08-15
// Rentang half-open [from, to); to kosong = satu hari setelah from.
func (ctrl *AttendanceController) ByClassRange(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	from, err := dbtime.ResolveSessionDate(nil, c.Query("from"), configs.AppTimezone)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	to := from.AddDate(0, 0, 1)
	if v := c.Query("to"); v != "" {
		to, err = dbtime.ResolveSessionDate(nil, v, configs.AppTimezone)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if !to.After(from) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Rentang tanggal tidak valid")
	}

	rows, err := attendanceService.ListByClassRange(ctrl.DB, campusID, classID, from, to)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", attendanceDTO.FromAttendanceRecordModels(rows))
}

// GET /api/attendance/student/:student_id — riwayat satu mahasiswa.
func (ctrl *AttendanceController) ByStudent(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mahasiswa tidak valid")
	}

	rows, err := attendanceService.ListByStudent(ctrl.DB, campusID, studentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", attendanceDTO.FromAttendanceRecordModels(rows))
}

// GET /api/attendance/summary/:class_id?month=2025-08 — rekap bulanan
// per mahasiswa (hadir, total sesi, persentase 2 desimal).
func (ctrl *AttendanceController) MonthlySummary(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	monthStr := c.Query("month")
	anyDay := time.Now().In(configs.AppTimezone)
	if monthStr != "" {
		t, err := time.ParseInLocation("2006-01", monthStr, configs.AppTimezone)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format bulan tidak valid, pakai YYYY-MM")
		}
		anyDay = t
	}

	rows, err := attendanceService.MonthlySummary(ctrl.DB, configs.AppTimezone, campusID, classID, anyDay)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}
