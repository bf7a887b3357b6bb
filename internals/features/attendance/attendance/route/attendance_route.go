// file: internals/features/attendance/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	controller "kampusku_backend/internals/features/attendance/attendance/controller"
	"kampusku_backend/internals/helpers/push"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB, dispatcher push.Dispatcher) {
	attendanceController := controller.NewAttendanceController(db, dispatcher)

	// Guard role dipasang per-route, bukan per-group: handler di Group()
	// berlaku sebagai middleware untuk SEMUA path di prefix, jadi guard
	// ketat di satu group ikut memblokir group lain yang prefiksnya sama.
	api := app.Group("/api/attendance", authMiddleware.AuthMiddleware(db))

	professorOnly := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorProfessor("menandai absensi"), []string{constants.RoleProfessor})
	readRoles := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorProfessor("melihat absensi"), constants.ProfessorAndAbove)

	// 🔒 Tandai absensi: hanya dosen (penanda = professor_id di token)
	api.Post("/mark", professorOnly, attendanceController.Mark)

	// 🔒 Baca absensi: dosen & HOD
	api.Get("/class/:class_id", readRoles, attendanceController.ByClassAndDate)
	api.Get("/class/:class_id/range", readRoles, attendanceController.ByClassRange)
	api.Get("/student/:student_id", readRoles, attendanceController.ByStudent)
	api.Get("/summary/:class_id", readRoles, attendanceController.MonthlySummary)
}
