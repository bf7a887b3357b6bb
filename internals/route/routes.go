// file: internals/route/routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bulkRoute "kampusku_backend/internals/features/academics/bulk/route"
	classRoute "kampusku_backend/internals/features/academics/classes/route"
	membershipRoute "kampusku_backend/internals/features/academics/membership/route"
	professorRoute "kampusku_backend/internals/features/academics/professors/route"
	studentRoute "kampusku_backend/internals/features/academics/students/route"
	attendanceRoute "kampusku_backend/internals/features/attendance/attendance/route"
	hodRoute "kampusku_backend/internals/features/campus/hods/route"
	"kampusku_backend/internals/helpers/mailer"
	"kampusku_backend/internals/helpers/push"
	"kampusku_backend/internals/helpers/sheet"
)

// Deps — collaborator eksternal yang dibagikan ke route/controller.
type Deps struct {
	Mailer     mailer.Mailer
	Dispatcher push.Dispatcher
	Sheet      sheet.Parser
}

func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	hodRoute.HodRoutes(app, db, deps.Mailer)
	professorRoute.ProfessorRoutes(app, db)
	studentRoute.StudentRoutes(app, db)
	classRoute.ClassRoutes(app, db)
	membershipRoute.MembershipRoutes(app, db)
	bulkRoute.BulkRoutes(app, db, deps.Sheet)
	attendanceRoute.AttendanceRoutes(app, db, deps.Dispatcher)
}
