// file: internals/features/academics/membership/route/membership_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	controller "kampusku_backend/internals/features/academics/membership/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func MembershipRoutes(app *fiber.App, db *gorm.DB) {
	membershipController := controller.NewMembershipController(db)

	// 🔒 Roster kelas: hanya HOD
	admin := app.Group("/api/classes/:class_id",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorHod("mengelola roster kelas"), constants.HodOnly),
	)
	admin.Post("/students", membershipController.AssignStudents)
	admin.Delete("/students", membershipController.RemoveStudents)
	admin.Post("/professors", membershipController.AssignProfessors)
	admin.Delete("/professors", membershipController.RemoveProfessors)
}
