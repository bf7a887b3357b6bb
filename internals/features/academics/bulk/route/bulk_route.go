// file: internals/features/academics/bulk/route/bulk_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	controller "kampusku_backend/internals/features/academics/bulk/controller"
	"kampusku_backend/internals/helpers/sheet"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func BulkRoutes(app *fiber.App, db *gorm.DB, parser sheet.Parser) {
	bulkController := controller.NewBulkController(db, parser)

	// 🔒 Ingest massal: hanya HOD
	admin := app.Group("/api/bulk",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorHod("ingest massal"), constants.HodOnly),
	)
	admin.Post("/students", bulkController.IngestStudents)
	admin.Post("/professors", bulkController.IngestProfessors)
	admin.Post("/classes", bulkController.IngestClasses)
}
