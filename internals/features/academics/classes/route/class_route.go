// file: internals/features/academics/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	controller "kampusku_backend/internals/features/academics/classes/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func ClassRoutes(app *fiber.App, db *gorm.DB) {
	classController := controller.NewClassController(db)

	// 🔒 Baca kelas: dosen & HOD
	read := app.Group("/api/classes",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorProfessor("melihat kelas"), constants.ProfessorAndAbove),
	)
	read.Get("/", classController.List)
	read.Get("/:id", classController.GetByID)

	// 🔒 Kelola kelas: hanya HOD
	admin := app.Group("/api/classes",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorHod("mengelola kelas"), constants.HodOnly),
	)
	admin.Post("/", classController.Create)
	admin.Put("/:id", classController.Update)
	admin.Delete("/:id", classController.Delete)
	admin.Post("/delete-bulk", classController.DeleteBulk)
}
