// file: internals/features/academics/professors/route/professor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	controller "kampusku_backend/internals/features/academics/professors/controller"
	rateLimiter "kampusku_backend/internals/middlewares"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func ProfessorRoutes(app *fiber.App, db *gorm.DB) {
	professorController := controller.NewProfessorController(db)

	// 🔓 Public
	app.Post("/api/professors/login", rateLimiter.LoginRateLimiter(), professorController.Login)

	// 🔒 Kelola dosen: hanya HOD
	admin := app.Group("/api/professors",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorHod("mengelola dosen"), constants.HodOnly),
	)
	admin.Post("/", professorController.Create)
	admin.Get("/", professorController.List)
	admin.Get("/:id", professorController.GetByID)
	admin.Put("/:id", professorController.Update)
	admin.Delete("/:id", professorController.Delete)
	admin.Post("/delete-bulk", professorController.DeleteBulk)
}
