// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	controller "kampusku_backend/internals/features/academics/students/controller"
	rateLimiter "kampusku_backend/internals/middlewares"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func StudentRoutes(app *fiber.App, db *gorm.DB) {
	studentController := controller.NewStudentController(db)

	// 🔓 Public
	app.Post("/api/students/login", rateLimiter.LoginRateLimiter(), studentController.Login)

	// 🔒 Device token: hanya mahasiswa (token miliknya sendiri)
	self := app.Group("/api/students/device-tokens",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStudent("mengelola device token"), []string{constants.RoleStudent}),
	)
	self.Post("/", studentController.RegisterDeviceToken)
	self.Delete("/", studentController.RemoveDeviceToken)

	// 🔒 Kelola mahasiswa: hanya HOD
	admin := app.Group("/api/students",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorHod("mengelola mahasiswa"), constants.HodOnly),
	)
	admin.Post("/", studentController.Create)
	admin.Get("/", studentController.List)
	admin.Get("/:id", studentController.GetByID)
	admin.Put("/:id", studentController.Update)
	admin.Delete("/:id", studentController.Delete)
	admin.Post("/delete-bulk", studentController.DeleteBulk)
}
