// file: internals/features/campus/hods/route/hod_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	controller "kampusku_backend/internals/features/campus/hods/controller"
	"kampusku_backend/internals/helpers/mailer"
	rateLimiter "kampusku_backend/internals/middlewares"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func HodRoutes(app *fiber.App, db *gorm.DB, m mailer.Mailer) {
	hodController := controller.NewHodAuthController(db, m)

	// 🔓 Public
	// Base: /api/hod
	public := app.Group("/api/hod")
	public.Post("/register", rateLimiter.RegisterRateLimiter(), hodController.Register)
	public.Post("/verify-otp", hodController.VerifyRegisterOtp)
	public.Post("/login", rateLimiter.LoginRateLimiter(), hodController.Login)
	public.Post("/login-google", rateLimiter.LoginRateLimiter(), hodController.LoginGoogle)

	// 🔒 Protected (JWT + role hod)
	protected := app.Group("/api/hod",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorHod("mengelola akun kampus"), constants.HodOnly),
	)
	protected.Get("/me", hodController.Me)
	protected.Post("/request-update", hodController.RequestUpdate)
	protected.Post("/confirm-update", hodController.ConfirmUpdate)
	protected.Post("/request-delete", hodController.RequestDelete)
	protected.Post("/confirm-delete", hodController.ConfirmDelete)
}
