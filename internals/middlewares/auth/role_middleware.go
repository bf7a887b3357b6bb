// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "kampusku_backend/internals/helpers"
)

// OnlyRolesSlice menolak request jika role di token tidak ada di allowed.
func OnlyRolesSlice(errMessage string, allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, errMessage)
	}
}
