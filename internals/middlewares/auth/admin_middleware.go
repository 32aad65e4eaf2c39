// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"educonnect_backend/internals/features/users/auth/service"
	helper "educonnect_backend/internals/helpers"
)

// Verifier is the part of the session service the middleware needs.
type Verifier interface {
	Verify(token string) (service.Session, error)
}

// RequireAdmin rejects requests without a live admin session token.
func RequireAdmin(sessions Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := helper.GetRawAccessToken(c)
		if token == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized - no token provided")
		}
		sess, err := sessions.Verify(token)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized - invalid or expired session")
		}
		c.Locals(helper.LocAdminUsername, sess.Username)
		return c.Next()
	}
}
