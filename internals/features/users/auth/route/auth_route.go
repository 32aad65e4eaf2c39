package route

import (
	"github.com/gofiber/fiber/v2"

	"educonnect_backend/internals/features/users/auth/controller"
	"educonnect_backend/internals/middlewares"
)

// AuthAdminRoutes mounts login, logout and verify under the admin group.
// They sit outside RequireAdmin: login issues the token the others check.
func AuthAdminRoutes(r fiber.Router, ctrl *controller.AuthController) {
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/logout", ctrl.Logout)
	r.Get("/verify", ctrl.Verify)
}
