package details

import (
	"github.com/go-kit/log"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	authController "educonnect_backend/internals/features/users/auth/controller"
	authRoute "educonnect_backend/internals/features/users/auth/route"
	"educonnect_backend/internals/features/users/auth/service"
)

func AuthRoutes(r fiber.Router, sessions *service.SessionService, v *validator.Validate, logger log.Logger) {
	ctrl := authController.NewAuthController(sessions, v, logger)
	authRoute.AuthAdminRoutes(r, ctrl)
}
