// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"educonnect_backend/internals/features/users/auth/dto"
	"educonnect_backend/internals/features/users/auth/service"
	helper "educonnect_backend/internals/helpers"
)

type AuthController struct {
	Sessions *service.SessionService
	Validate *validator.Validate
	Logger   log.Logger
}

func NewAuthController(sessions *service.SessionService, v *validator.Validate, logger log.Logger) *AuthController {
	return &AuthController{Sessions: sessions, Validate: v, Logger: logger}
}

/* ===================== LOGIN ===================== */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	token, sess, err := ctl.Sessions.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			level.Warn(ctl.Logger).Log("op", "admin.login", "username", req.Username, "ip", c.IP(), "err", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		level.Error(ctl.Logger).Log("op", "admin.login", "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	level.Info(ctl.Logger).Log("op", "admin.login", "username", sess.Username)
	return helper.JsonOK(c, "Login successful", dto.LoginResponse{Token: token, Username: sess.Username})
}

/* ===================== LOGOUT ===================== */

// Logout always succeeds; an unknown token simply has nothing to drop.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if token := helper.GetRawAccessToken(c); token != "" {
		ctl.Sessions.Logout(token)
	}
	return helper.JsonOK(c, "Logged out successfully", nil)
}

/* ===================== VERIFY ===================== */

func (ctl *AuthController) Verify(c *fiber.Ctx) error {
	token := helper.GetRawAccessToken(c)
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized - no token provided")
	}
	sess, err := ctl.Sessions.Verify(token)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized - invalid or expired session")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"valid": true, "username": sess.Username})
}
