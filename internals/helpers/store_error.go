package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"educonnect_backend/internals/features/records/store"
	authService "educonnect_backend/internals/features/users/auth/service"
)

// FromStoreError maps binding, store and auth errors onto the JSON error envelope.
// Anything unrecognised is a 500 with the generic message.
func FromStoreError(c *fiber.Ctx, err error) error {
	var (
		fe *fiber.Error
		ve *ValidationError
	)
	switch {
	case errors.As(err, &ve):
		return JsonValidationError(c, ve.Fields)
	case errors.As(err, &fe):
		return JsonError(c, fe.Code, fe.Message)
	case errors.Is(err, store.ErrNotFound):
		return JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrAlreadyExists),
		errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, store.ErrNothingPending):
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, authService.ErrInvalidCredentials),
		errors.Is(err, authService.ErrUnauthenticated):
		return JsonError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, store.ErrPersist):
		return JsonError(c, fiber.StatusInternalServerError, "could not save changes")
	default:
		return JsonError(c, fiber.StatusInternalServerError, "")
	}
}
