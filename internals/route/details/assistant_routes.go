package details

import (
	"github.com/go-kit/log"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	assistantRoute "educonnect_backend/internals/features/assistant/route"
	"educonnect_backend/internals/features/assistant/service"
	"educonnect_backend/internals/features/records/store"
)

func AssistantPublicRoutes(r fiber.Router, st *store.Store, defaultStudent string, v *validator.Validate, logger log.Logger) {
	q := service.NewQueryService(st, defaultStudent, log.With(logger, "component", "assistant"))
	assistantRoute.AssistantPublicRoutes(r, q, v)
}
