package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	voiceController "educonnect_backend/internals/features/assistant/controller"
	"educonnect_backend/internals/features/assistant/service"
)

// AssistantPublicRoutes: POST /api/voice {text, user} → {reply}
func AssistantPublicRoutes(r fiber.Router, q *service.QueryService, v *validator.Validate) {
	ctl := voiceController.NewVoiceController(q, v)
	r.Post("/voice", ctl.Query)
}
