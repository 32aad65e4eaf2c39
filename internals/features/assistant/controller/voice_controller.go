// file: internals/features/assistant/controller/voice_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"educonnect_backend/internals/features/assistant/dto"
	"educonnect_backend/internals/features/assistant/service"
	helper "educonnect_backend/internals/helpers"
)

type VoiceController struct {
	Queries  *service.QueryService
	Validate *validator.Validate
}

func NewVoiceController(q *service.QueryService, v *validator.Validate) *VoiceController {
	return &VoiceController{Queries: q, Validate: v}
}

// POST /api/voice
// Every well-formed query gets a 200 reply, including unknown students.
func (ctl *VoiceController) Query(c *fiber.Ctx) error {
	var req dto.VoiceQueryRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	return c.JSON(dto.VoiceQueryResponse{Reply: ctl.Queries.SubmitQuery(req.Text, req.User)})
}
