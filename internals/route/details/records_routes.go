package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	recordsRoute "educonnect_backend/internals/features/records/route"
	"educonnect_backend/internals/features/records/store"
)

func RecordsPublicRoutes(r fiber.Router, st *store.Store, v *validator.Validate, defaultStudent string) {
	recordsRoute.RecordsPublicRoutes(r, st, v, defaultStudent)
}

func RecordsAdminRoutes(r fiber.Router, st *store.Store, v *validator.Validate, defaultStudent string) {
	recordsRoute.RecordsAdminRoutes(r, st, v, defaultStudent)
}
