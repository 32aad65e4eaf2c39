package details

import (
	"github.com/go-kit/log"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	paymentRoute "educonnect_backend/internals/features/finance/payments/route"
	"educonnect_backend/internals/features/finance/payments/service"
	"educonnect_backend/internals/features/records/store"
)

func FinancePublicRoutes(r fiber.Router, st *store.Store, gw service.Gateway, serverKey string, v *validator.Validate, logger log.Logger) {
	paymentRoute.PaymentPublicRoutes(r, st, gw, serverKey, v, log.With(logger, "component", "payments"))
}
