package route

import (
	"github.com/go-kit/log"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	paymentController "educonnect_backend/internals/features/finance/payments/controller"
	"educonnect_backend/internals/features/finance/payments/service"
	"educonnect_backend/internals/features/records/store"
)

/*
Public routes: online fee checkout.
- POST /api/fees/checkout      → Snap transaction for a student's pending fee
- POST /api/fees/notification  → Midtrans webhook (signature-checked)
gw may be nil; both routes then answer 503.
*/
func PaymentPublicRoutes(r fiber.Router, st *store.Store, gw service.Gateway, serverKey string, v *validator.Validate, logger log.Logger) {
	ctl := paymentController.NewPaymentController(st, gw, serverKey, v, logger)

	fees := r.Group("/fees")
	fees.Post("/checkout", ctl.Checkout)
	fees.Post("/notification", ctl.MidtransWebhook)
}
