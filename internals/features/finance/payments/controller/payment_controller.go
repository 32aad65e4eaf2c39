// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"educonnect_backend/internals/features/finance/payments/dto"
	"educonnect_backend/internals/features/finance/payments/service"
	"educonnect_backend/internals/features/records/model"
	"educonnect_backend/internals/features/records/store"
	helper "educonnect_backend/internals/helpers"
)

// PaymentMode is recorded on payments settled through the gateway.
const PaymentMode = "Midtrans"

/* =========================================================
   Controller
========================================================= */

type PaymentController struct {
	Store    *store.Store
	Gateway  service.Gateway // nil when no server key is configured
	Validate *validator.Validate
	Logger   log.Logger

	MidtransServerKey string // verifies webhook signatures
}

func NewPaymentController(s *store.Store, gw service.Gateway, serverKey string, v *validator.Validate, logger log.Logger) *PaymentController {
	return &PaymentController{
		Store:             s,
		Gateway:           gw,
		Validate:          v,
		Logger:            logger,
		MidtransServerKey: serverKey,
	}
}

/* =========================================================
   Checkout
========================================================= */

// POST /api/fees/checkout
func (h *PaymentController) Checkout(c *fiber.Ctx) error {
	if h.Gateway == nil || h.MidtransServerKey == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "online payment is not configured")
	}

	var req dto.CheckoutRequest
	if err := helper.BindJSON(c, h.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}

	key, r, err := h.Store.Student(req.StudentKey)
	if err != nil {
		return helper.FromStoreError(c, err)
	}
	amount, err := store.CheckoutAmount(r, req.Amount)
	if err != nil {
		return helper.FromStoreError(c, err)
	}

	ctx := c.UserContext()
	orderID := "FEE-" + uuid.NewString()
	if err := h.Store.AddCheckout(ctx, key, orderID, amount); err != nil {
		return helper.FromStoreError(c, err)
	}

	tx, err := h.Gateway.CreateTransaction(orderID, amount, fmt.Sprintf("Fee payment %s", r.ID), service.CustomerInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	})
	if err != nil {
		level.Error(h.Logger).Log("op", "fees.checkout", "order_id", orderID, "err", err)
		if serr := h.Store.SettleCheckout(ctx, orderID, model.CheckoutCanceled, ""); serr != nil {
			level.Error(h.Logger).Log("op", "fees.checkout", "order_id", orderID, "msg", "cancel failed", "err", serr)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "payment gateway unavailable")
	}

	level.Info(h.Logger).Log("op", "fees.checkout", "order_id", orderID, "key", key, "amount", amount)
	return helper.JsonCreated(c, "Checkout created", dto.CheckoutResponse{
		OrderID:     orderID,
		Amount:      amount,
		Token:       tx.Token,
		RedirectURL: tx.RedirectURL,
	})
}

/* =========================================================
   Webhook Midtrans
========================================================= */

// POST /api/fees/notification
func (h *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	if h.MidtransServerKey == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "online payment is not configured")
	}

	var notif dto.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	// SHA512(order_id + status_code + gross_amount + ServerKey)
	if !service.VerifySignature(h.MidtransServerKey, notif.OrderID, notif.StatusCode, notif.GrossAmount, notif.SignatureKey) {
		level.Warn(h.Logger).Log("op", "fees.notification", "order_id", notif.OrderID, "msg", "invalid signature")
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	status := checkoutStatus(notif)
	if status == model.CheckoutPending {
		return helper.JsonOK(c, "ok", fiber.Map{"status": "pending", "order_id": notif.OrderID})
	}

	err := h.Store.SettleCheckout(c.UserContext(), notif.OrderID, status, PaymentMode)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// 200 so Midtrans stops retrying an order we never issued
		level.Warn(h.Logger).Log("op", "fees.notification", "order_id", notif.OrderID, "msg", "unknown order")
		return helper.JsonOK(c, "ignored", fiber.Map{"status": "ignored", "reason": "checkout not found"})
	case err != nil:
		return helper.FromStoreError(c, err)
	}

	level.Info(h.Logger).Log("op", "fees.notification", "order_id", notif.OrderID,
		"transaction_status", notif.TransactionStatus, "status", status)
	return helper.JsonOK(c, "ok", fiber.Map{
		"status":             status,
		"order_id":           notif.OrderID,
		"transaction_status": notif.TransactionStatus,
	})
}

// checkoutStatus maps a Midtrans transaction status onto a checkout status.
// Anything not final (pending, challenged capture) stays pending.
func checkoutStatus(n dto.MidtransNotification) string {
	switch n.TransactionStatus {
	case "capture":
		if n.FraudStatus == "" || n.FraudStatus == "accept" {
			return model.CheckoutPaid
		}
		if n.FraudStatus == "deny" {
			return model.CheckoutCanceled
		}
		return model.CheckoutPending
	case "settlement":
		return model.CheckoutPaid
	case "expire":
		return model.CheckoutExpired
	case "cancel", "deny", "failure":
		return model.CheckoutCanceled
	default:
		return model.CheckoutPending
	}
}
