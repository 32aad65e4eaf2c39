package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educonnect_backend/internals/features/finance/payments/dto"
	"educonnect_backend/internals/features/finance/payments/service"
	"educonnect_backend/internals/features/records/model"
	"educonnect_backend/internals/features/records/store"
	helper "educonnect_backend/internals/helpers"
)

const serverKey = "SB-Mid-server-test"

type fakeGateway struct {
	err    error
	calls  int
	orders []string
	amount int
}

func (g *fakeGateway) CreateTransaction(orderID string, amount int, _ string, _ service.CustomerInput) (service.Transaction, error) {
	g.calls++
	g.orders = append(g.orders, orderID)
	g.amount = amount
	if g.err != nil {
		return service.Transaction{}, g.err
	}
	return service.Transaction{Token: "snap-token", RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token"}, nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()
	p := store.NewFilePersister(filepath.Join(t.TempDir(), "student_data.json"))
	now := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	st, err := store.Open(ctx, p, store.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	_, err = st.CreateStudent(ctx, model.Basic{Name: "Ada Lovelace", Email: "ada@example.edu"})
	require.NoError(t, err)
	require.NoError(t, st.SetFees(ctx, "ada lovelace", 120000, 20000, "31 Mar 2025", nil))
	return st
}

func newApp(st *store.Store, gw service.Gateway, key string) *fiber.App {
	ctl := NewPaymentController(st, gw, key, helper.NewValidator(), log.NewNopLogger())
	app := fiber.New()
	app.Post("/fees/checkout", ctl.Checkout)
	app.Post("/fees/notification", ctl.MidtransWebhook)
	return app
}

func post(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(out, &m), string(out))
	return resp.StatusCode, m
}

func notification(orderID, status, fraud string) dto.MidtransNotification {
	n := dto.MidtransNotification{
		OrderID:           orderID,
		StatusCode:        "200",
		GrossAmount:       "100000.00",
		TransactionStatus: status,
		FraudStatus:       fraud,
	}
	n.SignatureKey = service.Signature(serverKey, n.OrderID, n.StatusCode, n.GrossAmount)
	return n
}

func checkout(t *testing.T, app *fiber.App, amount int) string {
	t.Helper()
	code, body := post(t, app, "/fees/checkout", dto.CheckoutRequest{StudentKey: "Ada Lovelace", Amount: amount})
	require.Equal(t, http.StatusCreated, code, body)
	data := body["data"].(map[string]any)
	assert.Equal(t, "snap-token", data["token"])
	return data["order_id"].(string)
}

func TestCheckoutDisabledWithoutKey(t *testing.T) {
	app := newApp(newTestStore(t), nil, "")
	code, _ := post(t, app, "/fees/checkout", dto.CheckoutRequest{StudentKey: "ada lovelace"})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	code, _ = post(t, app, "/fees/notification", notification("FEE-x", "settlement", ""))
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestCheckoutDefaultsToPendingBalance(t *testing.T) {
	st := newTestStore(t)
	gw := &fakeGateway{}
	app := newApp(st, gw, serverKey)

	orderID := checkout(t, app, 0)
	assert.True(t, strings.HasPrefix(orderID, "FEE-"))
	assert.Equal(t, 100000, gw.amount)

	_, r, err := st.Student("ada lovelace")
	require.NoError(t, err)
	require.Len(t, r.Fees.Checkouts, 1)
	assert.Equal(t, model.Checkout{OrderID: orderID, Amount: 100000, Status: model.CheckoutPending, Created: "03 Mar 2025"}, r.Fees.Checkouts[0])
	assert.Equal(t, 20000, r.Fees.Paid)
}

func TestCheckoutRejections(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	gw := &fakeGateway{}
	app := newApp(st, gw, serverKey)

	code, _ := post(t, app, "/fees/checkout", dto.CheckoutRequest{StudentKey: "nobody"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = post(t, app, "/fees/checkout", dto.CheckoutRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	require.NoError(t, st.SetFees(ctx, "ada lovelace", 1000, 1000, "31 Mar 2025", nil))
	code, _ = post(t, app, "/fees/checkout", dto.CheckoutRequest{StudentKey: "ada lovelace"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Zero(t, gw.calls)
}

func TestCheckoutGatewayFailureCancels(t *testing.T) {
	st := newTestStore(t)
	gw := &fakeGateway{err: errors.New("connection refused")}
	app := newApp(st, gw, serverKey)

	code, _ := post(t, app, "/fees/checkout", dto.CheckoutRequest{StudentKey: "ada lovelace", Amount: 5000})
	assert.Equal(t, http.StatusBadGateway, code)

	_, r, err := st.Student("ada lovelace")
	require.NoError(t, err)
	require.Len(t, r.Fees.Checkouts, 1)
	assert.Equal(t, gw.orders[0], r.Fees.Checkouts[0].OrderID)
	assert.Equal(t, model.CheckoutCanceled, r.Fees.Checkouts[0].Status)
}

func TestWebhookSettlementIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	app := newApp(st, &fakeGateway{}, serverKey)
	orderID := checkout(t, app, 0)

	for i := 0; i < 2; i++ {
		code, _ := post(t, app, "/fees/notification", notification(orderID, "settlement", ""))
		require.Equal(t, http.StatusOK, code)
	}

	_, r, err := st.Student("ada lovelace")
	require.NoError(t, err)
	assert.Equal(t, model.CheckoutPaid, r.Fees.Checkouts[0].Status)
	assert.Equal(t, 120000, r.Fees.Paid)
	assert.Equal(t, 0, r.Fees.Pending)
	require.Len(t, r.Fees.PaymentHistory, 1)
	assert.Equal(t, model.Payment{Date: "03 Mar 2025", Amount: 100000, Mode: PaymentMode, Receipt: "REC001"}, r.Fees.PaymentHistory[0])
}

func TestWebhookStatuses(t *testing.T) {
	st := newTestStore(t)
	app := newApp(st, &fakeGateway{}, serverKey)

	cases := []struct {
		status, fraud, want string
	}{
		{"pending", "", model.CheckoutPending},
		{"capture", "challenge", model.CheckoutPending},
		{"expire", "", model.CheckoutExpired},
		{"cancel", "", model.CheckoutCanceled},
		{"deny", "", model.CheckoutCanceled},
	}
	for _, tc := range cases {
		orderID := checkout(t, app, 1000)
		code, _ := post(t, app, "/fees/notification", notification(orderID, tc.status, tc.fraud))
		require.Equal(t, http.StatusOK, code, tc.status)

		_, r, err := st.Student("ada lovelace")
		require.NoError(t, err)
		last := r.Fees.Checkouts[len(r.Fees.Checkouts)-1]
		assert.Equal(t, tc.want, last.Status, tc.status)
	}

	_, r, err := st.Student("ada lovelace")
	require.NoError(t, err)
	assert.Empty(t, r.Fees.PaymentHistory)
}

func TestWebhookRejectsBadSignatureAndIgnoresUnknownOrders(t *testing.T) {
	st := newTestStore(t)
	app := newApp(st, &fakeGateway{}, serverKey)
	orderID := checkout(t, app, 0)

	n := notification(orderID, "settlement", "")
	n.GrossAmount = "1.00"
	code, _ := post(t, app, "/fees/notification", n)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := post(t, app, "/fees/notification", notification("FEE-unknown", "settlement", ""))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ignored", body["message"])

	_, r, err := st.Student("ada lovelace")
	require.NoError(t, err)
	assert.Equal(t, model.CheckoutPending, r.Fees.Checkouts[0].Status)
}
