package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Gateway
========================================================= */

// Transaction is what the payer needs to complete a checkout.
type Transaction struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// Gateway opens hosted-payment transactions. SnapGateway is the real one.
type Gateway interface {
	CreateTransaction(orderID string, amount int, item string, cust CustomerInput) (Transaction, error)
}

type SnapGateway struct {
	client snap.Client
}

// NewSnapGateway must get a non-empty server key.
// useProduction=true targets Production, false the Sandbox.
func NewSnapGateway(serverKey string, useProduction bool) *SnapGateway {
	g := &SnapGateway{}
	if useProduction {
		g.client.New(serverKey, midtrans.Production)
	} else {
		g.client.New(serverKey, midtrans.Sandbox)
	}
	return g
}

func (g *SnapGateway) CreateTransaction(orderID string, amount int, item string, cust CustomerInput) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, errors.New("invalid checkout amount")
	}
	if orderID == "" {
		return Transaction{}, errors.New("order id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    int64(amount),
				Qty:      1,
				Name:     truncate(item, 50),
				Category: "Tuition",
			},
		},
	}

	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		return Transaction{}, fmt.Errorf("midtrans create transaction: %w", err)
	}
	return Transaction{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

/* =========================================================
   Notifications
========================================================= */

// VerifySignature checks signature_key = sha512(order_id + status_code + gross_amount + server_key).
func VerifySignature(serverKey, orderID, statusCode, grossAmount, signature string) bool {
	if signature == "" {
		return false
	}
	want := Signature(serverKey, orderID, statusCode, grossAmount)
	return subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(signature))) == 1
}

func Signature(serverKey, orderID, statusCode, grossAmount string) string {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:])
}

/* =========================================================
   Utils
========================================================= */

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
