package dto

/* =========================================================
   CHECKOUT
========================================================= */

// CheckoutRequest: amount 0 charges the whole pending balance.
type CheckoutRequest struct {
	StudentKey string `json:"student_key" validate:"required"`
	Amount     int    `json:"amount" validate:"gte=0"`
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	Amount      int    `json:"amount"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

/* =========================================================
   MIDTRANS NOTIFICATION
========================================================= */

type MidtransNotification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string `json:"transaction_id"`
}
