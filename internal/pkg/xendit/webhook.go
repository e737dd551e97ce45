package xendit

import (
	"strings"
)

// WebhookVerifier checks the x-callback-token header Xendit sends
// with every invoice callback.
type WebhookVerifier struct {
	callbackToken string
}

func NewWebhookVerifier(callbackToken string) *WebhookVerifier {
	return &WebhookVerifier{callbackToken: callbackToken}
}

// VerifyToken reports whether the received callback token matches the
// configured one.
func (v *WebhookVerifier) VerifyToken(received string) bool {
	return strings.TrimSpace(received) == strings.TrimSpace(v.callbackToken)
}

// InvoiceWebhookPayload is the callback body for invoice events.
type InvoiceWebhookPayload struct {
	ID             string  `json:"id"`
	ExternalID     string  `json:"external_id"`
	Status         string  `json:"status"`
	Amount         float64 `json:"amount"`
	PaidAmount     float64 `json:"paid_amount"`
	PaidAt         string  `json:"paid_at"`
	PayerEmail     string  `json:"payer_email"`
	Description    string  `json:"description"`
	Currency       string  `json:"currency"`
	PaymentMethod  string  `json:"payment_method"`
	PaymentChannel string  `json:"payment_channel"`
}
