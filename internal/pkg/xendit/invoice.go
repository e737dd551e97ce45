package xendit

import (
	"context"
	"fmt"
	"time"

	"github.com/xendit/xendit-go/v7/invoice"
)

// CreateInvoiceRequest carries everything needed to raise an SPP
// invoice. Amounts are in whole rupiah.
type CreateInvoiceRequest struct {
	ExternalID         string        `json:"external_id"`
	Amount             int64         `json:"amount"`
	Description        string        `json:"description"`
	PayerEmail         string        `json:"payer_email"`
	InvoiceDuration    int           `json:"invoice_duration,omitempty"` // seconds
	SuccessRedirectURL string        `json:"success_redirect_url,omitempty"`
	Items              []InvoiceItem `json:"items,omitempty"`
}

// InvoiceItem represents a line item on the invoice.
type InvoiceItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// InvoiceResponse is the subset of the Xendit invoice we care about.
type InvoiceResponse struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id"`
	Status     string    `json:"status"` // PENDING, PAID, SETTLED, EXPIRED
	Amount     float64   `json:"amount"`
	PayerEmail string    `json:"payer_email"`
	InvoiceURL string    `json:"invoice_url"`
	ExpiryDate time.Time `json:"expiry_date"`
	Currency   string    `json:"currency"`
	Created    time.Time `json:"created"`
	Updated    time.Time `json:"updated"`
}

// CreateInvoice creates a new invoice using the official Xendit SDK.
func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	sdkReq := *invoice.NewCreateInvoiceRequest(req.ExternalID, float64(req.Amount))
	sdkReq.SetCurrency("IDR")

	if req.PayerEmail != "" {
		sdkReq.SetPayerEmail(req.PayerEmail)
	}
	if req.Description != "" {
		sdkReq.SetDescription(req.Description)
	}
	if req.InvoiceDuration > 0 {
		sdkReq.SetInvoiceDuration(float32(req.InvoiceDuration))
	}
	if req.SuccessRedirectURL != "" {
		sdkReq.SetSuccessRedirectUrl(req.SuccessRedirectURL)
	}

	if len(req.Items) > 0 {
		items := make([]invoice.InvoiceItem, len(req.Items))
		for i, item := range req.Items {
			items[i] = *invoice.NewInvoiceItem(item.Name, float32(item.Price), float32(item.Quantity))
		}
		sdkReq.SetItems(items)
	}

	resp, _, err := c.invoiceAPI.CreateInvoice(ctx).
		CreateInvoiceRequest(sdkReq).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	return toInvoiceResponse(resp), nil
}

// ExpireInvoice closes an invoice that should no longer be payable,
// typically after a manual settlement at the office.
func (c *Client) ExpireInvoice(ctx context.Context, invoiceID string) (*InvoiceResponse, error) {
	resp, _, err := c.invoiceAPI.ExpireInvoice(ctx, invoiceID).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to expire invoice: %w", err)
	}

	return toInvoiceResponse(resp), nil
}

func toInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}

	resp := &InvoiceResponse{
		ID:         inv.GetId(),
		ExternalID: inv.GetExternalId(),
		Status:     string(inv.GetStatus()),
		Amount:     inv.GetAmount(),
		InvoiceURL: inv.GetInvoiceUrl(),
		ExpiryDate: inv.GetExpiryDate(),
		Currency:   string(inv.GetCurrency()),
		Created:    inv.GetCreated(),
		Updated:    inv.GetUpdated(),
	}

	if inv.HasPayerEmail() {
		resp.PayerEmail = inv.GetPayerEmail()
	}
	// PaidAt and the payment method only arrive through the webhook
	// callback, never on the invoice resource itself.

	return resp
}

// Invoice status constants
const (
	InvoiceStatusPending = "PENDING"
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusSettled = "SETTLED"
	InvoiceStatusExpired = "EXPIRED"
)
