// Package xendit wraps the official SDK for SPP invoicing. Amounts are
// whole rupiah carried as int64.
package xendit

import (
	xenditSDK "github.com/xendit/xendit-go/v7"
	"github.com/xendit/xendit-go/v7/invoice"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/config"
)

type Client struct {
	invoiceAPI invoice.InvoiceApi
}

func NewClient(cfg config.XenditConfig) *Client {
	sdk := xenditSDK.NewClient(cfg.APIKey)
	return &Client{invoiceAPI: sdk.InvoiceApi}
}
