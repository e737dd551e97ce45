package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/billing"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/xendit"
)

// BillingService manages monthly SPP bills and their payment, both
// recorded manually at the office and collected online through Xendit.
type BillingService interface {
	// GenerateBills raises one bill per active santri for the period.
	// Students already billed for that month are skipped.
	GenerateBills(ctx context.Context, req billing.GenerateBillsRequest) ([]billing.BillResponse, error)

	GetBill(ctx context.Context, id string) (billing.BillResponse, error)
	ListBills(ctx context.Context, filter billing.Filter) ([]billing.BillResponse, int64, error)
	ListByStudent(ctx context.Context, studentID string, year *int) ([]billing.BillResponse, error)

	// PayBill settles a bill. Method "manual" records an office payment
	// immediately; method "xendit" raises an invoice and returns the
	// bill with its payment URL set.
	PayBill(ctx context.Context, req billing.PayBillRequest) (billing.BillResponse, error)

	// HandleInvoiceWebhook applies a Xendit invoice callback. Callbacks
	// for already-paid bills are acknowledged without effect.
	HandleInvoiceWebhook(ctx context.Context, payload xendit.InvoiceWebhookPayload) error
}

type billingServiceImpl struct {
	billing.Repository
	student.StudentRepository
	xenditClient *xendit.Client
}

func NewBillingService(billingRepo billing.Repository, studentRepo student.StudentRepository, xenditClient *xendit.Client) BillingService {
	return &billingServiceImpl{
		Repository:        billingRepo,
		StudentRepository: studentRepo,
		xenditClient:      xenditClient,
	}
}

// GenerateBills implements BillingService.
func (b *billingServiceImpl) GenerateBills(ctx context.Context, req billing.GenerateBillsRequest) ([]billing.BillResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := b.Repository.CreateForAllActive(ctx, req.Month, req.Year, req.Amount)
	if err != nil {
		return nil, err
	}

	responses := make([]billing.BillResponse, 0, len(created))
	for _, bill := range created {
		responses = append(responses, billing.ToResponse(bill))
	}

	slog.Info("generated spp bills",
		slog.Int("month", req.Month),
		slog.Int("year", req.Year),
		slog.Int("count", len(created)),
	)

	return responses, nil
}

// GetBill implements BillingService.
func (b *billingServiceImpl) GetBill(ctx context.Context, id string) (billing.BillResponse, error) {
	bill, err := b.Repository.GetByID(ctx, id)
	if err != nil {
		return billing.BillResponse{}, err
	}
	return billing.ToResponse(bill), nil
}

// ListBills implements BillingService.
func (b *billingServiceImpl) ListBills(ctx context.Context, filter billing.Filter) ([]billing.BillResponse, int64, error) {
	bills, total, err := b.Repository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]billing.BillResponse, 0, len(bills))
	for _, bill := range bills {
		responses = append(responses, billing.ToResponse(bill))
	}

	return responses, total, nil
}

// ListByStudent implements BillingService.
func (b *billingServiceImpl) ListByStudent(ctx context.Context, studentID string, year *int) ([]billing.BillResponse, error) {
	if _, err := b.StudentRepository.GetByID(ctx, studentID); err != nil {
		return nil, billing.ErrStudentNotFound
	}

	bills, err := b.Repository.ListByStudent(ctx, studentID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]billing.BillResponse, 0, len(bills))
	for _, bill := range bills {
		responses = append(responses, billing.ToResponse(bill))
	}

	return responses, nil
}

// PayBill implements BillingService.
func (b *billingServiceImpl) PayBill(ctx context.Context, req billing.PayBillRequest) (billing.BillResponse, error) {
	if err := req.Validate(); err != nil {
		return billing.BillResponse{}, err
	}

	bill, err := b.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return billing.BillResponse{}, err
	}
	if bill.Status == billing.BillStatusPaid {
		return billing.BillResponse{}, billing.ErrBillAlreadyPaid
	}

	if req.Method == "manual" {
		paid, err := b.Repository.MarkPaid(ctx, bill.ID, "manual")
		if err != nil {
			return billing.BillResponse{}, err
		}
		// A live Xendit invoice for a bill settled at the office must
		// not stay payable.
		if bill.XenditInvoiceID != nil {
			if _, err := b.xenditClient.ExpireInvoice(ctx, *bill.XenditInvoiceID); err != nil {
				slog.Warn("failed to expire xendit invoice",
					slog.String("invoice_id", *bill.XenditInvoiceID),
					slog.Any("error", err),
				)
			}
		}
		return billing.ToResponse(paid), nil
	}

	// An unpaid bill that already has a live invoice reuses it instead
	// of raising a second one.
	if bill.XenditInvoiceURL != nil {
		return billing.ToResponse(bill), nil
	}

	invoice, err := b.xenditClient.CreateInvoice(ctx, xendit.CreateInvoiceRequest{
		ExternalID:  fmt.Sprintf("spp-%s-%04d%02d", bill.StudentID, bill.Year, bill.Month),
		Amount:      bill.Amount,
		Description: fmt.Sprintf("SPP %02d/%04d %s", bill.Month, bill.Year, derefOr(bill.StudentName, bill.StudentID)),
		Items: []xendit.InvoiceItem{
			{Name: fmt.Sprintf("SPP bulan %02d/%04d", bill.Month, bill.Year), Quantity: 1, Price: bill.Amount},
		},
	})
	if err != nil {
		return billing.BillResponse{}, fmt.Errorf("failed to create xendit invoice: %w", err)
	}

	if err := b.Repository.SetInvoiceRef(ctx, bill.ID, invoice.ID, invoice.InvoiceURL); err != nil {
		return billing.BillResponse{}, err
	}

	bill.XenditInvoiceID = &invoice.ID
	bill.XenditInvoiceURL = &invoice.InvoiceURL

	return billing.ToResponse(bill), nil
}

// HandleInvoiceWebhook implements BillingService. The callback token
// has already been verified by the handler.
func (b *billingServiceImpl) HandleInvoiceWebhook(ctx context.Context, payload xendit.InvoiceWebhookPayload) error {
	if payload.Status != xendit.InvoiceStatusPaid && payload.Status != xendit.InvoiceStatusSettled {
		slog.Info("ignoring xendit invoice callback",
			slog.String("invoice_id", payload.ID),
			slog.String("status", payload.Status),
		)
		return nil
	}

	bill, err := b.Repository.GetByXenditInvoiceID(ctx, payload.ID)
	if err != nil {
		return err
	}

	if _, err := b.Repository.MarkPaid(ctx, bill.ID, "xendit"); err != nil {
		// Xendit retries callbacks; a bill settled by an earlier
		// delivery is a success, not an error.
		if errors.Is(err, billing.ErrBillAlreadyPaid) {
			return nil
		}
		return err
	}

	slog.Info("spp bill paid via xendit",
		slog.String("bill_id", bill.ID),
		slog.String("invoice_id", payload.ID),
		slog.String("channel", payload.PaymentChannel),
	)

	return nil
}

func derefOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}
