package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/billing"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/xendit"
)

// fakeBillRepo covers only the paths HandleInvoiceWebhook touches.
type fakeBillRepo struct {
	billing.Repository
	stored      billing.Bill
	markPaidErr error

	markPaidCalls int
}

func (f *fakeBillRepo) GetByXenditInvoiceID(ctx context.Context, invoiceID string) (billing.Bill, error) {
	if f.stored.XenditInvoiceID == nil || *f.stored.XenditInvoiceID != invoiceID {
		return billing.Bill{}, billing.ErrBillNotFound
	}
	return f.stored, nil
}

func (f *fakeBillRepo) MarkPaid(ctx context.Context, id string, method string) (billing.Bill, error) {
	f.markPaidCalls++
	if f.markPaidErr != nil {
		return billing.Bill{}, f.markPaidErr
	}
	paid := f.stored
	paid.Status = billing.BillStatusPaid
	paid.PaymentMethod = &method
	now := time.Now()
	paid.PaidAt = &now
	return paid, nil
}

func unpaidBill() billing.Bill {
	invoiceID := "inv-5f27c1a9"
	return billing.Bill{
		ID:              "01890a5d-ac96-774b-bcce-b302099a8057",
		StudentID:       "01890a5d-ac96-774b-bcce-b302099a8058",
		Month:           3,
		Year:            2024,
		Amount:          500000,
		Status:          billing.BillStatusUnpaid,
		DueDate:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		XenditInvoiceID: &invoiceID,
	}
}

func TestHandleInvoiceWebhook_MarksPaid(t *testing.T) {
	repo := &fakeBillRepo{stored: unpaidBill()}
	svc := NewBillingService(repo, nil, nil)

	err := svc.HandleInvoiceWebhook(context.Background(), xendit.InvoiceWebhookPayload{
		ID:     "inv-5f27c1a9",
		Status: xendit.InvoiceStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.markPaidCalls)
}

func TestHandleInvoiceWebhook_SettledStatusAccepted(t *testing.T) {
	repo := &fakeBillRepo{stored: unpaidBill()}
	svc := NewBillingService(repo, nil, nil)

	err := svc.HandleInvoiceWebhook(context.Background(), xendit.InvoiceWebhookPayload{
		ID:     "inv-5f27c1a9",
		Status: xendit.InvoiceStatusSettled,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.markPaidCalls)
}

func TestHandleInvoiceWebhook_IgnoresPendingStatus(t *testing.T) {
	repo := &fakeBillRepo{stored: unpaidBill()}
	svc := NewBillingService(repo, nil, nil)

	err := svc.HandleInvoiceWebhook(context.Background(), xendit.InvoiceWebhookPayload{
		ID:     "inv-5f27c1a9",
		Status: "PENDING",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.markPaidCalls)
}

func TestHandleInvoiceWebhook_RetryAfterPaidIsIdempotent(t *testing.T) {
	repo := &fakeBillRepo{
		stored:      unpaidBill(),
		markPaidErr: billing.ErrBillAlreadyPaid,
	}
	svc := NewBillingService(repo, nil, nil)

	err := svc.HandleInvoiceWebhook(context.Background(), xendit.InvoiceWebhookPayload{
		ID:     "inv-5f27c1a9",
		Status: xendit.InvoiceStatusPaid,
	})
	assert.NoError(t, err)
}

func TestHandleInvoiceWebhook_UnknownInvoice(t *testing.T) {
	repo := &fakeBillRepo{stored: unpaidBill()}
	svc := NewBillingService(repo, nil, nil)

	err := svc.HandleInvoiceWebhook(context.Background(), xendit.InvoiceWebhookPayload{
		ID:     "inv-unknown",
		Status: xendit.InvoiceStatusPaid,
	})
	assert.ErrorIs(t, err, billing.ErrBillNotFound)
}
