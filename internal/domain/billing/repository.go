package billing

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, bill Bill) (Bill, error)

	// CreateForAllActive generates one bill per active student for the
	// period, skipping students already billed. Returns bills created.
	CreateForAllActive(ctx context.Context, month, year int, amount int64) ([]Bill, error)

	GetByID(ctx context.Context, id string) (Bill, error)
	GetByXenditInvoiceID(ctx context.Context, invoiceID string) (Bill, error)
	List(ctx context.Context, filter Filter) ([]Bill, int64, error)
	ListByStudent(ctx context.Context, studentID string, year *int) ([]Bill, error)

	MarkPaid(ctx context.Context, id string, method string) (Bill, error)
	SetInvoiceRef(ctx context.Context, id, invoiceID, invoiceURL string) error
	MarkOverdueBefore(ctx context.Context, cutoffYear, cutoffMonth int) (int64, error)
}
