package billing

import "time"

type BillStatus string

const (
	BillStatusUnpaid  BillStatus = "unpaid"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"
)

// Bill is one month's SPP charge for one santri. At most one bill exists
// per (student, month, year).
type Bill struct {
	ID               string
	StudentID        string
	Month            int
	Year             int
	Amount           int64 // rupiah
	Status           BillStatus
	DueDate          time.Time
	PaidAt           *time.Time
	PaymentMethod    *string // "manual" or "xendit"
	XenditInvoiceID  *string
	XenditInvoiceURL *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO / Join
	StudentName *string
	StudentNIS  *string
}
