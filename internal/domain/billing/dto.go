package billing

import (
	"time"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

type GenerateBillsRequest struct {
	Month  int   `json:"month"`
	Year   int   `json:"year"`
	Amount int64 `json:"amount"`
}

func (r *GenerateBillsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayBillRequest struct {
	ID     string `json:"id"`
	Method string `json:"method"`
}

func (r *PayBillRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if !validator.IsInSlice(r.Method, []string{"manual", "xendit"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method must be manual or xendit",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	StudentID *string
	Status    *string
	Month     *int
	Year      *int
	Page      int
	Limit     int
}

type BillResponse struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"student_id"`
	StudentName *string `json:"student_name,omitempty"`
	StudentNIS  *string `json:"student_nis,omitempty"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	Amount      int64   `json:"amount"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
	PaidAt      *string `json:"paid_at,omitempty"`
	InvoiceURL  *string `json:"invoice_url,omitempty"`
}

func ToResponse(b Bill) BillResponse {
	resp := BillResponse{
		ID:          b.ID,
		StudentID:   b.StudentID,
		StudentName: b.StudentName,
		StudentNIS:  b.StudentNIS,
		Month:       b.Month,
		Year:        b.Year,
		Amount:      b.Amount,
		Status:      string(b.Status),
		DueDate:     b.DueDate.Format("2006-01-02"),
		InvoiceURL:  b.XenditInvoiceURL,
	}
	if b.PaidAt != nil {
		paidAt := b.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}
