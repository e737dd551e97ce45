package billing

import "errors"

var (
	ErrBillNotFound    = errors.New("bill not found")
	ErrBillExists      = errors.New("bill already exists for this student and period")
	ErrBillAlreadyPaid = errors.New("bill has already been paid")
	ErrStudentNotFound = errors.New("student not found")
	ErrInvoiceMismatch = errors.New("invoice reference does not match any bill")
)
