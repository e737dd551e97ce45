package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/billing"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type billingRepositoryImpl struct {
	db *database.DB
}

func NewBillingRepository(db *database.DB) billing.Repository {
	return &billingRepositoryImpl{db: db}
}

const billColumns = `
	b.id, b.student_id, b.month, b.year, b.amount, b.status, b.due_date,
	b.paid_at, b.payment_method, b.xendit_invoice_id, b.xendit_invoice_url,
	b.created_at, b.updated_at,
	st.full_name AS student_name, st.nis AS student_nis
`

const billJoins = `
	JOIN students st ON st.id = b.student_id
`

func scanBill(row pgx.Row) (billing.Bill, error) {
	var b billing.Bill
	err := row.Scan(
		&b.ID, &b.StudentID, &b.Month, &b.Year, &b.Amount, &b.Status, &b.DueDate,
		&b.PaidAt, &b.PaymentMethod, &b.XenditInvoiceID, &b.XenditInvoiceURL,
		&b.CreatedAt, &b.UpdatedAt,
		&b.StudentName, &b.StudentNIS,
	)
	return b, err
}

// Create implements billing.Repository.
func (r *billingRepositoryImpl) Create(ctx context.Context, bill billing.Bill) (billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO spp_bills (student_id, month, year, amount, status, due_date)
		VALUES ($1, $2, $3, $4, 'unpaid', $5)
		ON CONFLICT (student_id, month, year) DO NOTHING
		RETURNING id, student_id, month, year, amount, status, due_date, paid_at,
			payment_method, xendit_invoice_id, xendit_invoice_url, created_at, updated_at
	`

	var created billing.Bill
	err := q.QueryRow(ctx, query,
		bill.StudentID, bill.Month, bill.Year, bill.Amount, bill.DueDate,
	).Scan(
		&created.ID, &created.StudentID, &created.Month, &created.Year, &created.Amount,
		&created.Status, &created.DueDate, &created.PaidAt, &created.PaymentMethod,
		&created.XenditInvoiceID, &created.XenditInvoiceURL, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.Bill{}, billing.ErrBillExists
		}
		return billing.Bill{}, fmt.Errorf("failed to create bill: %w", err)
	}

	return created, nil
}

// CreateForAllActive implements billing.Repository. Students already
// billed for the period are skipped by the conflict clause.
func (r *billingRepositoryImpl) CreateForAllActive(ctx context.Context, month, year int, amount int64) ([]billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO spp_bills (student_id, month, year, amount, status, due_date)
		SELECT st.id, $1, $2, $3, 'unpaid', make_date($2, $1, 1) + INTERVAL '9 days'
		FROM students st
		WHERE st.active = TRUE
		ON CONFLICT (student_id, month, year) DO NOTHING
		RETURNING id, student_id, month, year, amount, status, due_date, paid_at,
			payment_method, xendit_invoice_id, xendit_invoice_url, created_at, updated_at
	`

	rows, err := q.Query(ctx, query, month, year, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to generate bills: %w", err)
	}
	defer rows.Close()

	var bills []billing.Bill
	for rows.Next() {
		var b billing.Bill
		err := rows.Scan(
			&b.ID, &b.StudentID, &b.Month, &b.Year, &b.Amount, &b.Status, &b.DueDate,
			&b.PaidAt, &b.PaymentMethod, &b.XenditInvoiceID, &b.XenditInvoiceURL,
			&b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bills, nil
}

// GetByID implements billing.Repository.
func (r *billingRepositoryImpl) GetByID(ctx context.Context, id string) (billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + billColumns + `
		FROM spp_bills b` + billJoins + `
		WHERE b.id = $1
	`

	b, err := scanBill(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.Bill{}, billing.ErrBillNotFound
		}
		return billing.Bill{}, fmt.Errorf("failed to get bill: %w", err)
	}

	return b, nil
}

// GetByXenditInvoiceID implements billing.Repository.
func (r *billingRepositoryImpl) GetByXenditInvoiceID(ctx context.Context, invoiceID string) (billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + billColumns + `
		FROM spp_bills b` + billJoins + `
		WHERE b.xendit_invoice_id = $1
	`

	b, err := scanBill(q.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.Bill{}, billing.ErrInvoiceMismatch
		}
		return billing.Bill{}, fmt.Errorf("failed to get bill by invoice: %w", err)
	}

	return b, nil
}

// List implements billing.Repository.
func (r *billingRepositoryImpl) List(ctx context.Context, filter billing.Filter) ([]billing.Bill, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.StudentID != nil {
		conditions = append(conditions, fmt.Sprintf("b.student_id = $%d", argIdx))
		args = append(args, *filter.StudentID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("b.month = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("b.year = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM spp_bills b WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bills: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM spp_bills b%s
		WHERE %s
		ORDER BY b.year DESC, b.month DESC, st.full_name ASC
		LIMIT $%d OFFSET $%d
	`, billColumns, billJoins, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []billing.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, err
		}
		bills = append(bills, b)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

// ListByStudent implements billing.Repository.
func (r *billingRepositoryImpl) ListByStudent(ctx context.Context, studentID string, year *int) ([]billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + billColumns + `
		FROM spp_bills b` + billJoins + `
		WHERE b.student_id = $1 AND ($2::int IS NULL OR b.year = $2)
		ORDER BY b.year DESC, b.month DESC
	`

	rows, err := q.Query(ctx, query, studentID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list student bills: %w", err)
	}
	defer rows.Close()

	var bills []billing.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bills, nil
}

// MarkPaid implements billing.Repository. Paid bills stay paid: the
// guard keeps a duplicate webhook from rewriting payment facts.
func (r *billingRepositoryImpl) MarkPaid(ctx context.Context, id string, method string) (billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE spp_bills
		SET status = 'paid', paid_at = NOW(), payment_method = $2, updated_at = NOW()
		WHERE id = $1 AND status <> 'paid'
		RETURNING id, student_id, month, year, amount, status, due_date, paid_at,
			payment_method, xendit_invoice_id, xendit_invoice_url, created_at, updated_at
	`

	var updated billing.Bill
	err := q.QueryRow(ctx, query, id, method).Scan(
		&updated.ID, &updated.StudentID, &updated.Month, &updated.Year, &updated.Amount,
		&updated.Status, &updated.DueDate, &updated.PaidAt, &updated.PaymentMethod,
		&updated.XenditInvoiceID, &updated.XenditInvoiceURL, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return billing.Bill{}, getErr
			}
			return billing.Bill{}, billing.ErrBillAlreadyPaid
		}
		return billing.Bill{}, fmt.Errorf("failed to mark bill paid: %w", err)
	}

	return updated, nil
}

// SetInvoiceRef implements billing.Repository.
func (r *billingRepositoryImpl) SetInvoiceRef(ctx context.Context, id, invoiceID, invoiceURL string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE spp_bills
		SET xendit_invoice_id = $2, xendit_invoice_url = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, invoiceID, invoiceURL).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.ErrBillNotFound
		}
		return fmt.Errorf("failed to set invoice reference: %w", err)
	}

	return nil
}

// MarkOverdueBefore implements billing.Repository.
func (r *billingRepositoryImpl) MarkOverdueBefore(ctx context.Context, cutoffYear, cutoffMonth int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE spp_bills
		SET status = 'overdue', updated_at = NOW()
		WHERE status = 'unpaid' AND (year < $1 OR (year = $1 AND month < $2))
	`

	res, err := q.Exec(ctx, query, cutoffYear, cutoffMonth)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue bills: %w", err)
	}

	return res.RowsAffected(), nil
}
