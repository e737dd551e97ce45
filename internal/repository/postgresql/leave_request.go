package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/leave"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	lr.id, lr.student_id, lr.start_date, lr.end_date, lr.departure_time,
	lr.planned_return_at, lr.actual_return_at, lr.reason, lr.escort, lr.escort_name,
	lr.status, lr.supervisor_approved, lr.approved_by, lr.approved_at, lr.created_by,
	lr.created_at, lr.updated_at,
	st.full_name AS student_name, st.nis AS student_nis, r.name AS room_name
`

const leaveJoins = `
	JOIN students st ON st.id = lr.student_id
	LEFT JOIN rooms r ON r.id = st.room_id
`

func scanLeave(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.StudentID, &req.StartDate, &req.EndDate, &req.DepartureTime,
		&req.PlannedReturnAt, &req.ActualReturnAt, &req.Reason, &req.Escort, &req.EscortName,
		&req.Status, &req.SupervisorApproved, &req.ApprovedBy, &req.ApprovedAt, &req.CreatedBy,
		&req.CreatedAt, &req.UpdatedAt,
		&req.StudentName, &req.StudentNIS, &req.RoomName,
	)
	return req, err
}

// Create implements leave.Repository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			student_id, start_date, end_date, departure_time, planned_return_at,
			reason, escort, escort_name, status, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, student_id, start_date, end_date, departure_time, planned_return_at,
			actual_return_at, reason, escort, escort_name, status, supervisor_approved,
			approved_by, approved_at, created_by, created_at, updated_at
	`

	var created leave.Request
	err := q.QueryRow(ctx, query,
		req.StudentID, req.StartDate, req.EndDate, req.DepartureTime, req.PlannedReturnAt,
		req.Reason, req.Escort, req.EscortName, leave.StatusRequested, req.CreatedBy,
	).Scan(
		&created.ID, &created.StudentID, &created.StartDate, &created.EndDate,
		&created.DepartureTime, &created.PlannedReturnAt, &created.ActualReturnAt,
		&created.Reason, &created.Escort, &created.EscortName, &created.Status,
		&created.SupervisorApproved, &created.ApprovedBy, &created.ApprovedAt,
		&created.CreatedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr` + leaveJoins + `
		WHERE lr.id = $1
	`

	req, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// UpdateStatus implements leave.Repository. The WHERE clause carries the
// expected status, so a row changed by a concurrent writer is simply not
// matched and the caller sees ErrStaleStatus.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, expectedStatus, newStatus leave.Status, actualReturnAt *time.Time, approvedBy *string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $3,
			supervisor_approved = CASE WHEN $3 = 'supervisor_approved' THEN TRUE ELSE supervisor_approved END,
			actual_return_at = COALESCE($4, actual_return_at),
			approved_by = COALESCE($5, approved_by),
			approved_at = CASE WHEN $5::uuid IS NOT NULL THEN NOW() ELSE approved_at END,
			updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING id, student_id, start_date, end_date, departure_time, planned_return_at,
			actual_return_at, reason, escort, escort_name, status, supervisor_approved,
			approved_by, approved_at, created_by, created_at, updated_at
	`

	var updated leave.Request
	err := q.QueryRow(ctx, query, id, expectedStatus, newStatus, actualReturnAt, approvedBy).Scan(
		&updated.ID, &updated.StudentID, &updated.StartDate, &updated.EndDate,
		&updated.DepartureTime, &updated.PlannedReturnAt, &updated.ActualReturnAt,
		&updated.Reason, &updated.Escort, &updated.EscortName, &updated.Status,
		&updated.SupervisorApproved, &updated.ApprovedBy, &updated.ApprovedAt,
		&updated.CreatedBy, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Row exists with a different status, or not at all.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return leave.Request{}, getErr
			}
			return leave.Request{}, leave.ErrStaleStatus
		}
		return leave.Request{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return updated, nil
}

// ListByStudent implements leave.Repository.
func (r *leaveRepositoryImpl) ListByStudent(ctx context.Context, studentID string, limit int) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr` + leaveJoins + `
		WHERE lr.student_id = $1
		ORDER BY lr.created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list student leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// List implements leave.Repository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.StudentID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.student_id = $%d", argIdx))
		args = append(args, *filter.StudentID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("lr.start_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("lr.end_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests lr WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
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
		FROM leave_requests lr%s
		WHERE %s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveColumns, leaveJoins, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := collectLeaves(rows)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListOverdue implements leave.Repository. Only leaves already allowed
// to be outside (coordinator approved) can go overdue.
func (r *leaveRepositoryImpl) ListOverdue(ctx context.Context, cutoff time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr` + leaveJoins + `
		WHERE lr.status = $1 AND lr.planned_return_at < $2
		ORDER BY lr.planned_return_at ASC
	`

	rows, err := q.Query(ctx, query, leave.StatusCoordinatorApproved, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func collectLeaves(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
