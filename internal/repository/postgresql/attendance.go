package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/attendance"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	ar.id, ar.occurrence_id, ar.student_id, ar.date, ar.status, ar.recorded_by,
	ar.note, ar.created_at, ar.updated_at,
	st.full_name AS student_name, st.nis AS student_nis,
	o.label AS occurrence_label, a.name AS activity_name
`

const attendanceJoins = `
	JOIN students st ON st.id = ar.student_id
	JOIN activity_occurrences o ON o.id = ar.occurrence_id
	JOIN activities a ON a.id = o.activity_id
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.OccurrenceID, &rec.StudentID, &rec.Date, &rec.Status,
		&rec.RecordedBy, &rec.Note, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.StudentName, &rec.StudentNIS, &rec.OccurrenceLabel, &rec.ActivityName,
	)
	return rec, err
}

// upsertQuery enforces the one-row-per-key rule in the database: a
// conflicting write replaces status, recorded_by and note in place.
const upsertQuery = `
	INSERT INTO attendance_records (occurrence_id, student_id, date, status, recorded_by, note)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (occurrence_id, student_id, date)
	DO UPDATE SET status = EXCLUDED.status,
		recorded_by = EXCLUDED.recorded_by,
		note = EXCLUDED.note,
		updated_at = NOW()
	RETURNING id, occurrence_id, student_id, date, status, recorded_by, note, created_at, updated_at
`

func scanUpserted(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.OccurrenceID, &rec.StudentID, &rec.Date, &rec.Status,
		&rec.RecordedBy, &rec.Note, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Upsert implements attendance.Repository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	saved, err := scanUpserted(q.QueryRow(ctx, upsertQuery,
		rec.OccurrenceID, rec.StudentID, rec.Date, rec.Status, rec.RecordedBy, rec.Note,
	))
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return saved, nil
}

// UpsertBatch implements attendance.Repository.
func (r *attendanceRepositoryImpl) UpsertBatch(ctx context.Context, recs []attendance.Record) ([]attendance.Record, error) {
	saved := make([]attendance.Record, 0, len(recs))

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)
		q := GetQuerier(txCtx, r.db)
		for _, rec := range recs {
			row := q.QueryRow(txCtx, upsertQuery,
				rec.OccurrenceID, rec.StudentID, rec.Date, rec.Status, rec.RecordedBy, rec.Note,
			)
			s, err := scanUpserted(row)
			if err != nil {
				return fmt.Errorf("failed to upsert attendance record for student %s: %w", rec.StudentID, err)
			}
			saved = append(saved, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records ar` + attendanceJoins + `
		WHERE ar.id = $1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetByKey implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByKey(ctx context.Context, occurrenceID, studentID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records ar` + attendanceJoins + `
		WHERE ar.occurrence_id = $1 AND ar.student_id = $2 AND ar.date = $3
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, occurrenceID, studentID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record by key: %w", err)
	}

	return &rec, nil
}

// ListByStudent implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByStudent(ctx context.Context, studentID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records ar` + attendanceJoins + `
		WHERE ar.student_id = $1 AND ar.date >= $2 AND ar.date <= $3
		ORDER BY ar.date ASC, o.start_time ASC
	`

	rows, err := q.Query(ctx, query, studentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list student attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// ListByOccurrenceAndDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByOccurrenceAndDate(ctx context.Context, occurrenceID string, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records ar` + attendanceJoins + `
		WHERE ar.occurrence_id = $1 AND ar.date = $2
		ORDER BY st.full_name ASC
	`

	rows, err := q.Query(ctx, query, occurrenceID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrence attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// List implements attendance.Repository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.StudentID != nil {
		conditions = append(conditions, fmt.Sprintf("ar.student_id = $%d", argIdx))
		args = append(args, *filter.StudentID)
		argIdx++
	}
	if filter.OccurrenceID != nil {
		conditions = append(conditions, fmt.Sprintf("ar.occurrence_id = $%d", argIdx))
		args = append(args, *filter.OccurrenceID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("ar.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("ar.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("ar.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_records ar WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records ar%s
		WHERE %s
		ORDER BY ar.date DESC, st.full_name ASC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, attendanceJoins, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records, err := collectAttendance(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func collectAttendance(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
