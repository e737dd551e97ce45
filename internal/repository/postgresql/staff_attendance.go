package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/attendance"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type staffAttendanceRepositoryImpl struct {
	db *database.DB
}

func NewStaffAttendanceRepository(db *database.DB) attendance.StaffRepository {
	return &staffAttendanceRepositoryImpl{db: db}
}

const staffAttendanceColumns = `
	sa.id, sa.staff_id, sa.occurrence_id, sa.date, sa.student_record_id, sa.created_at,
	s.full_name AS staff_name, o.label AS occurrence_label
`

const staffAttendanceJoins = `
	JOIN staff s ON s.id = sa.staff_id
	JOIN activity_occurrences o ON o.id = sa.occurrence_id
`

func scanStaffAttendance(row pgx.Row) (attendance.StaffRecord, error) {
	var rec attendance.StaffRecord
	err := row.Scan(
		&rec.ID, &rec.StaffID, &rec.OccurrenceID, &rec.Date, &rec.StudentRecordID,
		&rec.CreatedAt, &rec.StaffName, &rec.OccurrenceLabel,
	)
	return rec, err
}

// Record implements attendance.StaffRepository. Staff rows are
// presence-only: DO NOTHING keeps an existing row untouched, and the
// follow-up select returns whichever row survived.
func (r *staffAttendanceRepositoryImpl) Record(ctx context.Context, rec attendance.StaffRecord) (attendance.StaffRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff_attendance_records (staff_id, occurrence_id, date, student_record_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (staff_id, occurrence_id, date) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, rec.StaffID, rec.OccurrenceID, rec.Date, rec.StudentRecordID); err != nil {
		return attendance.StaffRecord{}, fmt.Errorf("failed to record staff attendance: %w", err)
	}

	existing, err := r.GetByKey(ctx, rec.StaffID, rec.OccurrenceID, rec.Date)
	if err != nil {
		return attendance.StaffRecord{}, err
	}
	if existing == nil {
		return attendance.StaffRecord{}, fmt.Errorf("staff attendance row missing after insert")
	}

	return *existing, nil
}

// GetByKey implements attendance.StaffRepository.
func (r *staffAttendanceRepositoryImpl) GetByKey(ctx context.Context, staffID, occurrenceID string, date time.Time) (*attendance.StaffRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffAttendanceColumns + `
		FROM staff_attendance_records sa` + staffAttendanceJoins + `
		WHERE sa.staff_id = $1 AND sa.occurrence_id = $2 AND sa.date = $3
	`

	rec, err := scanStaffAttendance(q.QueryRow(ctx, query, staffID, occurrenceID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff attendance by key: %w", err)
	}

	return &rec, nil
}

// ListByStaff implements attendance.StaffRepository.
func (r *staffAttendanceRepositoryImpl) ListByStaff(ctx context.Context, staffID string, from, to time.Time) ([]attendance.StaffRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffAttendanceColumns + `
		FROM staff_attendance_records sa` + staffAttendanceJoins + `
		WHERE sa.staff_id = $1 AND sa.date >= $2 AND sa.date <= $3
		ORDER BY sa.date ASC, o.start_time ASC
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.StaffRecord
	for rows.Next() {
		rec, err := scanStaffAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
