package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/dashboard"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

// Counts implements dashboard.Repository. One round trip; every
// aggregate is a scalar subquery.
func (r *dashboardRepositoryImpl) Counts(ctx context.Context) (dashboard.Counts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM students WHERE active = TRUE),
			(SELECT COUNT(*) FROM staff WHERE active = TRUE),
			(SELECT COUNT(*) FROM dormitories),
			(SELECT COUNT(*) FROM rooms),
			(SELECT COUNT(*) FROM leave_requests
				WHERE status IN ('requested', 'supervisor_approved', 'coordinator_approved')),
			(SELECT COUNT(*) FROM leave_requests WHERE status = 'late'),
			(SELECT COUNT(*) FROM spp_bills WHERE status = 'unpaid'),
			(SELECT COUNT(*) FROM spp_bills WHERE status = 'overdue')
	`

	var counts dashboard.Counts
	err := q.QueryRow(ctx, query).Scan(
		&counts.ActiveStudents,
		&counts.ActiveStaff,
		&counts.Dormitories,
		&counts.Rooms,
		&counts.ActiveLeaves,
		&counts.OverdueLeaves,
		&counts.UnpaidBills,
		&counts.OverdueBills,
	)
	if err != nil {
		return dashboard.Counts{}, fmt.Errorf("failed to count dashboard aggregates: %w", err)
	}

	return counts, nil
}

// AttendanceForDay implements dashboard.Repository.
func (r *dashboardRepositoryImpl) AttendanceForDay(ctx context.Context, day time.Time, studentID *string) (dashboard.TodayAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'hadir')
		FROM attendance_records
		WHERE date = $1 AND ($2::uuid IS NULL OR student_id = $2)
	`

	var summary dashboard.TodayAttendance
	err := q.QueryRow(ctx, query, day, studentID).Scan(&summary.Recorded, &summary.Present)
	if err != nil {
		return dashboard.TodayAttendance{}, fmt.Errorf("failed to tally attendance for day: %w", err)
	}

	if summary.Recorded > 0 {
		summary.PresentRate = float64(summary.Present) / float64(summary.Recorded) * 100
	}

	return summary, nil
}

// StudentCounts implements dashboard.Repository.
func (r *dashboardRepositoryImpl) StudentCounts(ctx context.Context, studentID string) (int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM leave_requests
				WHERE student_id = $1
				AND status IN ('requested', 'supervisor_approved', 'coordinator_approved', 'late')),
			(SELECT COUNT(*) FROM spp_bills
				WHERE student_id = $1 AND status IN ('unpaid', 'overdue'))
	`

	var activeLeaves, unpaidBills int64
	if err := q.QueryRow(ctx, query, studentID).Scan(&activeLeaves, &unpaidBills); err != nil {
		return 0, 0, fmt.Errorf("failed to count student aggregates: %w", err)
	}

	return activeLeaves, unpaidBills, nil
}
