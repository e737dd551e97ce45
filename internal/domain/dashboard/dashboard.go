package dashboard

import (
	"context"
	"time"
)

// TodayAttendance summarizes attendance recorded for one calendar day.
type TodayAttendance struct {
	Recorded    int     `json:"recorded"`
	Present     int     `json:"present"`
	PresentRate float64 `json:"present_rate"`
}

// Summary is the admin and pengurus dashboard read model. Fields the
// caller's role may not see are left nil.
type Summary struct {
	ActiveStudents  *int64           `json:"active_students,omitempty"`
	ActiveStaff     *int64           `json:"active_staff,omitempty"`
	Dormitories     *int64           `json:"dormitories,omitempty"`
	Rooms           *int64           `json:"rooms,omitempty"`
	TodayAttendance *TodayAttendance `json:"today_attendance,omitempty"`
	ActiveLeaves    *int64           `json:"active_leaves,omitempty"`
	OverdueLeaves   *int64           `json:"overdue_leaves,omitempty"`
	UnpaidBills     *int64           `json:"unpaid_bills,omitempty"`
	OverdueBills    *int64           `json:"overdue_bills,omitempty"`
}

// GuardianSummary is the wali santri view of one child.
type GuardianSummary struct {
	StudentID       string          `json:"student_id"`
	StudentName     string          `json:"student_name"`
	TodayAttendance TodayAttendance `json:"today_attendance"`
	ActiveLeaves    int64           `json:"active_leaves"`
	UnpaidBills     int64           `json:"unpaid_bills"`
}

// Counts holds the raw aggregates the repository computes in one pass.
type Counts struct {
	ActiveStudents int64
	ActiveStaff    int64
	Dormitories    int64
	Rooms          int64
	ActiveLeaves   int64
	OverdueLeaves  int64
	UnpaidBills    int64
	OverdueBills   int64
}

type Repository interface {
	// Counts returns the pesantren-wide aggregates.
	Counts(ctx context.Context) (Counts, error)

	// AttendanceForDay tallies attendance rows recorded for the day,
	// optionally scoped to a single student.
	AttendanceForDay(ctx context.Context, day time.Time, studentID *string) (TodayAttendance, error)

	// StudentCounts returns active leave and unpaid bill counts for one
	// student.
	StudentCounts(ctx context.Context, studentID string) (activeLeaves, unpaidBills int64, err error)
}
