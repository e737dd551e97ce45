package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/dashboard"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/user"
)

var ErrNoLinkedStudent = errors.New("account is not linked to a student")

// DashboardService serves the role-scoped landing summaries.
type DashboardService interface {
	// Summary returns the pesantren-wide aggregates visible to the
	// caller's role. Billing figures are admin-only.
	Summary(ctx context.Context) (dashboard.Summary, error)

	// GuardianSummary returns the wali santri view of their child.
	GuardianSummary(ctx context.Context) (dashboard.GuardianSummary, error)
}

type dashboardServiceImpl struct {
	dashboard.Repository
	student.StudentRepository
}

func NewDashboardService(dashboardRepo dashboard.Repository, studentRepo student.StudentRepository) DashboardService {
	return &dashboardServiceImpl{
		Repository:        dashboardRepo,
		StudentRepository: studentRepo,
	}
}

// Summary implements DashboardService.
func (d *dashboardServiceImpl) Summary(ctx context.Context) (dashboard.Summary, error) {
	role := roleFromContext(ctx)

	counts, err := d.Repository.Counts(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}

	today, err := d.Repository.AttendanceForDay(ctx, todayDate(), nil)
	if err != nil {
		return dashboard.Summary{}, err
	}

	summary := dashboard.Summary{
		ActiveStudents:  &counts.ActiveStudents,
		ActiveStaff:     &counts.ActiveStaff,
		Dormitories:     &counts.Dormitories,
		Rooms:           &counts.Rooms,
		TodayAttendance: &today,
		ActiveLeaves:    &counts.ActiveLeaves,
		OverdueLeaves:   &counts.OverdueLeaves,
	}

	if role == user.RoleAdmin {
		summary.UnpaidBills = &counts.UnpaidBills
		summary.OverdueBills = &counts.OverdueBills
	}

	return summary, nil
}

// GuardianSummary implements DashboardService. The linked student comes
// from the caller's JWT claims.
func (d *dashboardServiceImpl) GuardianSummary(ctx context.Context) (dashboard.GuardianSummary, error) {
	studentID := studentIDFromContext(ctx)
	if studentID == "" {
		return dashboard.GuardianSummary{}, ErrNoLinkedStudent
	}

	subject, err := d.StudentRepository.GetByID(ctx, studentID)
	if err != nil {
		return dashboard.GuardianSummary{}, err
	}

	today, err := d.Repository.AttendanceForDay(ctx, todayDate(), &studentID)
	if err != nil {
		return dashboard.GuardianSummary{}, err
	}

	activeLeaves, unpaidBills, err := d.Repository.StudentCounts(ctx, studentID)
	if err != nil {
		return dashboard.GuardianSummary{}, err
	}

	return dashboard.GuardianSummary{
		StudentID:       subject.ID,
		StudentName:     subject.FullName,
		TodayAttendance: today,
		ActiveLeaves:    activeLeaves,
		UnpaidBills:     unpaidBills,
	}, nil
}

func todayDate() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func roleFromContext(ctx context.Context) user.Role {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return user.Role(role)
}

func studentIDFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	studentID, _ := claims["student_id"].(string)
	return studentID
}
