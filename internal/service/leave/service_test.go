package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/config"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/leave"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/user"
)

// fakeLeaveRepo backs the transition tests without a database. Only the
// methods the service calls are implemented; the embedded interface
// panics on anything else.
type fakeLeaveRepo struct {
	leave.Repository
	stored    leave.Request
	updateErr error

	gotExpected leave.Status
	gotNext     leave.Status
	gotReturnAt *time.Time
	gotApprover *string
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	if id != f.stored.ID {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return f.stored, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, expectedStatus, newStatus leave.Status, actualReturnAt *time.Time, approvedBy *string) (leave.Request, error) {
	f.gotExpected = expectedStatus
	f.gotNext = newStatus
	f.gotReturnAt = actualReturnAt
	f.gotApprover = approvedBy
	if f.updateErr != nil {
		return leave.Request{}, f.updateErr
	}
	updated := f.stored
	updated.Status = newStatus
	if actualReturnAt != nil {
		updated.ActualReturnAt = actualReturnAt
	}
	return updated, nil
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	req.ID = "01890a5d-ac96-774b-bcce-b30209999999"
	req.Status = leave.StatusRequested
	return req, nil
}

type fakeStudentRepo struct {
	student.StudentRepository
	stored student.Student
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id string) (student.Student, error) {
	if id != f.stored.ID {
		return student.Student{}, student.ErrStudentNotFound
	}
	return f.stored, nil
}

// ctxWithClaims builds a request context carrying a verified token, the
// same shape the router's jwtauth middleware produces.
func ctxWithClaims(t *testing.T, role user.Role, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *fakeLeaveRepo, students *fakeStudentRepo, now time.Time) *LeaveServiceImpl {
	svc := NewLeaveService(repo, students, config.LeaveConfig{GracePeriod: 30 * time.Minute}).(*LeaveServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func pendingRequest(status leave.Status) leave.Request {
	planned := time.Date(2024, 3, 10, 17, 0, 0, 0, time.Local)
	return leave.Request{
		ID:              "01890a5d-ac96-774b-bcce-b302099a8057",
		StudentID:       "01890a5d-ac96-774b-bcce-b302099a8058",
		StartDate:       time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		DepartureTime:   "08:00",
		PlannedReturnAt: planned,
		Reason:          "Menjenguk keluarga",
		Escort:          leave.EscortOrangTua,
		Status:          status,
	}
}

func TestTransition_SupervisorApprove(t *testing.T) {
	repo := &fakeLeaveRepo{stored: pendingRequest(leave.StatusRequested)}
	svc := newTestService(repo, &fakeStudentRepo{}, time.Now())
	ctx := ctxWithClaims(t, user.RoleWaliKamar, "actor-1")

	resp, err := svc.Transition(ctx, leave.TransitionRequest{
		ID:    repo.stored.ID,
		Event: string(leave.EventSupervisorApprove),
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusSupervisorApproved), resp.Status)
	assert.Equal(t, leave.StatusRequested, repo.gotExpected)
	require.NotNil(t, repo.gotApprover)
	assert.Equal(t, "actor-1", *repo.gotApprover)
}

func TestTransition_ForbiddenRole(t *testing.T) {
	repo := &fakeLeaveRepo{stored: pendingRequest(leave.StatusReturned)}
	svc := newTestService(repo, &fakeStudentRepo{}, time.Now())

	// Ustadz carries no leave events at all.
	ctx := ctxWithClaims(t, user.RoleUstadz, "actor-2")
	_, err := svc.Transition(ctx, leave.TransitionRequest{
		ID:    repo.stored.ID,
		Event: string(leave.EventFinalize),
	})
	assert.ErrorIs(t, err, leave.ErrForbiddenTransition)

	// Wali kamar may approve and return but never finalize.
	ctx = ctxWithClaims(t, user.RoleWaliKamar, "actor-3")
	_, err = svc.Transition(ctx, leave.TransitionRequest{
		ID:    repo.stored.ID,
		Event: string(leave.EventFinalize),
	})
	assert.ErrorIs(t, err, leave.ErrForbiddenTransition)
}

func TestTransition_IllegalFromStatus(t *testing.T) {
	repo := &fakeLeaveRepo{stored: pendingRequest(leave.StatusRequested)}
	svc := newTestService(repo, &fakeStudentRepo{}, time.Now())
	ctx := ctxWithClaims(t, user.RoleMusyrif, "actor-1")

	_, err := svc.Transition(ctx, leave.TransitionRequest{
		ID:    repo.stored.ID,
		Event: string(leave.EventCoordinatorApprove),
	})
	assert.ErrorIs(t, err, leave.ErrInvalidTransition)
}

func TestTransition_StaleStatus(t *testing.T) {
	repo := &fakeLeaveRepo{
		stored:    pendingRequest(leave.StatusRequested),
		updateErr: leave.ErrStaleStatus,
	}
	svc := newTestService(repo, &fakeStudentRepo{}, time.Now())
	ctx := ctxWithClaims(t, user.RoleAdmin, "actor-1")

	_, err := svc.Transition(ctx, leave.TransitionRequest{
		ID:    repo.stored.ID,
		Event: string(leave.EventSupervisorApprove),
	})
	assert.ErrorIs(t, err, leave.ErrStaleStatus)
}

func TestTransition_ReturnStampsActualTime(t *testing.T) {
	now := time.Date(2024, 3, 10, 16, 45, 0, 0, time.Local)
	repo := &fakeLeaveRepo{stored: pendingRequest(leave.StatusCoordinatorApproved)}
	svc := newTestService(repo, &fakeStudentRepo{}, now)
	ctx := ctxWithClaims(t, user.RoleMusyrif, "actor-1")

	resp, err := svc.Transition(ctx, leave.TransitionRequest{
		ID:    repo.stored.ID,
		Event: string(leave.EventReturn),
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusReturned), resp.Status)
	require.NotNil(t, repo.gotReturnAt)
	assert.True(t, repo.gotReturnAt.Equal(now))
	assert.Nil(t, repo.gotApprover)
}

func TestTransition_FinalizeWithoutReturnTime(t *testing.T) {
	repo := &fakeLeaveRepo{stored: pendingRequest(leave.StatusReturned)}
	svc := newTestService(repo, &fakeStudentRepo{}, time.Now())
	ctx := ctxWithClaims(t, user.RoleMusyrif, "actor-1")

	_, err := svc.Transition(ctx, leave.TransitionRequest{
		ID:    repo.stored.ID,
		Event: string(leave.EventFinalize),
	})
	assert.ErrorIs(t, err, leave.ErrActualReturnMissing)
}

func TestTransition_FinalizeResolvesLate(t *testing.T) {
	stored := pendingRequest(leave.StatusReturned)
	late := stored.PlannedReturnAt.Add(45 * time.Minute)
	stored.ActualReturnAt = &late

	repo := &fakeLeaveRepo{stored: stored}
	svc := newTestService(repo, &fakeStudentRepo{}, time.Now())
	ctx := ctxWithClaims(t, user.RoleMusyrif, "actor-1")

	resp, err := svc.Transition(ctx, leave.TransitionRequest{
		ID:    stored.ID,
		Event: string(leave.EventFinalize),
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusLate), resp.Status)
	assert.Equal(t, leave.StatusLate, repo.gotNext)
}

func TestTransition_FinalizeWithinGrace(t *testing.T) {
	stored := pendingRequest(leave.StatusReturned)
	onTime := stored.PlannedReturnAt.Add(20 * time.Minute)
	stored.ActualReturnAt = &onTime

	repo := &fakeLeaveRepo{stored: stored}
	svc := newTestService(repo, &fakeStudentRepo{}, time.Now())
	ctx := ctxWithClaims(t, user.RoleMusyrif, "actor-1")

	resp, err := svc.Transition(ctx, leave.TransitionRequest{
		ID:    stored.ID,
		Event: string(leave.EventFinalize),
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusCompleted), resp.Status)
}

func TestTransition_OverrideClosesActiveLeave(t *testing.T) {
	repo := &fakeLeaveRepo{stored: pendingRequest(leave.StatusSupervisorApproved)}
	// Overriding while the santri is still within the planned window
	// closes the request as completed.
	now := repo.stored.PlannedReturnAt.Add(-2 * time.Hour)
	svc := newTestService(repo, &fakeStudentRepo{}, now)
	ctx := ctxWithClaims(t, user.RoleMusyrif, "actor-1")

	resp, err := svc.Transition(ctx, leave.TransitionRequest{
		ID:    repo.stored.ID,
		Event: string(leave.EventOverride),
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusCompleted), resp.Status)
}

func TestTransition_OverrideAfterLateReturn(t *testing.T) {
	stored := pendingRequest(leave.StatusReturned)
	lateReturn := stored.PlannedReturnAt.Add(3 * time.Hour)
	stored.ActualReturnAt = &lateReturn

	repo := &fakeLeaveRepo{stored: stored}
	svc := newTestService(repo, &fakeStudentRepo{}, time.Now())
	ctx := ctxWithClaims(t, user.RoleAdmin, "actor-1")

	resp, err := svc.Transition(ctx, leave.TransitionRequest{
		ID:    stored.ID,
		Event: string(leave.EventOverride),
	})
	require.NoError(t, err)

	// The recorded return was hours past grace, so the override must
	// not relabel it as completed.
	assert.Equal(t, string(leave.StatusLate), resp.Status)
}

func TestTransition_OverrideLongOverdue(t *testing.T) {
	repo := &fakeLeaveRepo{stored: pendingRequest(leave.StatusCoordinatorApproved)}
	// No return was ever recorded and the override happens well past
	// the planned return plus grace.
	now := repo.stored.PlannedReturnAt.Add(3 * time.Hour)
	svc := newTestService(repo, &fakeStudentRepo{}, now)
	ctx := ctxWithClaims(t, user.RoleAdmin, "actor-1")

	resp, err := svc.Transition(ctx, leave.TransitionRequest{
		ID:    repo.stored.ID,
		Event: string(leave.EventOverride),
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusLate), resp.Status)
}

func TestCreate_InactiveStudent(t *testing.T) {
	students := &fakeStudentRepo{stored: student.Student{
		ID:       "01890a5d-ac96-774b-bcce-b302099a8058",
		NIS:      "20240001",
		FullName: "Ahmad Fauzi",
		Active:   false,
	}}
	svc := newTestService(&fakeLeaveRepo{}, students, time.Now())

	_, err := svc.Create(context.Background(), leave.CreateRequest{
		StudentID:     students.stored.ID,
		StartDate:     "2024-03-09",
		EndDate:       "2024-03-10",
		DepartureTime: "08:00",
		ReturnTime:    "17:00",
		Reason:        "Menjenguk keluarga",
		Escort:        string(leave.EscortOrangTua),
	})
	assert.ErrorIs(t, err, leave.ErrStudentNotFound)
}

func TestCreate_PlannedReturnOnLastDay(t *testing.T) {
	students := &fakeStudentRepo{stored: student.Student{
		ID:       "01890a5d-ac96-774b-bcce-b302099a8058",
		NIS:      "20240001",
		FullName: "Ahmad Fauzi",
		Active:   true,
	}}
	svc := newTestService(&fakeLeaveRepo{}, students, time.Now())

	resp, err := svc.Create(context.Background(), leave.CreateRequest{
		StudentID:     students.stored.ID,
		StartDate:     "2024-03-09",
		EndDate:       "2024-03-10",
		DepartureTime: "08:00",
		ReturnTime:    "17:00",
		Reason:        "Menjenguk keluarga",
		Escort:        string(leave.EscortOrangTua),
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusRequested), resp.Status)
	want := time.Date(2024, 3, 10, 17, 0, 0, 0, time.Local)
	got, parseErr := time.Parse(time.RFC3339, resp.PlannedReturnAt)
	require.NoError(t, parseErr)
	assert.True(t, got.Equal(want))
}
