package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/config"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/leave"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leave.Repository
	student.StudentRepository
	policy config.LeaveConfig
	now    func() time.Time
}

func NewLeaveService(leaveRepo leave.Repository, studentRepo student.StudentRepository, policy config.LeaveConfig) leave.Service {
	return &LeaveServiceImpl{
		Repository:        leaveRepo,
		StudentRepository: studentRepo,
		policy:            policy,
		now:               time.Now,
	}
}

// Create implements leave.Service.
func (l *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	studentData, err := l.StudentRepository.GetByID(ctx, req.StudentID)
	if err != nil {
		return leave.Response{}, leave.ErrStudentNotFound
	}
	if !studentData.Active {
		return leave.Response{}, leave.ErrStudentNotFound
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.Response{}, err
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.Response{}, err
	}

	// The planned return is jam_masuk on the last day of leave.
	returnClock, err := time.Parse("15:04", req.ReturnTime)
	if err != nil {
		return leave.Response{}, err
	}
	plannedReturnAt := time.Date(
		endDate.Year(), endDate.Month(), endDate.Day(),
		returnClock.Hour(), returnClock.Minute(), 0, 0, time.Local,
	)

	newRequest := leave.Request{
		StudentID:       req.StudentID,
		StartDate:       startDate,
		EndDate:         endDate,
		DepartureTime:   req.DepartureTime,
		PlannedReturnAt: plannedReturnAt,
		Reason:          req.Reason,
		Escort:          leave.Escort(req.Escort),
		EscortName:      req.EscortName,
	}
	if createdBy := userIDFromContext(ctx); createdBy != "" {
		newRequest.CreatedBy = &createdBy
	}

	created, err := l.Repository.Create(ctx, newRequest)
	if err != nil {
		return leave.Response{}, err
	}
	created.StudentName = &studentData.FullName
	created.StudentNIS = &studentData.NIS
	created.RoomName = studentData.RoomName

	return leave.ToResponse(created), nil
}

// Transition implements leave.Service. The transition table decides
// legality, the role table decides authority, and the compare-and-set
// update decides the concurrency race. Any failure leaves the stored
// status untouched.
func (l *LeaveServiceImpl) Transition(ctx context.Context, req leave.TransitionRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	event := leave.Event(req.Event)

	role, actorID, err := actorFromContext(ctx)
	if err != nil {
		return leave.Response{}, err
	}
	if !leave.RoleMayFire(role, event) {
		return leave.Response{}, leave.ErrForbiddenTransition
	}

	current, err := l.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.Response{}, err
	}

	next, err := leave.NextStatus(current.Status, event)
	if err != nil {
		return leave.Response{}, err
	}

	var actualReturnAt *time.Time
	switch event {
	case leave.EventReturn:
		now := l.now()
		actualReturnAt = &now
	case leave.EventFinalize:
		if current.ActualReturnAt == nil {
			return leave.Response{}, leave.ErrActualReturnMissing
		}
		next = leave.ResolveFinal(*current.ActualReturnAt, current.PlannedReturnAt, l.policy.GracePeriod)
	case leave.EventOverride:
		// An override closes the request with the same Completed or
		// Late verdict a finalize would reach. With no recorded return
		// the moment of the override stands in for it.
		basis := l.now()
		if current.ActualReturnAt != nil {
			basis = *current.ActualReturnAt
		}
		next = leave.ResolveFinal(basis, current.PlannedReturnAt, l.policy.GracePeriod)
	}

	var approvedBy *string
	if event == leave.EventSupervisorApprove || event == leave.EventCoordinatorApprove {
		approvedBy = &actorID
	}

	updated, err := l.Repository.UpdateStatus(ctx, req.ID, current.Status, next, actualReturnAt, approvedBy)
	if err != nil {
		return leave.Response{}, err
	}
	updated.StudentName = current.StudentName
	updated.StudentNIS = current.StudentNIS
	updated.RoomName = current.RoomName

	return leave.ToResponse(updated), nil
}

// Get implements leave.Service.
func (l *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.Response, error) {
	found, err := l.Repository.GetByID(ctx, id)
	if err != nil {
		return leave.Response{}, err
	}
	return leave.ToResponse(found), nil
}

// ListByStudent implements leave.Service.
func (l *LeaveServiceImpl) ListByStudent(ctx context.Context, studentID string) ([]leave.Response, error) {
	requests, err := l.Repository.ListByStudent(ctx, studentID, 20)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.Response, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}

	return responses, nil
}

// List implements leave.Service.
func (l *LeaveServiceImpl) List(ctx context.Context, filter leave.Filter) ([]leave.Response, int64, error) {
	requests, total, err := l.Repository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]leave.Response, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}

	return responses, total, nil
}

func userIDFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}

func actorFromContext(ctx context.Context) (user.Role, string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	roleStr, _ := claims["role"].(string)
	userID, _ := claims["user_id"].(string)
	if roleStr == "" || userID == "" {
		return "", "", fmt.Errorf("role or user_id claim is missing")
	}

	return user.Role(roleStr), userID, nil
}
