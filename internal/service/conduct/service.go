package conduct

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/conduct"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
)

// ConductService records pelanggaran and prestasi facts.
type ConductService interface {
	RecordViolation(ctx context.Context, req conduct.CreateViolationRequest) (conduct.ViolationResponse, error)
	ListViolations(ctx context.Context, studentID string, from, to *time.Time) ([]conduct.ViolationResponse, error)
	DeleteViolation(ctx context.Context, id string) error

	RecordAchievement(ctx context.Context, req conduct.CreateAchievementRequest) (conduct.AchievementResponse, error)
	ListAchievements(ctx context.Context, studentID string, from, to *time.Time) ([]conduct.AchievementResponse, error)
	DeleteAchievement(ctx context.Context, id string) error

	PointSummary(ctx context.Context, studentID string) (conduct.PointSummary, error)
}

type conductServiceImpl struct {
	conduct.Repository
	student.StudentRepository
}

func NewConductService(conductRepo conduct.Repository, studentRepo student.StudentRepository) ConductService {
	return &conductServiceImpl{
		Repository:        conductRepo,
		StudentRepository: studentRepo,
	}
}

func dayOrToday(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}

func recorderFromContext(ctx context.Context) *string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil
	}
	return &userID
}

// RecordViolation implements ConductService.
func (c *conductServiceImpl) RecordViolation(ctx context.Context, req conduct.CreateViolationRequest) (conduct.ViolationResponse, error) {
	if err := req.Validate(); err != nil {
		return conduct.ViolationResponse{}, err
	}

	if _, err := c.StudentRepository.GetByID(ctx, req.StudentID); err != nil {
		return conduct.ViolationResponse{}, conduct.ErrStudentNotFound
	}

	occurredAt, err := dayOrToday(req.OccurredAt)
	if err != nil {
		return conduct.ViolationResponse{}, err
	}

	created, err := c.Repository.CreateViolation(ctx, conduct.Violation{
		StudentID:   req.StudentID,
		Description: req.Description,
		Weight:      req.Weight,
		OccurredAt:  occurredAt,
		RecordedBy:  recorderFromContext(ctx),
	})
	if err != nil {
		return conduct.ViolationResponse{}, err
	}

	return conduct.ToViolationResponse(created), nil
}

// ListViolations implements ConductService.
func (c *conductServiceImpl) ListViolations(ctx context.Context, studentID string, from, to *time.Time) ([]conduct.ViolationResponse, error) {
	violations, err := c.Repository.ListViolations(ctx, studentID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]conduct.ViolationResponse, 0, len(violations))
	for _, v := range violations {
		responses = append(responses, conduct.ToViolationResponse(v))
	}

	return responses, nil
}

// DeleteViolation implements ConductService.
func (c *conductServiceImpl) DeleteViolation(ctx context.Context, id string) error {
	return c.Repository.DeleteViolation(ctx, id)
}

// RecordAchievement implements ConductService.
func (c *conductServiceImpl) RecordAchievement(ctx context.Context, req conduct.CreateAchievementRequest) (conduct.AchievementResponse, error) {
	if err := req.Validate(); err != nil {
		return conduct.AchievementResponse{}, err
	}

	if _, err := c.StudentRepository.GetByID(ctx, req.StudentID); err != nil {
		return conduct.AchievementResponse{}, conduct.ErrStudentNotFound
	}

	achievedAt, err := dayOrToday(req.AchievedAt)
	if err != nil {
		return conduct.AchievementResponse{}, err
	}

	created, err := c.Repository.CreateAchievement(ctx, conduct.Achievement{
		StudentID:   req.StudentID,
		Description: req.Description,
		Score:       req.Score,
		AchievedAt:  achievedAt,
		RecordedBy:  recorderFromContext(ctx),
	})
	if err != nil {
		return conduct.AchievementResponse{}, err
	}

	return conduct.ToAchievementResponse(created), nil
}

// ListAchievements implements ConductService.
func (c *conductServiceImpl) ListAchievements(ctx context.Context, studentID string, from, to *time.Time) ([]conduct.AchievementResponse, error) {
	achievements, err := c.Repository.ListAchievements(ctx, studentID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]conduct.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		responses = append(responses, conduct.ToAchievementResponse(a))
	}

	return responses, nil
}

// DeleteAchievement implements ConductService.
func (c *conductServiceImpl) DeleteAchievement(ctx context.Context, id string) error {
	return c.Repository.DeleteAchievement(ctx, id)
}

// PointSummary implements ConductService.
func (c *conductServiceImpl) PointSummary(ctx context.Context, studentID string) (conduct.PointSummary, error) {
	if _, err := c.StudentRepository.GetByID(ctx, studentID); err != nil {
		return conduct.PointSummary{}, conduct.ErrStudentNotFound
	}
	return c.Repository.PointSummary(ctx, studentID)
}
