package conduct

import (
	"context"
	"time"
)

type Repository interface {
	CreateViolation(ctx context.Context, v Violation) (Violation, error)
	ListViolations(ctx context.Context, studentID string, from, to *time.Time) ([]Violation, error)
	DeleteViolation(ctx context.Context, id string) error

	CreateAchievement(ctx context.Context, a Achievement) (Achievement, error)
	ListAchievements(ctx context.Context, studentID string, from, to *time.Time) ([]Achievement, error)
	DeleteAchievement(ctx context.Context, id string) error

	PointSummary(ctx context.Context, studentID string) (PointSummary, error)
}
