package memorization

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	ListByStudent(ctx context.Context, studentID string, from, to *time.Time) ([]Entry, error)
	Delete(ctx context.Context, id string) error
	Progress(ctx context.Context, studentID string) (Progress, error)
}
