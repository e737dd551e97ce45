package activity

import "context"

type ActivityRepository interface {
	Create(ctx context.Context, act Activity) (Activity, error)
	GetByID(ctx context.Context, id string) (Activity, error)
	List(ctx context.Context, category *string) ([]Activity, error)
	Update(ctx context.Context, req UpdateActivityRequest) error
	Deactivate(ctx context.Context, id string) error

	CreateOccurrence(ctx context.Context, occ Occurrence) (Occurrence, error)
	GetOccurrenceByID(ctx context.Context, id string) (Occurrence, error)
	ListOccurrences(ctx context.Context, activityID string) ([]Occurrence, error)
	DeleteOccurrence(ctx context.Context, id string) error
}
