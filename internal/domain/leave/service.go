package leave

import (
	"context"
)

// Service defines business logic for the izin lifecycle.
type Service interface {
	// Create registers a new leave request on behalf of a santri. The
	// request starts in StatusRequested.
	Create(ctx context.Context, req CreateRequest) (Response, error)

	// Transition moves a request through the lifecycle. The actor role
	// comes from the JWT claims in ctx. Illegal (status, event) pairs
	// fail with ErrInvalidTransition, insufficient roles with
	// ErrForbiddenTransition, and concurrent writers with
	// ErrStaleStatus; the stored status is unchanged in all three cases.
	Transition(ctx context.Context, req TransitionRequest) (Response, error)

	Get(ctx context.Context, id string) (Response, error)
	ListByStudent(ctx context.Context, studentID string) ([]Response, error)
	List(ctx context.Context, filter Filter) ([]Response, int64, error)
}
