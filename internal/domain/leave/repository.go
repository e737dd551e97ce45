package leave

import (
	"context"
	"time"
)

// Repository defines data access methods for izin rows. There is no
// Delete: leave requests stay as an audit trail.
type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)

	GetByID(ctx context.Context, id string) (Request, error)

	// UpdateStatus performs a compare-and-set single-row update: the
	// write succeeds only while the stored status still equals
	// expectedStatus. Returns ErrStaleStatus when another writer got
	// there first.
	UpdateStatus(ctx context.Context, id string, expectedStatus, newStatus Status, actualReturnAt *time.Time, approvedBy *string) (Request, error)

	ListByStudent(ctx context.Context, studentID string, limit int) ([]Request, error)

	List(ctx context.Context, filter Filter) ([]Request, int64, error)

	// ListOverdue returns active leaves whose planned return plus grace
	// passed before the cutoff, for the overdue cron sweep.
	ListOverdue(ctx context.Context, cutoff time.Time) ([]Request, error)
}
