package student

import (
	"context"
)

// StudentRepository defines data access methods for santri records.
type StudentRepository interface {
	Create(ctx context.Context, newStudent Student) (Student, error)
	GetByID(ctx context.Context, id string) (Student, error)
	GetByNIS(ctx context.Context, nis string) (Student, error)
	ExistsByNIS(ctx context.Context, nis string) (bool, error)
	Update(ctx context.Context, req UpdateStudentRequest) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, filter StudentFilter) ([]Student, int64, error)

	// AssignRoom moves a student into a dormitory room, or out of any
	// room when roomID is nil.
	AssignRoom(ctx context.Context, studentID string, roomID *string) error

	// ListByRoom returns the active roster of a room, used by roll call.
	ListByRoom(ctx context.Context, roomID string) ([]Student, error)
}
