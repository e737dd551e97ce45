package staff

import (
	"context"
)

type StaffRepository interface {
	Create(ctx context.Context, newStaff Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	GetByNIP(ctx context.Context, nip string) (Staff, error)
	ExistsByNIP(ctx context.Context, nip string) (bool, error)
	Update(ctx context.Context, req UpdateStaffRequest) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, filter StaffFilter) ([]Staff, int64, error)
}
