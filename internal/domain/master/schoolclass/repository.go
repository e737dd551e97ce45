package schoolclass

import "context"

type SchoolClassRepository interface {
	Create(ctx context.Context, class SchoolClass) (SchoolClass, error)
	GetByID(ctx context.Context, id string) (SchoolClass, error)
	List(ctx context.Context) ([]SchoolClass, error)
	Update(ctx context.Context, req UpdateSchoolClassRequest) error
	Delete(ctx context.Context, id string) error
}
