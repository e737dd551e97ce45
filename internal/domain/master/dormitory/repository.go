package dormitory

import "context"

type DormitoryRepository interface {
	Create(ctx context.Context, dorm Dormitory) (Dormitory, error)
	GetByID(ctx context.Context, id string) (Dormitory, error)
	List(ctx context.Context) ([]Dormitory, error)
	Update(ctx context.Context, req UpdateDormitoryRequest) error
	Delete(ctx context.Context, id string) error
}
