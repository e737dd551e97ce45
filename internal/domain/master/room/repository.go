package room

import "context"

type RoomRepository interface {
	Create(ctx context.Context, newRoom Room) (Room, error)
	GetByID(ctx context.Context, id string) (Room, error)
	ListByDormitory(ctx context.Context, dormitoryID string) ([]Room, error)
	List(ctx context.Context) ([]Room, error)
	Update(ctx context.Context, req UpdateRoomRequest) error
	Delete(ctx context.Context, id string) error

	// Occupancy returns the number of active students assigned to the room.
	Occupancy(ctx context.Context, id string) (int, error)
}
