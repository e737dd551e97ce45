package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/room"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type roomRepositoryImpl struct {
	db *database.DB
}

func NewRoomRepository(db *database.DB) room.RoomRepository {
	return &roomRepositoryImpl{db: db}
}

const roomColumns = `
	r.id, r.dormitory_id, r.name, r.capacity, r.wali_kamar_id, r.created_at, r.updated_at,
	d.name AS dormitory_name,
	(SELECT COUNT(*) FROM students st WHERE st.room_id = r.id AND st.active = TRUE) AS occupancy,
	s.full_name AS wali_kamar_name
`

const roomJoins = `
	JOIN dormitories d ON d.id = r.dormitory_id
	LEFT JOIN staff s ON s.id = r.wali_kamar_id
`

func scanRoom(row pgx.Row) (room.Room, error) {
	var rm room.Room
	err := row.Scan(
		&rm.ID, &rm.DormitoryID, &rm.Name, &rm.Capacity, &rm.WaliKamarID,
		&rm.CreatedAt, &rm.UpdatedAt,
		&rm.DormitoryName, &rm.Occupancy, &rm.WaliKamarName,
	)
	return rm, err
}

// Create implements room.RoomRepository.
func (r *roomRepositoryImpl) Create(ctx context.Context, newRoom room.Room) (room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rooms (dormitory_id, name, capacity, wali_kamar_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, dormitory_id, name, capacity, wali_kamar_id, created_at, updated_at
	`

	var created room.Room
	err := q.QueryRow(ctx, query,
		newRoom.DormitoryID, newRoom.Name, newRoom.Capacity, newRoom.WaliKamarID,
	).Scan(
		&created.ID, &created.DormitoryID, &created.Name, &created.Capacity,
		&created.WaliKamarID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return room.Room{}, fmt.Errorf("failed to create room: %w", err)
	}

	return created, nil
}

// GetByID implements room.RoomRepository.
func (r *roomRepositoryImpl) GetByID(ctx context.Context, id string) (room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + roomColumns + `
		FROM rooms r` + roomJoins + `
		WHERE r.id = $1
	`

	rm, err := scanRoom(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return room.Room{}, room.ErrRoomNotFound
		}
		return room.Room{}, fmt.Errorf("failed to get room: %w", err)
	}

	return rm, nil
}

// ListByDormitory implements room.RoomRepository.
func (r *roomRepositoryImpl) ListByDormitory(ctx context.Context, dormitoryID string) ([]room.Room, error) {
	return r.list(ctx, `WHERE r.dormitory_id = $1`, dormitoryID)
}

// List implements room.RoomRepository.
func (r *roomRepositoryImpl) List(ctx context.Context) ([]room.Room, error) {
	return r.list(ctx, ``)
}

func (r *roomRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + roomColumns + `
		FROM rooms r` + roomJoins + `
		` + where + `
		ORDER BY d.name ASC, r.name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// Update implements room.RoomRepository.
func (r *roomRepositoryImpl) Update(ctx context.Context, req room.UpdateRoomRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE rooms
		SET name = COALESCE($2, name),
			capacity = COALESCE($3, capacity),
			wali_kamar_id = COALESCE($4, wali_kamar_id),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, req.ID, req.Name, req.Capacity, req.WaliKamarID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return room.ErrRoomNotFound
		}
		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

// Delete implements room.RoomRepository.
func (r *roomRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	occupancy, err := r.Occupancy(ctx, id)
	if err != nil {
		return err
	}
	if occupancy > 0 {
		return room.ErrRoomOccupied
	}

	tag, err := q.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return room.ErrRoomNotFound
	}

	return nil
}

// Occupancy implements room.RoomRepository.
func (r *roomRepositoryImpl) Occupancy(ctx context.Context, id string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM students WHERE room_id = $1 AND active = TRUE`
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count room occupancy: %w", err)
	}

	return count, nil
}
