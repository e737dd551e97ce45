package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/dormitory"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type dormitoryRepositoryImpl struct {
	db *database.DB
}

func NewDormitoryRepository(db *database.DB) dormitory.DormitoryRepository {
	return &dormitoryRepositoryImpl{db: db}
}

// Create implements dormitory.DormitoryRepository.
func (r *dormitoryRepositoryImpl) Create(ctx context.Context, dorm dormitory.Dormitory) (dormitory.Dormitory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO dormitories (name, gender, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, gender, description, created_at, updated_at
	`

	var created dormitory.Dormitory
	err := q.QueryRow(ctx, query, dorm.Name, dorm.Gender, dorm.Description).Scan(
		&created.ID, &created.Name, &created.Gender, &created.Description,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return dormitory.Dormitory{}, fmt.Errorf("failed to create dormitory: %w", err)
	}

	return created, nil
}

// GetByID implements dormitory.DormitoryRepository.
func (r *dormitoryRepositoryImpl) GetByID(ctx context.Context, id string) (dormitory.Dormitory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.gender, d.description, d.created_at, d.updated_at,
			(SELECT COUNT(*) FROM rooms r WHERE r.dormitory_id = d.id) AS room_count
		FROM dormitories d
		WHERE d.id = $1
	`

	var dorm dormitory.Dormitory
	err := q.QueryRow(ctx, query, id).Scan(
		&dorm.ID, &dorm.Name, &dorm.Gender, &dorm.Description,
		&dorm.CreatedAt, &dorm.UpdatedAt, &dorm.RoomCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dormitory.Dormitory{}, dormitory.ErrDormitoryNotFound
		}
		return dormitory.Dormitory{}, fmt.Errorf("failed to get dormitory: %w", err)
	}

	return dorm, nil
}

// List implements dormitory.DormitoryRepository.
func (r *dormitoryRepositoryImpl) List(ctx context.Context) ([]dormitory.Dormitory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.gender, d.description, d.created_at, d.updated_at,
			(SELECT COUNT(*) FROM rooms r WHERE r.dormitory_id = d.id) AS room_count
		FROM dormitories d
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list dormitories: %w", err)
	}
	defer rows.Close()

	var dorms []dormitory.Dormitory
	for rows.Next() {
		var dorm dormitory.Dormitory
		err := rows.Scan(
			&dorm.ID, &dorm.Name, &dorm.Gender, &dorm.Description,
			&dorm.CreatedAt, &dorm.UpdatedAt, &dorm.RoomCount,
		)
		if err != nil {
			return nil, err
		}
		dorms = append(dorms, dorm)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dorms, nil
}

// Update implements dormitory.DormitoryRepository.
func (r *dormitoryRepositoryImpl) Update(ctx context.Context, req dormitory.UpdateDormitoryRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE dormitories
		SET name = COALESCE($2, name),
			description = COALESCE($3, description),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, req.ID, req.Name, req.Description).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dormitory.ErrDormitoryNotFound
		}
		return fmt.Errorf("failed to update dormitory: %w", err)
	}

	return nil
}

// Delete implements dormitory.DormitoryRepository.
func (r *dormitoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var roomCount int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM rooms WHERE dormitory_id = $1`, id).Scan(&roomCount); err != nil {
		return fmt.Errorf("failed to count dormitory rooms: %w", err)
	}
	if roomCount > 0 {
		return dormitory.ErrDormitoryNotEmpty
	}

	tag, err := q.Exec(ctx, `DELETE FROM dormitories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dormitory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dormitory.ErrDormitoryNotFound
	}

	return nil
}
