package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/staff"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `
	s.id, s.nip, s.full_name, s.gender, s.position, s.phone, s.email,
	s.room_id, s.active, s.created_at, s.updated_at,
	r.name AS room_name
`

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var s staff.Staff
	err := row.Scan(
		&s.ID, &s.NIP, &s.FullName, &s.Gender, &s.Position, &s.Phone, &s.Email,
		&s.RoomID, &s.Active, &s.CreatedAt, &s.UpdatedAt,
		&s.RoomName,
	)
	return s, err
}

// Create implements staff.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, newStaff staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (nip, full_name, gender, position, phone, email, room_id, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING id, nip, full_name, gender, position, phone, email, room_id, active, created_at, updated_at
	`

	var created staff.Staff
	err := q.QueryRow(ctx, query,
		newStaff.NIP, newStaff.FullName, newStaff.Gender, newStaff.Position,
		newStaff.Phone, newStaff.Email, newStaff.RoomID,
	).Scan(
		&created.ID, &created.NIP, &created.FullName, &created.Gender, &created.Position,
		&created.Phone, &created.Email, &created.RoomID, &created.Active,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}

	return created, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff s
		LEFT JOIN rooms r ON r.id = s.room_id
		WHERE s.id = $1
	`

	s, err := scanStaff(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by id: %w", err)
	}

	return s, nil
}

// GetByNIP implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByNIP(ctx context.Context, nip string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff s
		LEFT JOIN rooms r ON r.id = s.room_id
		WHERE s.nip = $1
	`

	s, err := scanStaff(q.QueryRow(ctx, query, nip))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by nip: %w", err)
	}

	return s, nil
}

// ExistsByNIP implements staff.StaffRepository.
func (r *staffRepositoryImpl) ExistsByNIP(ctx context.Context, nip string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM staff WHERE nip = $1)`, nip).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check nip existence: %w", err)
	}

	return exists, nil
}

// Update implements staff.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET full_name = COALESCE($2, full_name),
			position = COALESCE($3, position),
			phone = COALESCE($4, phone),
			email = COALESCE($5, email),
			room_id = COALESCE($6, room_id),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.ID, req.FullName, req.Position, req.Phone, req.Email, req.RoomID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.ErrStaffNotFound
		}
		return fmt.Errorf("failed to update staff: %w", err)
	}

	return nil
}

// Deactivate implements staff.StaffRepository.
func (r *staffRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET active = FALSE, room_id = NULL, updated_at = NOW()
		WHERE id = $1 AND active = TRUE
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.ErrStaffNotFound
		}
		return fmt.Errorf("failed to deactivate staff: %w", err)
	}

	return nil
}

// List implements staff.StaffRepository.
func (r *staffRepositoryImpl) List(ctx context.Context, filter staff.StaffFilter) ([]staff.Staff, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(s.full_name ILIKE $%d OR s.nip ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Position != nil {
		conditions = append(conditions, fmt.Sprintf("s.position = $%d", argIdx))
		args = append(args, *filter.Position)
		argIdx++
	}
	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("s.active = $%d", argIdx))
		args = append(args, *filter.Active)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM staff s WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM staff s
		LEFT JOIN rooms r ON r.id = s.room_id
		WHERE %s
		ORDER BY s.full_name ASC
		LIMIT $%d OFFSET $%d
	`, staffColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, s)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return members, total, nil
}
