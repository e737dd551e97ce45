package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/schoolclass"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type schoolClassRepositoryImpl struct {
	db *database.DB
}

func NewSchoolClassRepository(db *database.DB) schoolclass.SchoolClassRepository {
	return &schoolClassRepositoryImpl{db: db}
}

const classColumns = `
	c.id, c.name, c.level, c.homeroom_id, c.created_at, c.updated_at,
	s.full_name AS homeroom_name,
	(SELECT COUNT(*) FROM students st WHERE st.class_id = c.id AND st.active = TRUE) AS student_count
`

func scanClass(row pgx.Row) (schoolclass.SchoolClass, error) {
	var c schoolclass.SchoolClass
	err := row.Scan(
		&c.ID, &c.Name, &c.Level, &c.HomeroomID, &c.CreatedAt, &c.UpdatedAt,
		&c.HomeroomName, &c.StudentCount,
	)
	return c, err
}

// Create implements schoolclass.SchoolClassRepository.
func (r *schoolClassRepositoryImpl) Create(ctx context.Context, class schoolclass.SchoolClass) (schoolclass.SchoolClass, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO school_classes (name, level, homeroom_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, level, homeroom_id, created_at, updated_at
	`

	var created schoolclass.SchoolClass
	err := q.QueryRow(ctx, query, class.Name, class.Level, class.HomeroomID).Scan(
		&created.ID, &created.Name, &created.Level, &created.HomeroomID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return schoolclass.SchoolClass{}, fmt.Errorf("failed to create school class: %w", err)
	}

	return created, nil
}

// GetByID implements schoolclass.SchoolClassRepository.
func (r *schoolClassRepositoryImpl) GetByID(ctx context.Context, id string) (schoolclass.SchoolClass, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + classColumns + `
		FROM school_classes c
		LEFT JOIN staff s ON s.id = c.homeroom_id
		WHERE c.id = $1
	`

	c, err := scanClass(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schoolclass.SchoolClass{}, schoolclass.ErrClassNotFound
		}
		return schoolclass.SchoolClass{}, fmt.Errorf("failed to get school class: %w", err)
	}

	return c, nil
}

// List implements schoolclass.SchoolClassRepository.
func (r *schoolClassRepositoryImpl) List(ctx context.Context) ([]schoolclass.SchoolClass, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + classColumns + `
		FROM school_classes c
		LEFT JOIN staff s ON s.id = c.homeroom_id
		ORDER BY c.level ASC, c.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list school classes: %w", err)
	}
	defer rows.Close()

	var classes []schoolclass.SchoolClass
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// Update implements schoolclass.SchoolClassRepository.
func (r *schoolClassRepositoryImpl) Update(ctx context.Context, req schoolclass.UpdateSchoolClassRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE school_classes
		SET name = COALESCE($2, name),
			level = COALESCE($3, level),
			homeroom_id = COALESCE($4, homeroom_id),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, req.ID, req.Name, req.Level, req.HomeroomID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schoolclass.ErrClassNotFound
		}
		return fmt.Errorf("failed to update school class: %w", err)
	}

	return nil
}

// Delete implements schoolclass.SchoolClassRepository.
func (r *schoolClassRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var studentCount int
	query := `SELECT COUNT(*) FROM students WHERE class_id = $1 AND active = TRUE`
	if err := q.QueryRow(ctx, query, id).Scan(&studentCount); err != nil {
		return fmt.Errorf("failed to count class students: %w", err)
	}
	if studentCount > 0 {
		return schoolclass.ErrClassNotEmpty
	}

	tag, err := q.Exec(ctx, `DELETE FROM school_classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete school class: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schoolclass.ErrClassNotFound
	}

	return nil
}
