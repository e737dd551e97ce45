package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type studentRepositoryImpl struct {
	db *database.DB
}

func NewStudentRepository(db *database.DB) student.StudentRepository {
	return &studentRepositoryImpl{db: db}
}

const studentColumns = `
	st.id, st.nis, st.full_name, st.gender, st.birth_place, st.birth_date,
	st.room_id, st.class_id, st.guardian_name, st.guardian_phone, st.address,
	st.photo_url, st.enrolled_at, st.active, st.created_at, st.updated_at,
	r.name AS room_name, d.name AS dormitory_name, c.name AS class_name
`

const studentJoins = `
	LEFT JOIN rooms r ON r.id = st.room_id
	LEFT JOIN dormitories d ON d.id = r.dormitory_id
	LEFT JOIN school_classes c ON c.id = st.class_id
`

func scanStudent(row pgx.Row) (student.Student, error) {
	var s student.Student
	err := row.Scan(
		&s.ID, &s.NIS, &s.FullName, &s.Gender, &s.BirthPlace, &s.BirthDate,
		&s.RoomID, &s.ClassID, &s.GuardianName, &s.GuardianPhone, &s.Address,
		&s.PhotoURL, &s.EnrolledAt, &s.Active, &s.CreatedAt, &s.UpdatedAt,
		&s.RoomName, &s.DormitoryName, &s.ClassName,
	)
	return s, err
}

// Create implements student.StudentRepository.
func (r *studentRepositoryImpl) Create(ctx context.Context, newStudent student.Student) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO students (
			nis, full_name, gender, birth_place, birth_date, room_id, class_id,
			guardian_name, guardian_phone, address, enrolled_at, active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), TRUE)
		RETURNING id, nis, full_name, gender, birth_place, birth_date, room_id, class_id,
			guardian_name, guardian_phone, address, photo_url, enrolled_at, active, created_at, updated_at
	`

	var created student.Student
	err := q.QueryRow(ctx, query,
		newStudent.NIS, newStudent.FullName, newStudent.Gender, newStudent.BirthPlace,
		newStudent.BirthDate, newStudent.RoomID, newStudent.ClassID,
		newStudent.GuardianName, newStudent.GuardianPhone, newStudent.Address,
	).Scan(
		&created.ID, &created.NIS, &created.FullName, &created.Gender, &created.BirthPlace,
		&created.BirthDate, &created.RoomID, &created.ClassID, &created.GuardianName,
		&created.GuardianPhone, &created.Address, &created.PhotoURL, &created.EnrolledAt,
		&created.Active, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return student.Student{}, fmt.Errorf("failed to create student: %w", err)
	}

	return created, nil
}

// GetByID implements student.StudentRepository.
func (r *studentRepositoryImpl) GetByID(ctx context.Context, id string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + studentColumns + `
		FROM students st` + studentJoins + `
		WHERE st.id = $1
	`

	s, err := scanStudent(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Student{}, student.ErrStudentNotFound
		}
		return student.Student{}, fmt.Errorf("failed to get student by id: %w", err)
	}

	return s, nil
}

// GetByNIS implements student.StudentRepository.
func (r *studentRepositoryImpl) GetByNIS(ctx context.Context, nis string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + studentColumns + `
		FROM students st` + studentJoins + `
		WHERE st.nis = $1
	`

	s, err := scanStudent(q.QueryRow(ctx, query, nis))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Student{}, student.ErrStudentNotFound
		}
		return student.Student{}, fmt.Errorf("failed to get student by nis: %w", err)
	}

	return s, nil
}

// ExistsByNIS implements student.StudentRepository.
func (r *studentRepositoryImpl) ExistsByNIS(ctx context.Context, nis string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM students WHERE nis = $1)`, nis).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check nis existence: %w", err)
	}

	return exists, nil
}

// Update implements student.StudentRepository.
func (r *studentRepositoryImpl) Update(ctx context.Context, req student.UpdateStudentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE students
		SET full_name = COALESCE($2, full_name),
			room_id = COALESCE($3, room_id),
			class_id = COALESCE($4, class_id),
			guardian_name = COALESCE($5, guardian_name),
			guardian_phone = COALESCE($6, guardian_phone),
			address = COALESCE($7, address),
			photo_url = COALESCE($8, photo_url),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.ID, req.FullName, req.RoomID, req.ClassID,
		req.GuardianName, req.GuardianPhone, req.Address, req.PhotoURL,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.ErrStudentNotFound
		}
		return fmt.Errorf("failed to update student: %w", err)
	}

	return nil
}

// Deactivate implements student.StudentRepository.
func (r *studentRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE students
		SET active = FALSE, room_id = NULL, updated_at = NOW()
		WHERE id = $1 AND active = TRUE
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.ErrStudentNotFound
		}
		return fmt.Errorf("failed to deactivate student: %w", err)
	}

	return nil
}

// List implements student.StudentRepository.
func (r *studentRepositoryImpl) List(ctx context.Context, filter student.StudentFilter) ([]student.Student, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(st.full_name ILIKE $%d OR st.nis ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.RoomID != nil {
		conditions = append(conditions, fmt.Sprintf("st.room_id = $%d", argIdx))
		args = append(args, *filter.RoomID)
		argIdx++
	}
	if filter.ClassID != nil {
		conditions = append(conditions, fmt.Sprintf("st.class_id = $%d", argIdx))
		args = append(args, *filter.ClassID)
		argIdx++
	}
	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("st.active = $%d", argIdx))
		args = append(args, *filter.Active)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM students st WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
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
		FROM students st%s
		WHERE %s
		ORDER BY st.full_name ASC
		LIMIT $%d OFFSET $%d
	`, studentColumns, studentJoins, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// AssignRoom implements student.StudentRepository.
func (r *studentRepositoryImpl) AssignRoom(ctx context.Context, studentID string, roomID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE students
		SET room_id = $2, updated_at = NOW()
		WHERE id = $1 AND active = TRUE
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, studentID, roomID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.ErrStudentNotFound
		}
		return fmt.Errorf("failed to assign room: %w", err)
	}

	return nil
}

// ListByRoom implements student.StudentRepository.
func (r *studentRepositoryImpl) ListByRoom(ctx context.Context, roomID string) ([]student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + studentColumns + `
		FROM students st` + studentJoins + `
		WHERE st.room_id = $1 AND st.active = TRUE
		ORDER BY st.full_name ASC
	`

	rows, err := q.Query(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list room roster: %w", err)
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
