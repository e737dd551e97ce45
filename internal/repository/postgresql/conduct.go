package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/conduct"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type conductRepositoryImpl struct {
	db *database.DB
}

func NewConductRepository(db *database.DB) conduct.Repository {
	return &conductRepositoryImpl{db: db}
}

// CreateViolation implements conduct.Repository.
func (r *conductRepositoryImpl) CreateViolation(ctx context.Context, v conduct.Violation) (conduct.Violation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO violations (student_id, description, weight, occurred_at, recorded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, student_id, description, weight, occurred_at, recorded_by, created_at
	`

	var created conduct.Violation
	err := q.QueryRow(ctx, query,
		v.StudentID, v.Description, v.Weight, v.OccurredAt, v.RecordedBy,
	).Scan(
		&created.ID, &created.StudentID, &created.Description, &created.Weight,
		&created.OccurredAt, &created.RecordedBy, &created.CreatedAt,
	)
	if err != nil {
		return conduct.Violation{}, fmt.Errorf("failed to create violation: %w", err)
	}

	return created, nil
}

// ListViolations implements conduct.Repository.
func (r *conductRepositoryImpl) ListViolations(ctx context.Context, studentID string, from, to *time.Time) ([]conduct.Violation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT v.id, v.student_id, v.description, v.weight, v.occurred_at, v.recorded_by, v.created_at,
			st.full_name AS student_name
		FROM violations v
		JOIN students st ON st.id = v.student_id
		WHERE v.student_id = $1
			AND ($2::timestamptz IS NULL OR v.occurred_at >= $2)
			AND ($3::timestamptz IS NULL OR v.occurred_at <= $3)
		ORDER BY v.occurred_at DESC
	`

	rows, err := q.Query(ctx, query, studentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}
	defer rows.Close()

	var violations []conduct.Violation
	for rows.Next() {
		var v conduct.Violation
		err := rows.Scan(
			&v.ID, &v.StudentID, &v.Description, &v.Weight,
			&v.OccurredAt, &v.RecordedBy, &v.CreatedAt, &v.StudentName,
		)
		if err != nil {
			return nil, err
		}
		violations = append(violations, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return violations, nil
}

// DeleteViolation implements conduct.Repository.
func (r *conductRepositoryImpl) DeleteViolation(ctx context.Context, id string) error {
	return r.deleteRow(ctx, "violations", id, conduct.ErrViolationNotFound)
}

// CreateAchievement implements conduct.Repository.
func (r *conductRepositoryImpl) CreateAchievement(ctx context.Context, a conduct.Achievement) (conduct.Achievement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO achievements (student_id, description, score, achieved_at, recorded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, student_id, description, score, achieved_at, recorded_by, created_at
	`

	var created conduct.Achievement
	err := q.QueryRow(ctx, query,
		a.StudentID, a.Description, a.Score, a.AchievedAt, a.RecordedBy,
	).Scan(
		&created.ID, &created.StudentID, &created.Description, &created.Score,
		&created.AchievedAt, &created.RecordedBy, &created.CreatedAt,
	)
	if err != nil {
		return conduct.Achievement{}, fmt.Errorf("failed to create achievement: %w", err)
	}

	return created, nil
}

// ListAchievements implements conduct.Repository.
func (r *conductRepositoryImpl) ListAchievements(ctx context.Context, studentID string, from, to *time.Time) ([]conduct.Achievement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.student_id, a.description, a.score, a.achieved_at, a.recorded_by, a.created_at,
			st.full_name AS student_name
		FROM achievements a
		JOIN students st ON st.id = a.student_id
		WHERE a.student_id = $1
			AND ($2::timestamptz IS NULL OR a.achieved_at >= $2)
			AND ($3::timestamptz IS NULL OR a.achieved_at <= $3)
		ORDER BY a.achieved_at DESC
	`

	rows, err := q.Query(ctx, query, studentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []conduct.Achievement
	for rows.Next() {
		var a conduct.Achievement
		err := rows.Scan(
			&a.ID, &a.StudentID, &a.Description, &a.Score,
			&a.AchievedAt, &a.RecordedBy, &a.CreatedAt, &a.StudentName,
		)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return achievements, nil
}

// DeleteAchievement implements conduct.Repository.
func (r *conductRepositoryImpl) DeleteAchievement(ctx context.Context, id string) error {
	return r.deleteRow(ctx, "achievements", id, conduct.ErrAchievementNotFound)
}

// PointSummary implements conduct.Repository.
func (r *conductRepositoryImpl) PointSummary(ctx context.Context, studentID string) (conduct.PointSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE((SELECT SUM(weight) FROM violations WHERE student_id = $1), 0),
			COALESCE((SELECT SUM(score) FROM achievements WHERE student_id = $1), 0)
	`

	summary := conduct.PointSummary{StudentID: studentID}
	if err := q.QueryRow(ctx, query, studentID).Scan(&summary.ViolationPoints, &summary.AchievementScore); err != nil {
		return conduct.PointSummary{}, fmt.Errorf("failed to compute point summary: %w", err)
	}

	return summary, nil
}

func (r *conductRepositoryImpl) deleteRow(ctx context.Context, table, id string, notFound error) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if res.RowsAffected() == 0 {
		return notFound
	}

	return nil
}
