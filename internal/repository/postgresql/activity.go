package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/activity"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

// Create implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Create(ctx context.Context, act activity.Activity) (activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activities (name, category, description, active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, name, category, description, active, created_at, updated_at
	`

	var created activity.Activity
	err := q.QueryRow(ctx, query, act.Name, act.Category, act.Description).Scan(
		&created.ID, &created.Name, &created.Category, &created.Description,
		&created.Active, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("failed to create activity: %w", err)
	}

	return created, nil
}

// GetByID implements activity.ActivityRepository.
func (r *activityRepositoryImpl) GetByID(ctx context.Context, id string) (activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, description, active, created_at, updated_at
		FROM activities
		WHERE id = $1
	`

	var act activity.Activity
	err := q.QueryRow(ctx, query, id).Scan(
		&act.ID, &act.Name, &act.Category, &act.Description,
		&act.Active, &act.CreatedAt, &act.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity.Activity{}, activity.ErrActivityNotFound
		}
		return activity.Activity{}, fmt.Errorf("failed to get activity: %w", err)
	}

	return act, nil
}

// List implements activity.ActivityRepository.
func (r *activityRepositoryImpl) List(ctx context.Context, category *string) ([]activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, description, active, created_at, updated_at
		FROM activities
		WHERE ($1::text IS NULL OR category = $1)
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []activity.Activity
	for rows.Next() {
		var act activity.Activity
		err := rows.Scan(
			&act.ID, &act.Name, &act.Category, &act.Description,
			&act.Active, &act.CreatedAt, &act.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		activities = append(activities, act)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// Update implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Update(ctx context.Context, req activity.UpdateActivityRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE activities
		SET name = COALESCE($2, name),
			description = COALESCE($3, description),
			active = COALESCE($4, active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, req.ID, req.Name, req.Description, req.Active).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity.ErrActivityNotFound
		}
		return fmt.Errorf("failed to update activity: %w", err)
	}

	return nil
}

// Deactivate implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE activities
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1 AND active = TRUE
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity.ErrActivityNotFound
		}
		return fmt.Errorf("failed to deactivate activity: %w", err)
	}

	return nil
}

const occurrenceColumns = `
	o.id, o.activity_id, o.label, o.start_time, o.end_time, o.weekday, o.teacher_id,
	o.created_at, o.updated_at,
	a.name AS activity_name, s.full_name AS teacher_name
`

const occurrenceJoins = `
	JOIN activities a ON a.id = o.activity_id
	LEFT JOIN staff s ON s.id = o.teacher_id
`

func scanOccurrence(row pgx.Row) (activity.Occurrence, error) {
	var occ activity.Occurrence
	err := row.Scan(
		&occ.ID, &occ.ActivityID, &occ.Label, &occ.StartTime, &occ.EndTime,
		&occ.Weekday, &occ.TeacherID, &occ.CreatedAt, &occ.UpdatedAt,
		&occ.ActivityName, &occ.TeacherName,
	)
	return occ, err
}

// CreateOccurrence implements activity.ActivityRepository.
func (r *activityRepositoryImpl) CreateOccurrence(ctx context.Context, occ activity.Occurrence) (activity.Occurrence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activity_occurrences (activity_id, label, start_time, end_time, weekday, teacher_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, activity_id, label, start_time, end_time, weekday, teacher_id, created_at, updated_at
	`

	var created activity.Occurrence
	err := q.QueryRow(ctx, query,
		occ.ActivityID, occ.Label, occ.StartTime, occ.EndTime, occ.Weekday, occ.TeacherID,
	).Scan(
		&created.ID, &created.ActivityID, &created.Label, &created.StartTime,
		&created.EndTime, &created.Weekday, &created.TeacherID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return activity.Occurrence{}, fmt.Errorf("failed to create occurrence: %w", err)
	}

	return created, nil
}

// GetOccurrenceByID implements activity.ActivityRepository.
func (r *activityRepositoryImpl) GetOccurrenceByID(ctx context.Context, id string) (activity.Occurrence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + occurrenceColumns + `
		FROM activity_occurrences o` + occurrenceJoins + `
		WHERE o.id = $1
	`

	occ, err := scanOccurrence(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity.Occurrence{}, activity.ErrOccurrenceNotFound
		}
		return activity.Occurrence{}, fmt.Errorf("failed to get occurrence: %w", err)
	}

	return occ, nil
}

// ListOccurrences implements activity.ActivityRepository.
func (r *activityRepositoryImpl) ListOccurrences(ctx context.Context, activityID string) ([]activity.Occurrence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + occurrenceColumns + `
		FROM activity_occurrences o` + occurrenceJoins + `
		WHERE o.activity_id = $1
		ORDER BY o.start_time ASC
	`

	rows, err := q.Query(ctx, query, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}
	defer rows.Close()

	var occurrences []activity.Occurrence
	for rows.Next() {
		occ, err := scanOccurrence(rows)
		if err != nil {
			return nil, err
		}
		occurrences = append(occurrences, occ)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return occurrences, nil
}

// DeleteOccurrence implements activity.ActivityRepository.
func (r *activityRepositoryImpl) DeleteOccurrence(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM activity_occurrences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete occurrence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return activity.ErrOccurrenceNotFound
	}

	return nil
}
