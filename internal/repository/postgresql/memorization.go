package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/memorization"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
)

type memorizationRepositoryImpl struct {
	db *database.DB
}

func NewMemorizationRepository(db *database.DB) memorization.Repository {
	return &memorizationRepositoryImpl{db: db}
}

const memorizationColumns = `
	m.id, m.student_id, m.surah, m.surah_no, m.ayat_from, m.ayat_to, m.juz,
	m.grade, m.date, m.teacher_id, m.note, m.created_at,
	st.full_name AS student_name, s.full_name AS teacher_name
`

const memorizationJoins = `
	JOIN students st ON st.id = m.student_id
	LEFT JOIN staff s ON s.id = m.teacher_id
`

func scanMemorization(row pgx.Row) (memorization.Entry, error) {
	var e memorization.Entry
	err := row.Scan(
		&e.ID, &e.StudentID, &e.Surah, &e.SurahNo, &e.AyatFrom, &e.AyatTo, &e.Juz,
		&e.Grade, &e.Date, &e.TeacherID, &e.Note, &e.CreatedAt,
		&e.StudentName, &e.TeacherName,
	)
	return e, err
}

// Create implements memorization.Repository.
func (r *memorizationRepositoryImpl) Create(ctx context.Context, entry memorization.Entry) (memorization.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO memorization_entries (student_id, surah, surah_no, ayat_from, ayat_to, juz, grade, date, teacher_id, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, student_id, surah, surah_no, ayat_from, ayat_to, juz, grade, date, teacher_id, note, created_at
	`

	var created memorization.Entry
	err := q.QueryRow(ctx, query,
		entry.StudentID, entry.Surah, entry.SurahNo, entry.AyatFrom, entry.AyatTo,
		entry.Juz, entry.Grade, entry.Date, entry.TeacherID, entry.Note,
	).Scan(
		&created.ID, &created.StudentID, &created.Surah, &created.SurahNo,
		&created.AyatFrom, &created.AyatTo, &created.Juz, &created.Grade,
		&created.Date, &created.TeacherID, &created.Note, &created.CreatedAt,
	)
	if err != nil {
		return memorization.Entry{}, fmt.Errorf("failed to create memorization entry: %w", err)
	}

	return created, nil
}

// GetByID implements memorization.Repository.
func (r *memorizationRepositoryImpl) GetByID(ctx context.Context, id string) (memorization.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + memorizationColumns + `
		FROM memorization_entries m` + memorizationJoins + `
		WHERE m.id = $1
	`

	e, err := scanMemorization(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return memorization.Entry{}, memorization.ErrEntryNotFound
		}
		return memorization.Entry{}, fmt.Errorf("failed to get memorization entry: %w", err)
	}

	return e, nil
}

// ListByStudent implements memorization.Repository.
func (r *memorizationRepositoryImpl) ListByStudent(ctx context.Context, studentID string, from, to *time.Time) ([]memorization.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + memorizationColumns + `
		FROM memorization_entries m` + memorizationJoins + `
		WHERE m.student_id = $1
			AND ($2::date IS NULL OR m.date >= $2)
			AND ($3::date IS NULL OR m.date <= $3)
		ORDER BY m.date DESC, m.created_at DESC
	`

	rows, err := q.Query(ctx, query, studentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list memorization entries: %w", err)
	}
	defer rows.Close()

	var entries []memorization.Entry
	for rows.Next() {
		e, err := scanMemorization(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Delete implements memorization.Repository.
func (r *memorizationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.Exec(ctx, `DELETE FROM memorization_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete memorization entry: %w", err)
	}
	if res.RowsAffected() == 0 {
		return memorization.ErrEntryNotFound
	}

	return nil
}

// Progress implements memorization.Repository.
func (r *memorizationRepositoryImpl) Progress(ctx context.Context, studentID string) (memorization.Progress, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(DISTINCT surah_no) FILTER (WHERE grade = 'lancar'),
			COUNT(DISTINCT juz)
		FROM memorization_entries
		WHERE student_id = $1
	`

	progress := memorization.Progress{StudentID: studentID}
	err := q.QueryRow(ctx, query, studentID).Scan(
		&progress.TotalEntries, &progress.SurahCompleted, &progress.JuzTouched,
	)
	if err != nil {
		return memorization.Progress{}, fmt.Errorf("failed to compute memorization progress: %w", err)
	}

	lastQuery := `
		SELECT surah, date
		FROM memorization_entries
		WHERE student_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT 1
	`

	var lastSurah string
	var lastDate time.Time
	err = q.QueryRow(ctx, lastQuery, studentID).Scan(&lastSurah, &lastDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return progress, nil
		}
		return memorization.Progress{}, fmt.Errorf("failed to get last memorization entry: %w", err)
	}
	progress.LastSurah = &lastSurah
	progress.LastDate = &lastDate

	return progress, nil
}
