package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/attendance"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/repository/postgresql"
)

var testDB *database.DB

// testDatabase connects to the database named by TEST_DATABASE_URL, or
// skips the test when none is configured.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}
	return testDB
}

// seedRollCallRow inserts the activity, occurrence and student an
// attendance record hangs off, returning the occurrence and student ids.
func seedRollCallRow(t *testing.T, db *database.DB) (occurrenceID, studentID string) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx, "TRUNCATE TABLE attendance_records CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "TRUNCATE TABLE activity_occurrences CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "TRUNCATE TABLE activities CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "TRUNCATE TABLE students CASCADE")
	require.NoError(t, err)

	var activityID string
	err = db.QueryRow(ctx, `
		INSERT INTO activities (name, category, description, active)
		VALUES ('Sholat Subuh', 'ibadah', NULL, TRUE)
		RETURNING id
	`).Scan(&activityID)
	require.NoError(t, err)

	err = db.QueryRow(ctx, `
		INSERT INTO activity_occurrences (activity_id, label, start_time, end_time)
		VALUES ($1, 'Subuh', '04:30', '05:30')
		RETURNING id
	`, activityID).Scan(&occurrenceID)
	require.NoError(t, err)

	err = db.QueryRow(ctx, `
		INSERT INTO students (nis, full_name, gender, enrolled_at, active)
		VALUES ('20240001', 'Ahmad Fauzi', 'L', NOW(), TRUE)
		RETURNING id
	`).Scan(&studentID)
	require.NoError(t, err)

	return occurrenceID, studentID
}

func TestAttendanceUpsert_SecondWriteReplacesRow(t *testing.T) {
	db := testDatabase(t)
	occurrenceID, studentID := seedRollCallRow(t, db)
	ctx := context.Background()

	repo := postgresql.NewAttendanceRepository(db)
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	first, err := repo.Upsert(ctx, attendance.Record{
		OccurrenceID: occurrenceID,
		StudentID:    studentID,
		Date:         day,
		Status:       attendance.StatusHadir,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHadir, first.Status)

	note := "pulang karena demam"
	second, err := repo.Upsert(ctx, attendance.Record{
		OccurrenceID: occurrenceID,
		StudentID:    studentID,
		Date:         day,
		Status:       attendance.StatusSakit,
		Note:         &note,
	})
	require.NoError(t, err)

	// The second write replaces the first row in place.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusSakit, second.Status)

	var count int
	err = db.QueryRow(ctx, `
		SELECT COUNT(*) FROM attendance_records
		WHERE occurrence_id = $1 AND student_id = $2 AND date = $3
	`, occurrenceID, studentID, day).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored, err := repo.GetByKey(ctx, occurrenceID, studentID, day)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, attendance.StatusSakit, stored.Status)
	require.NotNil(t, stored.Note)
	assert.Equal(t, note, *stored.Note)
}
