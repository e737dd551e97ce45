package attendance

import (
	"context"
	"time"
)

// Repository defines data access methods for santri attendance records.
type Repository interface {
	// Upsert inserts or replaces the record keyed by
	// (occurrence_id, student_id, date). A second write with the same
	// key overwrites the stored status (last write wins).
	Upsert(ctx context.Context, rec Record) (Record, error)

	// UpsertBatch applies Upsert to a whole roster in one transaction.
	UpsertBatch(ctx context.Context, recs []Record) ([]Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	GetByKey(ctx context.Context, occurrenceID, studentID string, date time.Time) (*Record, error)

	// ListByStudent returns records for a student within [from, to],
	// ascending by date. Used by the recap computations.
	ListByStudent(ctx context.Context, studentID string, from, to time.Time) ([]Record, error)

	// ListByOccurrenceAndDate returns one occurrence's roll-call sheet.
	ListByOccurrenceAndDate(ctx context.Context, occurrenceID string, date time.Time) ([]Record, error)

	List(ctx context.Context, filter Filter) ([]Record, int64, error)
}

// StaffRepository defines data access for pegawai presence rows.
type StaffRepository interface {
	// Record inserts the presence row if missing; recording an already
	// present (staff, occurrence, date) is a no-op, not an error.
	Record(ctx context.Context, rec StaffRecord) (StaffRecord, error)

	GetByKey(ctx context.Context, staffID, occurrenceID string, date time.Time) (*StaffRecord, error)

	ListByStaff(ctx context.Context, staffID string, from, to time.Time) ([]StaffRecord, error)
}
