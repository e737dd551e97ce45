package attendance

import (
	"context"
)

// Service defines business logic for attendance operations
type Service interface {
	// RecordAttendance upserts one attendance fact. Recording the same
	// (occurrence, student, date) again replaces the stored status.
	RecordAttendance(ctx context.Context, req RecordRequest) (RecordResponse, error)

	// RecordRollCall records a whole roster for one occurrence and date,
	// and derives the supervising staff's presence row.
	RecordRollCall(ctx context.Context, req RollCallRequest) ([]RecordResponse, error)

	// ListStudentAttendance returns a student's records in a date range,
	// ascending by date.
	ListStudentAttendance(ctx context.Context, studentID, startDate, endDate string) ([]RecordResponse, error)

	// ListAttendance retrieves attendance records with filters
	ListAttendance(ctx context.Context, filter Filter) (ListResponse, error)

	// GetOccurrenceSheet returns the recorded roll-call sheet for one
	// occurrence on one date.
	GetOccurrenceSheet(ctx context.Context, occurrenceID, date string) ([]RecordResponse, error)
}
