package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound      = errors.New("attendance record not found")
	ErrInvalidStatus       = errors.New("invalid attendance status")
	ErrStudentNotFound     = errors.New("student not found")
	ErrOccurrenceNotFound  = errors.New("activity occurrence not found")
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrDuplicateRecord     = errors.New("attendance already recorded for this occurrence and date")
	ErrEmptyRoster         = errors.New("roll call roster is empty")
	ErrRosterStatusMissing = errors.New("every roster entry needs a status")
)
