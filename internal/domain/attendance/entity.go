package attendance

import (
	"time"
)

// Status is the recorded presence state of a santri at one activity
// occurrence.
type Status string

const (
	StatusHadir Status = "hadir" // present
	StatusIzin  Status = "izin"  // excused leave
	StatusSakit Status = "sakit" // sick
	StatusAlpa  Status = "alpa"  // absent without excuse
)

// IsValid reports whether s is one of the four recordable statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusHadir, StatusIzin, StatusSakit, StatusAlpa:
		return true
	}
	return false
}

// Record is one attendance fact. At most one row exists per
// (occurrence, student, date); recording again replaces the status.
type Record struct {
	ID           string
	OccurrenceID string
	StudentID    string
	Date         time.Time // calendar day, no time component
	Status       Status
	RecordedBy   *string
	Note         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	StudentName     *string
	StudentNIS      *string
	OccurrenceLabel *string
	ActivityName    *string
}

// StaffRecord is a pegawai presence fact. Staff rows carry only the
// "hadir" status: absence is represented by the row not existing, so
// staff aggregation must never assume a row per day.
type StaffRecord struct {
	ID           string
	StaffID      string
	OccurrenceID string
	Date         time.Time
	// StudentRecordID optionally points at the santri roll-call row
	// that implied this staff presence.
	StudentRecordID *string
	CreatedAt       time.Time

	// DTO / Join
	StaffName       *string
	OccurrenceLabel *string
}
