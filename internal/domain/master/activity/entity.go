package activity

import "time"

// Activity is a recurring kegiatan santri attend: congregational prayer,
// Quran study circle, a school subject, dormitory study hour.
type Activity struct {
	ID          string
	Name        string
	Category    string // "asrama" or "sekolah"
	Description *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Occurrence is one scheduled slot of an activity. Attendance facts hang
// off the occurrence, so the same activity can appear several times per
// day (e.g. lesson periods).
type Occurrence struct {
	ID         string
	ActivityID string
	Label      string // e.g. "Subuh", "Jam ke-2"
	StartTime  string // HH:MM
	EndTime    string // HH:MM
	Weekday    *int   // 0=Sunday..6=Saturday, nil means daily
	TeacherID  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	ActivityName *string
	TeacherName  *string
}
