package schoolclass

import "time"

// SchoolClass is a kelas in the pesantren's formal school.
type SchoolClass struct {
	ID         string
	Name       string
	Level      int     // grade level, e.g. 7-12
	HomeroomID *string // ustadz acting as homeroom teacher
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	HomeroomName *string
	StudentCount *int
}
