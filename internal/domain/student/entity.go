package student

import "time"

// Student is a santri enrolled in the pesantren.
type Student struct {
	ID            string
	NIS           string
	FullName      string
	Gender        string
	BirthPlace    *string
	BirthDate     *time.Time
	RoomID        *string
	ClassID       *string
	GuardianName  *string
	GuardianPhone *string
	Address       *string
	PhotoURL      *string
	EnrolledAt    time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO / Join
	RoomName      *string
	DormitoryName *string
	ClassName     *string
}
