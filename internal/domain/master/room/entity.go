package room

import "time"

// Room is a kamar inside an asrama.
type Room struct {
	ID          string
	DormitoryID string
	Name        string
	Capacity    int
	WaliKamarID *string // staff member acting as room parent
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	DormitoryName *string
	Occupancy     *int
	WaliKamarName *string
}
