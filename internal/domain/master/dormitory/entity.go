package dormitory

import "time"

// Dormitory is an asrama building.
type Dormitory struct {
	ID          string
	Name        string
	Gender      string // L or P, dormitories are single-gender
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	RoomCount *int
}
