package conduct

import "time"

// Violation is a recorded pelanggaran: a timestamped fact with a weight
// used for discipline point totals.
type Violation struct {
	ID          string
	StudentID   string
	Description string
	Weight      int
	OccurredAt  time.Time
	RecordedBy  *string
	CreatedAt   time.Time

	// DTO / Join
	StudentName *string
}

// Achievement is a recorded prestasi with a score.
type Achievement struct {
	ID          string
	StudentID   string
	Description string
	Score       int
	AchievedAt  time.Time
	RecordedBy  *string
	CreatedAt   time.Time

	// DTO / Join
	StudentName *string
}

// PointSummary aggregates a student's conduct points.
type PointSummary struct {
	StudentID        string
	ViolationPoints  int
	AchievementScore int
}
