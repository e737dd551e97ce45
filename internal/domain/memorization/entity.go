package memorization

import "time"

// Entry is one recorded setoran hafalan: a student recites a passage to
// an ustadz who grades it.
type Entry struct {
	ID        string
	StudentID string
	Surah     string
	SurahNo   int
	AyatFrom  int
	AyatTo    int
	Juz       int
	Grade     string // "lancar", "cukup", "ulang"
	Date      time.Time
	TeacherID *string
	Note      *string
	CreatedAt time.Time

	// DTO / Join
	StudentName *string
	TeacherName *string
}

// Progress summarizes a student's memorization so far.
type Progress struct {
	StudentID      string
	TotalEntries   int
	SurahCompleted int
	JuzTouched     int
	LastSurah      *string
	LastDate       *time.Time
}
