package conduct

import "errors"

var (
	ErrViolationNotFound   = errors.New("violation record not found")
	ErrAchievementNotFound = errors.New("achievement record not found")
	ErrStudentNotFound     = errors.New("student not found")
)
