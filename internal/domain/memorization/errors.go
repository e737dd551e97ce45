package memorization

import "errors"

var (
	ErrEntryNotFound   = errors.New("memorization entry not found")
	ErrStudentNotFound = errors.New("student not found")
)
