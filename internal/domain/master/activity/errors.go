package activity

import "errors"

var (
	ErrActivityNotFound   = errors.New("activity not found")
	ErrOccurrenceNotFound = errors.New("activity occurrence not found")
	ErrActivityNameExists = errors.New("activity with this name already exists")
)
