package student

import "errors"

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrNISExists       = errors.New("NIS already registered")
	ErrRoomFull        = errors.New("room capacity reached")
	ErrStudentInactive = errors.New("student is not active")

	ErrInvalidPhotoFormat = errors.New("photo must be a jpg, jpeg or png file")
)
