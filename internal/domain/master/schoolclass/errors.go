package schoolclass

import "errors"

var (
	ErrClassNotFound   = errors.New("school class not found")
	ErrClassNameExists = errors.New("school class with this name already exists")
	ErrClassNotEmpty   = errors.New("school class still has students assigned")
)
