package dormitory

import "errors"

var (
	ErrDormitoryNotFound   = errors.New("dormitory not found")
	ErrDormitoryNameExists = errors.New("dormitory with this name already exists")
	ErrDormitoryNotEmpty   = errors.New("dormitory still has rooms assigned")
)
