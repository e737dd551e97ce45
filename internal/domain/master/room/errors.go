package room

import "errors"

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomNameExists = errors.New("room with this name already exists in the dormitory")
	ErrRoomOccupied   = errors.New("room still has students assigned")
)
