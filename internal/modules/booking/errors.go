package booking

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrRoomInactive = errors.New("room is not active")
)
