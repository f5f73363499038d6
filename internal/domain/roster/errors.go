package roster

import "errors"

var (
	ErrInvalidRow    = errors.New("invalid import row")
	ErrUserNotFound  = errors.New("user not found")
	ErrGroupNotFound = errors.New("group not found")
)
