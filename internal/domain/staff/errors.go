package staff

import "errors"

var (
	ErrUserNotFound = errors.New("staff user not found")
	ErrInvalidUser  = errors.New("invalid staff user")
)
