package groups

import "errors"

var (
	ErrGroupNotFound  = errors.New("chit group not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidGroup   = errors.New("invalid chit group")
	ErrAlreadyInGroup = errors.New("member already in group")
	ErrGroupFull      = errors.New("chit group is full")
)
