package members

import "errors"

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrIntroducerNotFound = errors.New("introducer not found")
	ErrInvalidMember      = errors.New("invalid member")
)
