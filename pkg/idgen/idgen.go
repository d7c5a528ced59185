package idgen

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// Crockford alphabet keeps codes free of I, L, O and U.
var codeEncoding = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

// NewID returns a random UUID string used as a row primary key.
func NewID() string {
	return uuid.NewString()
}

// NewCode returns a human-facing reference such as a member code or receipt
// number. The suffix is the first 80 bits of a UUIDv7: a millisecond
// timestamp followed by the in-process sequence and random bits, so codes
// sort by creation time and do not collide within the same millisecond.
func NewCode(prefix string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(prefix) + codeEncoding.EncodeToString(id[:10]), nil
}
