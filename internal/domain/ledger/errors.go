package ledger

import "errors"

var ErrInvalidFilter = errors.New("invalid ledger filter")
