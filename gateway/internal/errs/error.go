package errs

import (
	"errors"
)

var (
	ErrMissingUserID = errors.New("missing X-Sharer-User-Id header")
	ErrStartAfterEnd = errors.New("start must precede end")
	ErrStartInPast   = errors.New("start must not be in the past")
)
