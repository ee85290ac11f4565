package sigs

import (
	"github.com/iov-one/swap/errors"
)

// x/sigs reserves 120~129 error codes

// ErrInvalidSequence is returned when a signature carries a sequence other
// than the next expected one.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
