package orm

import (
	"github.com/iov-one/swap/errors"
)

// Orm reserves 100~109 error codes

// ErrType is returned when a stored entity cannot be loaded into the given
// destination model.
var ErrType = errors.Register(101, "invalid model type")
