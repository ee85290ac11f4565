package utils

import (
	"fmt"
	"runtime/debug"

	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

// Recovery is a decorator that turns a panic raised while processing an
// instruction into an ErrPanic failure of that transaction. The panic value
// and stack are logged together with the instruction path. Clients only see
// the redacted error.
type Recovery struct{}

var _ swap.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx swap.Context, store swap.KVStore, tx swap.Tx, next swap.Checker) (_ *swap.CheckResult, err error) {
	defer recoverInstruction(ctx, tx, "check", &err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx swap.Context, store swap.KVStore, tx swap.Tx, next swap.Deliverer) (_ *swap.DeliverResult, err error) {
	defer recoverInstruction(ctx, tx, "deliver", &err)
	return next.Deliver(ctx, store, tx)
}

// recoverInstruction must be deferred directly so that recover stops the
// panic.
func recoverInstruction(ctx swap.Context, tx swap.Tx, call string, err *error) {
	p := recover()
	if p == nil {
		return
	}
	path := swap.GetPath(tx)
	*err = errors.Wrapf(errors.ErrPanic, "%s %s: %v", call, path, p)
	swap.GetLogger(ctx).Error("instruction panic",
		"call", call,
		"path", path,
		"panic", fmt.Sprint(p),
		"stack", string(debug.Stack()))
}
