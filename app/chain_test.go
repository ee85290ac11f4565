package app

import (
	"context"
	"testing"

	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
)

func TestChain(t *testing.T) {
	var (
		first  = &swaptest.Decorator{}
		second = &swaptest.Decorator{}
		h      = &swaptest.Handler{}
		ctx    = context.Background()
		db     = store.MemStore()
		tx     = &swaptest.Tx{}
	)

	var missing *swaptest.Decorator
	stack := ChainDecorators(first, missing).Chain(second, nil).WithHandler(h)

	_, err := stack.Check(ctx, db, tx)
	assert.Nil(t, err)
	_, err = stack.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	assert.Equal(t, 2, first.CallCount())
	assert.Equal(t, 2, second.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainStopsOnError(t *testing.T) {
	var (
		first  = &swaptest.Decorator{DeliverErr: errors.ErrUnauthorized}
		second = &swaptest.Decorator{}
		h      = &swaptest.Handler{}
	)
	var stack swap.Handler = ChainDecorators(first, second).WithHandler(h)

	_, err := stack.Deliver(context.Background(), store.MemStore(), &swaptest.Tx{})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 1, first.DeliverCallCount())
	assert.Equal(t, 0, second.DeliverCallCount())
	assert.Equal(t, 0, h.DeliverCallCount())
}
