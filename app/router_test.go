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

func TestRouterDispatch(t *testing.T) {
	var (
		r   = NewRouter()
		mk  = &swaptest.Handler{}
		tk  = &swaptest.Handler{}
		ctx = context.Background()
		db  = store.MemStore()
	)
	r.Handle("offer/make", mk)
	r.Handle("offer/take", tk)

	tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "offer/take"}}
	_, err := r.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	_, err = r.Check(ctx, db, tx)
	assert.Nil(t, err)

	assert.Equal(t, 0, mk.CallCount())
	assert.Equal(t, 2, tk.CallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()
	tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "offer/swap"}}

	_, err := r.Check(context.Background(), store.MemStore(), tx)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Deliver(context.Background(), store.MemStore(), tx)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestRouterMsgError(t *testing.T) {
	r := NewRouter()
	tx := &swaptest.Tx{Err: errors.ErrInvalidMsg}

	_, err := r.Deliver(context.Background(), store.MemStore(), tx)
	assert.IsErr(t, errors.ErrInvalidMsg, err)
}

func TestRouterRegistration(t *testing.T) {
	var h swap.Handler = &swaptest.Handler{}

	assert.Panics(t, func() {
		NewRouter().Handle("offer make", h)
	})
	assert.Panics(t, func() {
		r := NewRouter()
		r.Handle("offer/make", h)
		r.Handle("offer/make", h)
	})
}
