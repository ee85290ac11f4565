package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	ctx := swap.WithLogger(context.Background(), log.NewTMLogger(log.NewSyncWriter(&buf)))
	db := store.MemStore()
	tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "offer/take"}}

	h := swaptest.Decorate(swaptest.PanicHandler{Value: "boom"}, NewRecovery())

	_, err := h.Check(ctx, db, tx)
	assert.IsErr(t, errors.ErrPanic, err)
	assert.Equal(t, "check offer/take: boom: panic", err.Error())

	out := buf.String()
	if !strings.Contains(out, "instruction panic") || !strings.Contains(out, "path=offer/take") {
		t.Fatalf("panic not logged: %s", out)
	}

	_, err = h.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrPanic, err)
	assert.Equal(t, "deliver offer/take: boom: panic", err.Error())
}

func TestRecoveryPassesResults(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "test/ok"}}

	inner := &swaptest.Handler{DeliverErr: errors.ErrUnauthorized}
	h := swaptest.Decorate(inner, NewRecovery())

	_, err := h.Check(ctx, db, tx)
	assert.Nil(t, err)
	_, err = h.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 2, inner.CallCount())
}
