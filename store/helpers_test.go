package store

import (
	"testing"

	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/swaptest/assert"
)

type failingStore struct {
	EmptyKVStore
	failOn string
}

func (f failingStore) Set(key, value []byte) error {
	if string(key) == f.failOn {
		return errors.Wrap(errors.ErrDatabase, "disk full")
	}
	return nil
}

func TestNonAtomicBatch(t *testing.T) {
	db := MemStore()
	b := NewNonAtomicBatch(db)

	assert.Nil(t, b.Set([]byte("a"), []byte("1")))
	assert.Nil(t, b.Delete([]byte("a")))
	assert.Nil(t, b.Set([]byte("b"), []byte("2")))

	ops := b.Ops()
	assert.Equal(t, 3, len(ops))
	assert.Equal(t, true, ops[0].IsSet())
	assert.Equal(t, false, ops[1].IsSet())

	// nothing is visible before the write
	v, err := db.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, []byte(nil), v)

	assert.Nil(t, b.Write())
	assert.Equal(t, 0, len(b.Ops()))

	ok, err := db.Has([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, false, ok)
	v, err = db.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2"), v)
}

func TestNonAtomicBatchFailure(t *testing.T) {
	b := NewNonAtomicBatch(failingStore{failOn: "bad"})
	assert.Nil(t, b.Set([]byte("good"), []byte("1")))
	assert.Nil(t, b.Set([]byte("bad"), []byte("2")))
	assert.IsErr(t, errors.ErrDatabase, b.Write())
}
