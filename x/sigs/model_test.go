package sigs

import (
	"testing"

	"github.com/iov-one/swap/crypto"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest/assert"
)

func TestUserModel(t *testing.T) {
	db := store.MemStore()
	b := NewBucket()
	pub := crypto.GenPrivKeyEd25519().PublicKey()

	user, err := b.GetOrCreate(db, pub)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), user.Sequence)

	assert.IsErr(t, ErrInvalidSequence, user.CheckAndIncrementSequence(1))
	assert.Nil(t, user.CheckAndIncrementSequence(0))
	assert.Nil(t, b.Put(db, pub.Address(), user))

	loaded, err := b.GetOrCreate(db, pub)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), loaded.Sequence)
	assert.Equal(t, pub, loaded.PubKey)
}

func TestUserValidation(t *testing.T) {
	pub := crypto.GenPrivKeyEd25519().PublicKey()
	cases := map[string]struct {
		user    *UserData
		wantErr *errors.Error
	}{
		"valid":                  {user: &UserData{PubKey: pub, Sequence: 4}},
		"no key and no sequence": {user: &UserData{}},
		"negative sequence":      {user: &UserData{PubKey: pub, Sequence: -1}, wantErr: ErrInvalidSequence},
		"sequence without key":   {user: &UserData{Sequence: 2}, wantErr: ErrInvalidSequence},
		"invalid key":            {user: &UserData{PubKey: &crypto.PublicKey{Ed25519: []byte{1}}}, wantErr: errors.ErrInvalidInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.user.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestSequenceOverflow(t *testing.T) {
	u := &UserData{Sequence: maxSequenceValue}
	assert.IsErr(t, errors.ErrOverflow, u.CheckAndIncrementSequence(maxSequenceValue))
}
