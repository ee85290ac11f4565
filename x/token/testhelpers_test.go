package token

import (
	"testing"

	"github.com/iov-one/swap"
	"github.com/iov-one/swap/gconf"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
)

const testDeposit = 2

// newLedger returns a store with the configuration saved and a single mint
// registered.
func newLedger(t testing.TB) (swap.CacheableKVStore, BaseController, *Mint) {
	t.Helper()
	db := store.MemStore()
	assert.Nil(t, gconf.Save(db, confPkg, &Configuration{AccountDeposit: testDeposit}))

	ctrl := NewController()
	mint := &Mint{Address: swaptest.NewAddress(), Decimals: 6, Symbol: "AAA"}
	assert.Nil(t, ctrl.CreateMint(db, mint))
	return db, ctrl, mint
}

// fundedAccount creates the associated account of the owner, paid by the
// owner, holding given amount.
func fundedAccount(t testing.TB, db swap.KVStore, ctrl BaseController, owner, mint swap.Address, amount uint64) *Account {
	t.Helper()
	assert.Nil(t, ctrl.Credit(db, owner, testDeposit))
	acct, err := ctrl.EnsureAssociatedAccount(db, owner, owner, mint)
	assert.Nil(t, err)
	if amount > 0 {
		assert.Nil(t, ctrl.MintTo(db, acct.Address, amount))
	}
	return acct
}
