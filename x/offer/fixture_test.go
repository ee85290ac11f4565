package offer

import (
	"context"
	"testing"

	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/gconf"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
	"github.com/iov-one/swap/x/token"
)

const testDeposit = 1

// fixture is a ledger with two mints.
type fixture struct {
	db     swap.CacheableKVStore
	ledger token.BaseController
	auth   *swaptest.CtxAuth
	mintA  swap.Address
	mintB  swap.Address
}

func newFixture(t testing.TB) *fixture {
	t.Helper()
	f := &fixture{
		db:     store.MemStore(),
		ledger: token.NewController(),
		auth:   &swaptest.CtxAuth{Key: "offer-test"},
		mintA:  swaptest.NewAddress(),
		mintB:  swaptest.NewAddress(),
	}
	assert.Nil(t, gconf.Save(f.db, "token", &token.Configuration{AccountDeposit: testDeposit}))
	assert.Nil(t, f.ledger.CreateMint(f.db, &token.Mint{Address: f.mintA, Decimals: 6, Symbol: "AAA"}))
	assert.Nil(t, f.ledger.CreateMint(f.db, &token.Mint{Address: f.mintB, Decimals: 2, Symbol: "BBB"}))
	return f
}

// party returns a new signer with the given native balance.
func (f *fixture) party(t testing.TB, native uint64) swap.Address {
	t.Helper()
	addr := swaptest.NewAddress()
	if native > 0 {
		assert.Nil(t, f.ledger.Credit(f.db, addr, native))
	}
	return addr
}

// fund issues amount of mint into the holding account of the owner. The
// account is created without charging the owner.
func (f *fixture) fund(t testing.TB, owner, mint swap.Address, amount uint64) {
	t.Helper()
	sponsor := f.party(t, testDeposit)
	acct, err := f.ledger.EnsureAssociatedAccount(f.db, sponsor, owner, mint)
	assert.Nil(t, err)
	assert.Nil(t, f.ledger.MintTo(f.db, acct.Address, amount))
}

// balance returns the amount of mint held by the owner, zero if the owner
// has no holding account.
func (f *fixture) balance(t testing.TB, owner, mint swap.Address) uint64 {
	t.Helper()
	addr := holding(t, owner, mint)
	amount, err := f.ledger.Balance(f.db, addr)
	if errors.ErrNotFound.Is(err) {
		return 0
	}
	assert.Nil(t, err)
	return amount
}

func (f *fixture) native(t testing.TB, addr swap.Address) uint64 {
	t.Helper()
	amount, err := f.ledger.WalletBalance(f.db, addr)
	assert.Nil(t, err)
	return amount
}

func (f *fixture) signedBy(signers ...swap.Address) swap.Context {
	return f.auth.SetSigners(context.Background(), signers...)
}

func (f *fixture) deliver(t testing.TB, h swap.Handler, ctx swap.Context, msg swap.Msg) (*swap.DeliverResult, error) {
	t.Helper()
	return h.Deliver(ctx, f.db, &swaptest.Tx{Msg: msg})
}

func holding(t testing.TB, owner, mint swap.Address) swap.Address {
	t.Helper()
	addr, err := token.AssociatedAddress(owner, mint)
	assert.Nil(t, err)
	return addr
}

func accountsOf(t testing.TB, authority, maker swap.Address, id uint64, mintA, mintB swap.Address) Accounts {
	t.Helper()
	offer, _, err := OfferAddress(maker, id)
	assert.Nil(t, err)
	vault, err := VaultAddress(offer, mintA)
	assert.Nil(t, err)
	return Accounts{
		Authority: authority,
		HoldingA:  holding(t, authority, mintA),
		HoldingB:  holding(t, authority, mintB),
		Vault:     vault,
		Offer:     offer,
		MintA:     mintA,
		MintB:     mintB,
	}
}

func (f *fixture) makeMsg(t testing.TB, maker swap.Address, id, amountA, amountB uint64) *MakeOfferMsg {
	return &MakeOfferMsg{
		Accounts: accountsOf(t, maker, maker, id, f.mintA, f.mintB),
		ID:       id,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

func (f *fixture) takeMsg(t testing.TB, taker, maker swap.Address, id uint64) *TakeOfferMsg {
	return &TakeOfferMsg{
		Accounts:      accountsOf(t, taker, maker, id, f.mintA, f.mintB),
		Maker:         maker,
		MakerHoldingB: holding(t, maker, f.mintB),
	}
}

func (f *fixture) cancelMsg(t testing.TB, caller, maker swap.Address, id uint64) *CancelOfferMsg {
	return &CancelOfferMsg{Accounts: accountsOf(t, caller, maker, id, f.mintA, f.mintB)}
}

// handlers returns the registered handlers of this package.
func (f *fixture) handlers() (mk, tk, cl swap.Handler) {
	r := handlerRegistry{}
	RegisterRoutes(r, f.auth, f.ledger)
	return r[pathMakeOfferMsg], r[pathTakeOfferMsg], r[pathCancelOfferMsg]
}

type handlerRegistry map[string]swap.Handler

func (r handlerRegistry) Handle(path string, h swap.Handler) {
	r[path] = h
}
