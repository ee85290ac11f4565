package token

import (
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/gconf"
)

// GenesisAccount is a holding account declared in the genesis file. When
// the address is not set the associated address of the owner is used.
type GenesisAccount struct {
	Address swap.Address `json:"address,omitempty"`
	Owner   swap.Address `json:"owner"`
	Mint    swap.Address `json:"mint"`
	Amount  uint64       `json:"amount"`
}

// GenesisWallet is a native balance declared in the genesis file.
type GenesisWallet struct {
	Address swap.Address `json:"address"`
	Balance uint64       `json:"balance"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ swap.Initializer = Initializer{}

// FromGenesis stores the configuration and seeds the ledger with mints,
// accounts and wallets. Genesis accounts pay no deposit.
func (Initializer) FromGenesis(opts swap.Options, db swap.KVStore) error {
	if err := gconf.InitConfig(db, opts, confPkg, &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	ctrl := NewController()

	var mints []Mint
	if err := opts.ReadOptions("mints", &mints); err != nil {
		return errors.Wrap(err, "read mints")
	}
	for i := range mints {
		if err := ctrl.CreateMint(db, &mints[i]); err != nil {
			return errors.Wrapf(err, "mint #%d", i)
		}
	}

	var wallets []GenesisWallet
	if err := opts.ReadOptions("wallets", &wallets); err != nil {
		return errors.Wrap(err, "read wallets")
	}
	for i, w := range wallets {
		if err := ctrl.Credit(db, w.Address, w.Balance); err != nil {
			return errors.Wrapf(err, "wallet #%d", i)
		}
	}

	var accounts []GenesisAccount
	if err := opts.ReadOptions("accounts", &accounts); err != nil {
		return errors.Wrap(err, "read accounts")
	}
	for i, a := range accounts {
		if err := ctrl.createGenesisAccount(db, a); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}

func (c BaseController) createGenesisAccount(db swap.KVStore, g GenesisAccount) error {
	if _, err := c.Mint(db, g.Mint); err != nil {
		return err
	}
	addr := g.Address
	if len(addr) == 0 {
		var err error
		if addr, err = AssociatedAddress(g.Owner, g.Mint); err != nil {
			return err
		}
	}
	if err := c.accounts.Has(db, addr); err == nil {
		return errors.Wrapf(ErrAccountExists, "account %s", addr)
	}
	acct := &Account{
		Address: addr,
		Mint:    g.Mint,
		Owner:   g.Owner,
		Amount:  g.Amount,
	}
	return c.accounts.Put(db, addr, acct)
}
