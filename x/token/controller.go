package token

import (
	"math"

	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/orm"
)

// Controller is the ledger API exposed to other extensions.
type Controller interface {
	// Mint returns the mint stored under given address.
	Mint(db swap.ReadOnlyKVStore, addr swap.Address) (*Mint, error)

	// Account returns the account stored under given address.
	Account(db swap.ReadOnlyKVStore, addr swap.Address) (*Account, error)

	// Balance returns the amount held by the account.
	Balance(db swap.ReadOnlyKVStore, addr swap.Address) (uint64, error)

	// CreateAccount creates an empty account of given mint. The account
	// deposit is paid from the payer's wallet.
	CreateAccount(db swap.KVStore, payer, addr, mint, owner swap.Address) (*Account, error)

	// EnsureAssociatedAccount returns the associated account of the owner
	// for the mint, creating it first if it does not exist.
	EnsureAssociatedAccount(db swap.KVStore, payer, owner, mint swap.Address) (*Account, error)

	// Transfer moves amount of tokens between two accounts of the same
	// mint. The authority must prove ownership of the source account.
	// Nothing is written unless the transfer succeeds.
	Transfer(ctx swap.Context, db swap.KVStore, auth Authority, src, dst swap.Address, amount uint64) error

	// CloseAccount deletes an empty account and refunds its deposit to
	// the dest wallet.
	CloseAccount(ctx swap.Context, db swap.KVStore, auth Authority, addr, dest swap.Address) error

	// AccountDeposit returns the deposit currently charged for creating an
	// account.
	AccountDeposit(db swap.ReadOnlyKVStore) (uint64, error)

	// WalletBalance returns the native balance of given address.
	WalletBalance(db swap.ReadOnlyKVStore, addr swap.Address) (uint64, error)

	// Credit adds to the native balance of given address.
	Credit(db swap.KVStore, addr swap.Address, amount uint64) error

	// Debit subtracts from the native balance of given address.
	Debit(db swap.KVStore, addr swap.Address, amount uint64) error
}

// BaseController is the default Controller implementation.
type BaseController struct {
	mints    orm.ModelBucket
	accounts orm.ModelBucket
	wallets  orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on the default buckets.
func NewController() BaseController {
	return BaseController{
		mints:    orm.NewModelBucket(mintBucketName),
		accounts: orm.NewModelBucket(accountBucketName),
		wallets:  orm.NewModelBucket(walletBucketName),
	}
}

func (c BaseController) Mint(db swap.ReadOnlyKVStore, addr swap.Address) (*Mint, error) {
	var m Mint
	if err := c.mints.One(db, addr, &m); err != nil {
		return nil, errors.Wrapf(err, "mint %s", addr)
	}
	return &m, nil
}

// CreateMint registers a new asset type.
func (c BaseController) CreateMint(db swap.KVStore, m *Mint) error {
	if err := c.mints.Has(db, m.Address); err == nil {
		return errors.Wrapf(errors.ErrDuplicate, "mint %s", m.Address)
	} else if !errors.ErrNotFound.Is(err) {
		return err
	}
	return c.mints.Put(db, m.Address, m)
}

func (c BaseController) Account(db swap.ReadOnlyKVStore, addr swap.Address) (*Account, error) {
	var a Account
	if err := c.accounts.One(db, addr, &a); err != nil {
		return nil, errors.Wrapf(err, "account %s", addr)
	}
	return &a, nil
}

func (c BaseController) Balance(db swap.ReadOnlyKVStore, addr swap.Address) (uint64, error) {
	a, err := c.Account(db, addr)
	if err != nil {
		return 0, err
	}
	return a.Amount, nil
}

func (c BaseController) CreateAccount(db swap.KVStore, payer, addr, mint, owner swap.Address) (*Account, error) {
	if _, err := c.Mint(db, mint); err != nil {
		return nil, err
	}
	if err := c.accounts.Has(db, addr); err == nil {
		return nil, errors.Wrapf(ErrAccountExists, "account %s", addr)
	} else if !errors.ErrNotFound.Is(err) {
		return nil, err
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if err := c.Debit(db, payer, conf.AccountDeposit); err != nil {
		if ErrInsufficientFunds.Is(err) {
			return nil, errors.Wrapf(ErrInsufficientDeposit, "payer %s", payer)
		}
		return nil, err
	}

	acct := &Account{
		Address: addr,
		Mint:    mint,
		Owner:   owner,
		Deposit: conf.AccountDeposit,
	}
	if err := c.accounts.Put(db, addr, acct); err != nil {
		return nil, err
	}
	return acct, nil
}

func (c BaseController) EnsureAssociatedAccount(db swap.KVStore, payer, owner, mint swap.Address) (*Account, error) {
	addr, err := AssociatedAddress(owner, mint)
	if err != nil {
		return nil, err
	}
	acct, err := c.Account(db, addr)
	switch {
	case err == nil:
		// Derivation binds the address to both, this only guards
		// against corrupted state.
		if !acct.Owner.Equals(owner) {
			return nil, errors.Wrapf(ErrOwnerMismatch, "account %s", addr)
		}
		if !acct.Mint.Equals(mint) {
			return nil, errors.Wrapf(ErrMintMismatch, "account %s", addr)
		}
		return acct, nil
	case errors.ErrNotFound.Is(err):
		return c.CreateAccount(db, payer, addr, mint, owner)
	default:
		return nil, err
	}
}

func (c BaseController) Transfer(ctx swap.Context, db swap.KVStore, auth Authority, src, dst swap.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero transfer")
	}
	if src.Equals(dst) {
		return errors.Wrap(errors.ErrInvalidInput, "source and destination are the same account")
	}

	from, err := c.Account(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	to, err := c.Account(db, dst)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if !auth.ProvesAuthorityFor(ctx, from) {
		return errors.Wrapf(ErrOwnerMismatch, "no authority over %s", src)
	}
	if !from.Mint.Equals(to.Mint) {
		return errors.Wrapf(ErrMintMismatch, "%s to %s", from.Mint, to.Mint)
	}
	if from.Amount < amount {
		return errors.Wrapf(ErrInsufficientFunds, "account %s holds %d, need %d", src, from.Amount, amount)
	}
	if to.Amount > math.MaxUint64-amount {
		return errors.Wrapf(errors.ErrOverflow, "account %s", dst)
	}

	from.Amount -= amount
	to.Amount += amount
	if err := c.accounts.Put(db, src, from); err != nil {
		return err
	}
	return c.accounts.Put(db, dst, to)
}

func (c BaseController) CloseAccount(ctx swap.Context, db swap.KVStore, auth Authority, addr, dest swap.Address) error {
	acct, err := c.Account(db, addr)
	if err != nil {
		return err
	}
	if !auth.ProvesAuthorityFor(ctx, acct) {
		return errors.Wrapf(ErrOwnerMismatch, "no authority over %s", addr)
	}
	if acct.Amount != 0 {
		return errors.Wrapf(ErrNonEmptyAccount, "account %s holds %d", addr, acct.Amount)
	}
	if err := c.accounts.Delete(db, addr); err != nil {
		return err
	}
	if acct.Deposit == 0 {
		return nil
	}
	return c.Credit(db, dest, acct.Deposit)
}

// MintTo issues new tokens into an existing account. It is meant for genesis
// and tests.
func (c BaseController) MintTo(db swap.KVStore, addr swap.Address, amount uint64) error {
	acct, err := c.Account(db, addr)
	if err != nil {
		return err
	}
	if acct.Amount > math.MaxUint64-amount {
		return errors.Wrapf(errors.ErrOverflow, "account %s", addr)
	}
	acct.Amount += amount
	return c.accounts.Put(db, addr, acct)
}

func (c BaseController) AccountDeposit(db swap.ReadOnlyKVStore) (uint64, error) {
	conf, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	return conf.AccountDeposit, nil
}

func (c BaseController) WalletBalance(db swap.ReadOnlyKVStore, addr swap.Address) (uint64, error) {
	w, err := c.wallet(db, addr)
	if err != nil {
		return 0, err
	}
	return w.Balance, nil
}

func (c BaseController) Credit(db swap.KVStore, addr swap.Address, amount uint64) error {
	w, err := c.wallet(db, addr)
	if err != nil {
		return err
	}
	if w.Balance > math.MaxUint64-amount {
		return errors.Wrapf(errors.ErrOverflow, "wallet %s", addr)
	}
	w.Balance += amount
	return c.wallets.Put(db, addr, w)
}

func (c BaseController) Debit(db swap.KVStore, addr swap.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	w, err := c.wallet(db, addr)
	if err != nil {
		return err
	}
	if w.Balance < amount {
		return errors.Wrapf(ErrInsufficientFunds, "wallet %s holds %d, need %d", addr, w.Balance, amount)
	}
	w.Balance -= amount
	return c.wallets.Put(db, addr, w)
}

// wallet returns the wallet of given address. An address that was never
// credited has an empty wallet.
func (c BaseController) wallet(db swap.ReadOnlyKVStore, addr swap.Address) (*Wallet, error) {
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	var w Wallet
	err := c.wallets.One(db, addr, &w)
	switch {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{Address: addr}, nil
	default:
		return nil, err
	}
}
