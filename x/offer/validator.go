package offer

import (
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/x"
	"github.com/iov-one/swap/x/token"
)

// Validator checks all preconditions of an instruction before any state is
// changed. It reads the state only.
type Validator struct {
	auth   x.Authenticator
	bucket Bucket
	ledger token.Controller
}

// NewValidator returns a validator using given authentication and ledger.
func NewValidator(auth x.Authenticator, ledger token.Controller) Validator {
	return Validator{auth: auth, bucket: NewBucket(), ledger: ledger}
}

// ValidateMake returns the offer that the message creates.
func (v Validator) ValidateMake(ctx swap.Context, db swap.ReadOnlyKVStore, msg *MakeOfferMsg) (*Offer, error) {
	if !v.auth.HasAddress(ctx, msg.Authority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "maker signature required")
	}

	addr, nonce, err := OfferAddress(msg.Authority, msg.ID)
	if err != nil {
		return nil, err
	}
	if !addr.Equals(msg.Offer) {
		return nil, errors.Wrapf(ErrInvalidDerivedAddress, "offer %d of %s is %s, got %s", msg.ID, msg.Authority, addr, msg.Offer)
	}
	switch err := v.bucket.Has(db, addr); {
	case err == nil:
		return nil, errors.Wrapf(ErrOfferExists, "offer %d of %s", msg.ID, msg.Authority)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	if err := v.checkMints(db, msg.MintA, msg.MintB); err != nil {
		return nil, err
	}
	vault, err := v.checkVault(msg.Vault, addr, msg.MintA)
	if err != nil {
		return nil, err
	}
	if err := v.checkHolding(msg.HoldingA, msg.Authority, msg.MintA); err != nil {
		return nil, err
	}
	if err := v.checkHolding(msg.HoldingB, msg.Authority, msg.MintB); err != nil {
		return nil, err
	}

	balance, err := v.balance(db, msg.HoldingA)
	if err != nil {
		return nil, err
	}
	if balance < msg.AmountA {
		return nil, errors.Wrapf(ErrInsufficientMakerBalance, "maker account %s holds %d, need %d", msg.HoldingA, balance, msg.AmountA)
	}

	deposit, err := v.ledger.AccountDeposit(db)
	if err != nil {
		return nil, err
	}

	return &Offer{
		ID:      msg.ID,
		Maker:   msg.Authority,
		MintA:   msg.MintA,
		MintB:   msg.MintB,
		AmountA: msg.AmountA,
		AmountB: msg.AmountB,
		Nonce:   uint32(nonce),
		Vault:   vault,
		Deposit: deposit,
	}, nil
}

// ValidateTake returns the offer that the message settles.
func (v Validator) ValidateTake(ctx swap.Context, db swap.ReadOnlyKVStore, msg *TakeOfferMsg) (*Offer, error) {
	if !v.auth.HasAddress(ctx, msg.Authority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "taker signature required")
	}
	offer, err := v.loadOffer(db, msg.Accounts)
	if err != nil {
		return nil, err
	}
	if !offer.Maker.Equals(msg.Maker) {
		return nil, errors.Wrapf(ErrInvalidDerivedAddress, "offer maker is %s, got %s", offer.Maker, msg.Maker)
	}
	if msg.Authority.Equals(offer.Maker) {
		return nil, errors.Wrap(errors.ErrInvalidInput, "maker cannot take own offer, cancel it instead")
	}
	if err := v.checkHolding(msg.MakerHoldingB, offer.Maker, offer.MintB); err != nil {
		return nil, err
	}
	if err := v.checkHolding(msg.HoldingA, msg.Authority, offer.MintA); err != nil {
		return nil, err
	}
	if err := v.checkHolding(msg.HoldingB, msg.Authority, offer.MintB); err != nil {
		return nil, err
	}

	balance, err := v.balance(db, msg.HoldingB)
	if err != nil {
		return nil, err
	}
	if balance < offer.AmountB {
		return nil, errors.Wrapf(ErrInsufficientTakerBalance, "taker account %s holds %d, need %d", msg.HoldingB, balance, offer.AmountB)
	}
	return offer, nil
}

// ValidateCancel returns the offer that the message closes.
func (v Validator) ValidateCancel(ctx swap.Context, db swap.ReadOnlyKVStore, msg *CancelOfferMsg) (*Offer, error) {
	offer, err := v.loadOffer(db, msg.Accounts)
	if err != nil {
		return nil, err
	}
	if !offer.Maker.Equals(msg.Authority) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not the maker", msg.Authority)
	}
	if !v.auth.HasAddress(ctx, offer.Maker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "maker signature required")
	}
	if err := v.checkHolding(msg.HoldingA, offer.Maker, offer.MintA); err != nil {
		return nil, err
	}
	if err := v.checkHolding(msg.HoldingB, offer.Maker, offer.MintB); err != nil {
		return nil, err
	}
	return offer, nil
}

// loadOffer returns the offer referenced by the accounts, ensuring that all
// addresses match the stored record.
func (v Validator) loadOffer(db swap.ReadOnlyKVStore, accts Accounts) (*Offer, error) {
	offer, err := v.bucket.Get(db, accts.Offer)
	if err != nil {
		return nil, err
	}
	addr, err := offer.Address()
	if err != nil {
		return nil, errors.Wrap(ErrInvalidDerivedAddress, err.Error())
	}
	if !addr.Equals(accts.Offer) {
		return nil, errors.Wrapf(ErrInvalidDerivedAddress, "offer %d of %s is %s, got %s", offer.ID, offer.Maker, addr, accts.Offer)
	}
	if !offer.MintA.Equals(accts.MintA) || !offer.MintB.Equals(accts.MintB) {
		return nil, errors.Wrap(ErrAccountType, "mints do not match the offer")
	}
	if _, err := v.checkVault(accts.Vault, addr, offer.MintA); err != nil {
		return nil, err
	}
	if !offer.Vault.Equals(accts.Vault) {
		return nil, errors.Wrapf(ErrInvalidDerivedAddress, "vault %s", accts.Vault)
	}
	return offer, nil
}

func (v Validator) checkMints(db swap.ReadOnlyKVStore, mints ...swap.Address) error {
	for _, m := range mints {
		if _, err := v.ledger.Mint(db, m); err != nil {
			if errors.ErrNotFound.Is(err) {
				return errors.Wrapf(ErrAccountType, "%s is not a mint", m)
			}
			return err
		}
	}
	return nil
}

// checkVault returns the vault address of the offer if it matches the
// presented one.
func (v Validator) checkVault(got, offer, mintA swap.Address) (swap.Address, error) {
	want, err := VaultAddress(offer, mintA)
	if err != nil {
		return nil, err
	}
	if !want.Equals(got) {
		return nil, errors.Wrapf(ErrInvalidDerivedAddress, "vault is %s, got %s", want, got)
	}
	return want, nil
}

// checkHolding ensures that the presented address is the holding account of
// the owner for the mint.
func (v Validator) checkHolding(got, owner, mint swap.Address) error {
	want, err := token.AssociatedAddress(owner, mint)
	if err != nil {
		return err
	}
	if !want.Equals(got) {
		return errors.Wrapf(ErrAccountType, "%s is not the %s account of %s", got, mint, owner)
	}
	return nil
}

// balance returns the amount held by an account. A missing account holds
// nothing.
func (v Validator) balance(db swap.ReadOnlyKVStore, addr swap.Address) (uint64, error) {
	amount, err := v.ledger.Balance(db, addr)
	if errors.ErrNotFound.Is(err) {
		return 0, nil
	}
	return amount, err
}
