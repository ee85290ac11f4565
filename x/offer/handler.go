package offer

import (
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/orm"
	"github.com/iov-one/swap/x"
	"github.com/iov-one/swap/x/token"
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r swap.Registry, auth x.Authenticator, ledger token.Controller) {
	v := NewValidator(auth, ledger)
	bucket := NewBucket()
	r.Handle(pathMakeOfferMsg, MakeOfferHandler{auth: auth, v: v, bucket: bucket, ledger: ledger})
	r.Handle(pathTakeOfferMsg, TakeOfferHandler{auth: auth, v: v, bucket: bucket, ledger: ledger})
	r.Handle(pathCancelOfferMsg, CancelOfferHandler{v: v, bucket: bucket, ledger: ledger})
}

// RegisterQuery will register the offer bucket as "/offers".
func RegisterQuery(qr swap.QueryRouter) {
	orm.NewQueryHandler(NewBucket()).Register(qr)
}

// MakeOfferHandler creates an offer and moves amount A into its vault.
type MakeOfferHandler struct {
	auth   x.Authenticator
	v      Validator
	bucket Bucket
	ledger token.Controller
}

var _ swap.Handler = MakeOfferHandler{}

func (h MakeOfferHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &swap.CheckResult{}, nil
}

// Deliver returns the offer address as the result data.
func (h MakeOfferHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	msg, offer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	maker := offer.Maker

	if _, err := h.ledger.CreateAccount(db, maker, offer.Vault, offer.MintA, msg.Offer); err != nil {
		return nil, errors.Wrap(err, "create vault")
	}
	caller := token.SignerAuthority{Auth: h.auth}
	if err := h.ledger.Transfer(ctx, db, caller, msg.HoldingA, offer.Vault, offer.AmountA); err != nil {
		return nil, errors.Wrap(err, "deposit")
	}
	if err := h.ledger.Debit(db, maker, offer.Deposit); err != nil {
		return nil, errors.Wrap(err, "offer deposit")
	}
	if err := h.bucket.Put(db, msg.Offer, offer); err != nil {
		return nil, err
	}

	swap.GetLogger(ctx).Debug("offer created", "offer", msg.Offer.String(), "maker", maker.String())
	return &swap.DeliverResult{Data: msg.Offer}, nil
}

func (h MakeOfferHandler) validate(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*MakeOfferMsg, *Offer, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, nil, err
	}
	m, ok := msg.(*MakeOfferMsg)
	if !ok {
		return nil, nil, errors.WithType(errors.ErrInvalidMsg, msg)
	}
	offer, err := h.v.ValidateMake(ctx, db, m)
	if err != nil {
		return nil, nil, err
	}
	return m, offer, nil
}

// TakeOfferHandler settles an offer. The taker pays amount B to the maker
// and receives the vault content.
type TakeOfferHandler struct {
	auth   x.Authenticator
	v      Validator
	bucket Bucket
	ledger token.Controller
}

var _ swap.Handler = TakeOfferHandler{}

func (h TakeOfferHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &swap.CheckResult{}, nil
}

func (h TakeOfferHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	msg, offer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	taker := msg.Authority

	// The taker pays for any holding account the settlement needs.
	if _, err := h.ledger.EnsureAssociatedAccount(db, taker, taker, offer.MintA); err != nil {
		return nil, errors.Wrap(err, "taker account a")
	}
	if _, err := h.ledger.EnsureAssociatedAccount(db, taker, offer.Maker, offer.MintB); err != nil {
		return nil, errors.Wrap(err, "maker account b")
	}

	caller := token.SignerAuthority{Auth: h.auth}
	if err := h.ledger.Transfer(ctx, db, caller, msg.HoldingB, msg.MakerHoldingB, offer.AmountB); err != nil {
		return nil, errors.Wrap(err, "payment")
	}
	vault := vaultAuthority(offer)
	if err := h.ledger.Transfer(ctx, db, vault, offer.Vault, msg.HoldingA, offer.AmountA); err != nil {
		return nil, errors.Wrap(err, "payout")
	}
	if err := closeOffer(ctx, db, h.ledger, h.bucket, msg.Offer, offer); err != nil {
		return nil, err
	}

	swap.GetLogger(ctx).Debug("offer taken", "offer", msg.Offer.String(), "taker", taker.String())
	return &swap.DeliverResult{}, nil
}

func (h TakeOfferHandler) validate(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*TakeOfferMsg, *Offer, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, nil, err
	}
	m, ok := msg.(*TakeOfferMsg)
	if !ok {
		return nil, nil, errors.WithType(errors.ErrInvalidMsg, msg)
	}
	offer, err := h.v.ValidateTake(ctx, db, m)
	if err != nil {
		return nil, nil, err
	}
	return m, offer, nil
}

// CancelOfferHandler closes an offer, returning the vault content to the
// maker.
type CancelOfferHandler struct {
	v      Validator
	bucket Bucket
	ledger token.Controller
}

var _ swap.Handler = CancelOfferHandler{}

func (h CancelOfferHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &swap.CheckResult{}, nil
}

func (h CancelOfferHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	msg, offer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// The holding account may have been closed since the offer was made.
	if _, err := h.ledger.EnsureAssociatedAccount(db, offer.Maker, offer.Maker, offer.MintA); err != nil {
		return nil, errors.Wrap(err, "maker account a")
	}
	amount, err := h.ledger.Balance(db, offer.Vault)
	if err != nil {
		return nil, errors.Wrap(err, "vault")
	}
	if amount > 0 {
		if err := h.ledger.Transfer(ctx, db, vaultAuthority(offer), offer.Vault, msg.HoldingA, amount); err != nil {
			return nil, errors.Wrap(err, "refund")
		}
	}
	if err := closeOffer(ctx, db, h.ledger, h.bucket, msg.Offer, offer); err != nil {
		return nil, err
	}

	swap.GetLogger(ctx).Debug("offer cancelled", "offer", msg.Offer.String())
	return &swap.DeliverResult{}, nil
}

func (h CancelOfferHandler) validate(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*CancelOfferMsg, *Offer, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, nil, err
	}
	m, ok := msg.(*CancelOfferMsg)
	if !ok {
		return nil, nil, errors.WithType(errors.ErrInvalidMsg, msg)
	}
	offer, err := h.v.ValidateCancel(ctx, db, m)
	if err != nil {
		return nil, nil, err
	}
	return m, offer, nil
}

func loadMsg(tx swap.Tx) (swap.Msg, error) {
	msg, err := swap.LoadMsg(tx)
	if err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return msg, nil
}

// vaultAuthority proves ownership of the vault by presenting the seeds the
// offer address was derived from.
func vaultAuthority(offer *Offer) token.Authority {
	return token.SeedAuthority{Program: ProgramID, Seeds: offer.authoritySeeds()}
}

// closeOffer destroys the vault and the offer record, refunding both
// deposits to the maker.
func closeOffer(ctx swap.Context, db swap.KVStore, ledger token.Controller, bucket Bucket, addr swap.Address, offer *Offer) error {
	if err := ledger.CloseAccount(ctx, db, vaultAuthority(offer), offer.Vault, offer.Maker); err != nil {
		return errors.Wrap(err, "close vault")
	}
	if err := bucket.Delete(db, addr); err != nil {
		return err
	}
	return ledger.Credit(db, offer.Maker, offer.Deposit)
}
