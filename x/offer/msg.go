package offer

import (
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

const (
	pathMakeOfferMsg   = "offer/make"
	pathTakeOfferMsg   = "offer/take"
	pathCancelOfferMsg = "offer/cancel"
)

// Msg is implemented by every message of this package.
type Msg interface {
	swap.Msg
	Instruction() *Instruction
}

var (
	_ Msg = (*MakeOfferMsg)(nil)
	_ Msg = (*TakeOfferMsg)(nil)
	_ Msg = (*CancelOfferMsg)(nil)
)

// Accounts lists the addresses shared by all instructions, in their wire
// order.
type Accounts struct {
	// Authority is the party authorizing the instruction.
	Authority swap.Address
	// HoldingA is the token account of the authority for mint A.
	HoldingA swap.Address
	// HoldingB is the token account of the authority for mint B.
	HoldingB swap.Address
	Vault    swap.Address
	Offer    swap.Address
	MintA    swap.Address
	MintB    swap.Address
}

// Validate ensures all addresses are well formed.
func (a Accounts) Validate() error {
	names := []string{"authority", "holding a", "holding b", "vault", "offer", "mint a", "mint b"}
	for i, addr := range a.list() {
		if err := addr.Validate(); err != nil {
			return errors.Wrapf(err, "account %s", names[i])
		}
	}
	if a.MintA.Equals(a.MintB) {
		return errors.Wrap(errors.ErrInvalidInput, "both mints are the same")
	}
	return nil
}

// MakeOfferMsg creates an offer of AmountA of mint A for AmountB of mint B.
type MakeOfferMsg struct {
	Accounts
	ID      uint64
	AmountA uint64
	AmountB uint64
}

func (MakeOfferMsg) Path() string {
	return pathMakeOfferMsg
}

func (m *MakeOfferMsg) Validate() error {
	if err := m.Accounts.Validate(); err != nil {
		return err
	}
	if m.AmountA == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "amount a")
	}
	if m.AmountB == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "amount b")
	}
	return nil
}

// TakeOfferMsg settles an offer.
type TakeOfferMsg struct {
	Accounts
	Maker swap.Address
	// MakerHoldingB receives the payment.
	MakerHoldingB swap.Address
}

func (TakeOfferMsg) Path() string {
	return pathTakeOfferMsg
}

func (m *TakeOfferMsg) Validate() error {
	if err := m.Accounts.Validate(); err != nil {
		return err
	}
	if err := m.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if err := m.MakerHoldingB.Validate(); err != nil {
		return errors.Wrap(err, "maker holding b")
	}
	return nil
}

// CancelOfferMsg closes an offer, returning the vault content to the maker.
type CancelOfferMsg struct {
	Accounts
}

func (CancelOfferMsg) Path() string {
	return pathCancelOfferMsg
}

func (m *CancelOfferMsg) Validate() error {
	return m.Accounts.Validate()
}
