package offer

import (
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

// Errors returned by the escrow. Codes are stable and can be matched by
// clients.
var (
	ErrInvalidDerivedAddress    = errors.Register(1200, "invalid derived address")
	ErrOfferNotFound            = errors.Register(1201, "offer not found")
	ErrAccountType              = errors.Register(1202, "account type mismatch")
	ErrInsufficientMakerBalance = errors.Register(1203, "insufficient maker balance")
	ErrInsufficientTakerBalance = errors.Register(1204, "insufficient taker balance")
	ErrUnknownInstruction       = errors.Register(1205, "unknown instruction")
	ErrOfferExists              = errors.Register(1206, "offer exists")
)

// ErrorClass groups errors by what the caller must fix.
type ErrorClass int

const (
	// ClassNone is returned for nil.
	ClassNone ErrorClass = iota
	// ClassStructural covers forged or stale references and malformed
	// instructions.
	ClassStructural
	// ClassBalance covers a party lacking the funds to settle.
	ClassBalance
	// ClassAuthorization covers missing signatures and a caller that is
	// not the maker.
	ClassAuthorization
	// ClassDownstream covers everything reported by the ledger or the
	// storage.
	ClassDownstream
)

func (c ErrorClass) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassStructural:
		return "structural"
	case ClassBalance:
		return "balance"
	case ClassAuthorization:
		return "authorization"
	case ClassDownstream:
		return "downstream"
	}
	return "unknown"
}

var structuralErrors = []*errors.Error{
	ErrInvalidDerivedAddress,
	ErrOfferNotFound,
	ErrAccountType,
	ErrUnknownInstruction,
	ErrOfferExists,
	errors.ErrInvalidMsg,
	errors.ErrInvalidInput,
	errors.ErrInvalidAmount,
	swap.ErrSeeds,
	swap.ErrOnCurve,
}

// Classify returns the class of given error.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassNone
	}
	for _, e := range structuralErrors {
		if e.Is(err) {
			return ClassStructural
		}
	}
	switch {
	case ErrInsufficientMakerBalance.Is(err), ErrInsufficientTakerBalance.Is(err):
		return ClassBalance
	case errors.ErrUnauthorized.Is(err):
		return ClassAuthorization
	}
	return ClassDownstream
}
