package token

import "github.com/iov-one/swap/errors"

// Errors returned by the ledger. Codes are stable and can be matched by
// clients.
var (
	ErrInsufficientFunds   = errors.Register(1100, "insufficient funds")
	ErrMintMismatch        = errors.Register(1101, "mint mismatch")
	ErrOwnerMismatch       = errors.Register(1102, "owner mismatch")
	ErrAccountExists       = errors.Register(1103, "account exists")
	ErrNonEmptyAccount     = errors.Register(1104, "account not empty")
	ErrInsufficientDeposit = errors.Register(1105, "insufficient deposit")
)
