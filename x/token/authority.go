package token

import (
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/x"
)

// Authority proves the right to move tokens out of an account.
type Authority interface {
	ProvesAuthorityFor(ctx swap.Context, acct *Account) bool
}

// SignerAuthority grants access to accounts owned by any signer of the
// current transaction.
type SignerAuthority struct {
	Auth x.Authenticator
}

var _ Authority = SignerAuthority{}

func (a SignerAuthority) ProvesAuthorityFor(ctx swap.Context, acct *Account) bool {
	return a.Auth.HasAddress(ctx, acct.Owner)
}

// SeedAuthority grants access to the account owned by the address derived
// from Program and Seeds. Seeds must be given in the order used to derive the
// owner, including the nonce as the last one.
type SeedAuthority struct {
	Program swap.Address
	Seeds   [][]byte
}

var _ Authority = SeedAuthority{}

func (a SeedAuthority) ProvesAuthorityFor(_ swap.Context, acct *Account) bool {
	addr, err := swap.CreateDerivedAddress(a.Program, a.Seeds...)
	if err != nil {
		return false
	}
	return addr.Equals(acct.Owner)
}
