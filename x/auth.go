package x

import (
	"github.com/iov-one/swap"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding x/sigs for all extensions.
type Authenticator interface {
	// GetSigners returns the addresses of all parties that authorized
	// the current transaction.
	GetSigners(swap.Context) []swap.Address
	// HasAddress checks if the address authorized the current transaction.
	HasAddress(swap.Context, swap.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetSigners combines the signers of all Authenticators, without
// duplicates and in the order of their first appearance.
func (m MultiAuth) GetSigners(ctx swap.Context) []swap.Address {
	var res []swap.Address
	for _, impl := range m.impls {
		for _, a := range impl.GetSigners(ctx) {
			if !containsAddress(res, a) {
				res = append(res, a)
			}
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx swap.Context, addr swap.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first signer if any, otherwise nil
func MainSigner(ctx swap.Context, auth Authenticator) swap.Address {
	signers := auth.GetSigners(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx swap.Context, auth Authenticator, required []swap.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

func containsAddress(list []swap.Address, a swap.Address) bool {
	for _, b := range list {
		if b.Equals(a) {
			return true
		}
	}
	return false
}
