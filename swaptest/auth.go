package swaptest

import (
	"context"
	"fmt"

	"github.com/iov-one/swap"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced addresses. You can use
// either Signer or Signers (or both) attributes.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer swap.Address

	// Signers represents an authentication of multiple signers.
	Signers []swap.Address
}

func (a *Auth) GetSigners(swap.Context) []swap.Address {
	if a.Signer != nil {
		return append([]swap.Address{a.Signer}, a.Signers...)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx swap.Context, addr swap.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve signers.
type CtxAuth struct {
	// Key used to set and retrieve signers from the context. For
	// convenience only string type keys are allowed.
	Key string
}

// SetSigners returns a context authenticating given addresses.
func (a *CtxAuth) SetSigners(ctx swap.Context, signers ...swap.Address) swap.Context {
	return context.WithValue(ctx, a.Key, signers)
}

func (a *CtxAuth) GetSigners(ctx swap.Context) []swap.Address {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	signers, ok := val.([]swap.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []swap.Address got %T", val))
	}
	return signers
}

func (a *CtxAuth) HasAddress(ctx swap.Context, addr swap.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
