package swaptest

import (
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/iov-one/swap"
	"github.com/iov-one/swap/crypto"
	"github.com/stellar/go/exp/crypto/derivation"
)

// NewKey returns a random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewAddress returns the address of a random signer.
func NewAddress() swap.Address {
	return NewKey().Address()
}

// DeriveKey returns the private key at m/44'/501'/<index>' of a wallet seeded
// with the hash of name. The same name and index always produce the same
// key, which keeps test vectors stable.
func DeriveKey(t testing.TB, name string, index uint32) *crypto.PrivateKey {
	t.Helper()
	seed := sha256.Sum256([]byte(name))
	path := fmt.Sprintf("m/44'/501'/%d'", index)
	k, err := derivation.DeriveForPath(path, seed[:])
	if err != nil {
		t.Fatalf("cannot derive key %q: %s", path, err)
	}
	return crypto.PrivKeyEd25519FromSeed(k.Key)
}

// ParseAddress takes an address in a human readable format and returns its
// binary representation.
func ParseAddress(t testing.TB, encodedAddress string) swap.Address {
	t.Helper()
	addr, err := swap.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
