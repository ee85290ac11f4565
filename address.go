package swap

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/swap/crypto/bech32"
	"github.com/iov-one/swap/errors"
	"github.com/mr-tron/base58"
)

// AddressLength is the length of all addresses. Signer addresses are raw
// ed25519 public keys, derived addresses are sha256 digests.
const AddressLength = 32

// Address identifies an account holder. It is either the public key of a
// signer or an address derived from a program identity and a list of seeds.
type Address []byte

// Equals checks if two addresses are the same
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Validate returns an error if the address is not the valid size
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInvalidInput, "invalid address length %d", len(a))
	}
	return nil
}

// String returns the base58 representation of the address.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return base58.Encode(a)
}

// Bech32 returns the bech32 representation of the address using given human
// readable part.
func (a Address) Bech32(hrp string) (string, error) {
	return bech32.Encode(hrp, a)
}

// MarshalJSON provides a base58 representation for JSON, to override the
// standard base64 []byte encoding.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts any format understood by ParseAddress.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, "address must be a string")
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// ParseAddress decodes a string representation of an address. Supported
// formats are prefixed with the encoding name:
//
//	hex:<hex data>
//	base58:<base58 data>
//	bech32:<bech32 data>
//
// A value without a prefix is decoded as base58.
func ParseAddress(s string) (Address, error) {
	chunks := strings.SplitN(s, ":", 2)
	if len(chunks) == 1 {
		chunks = []string{"base58", s}
	}

	var (
		raw []byte
		err error
	)
	switch chunks[0] {
	case "hex":
		raw, err = hex.DecodeString(chunks[1])
	case "base58":
		raw, err = base58.Decode(chunks[1])
	case "bech32":
		_, raw, err = bech32.Decode(chunks[1])
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown address format %q", chunks[0])
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "cannot decode %s address: %s", chunks[0], err)
	}
	addr := Address(raw)
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// MustParseAddress is like ParseAddress, but panics instead of returning an
// error. Only use with constant input.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}
