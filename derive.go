package swap

import (
	"crypto/sha256"
	"math"

	"github.com/iov-one/swap/errors"
	"github.com/jdgcs/ed25519/edwards25519"
)

const (
	// MaxSeeds is the maximum number of seeds accepted by a derivation,
	// including the nonce.
	MaxSeeds = 16

	// MaxSeedLength is the maximum length of a single seed.
	MaxSeedLength = 32

	derivedAddressMarker = "ProgramDerivedAddress"
)

var (
	// ErrOnCurve is returned when the derivation result is a valid ed25519
	// point. Such an address could have a private key and must not be used
	// as an authority.
	ErrOnCurve = errors.Register(20, "derived address on curve")

	// ErrSeeds is returned when the seed list exceeds the derivation
	// limits.
	ErrSeeds = errors.Register(21, "invalid seeds")
)

// CreateDerivedAddress computes the address owned by the program for the
// given seeds. The result is
//
//	sha256(seed_1 || ... || seed_n || program || "ProgramDerivedAddress")
//
// and is rejected with ErrOnCurve when it decodes as an ed25519 point, so
// that no private key can exist for it.
func CreateDerivedAddress(program Address, seeds ...[]byte) (Address, error) {
	if len(seeds) > MaxSeeds {
		return nil, errors.Wrapf(ErrSeeds, "%d seeds, max %d", len(seeds), MaxSeeds)
	}

	h := sha256.New()
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return nil, errors.Wrapf(ErrSeeds, "seed %d is %d bytes long", i, len(s))
		}
		_, _ = h.Write(s)
	}
	_, _ = h.Write(program)
	_, _ = h.Write([]byte(derivedAddressMarker))

	var pub [32]byte
	copy(pub[:], h.Sum(nil))

	var point edwards25519.ExtendedGroupElement
	if point.FromBytes(&pub) {
		return nil, ErrOnCurve
	}
	return pub[:], nil
}

// FindDerivedAddress searches for the first nonce, starting at 255 and going
// down, for which the seeds extended with that nonce derive an off-curve
// address. It returns the address and the nonce that must be stored to
// re-derive it later.
func FindDerivedAddress(program Address, seeds ...[]byte) (Address, uint8, error) {
	all := make([][]byte, len(seeds)+1)
	copy(all, seeds)

	for nonce := math.MaxUint8; nonce >= 0; nonce-- {
		all[len(seeds)] = []byte{uint8(nonce)}
		addr, err := CreateDerivedAddress(program, all...)
		switch {
		case err == nil:
			return addr, uint8(nonce), nil
		case !ErrOnCurve.Is(err):
			return nil, 0, err
		}
	}
	return nil, 0, errors.Wrap(ErrOnCurve, "no viable nonce")
}

// NewProgramID returns a stable identity for a named program. Program
// identities only namespace derivations and are never used to sign.
func NewProgramID(name string) Address {
	h := sha256.Sum256([]byte("program:" + name))
	return h[:]
}
