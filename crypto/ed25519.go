package crypto

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/codec"
	"github.com/iov-one/swap/errors"
	"golang.org/x/crypto/ed25519"
)

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() *PublicKey
}

// PublicKey is an ed25519 public key. Its raw bytes are the address of the
// signer.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3"`
}

var _ swap.Persistent = (*PublicKey)(nil)

// Verify verifies the signature was created with this message and public key
func (p *PublicKey) Verify(message, sig []byte) bool {
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig)
}

// Address returns the address controlled by this key.
func (p *PublicKey) Address() swap.Address {
	return append(swap.Address(nil), p.Ed25519...)
}

// Validate ensures the key has the right size.
func (p *PublicKey) Validate() error {
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrInvalidInput, "ed25519 public key of %d bytes", len(p.Ed25519))
	}
	return nil
}

type publicKeyMsg PublicKey

func (m *publicKeyMsg) Reset()         { *m = publicKeyMsg{} }
func (m *publicKeyMsg) String() string { return proto.CompactTextString(m) }
func (*publicKeyMsg) ProtoMessage()    {}

// Marshal serializes the key using the protobuf wire format.
func (p *PublicKey) Marshal() ([]byte, error) {
	return codec.Marshal((*publicKeyMsg)(p))
}

// Unmarshal loads the key from its protobuf wire representation.
func (p *PublicKey) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*publicKeyMsg)(p))
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3"`
}

var _ Signer = (*PrivateKey)(nil)

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) ([]byte, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInvalidInput, "invalid private key")
	}
	return ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message), nil
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// Address returns the address controlled by this key.
func (p *PrivateKey) Address() swap.Address {
	return p.PublicKey().Address()
}

type privateKeyMsg PrivateKey

func (m *privateKeyMsg) Reset()         { *m = privateKeyMsg{} }
func (m *privateKeyMsg) String() string { return proto.CompactTextString(m) }
func (*privateKeyMsg) ProtoMessage()    {}

// Marshal serializes the key using the protobuf wire format.
func (p *PrivateKey) Marshal() ([]byte, error) {
	return codec.Marshal((*privateKeyMsg)(p))
}

// Unmarshal loads the key from its protobuf wire representation.
func (p *PrivateKey) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*privateKeyMsg)(p))
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}
