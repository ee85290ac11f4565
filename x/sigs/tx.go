package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swap/codec"
	"github.com/iov-one/swap/crypto"
	"github.com/iov-one/swap/errors"
)

// SignedTx represents a transaction that contains signatures,
// which can be verified by the Decorator
type SignedTx interface {
	// GetSignBytes returns the canonical byte representation of the
	// transaction without its signatures.
	GetSignBytes() ([]byte, error)

	// GetSignatures returns the signature of signers who signed the tx.
	GetSignatures() []*StdSignature
}

// StdSignature is a single signature of a transaction.
type StdSignature struct {
	PubKey    *crypto.PublicKey `protobuf:"bytes,1,opt,name=pubkey,proto3"`
	Signature []byte            `protobuf:"bytes,2,opt,name=signature,proto3"`
	Sequence  int64             `protobuf:"varint,3,opt,name=sequence,proto3"`
}

// Validate ensures the StdSignature meets basic standards
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if s.PubKey == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if err := s.PubKey.Validate(); err != nil {
		return errors.Wrap(errors.ErrUnauthorized, err.Error())
	}
	if len(s.Signature) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}

type stdSignatureMsg StdSignature

func (m *stdSignatureMsg) Reset()         { *m = stdSignatureMsg{} }
func (m *stdSignatureMsg) String() string { return proto.CompactTextString(m) }
func (*stdSignatureMsg) ProtoMessage()    {}

// Marshal serializes the signature using the protobuf wire format.
func (s *StdSignature) Marshal() ([]byte, error) {
	return codec.Marshal((*stdSignatureMsg)(s))
}

// Unmarshal loads the signature from its protobuf wire representation.
func (s *StdSignature) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*stdSignatureMsg)(s))
}
