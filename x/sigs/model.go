package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/codec"
	"github.com/iov-one/swap/crypto"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/orm"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

// maxSequenceValue is the greatest sequence clients can represent
// (Number.MAX_SAFE_INTEGER).
const maxSequenceValue = (1 << 53) - 1

// UserData keeps the replay protection state of a single signer.
type UserData struct {
	PubKey   *crypto.PublicKey `protobuf:"bytes,1,opt,name=pubkey,proto3"`
	Sequence int64             `protobuf:"varint,2,opt,name=sequence,proto3"`
}

var _ orm.Model = (*UserData)(nil)

// Validate ensures the sequence is in range and belongs to a key.
func (u *UserData) Validate() error {
	if u.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if u.PubKey == nil {
		if u.Sequence > 0 {
			return errors.Wrap(ErrInvalidSequence, "needs public key")
		}
		return nil
	}
	return u.PubKey.Validate()
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", u.Sequence, expected)
	}
	next := u.Sequence + 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

type userDataMsg UserData

func (m *userDataMsg) Reset()         { *m = userDataMsg{} }
func (m *userDataMsg) String() string { return proto.CompactTextString(m) }
func (*userDataMsg) ProtoMessage()    {}

// Marshal serializes the user using the protobuf wire format.
func (u *UserData) Marshal() ([]byte, error) {
	return codec.Marshal((*userDataMsg)(u))
}

// Unmarshal loads the user from its protobuf wire representation.
func (u *UserData) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*userDataMsg)(u))
}

// Bucket stores UserData under the signer address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket creates the proper bucket for this extension
func NewBucket() Bucket {
	return Bucket{ModelBucket: orm.NewModelBucket(BucketName)}
}

// GetOrCreate loads the user of given key, or returns a fresh one with a
// zero sequence if the key signs for the first time.
func (b Bucket) GetOrCreate(db swap.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	var user UserData
	err := b.One(db, pubkey.Address(), &user)
	switch {
	case err == nil:
		return &user, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{PubKey: pubkey}, nil
	default:
		return nil, err
	}
}
