package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/codec"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/x/offer"
	"github.com/iov-one/swap/x/sigs"
)

// Tx is a signed instruction, the unit of submission of swapd.
type Tx struct {
	Signatures  []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures"`
	Instruction *offer.Instruction   `protobuf:"bytes,2,opt,name=instruction"`
}

// make sure tx fulfills all interfaces
var _ swap.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (swap.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewTx wraps the instruction of the message into an unsigned transaction.
func NewTx(msg offer.Msg) *Tx {
	return &Tx{Instruction: msg.Instruction()}
}

// GetMsg decodes the instruction carried by the transaction.
func (tx *Tx) GetMsg() (swap.Msg, error) {
	if tx.Instruction == nil {
		return nil, errors.Wrap(errors.ErrInvalidMsg, "missing instruction")
	}
	return offer.DecodeInstruction(tx.Instruction)
}

// GetSignatures returns the signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	signatures := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = signatures
	return bz, err
}

type txMsg Tx

func (m *txMsg) Reset()         { *m = txMsg{} }
func (m *txMsg) String() string { return proto.CompactTextString(m) }
func (*txMsg) ProtoMessage()    {}

func (tx *Tx) Marshal() ([]byte, error) {
	return codec.Marshal((*txMsg)(tx))
}

func (tx *Tx) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*txMsg)(tx))
}
