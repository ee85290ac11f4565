package offer

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/codec"
	"github.com/iov-one/swap/errors"
)

// DiscriminatorLength is the length of the operation tag that starts the
// data of every instruction.
const DiscriminatorLength = 8

// Discriminator is the operation tag of an instruction.
type Discriminator [DiscriminatorLength]byte

// NewDiscriminator returns the tag of the operation with given name.
func NewDiscriminator(name string) Discriminator {
	var d Discriminator
	h := sha256.Sum256([]byte("global:" + name))
	copy(d[:], h[:])
	return d
}

var (
	makeOfferTag   = NewDiscriminator("make_offer")
	takeOfferTag   = NewDiscriminator("take_offer")
	cancelOfferTag = NewDiscriminator("cancel_offer")
)

const (
	makeOfferDataLength = DiscriminatorLength + 3*8

	// Number of accounts each instruction refers to.
	baseAccounts = 7
	takeAccounts = baseAccounts + 2
)

// Instruction is the binary form of a message, as submitted by clients.
type Instruction struct {
	// Data holds the discriminator followed by the little endian
	// arguments.
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3"`
	// Accounts is the ordered list of addresses the instruction refers
	// to.
	Accounts []swap.Address `protobuf:"bytes,2,rep,name=accounts"`
}

type instructionMsg Instruction

func (m *instructionMsg) Reset()         { *m = instructionMsg{} }
func (m *instructionMsg) String() string { return proto.CompactTextString(m) }
func (*instructionMsg) ProtoMessage()    {}

func (ins *Instruction) Marshal() ([]byte, error) {
	return codec.Marshal((*instructionMsg)(ins))
}

func (ins *Instruction) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*instructionMsg)(ins))
}

// DecodeInstruction returns the message encoded by the instruction. The
// result is one of *MakeOfferMsg, *TakeOfferMsg or *CancelOfferMsg.
func DecodeInstruction(ins *Instruction) (swap.Msg, error) {
	if len(ins.Data) < DiscriminatorLength {
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "data of %d bytes has no discriminator", len(ins.Data))
	}
	var tag Discriminator
	copy(tag[:], ins.Data)
	args := ins.Data[DiscriminatorLength:]

	switch tag {
	case makeOfferTag:
		if len(ins.Data) != makeOfferDataLength {
			return nil, errors.Wrapf(errors.ErrInvalidMsg, "make offer data must be %d bytes, got %d", makeOfferDataLength, len(ins.Data))
		}
		accts, err := readAccounts(ins.Accounts, baseAccounts)
		if err != nil {
			return nil, err
		}
		return &MakeOfferMsg{
			Accounts: accts,
			ID:       binary.LittleEndian.Uint64(args[0:8]),
			AmountA:  binary.LittleEndian.Uint64(args[8:16]),
			AmountB:  binary.LittleEndian.Uint64(args[16:24]),
		}, nil
	case takeOfferTag:
		if len(args) != 0 {
			return nil, errors.Wrap(errors.ErrInvalidMsg, "take offer carries no arguments")
		}
		accts, err := readAccounts(ins.Accounts, takeAccounts)
		if err != nil {
			return nil, err
		}
		return &TakeOfferMsg{
			Accounts:      accts,
			Maker:         ins.Accounts[baseAccounts],
			MakerHoldingB: ins.Accounts[baseAccounts+1],
		}, nil
	case cancelOfferTag:
		if len(args) != 0 {
			return nil, errors.Wrap(errors.ErrInvalidMsg, "cancel offer carries no arguments")
		}
		accts, err := readAccounts(ins.Accounts, baseAccounts)
		if err != nil {
			return nil, err
		}
		return &CancelOfferMsg{Accounts: accts}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownInstruction, "discriminator %x", tag[:])
	}
}

func readAccounts(list []swap.Address, want int) (Accounts, error) {
	if len(list) != want {
		return Accounts{}, errors.Wrapf(errors.ErrInvalidMsg, "want %d accounts, got %d", want, len(list))
	}
	return Accounts{
		Authority: list[0],
		HoldingA:  list[1],
		HoldingB:  list[2],
		Vault:     list[3],
		Offer:     list[4],
		MintA:     list[5],
		MintB:     list[6],
	}, nil
}

func (a Accounts) list() []swap.Address {
	return []swap.Address{a.Authority, a.HoldingA, a.HoldingB, a.Vault, a.Offer, a.MintA, a.MintB}
}

// Instruction encodes the message.
func (m *MakeOfferMsg) Instruction() *Instruction {
	data := make([]byte, makeOfferDataLength)
	copy(data, makeOfferTag[:])
	binary.LittleEndian.PutUint64(data[8:], m.ID)
	binary.LittleEndian.PutUint64(data[16:], m.AmountA)
	binary.LittleEndian.PutUint64(data[24:], m.AmountB)
	return &Instruction{Data: data, Accounts: m.Accounts.list()}
}

// Instruction encodes the message.
func (m *TakeOfferMsg) Instruction() *Instruction {
	return &Instruction{
		Data:     append([]byte(nil), takeOfferTag[:]...),
		Accounts: append(m.Accounts.list(), m.Maker, m.MakerHoldingB),
	}
}

// Instruction encodes the message.
func (m *CancelOfferMsg) Instruction() *Instruction {
	return &Instruction{
		Data:     append([]byte(nil), cancelOfferTag[:]...),
		Accounts: m.Accounts.list(),
	}
}
