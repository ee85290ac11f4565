package offer

import (
	"encoding/binary"
	"math"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/codec"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/orm"
	"github.com/iov-one/swap/x/token"
)

// ProgramID is the owner of all offer and vault addresses.
var ProgramID = swap.NewProgramID("offer")

// seedTag prefixes the seeds of every offer address.
const seedTag = "offer"

// OfferSeeds returns the seeds the offer address of a maker and id is derived
// from, without the nonce.
func OfferSeeds(maker swap.Address, id uint64) [][]byte {
	le := make([]byte, 8)
	binary.LittleEndian.PutUint64(le, id)
	return [][]byte{[]byte(seedTag), maker, le}
}

// OfferAddress derives the address of the offer of given maker and id. The
// same input always produces the same address and nonce.
func OfferAddress(maker swap.Address, id uint64) (swap.Address, uint8, error) {
	return swap.FindDerivedAddress(ProgramID, OfferSeeds(maker, id)...)
}

// VaultAddress returns the address of the vault of the offer. The vault is
// the holding account of the offer address for mint A.
func VaultAddress(offer, mintA swap.Address) (swap.Address, error) {
	return token.AssociatedAddress(offer, mintA)
}

// Offer is a pending swap.
type Offer struct {
	ID      uint64       `protobuf:"varint,1,opt,name=id,proto3"`
	Maker   swap.Address `protobuf:"bytes,2,opt,name=maker,proto3"`
	MintA   swap.Address `protobuf:"bytes,3,opt,name=mint_a,proto3"`
	MintB   swap.Address `protobuf:"bytes,4,opt,name=mint_b,proto3"`
	AmountA uint64       `protobuf:"varint,5,opt,name=amount_a,proto3"`
	AmountB uint64       `protobuf:"varint,6,opt,name=amount_b,proto3"`
	// Nonce reproduces the offer address together with the maker and id.
	// It always fits a single byte.
	Nonce uint32       `protobuf:"varint,7,opt,name=nonce,proto3"`
	Vault swap.Address `protobuf:"bytes,8,opt,name=vault,proto3"`
	// Deposit is paid by the maker for storing the record.
	Deposit uint64 `protobuf:"varint,9,opt,name=deposit,proto3"`
}

var _ orm.Model = (*Offer)(nil)

// Validate ensures the offer describes a swap of two different assets.
func (o *Offer) Validate() error {
	if err := o.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if err := o.MintA.Validate(); err != nil {
		return errors.Wrap(err, "mint a")
	}
	if err := o.MintB.Validate(); err != nil {
		return errors.Wrap(err, "mint b")
	}
	if o.MintA.Equals(o.MintB) {
		return errors.Wrap(errors.ErrInvalidInput, "both mints are the same")
	}
	if err := o.Vault.Validate(); err != nil {
		return errors.Wrap(err, "vault")
	}
	if o.AmountA == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "amount a")
	}
	if o.AmountB == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "amount b")
	}
	if o.Nonce > math.MaxUint8 {
		return errors.Wrapf(errors.ErrInvalidInput, "nonce %d", o.Nonce)
	}
	return nil
}

// authoritySeeds returns the full list of seeds proving ownership of the
// offer address, nonce included.
func (o *Offer) authoritySeeds() [][]byte {
	return append(OfferSeeds(o.Maker, o.ID), []byte{uint8(o.Nonce)})
}

// Address re-derives the offer address using the stored nonce.
func (o *Offer) Address() (swap.Address, error) {
	return swap.CreateDerivedAddress(ProgramID, o.authoritySeeds()...)
}

type offerMsg Offer

func (m *offerMsg) Reset()         { *m = offerMsg{} }
func (m *offerMsg) String() string { return proto.CompactTextString(m) }
func (*offerMsg) ProtoMessage()    {}

func (o *Offer) Marshal() ([]byte, error) {
	return codec.Marshal((*offerMsg)(o))
}

func (o *Offer) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*offerMsg)(o))
}

// BucketName is where offers are stored, keyed by their address.
const BucketName = "offers"

// Bucket stores offers.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for offers.
func NewBucket() Bucket {
	return Bucket{ModelBucket: orm.NewModelBucket(BucketName)}
}

// Get returns the offer stored under given address, or ErrOfferNotFound.
func (b Bucket) Get(db swap.ReadOnlyKVStore, addr swap.Address) (*Offer, error) {
	var o Offer
	switch err := b.One(db, addr, &o); {
	case err == nil:
		return &o, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrOfferNotFound, "offer %s", addr)
	default:
		return nil, err
	}
}
