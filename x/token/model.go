package token

import (
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/codec"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/orm"
)

const (
	// MaxDecimals is the greatest precision a mint can declare.
	MaxDecimals = 18
)

var isSymbol = regexp.MustCompile(`^[A-Z0-9]{3,8}$`).MatchString

// ProgramID namespaces all addresses derived by the ledger.
var ProgramID = swap.NewProgramID("token")

// AssociatedAddress returns the canonical holding account address of an
// owner for a mint.
func AssociatedAddress(owner, mint swap.Address) (swap.Address, error) {
	addr, _, err := swap.FindDerivedAddress(ProgramID, owner, mint)
	if err != nil {
		return nil, errors.Wrap(err, "associated address")
	}
	return addr, nil
}

// Mint describes an asset type.
type Mint struct {
	Address  swap.Address `json:"address" protobuf:"bytes,1,opt,name=address,proto3"`
	Decimals uint32       `json:"decimals" protobuf:"varint,2,opt,name=decimals,proto3"`
	Symbol   string       `json:"symbol" protobuf:"bytes,3,opt,name=symbol,proto3"`
}

var _ orm.Model = (*Mint)(nil)

// Validate ensures the mint is well formed.
func (m *Mint) Validate() error {
	if err := m.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if m.Decimals > MaxDecimals {
		return errors.Wrapf(errors.ErrInvalidInput, "decimals %d", m.Decimals)
	}
	if !isSymbol(m.Symbol) {
		return errors.Wrapf(errors.ErrInvalidInput, "symbol %q", m.Symbol)
	}
	return nil
}

type mintMsg Mint

func (m *mintMsg) Reset()         { *m = mintMsg{} }
func (m *mintMsg) String() string { return proto.CompactTextString(m) }
func (*mintMsg) ProtoMessage()    {}

func (m *Mint) Marshal() ([]byte, error) {
	return codec.Marshal((*mintMsg)(m))
}

func (m *Mint) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*mintMsg)(m))
}

// Account holds tokens of a single mint. Only the owner can move tokens out
// of it or close it.
type Account struct {
	Address swap.Address `protobuf:"bytes,1,opt,name=address,proto3"`
	Mint    swap.Address `protobuf:"bytes,2,opt,name=mint,proto3"`
	Owner   swap.Address `protobuf:"bytes,3,opt,name=owner,proto3"`
	Amount  uint64       `protobuf:"varint,4,opt,name=amount,proto3"`
	// Deposit is the amount paid on creation, refunded when the account
	// is closed.
	Deposit uint64 `protobuf:"varint,5,opt,name=deposit,proto3"`
}

var _ orm.Model = (*Account)(nil)

// Validate ensures all addresses are set.
func (a *Account) Validate() error {
	if err := a.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if err := a.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

type accountMsg Account

func (m *accountMsg) Reset()         { *m = accountMsg{} }
func (m *accountMsg) String() string { return proto.CompactTextString(m) }
func (*accountMsg) ProtoMessage()    {}

func (a *Account) Marshal() ([]byte, error) {
	return codec.Marshal((*accountMsg)(a))
}

func (a *Account) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*accountMsg)(a))
}

// Wallet keeps the native balance used to pay account deposits.
type Wallet struct {
	Address swap.Address `protobuf:"bytes,1,opt,name=address,proto3"`
	Balance uint64       `protobuf:"varint,2,opt,name=balance,proto3"`
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Validate() error {
	return errors.Wrap(w.Address.Validate(), "address")
}

type walletMsg Wallet

func (m *walletMsg) Reset()         { *m = walletMsg{} }
func (m *walletMsg) String() string { return proto.CompactTextString(m) }
func (*walletMsg) ProtoMessage()    {}

func (w *Wallet) Marshal() ([]byte, error) {
	return codec.Marshal((*walletMsg)(w))
}

func (w *Wallet) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*walletMsg)(w))
}

const (
	mintBucketName    = "mints"
	accountBucketName = "accounts"
	walletBucketName  = "wallets"
)

// RegisterQuery exposes mints, accounts and wallets under
// "/mints", "/accounts" and "/wallets".
func RegisterQuery(qr swap.QueryRouter) {
	for _, name := range []string{mintBucketName, accountBucketName, walletBucketName} {
		orm.NewQueryHandler(orm.NewModelBucket(name)).Register(qr)
	}
}
