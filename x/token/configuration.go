package token

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swap/codec"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/gconf"
)

const confPkg = "token"

// Configuration of the ledger.
type Configuration struct {
	// AccountDeposit is charged to the payer of every created account and
	// returned to the beneficiary when that account is closed.
	AccountDeposit uint64 `json:"account_deposit" protobuf:"varint,1,opt,name=account_deposit,proto3"`
}

// Validate accepts any deposit, including none.
func (c *Configuration) Validate() error {
	return nil
}

type configurationMsg Configuration

func (m *configurationMsg) Reset()         { *m = configurationMsg{} }
func (m *configurationMsg) String() string { return proto.CompactTextString(m) }
func (*configurationMsg) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) {
	return codec.Marshal((*configurationMsg)(c))
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*configurationMsg)(c))
}

func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
