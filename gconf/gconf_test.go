package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/codec"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest/assert"
)

type testConfig struct {
	Deposit uint64 `json:"deposit" protobuf:"varint,1,opt,name=deposit,proto3"`
	Symbol  string `json:"symbol" protobuf:"bytes,2,opt,name=symbol,proto3"`
}

type testConfigMsg testConfig

func (m *testConfigMsg) Reset()         { *m = testConfigMsg{} }
func (m *testConfigMsg) String() string { return proto.CompactTextString(m) }
func (*testConfigMsg) ProtoMessage()    {}

func (c *testConfig) Marshal() ([]byte, error) {
	return codec.Marshal((*testConfigMsg)(c))
}

func (c *testConfig) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*testConfigMsg)(c))
}

func (c *testConfig) Validate() error {
	if c.Symbol == "" {
		return errors.Wrap(errors.ErrEmpty, "symbol")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	cases := map[string]struct {
		Conf        *testConfig
		WantSaveErr *errors.Error
	}{
		"valid": {
			Conf: &testConfig{Deposit: 5, Symbol: "SOL"},
		},
		"zero values are kept": {
			Conf: &testConfig{Symbol: "SOL"},
		},
		"invalid configuration cannot be saved": {
			Conf:        &testConfig{Deposit: 5},
			WantSaveErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "test", tc.Conf); !tc.WantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %s", err)
			}
			if tc.WantSaveErr != nil {
				return
			}
			var got testConfig
			assert.Nil(t, Load(db, "test", &got))
			assert.Equal(t, *tc.Conf, got)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	var got testConfig
	assert.IsErr(t, errors.ErrNotFound, Load(store.MemStore(), "test", &got))
}

func TestInitConfig(t *testing.T) {
	genesis := `{"conf": {"test": {"deposit": 7, "symbol": "SOL"}}}`
	var opts swap.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	assert.Nil(t, InitConfig(db, opts, "test", &testConfig{}))

	var got testConfig
	assert.Nil(t, Load(db, "test", &got))
	assert.Equal(t, testConfig{Deposit: 7, Symbol: "SOL"}, got)

	assert.IsErr(t, errors.ErrNotFound, InitConfig(db, opts, "other", &testConfig{}))
}
