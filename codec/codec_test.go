package codec

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type holding struct {
	Owner  []byte `protobuf:"bytes,1,opt,name=owner,proto3"`
	Amount uint64 `protobuf:"varint,2,opt,name=amount,proto3"`
}

func (h *holding) Reset()         { *h = holding{} }
func (h *holding) String() string { return proto.CompactTextString(h) }
func (*holding) ProtoMessage()    {}

type ledger struct {
	Name     string     `protobuf:"bytes,1,opt,name=name,proto3"`
	Holdings []*holding `protobuf:"bytes,2,rep,name=holdings"`
	Tags     [][]byte   `protobuf:"bytes,3,rep,name=tags"`
}

func (l *ledger) Reset()         { *l = ledger{} }
func (l *ledger) String() string { return proto.CompactTextString(l) }
func (*ledger) ProtoMessage()    {}

func TestMarshalWireFormat(t *testing.T) {
	raw, err := Marshal(&holding{Amount: 150})
	require.NoError(t, err)
	// 150 as a varint field 2, the zero owner is omitted
	assert.Equal(t, []byte{0x10, 0x96, 0x01}, raw)
}

func TestMarshalUnmarshal(t *testing.T) {
	l := &ledger{
		Name: "USDC",
		Holdings: []*holding{
			{Owner: []byte("maker"), Amount: 10},
			{Owner: []byte("taker")},
		},
		Tags: [][]byte{[]byte("a"), {}, []byte("c")},
	}
	raw, err := Marshal(l)
	require.NoError(t, err)

	got := &ledger{Name: "stale"}
	require.NoError(t, Unmarshal(raw, got))
	assert.Equal(t, "USDC", got.Name)
	require.Len(t, got.Holdings, 2)
	assert.Equal(t, []byte("maker"), got.Holdings[0].Owner)
	assert.Equal(t, uint64(10), got.Holdings[0].Amount)
	assert.Equal(t, uint64(0), got.Holdings[1].Amount)
	// empty entries of a repeated field keep their position
	require.Len(t, got.Tags, 3)
	assert.Empty(t, got.Tags[1])
	assert.Equal(t, []byte("c"), got.Tags[2])
}

func TestUnmarshalErrors(t *testing.T) {
	cases := map[string][]byte{
		"truncated varint": {0x10, 0x96},
		"truncated bytes":  {0x0a, 0x05, 'a'},
	}
	for testName, raw := range cases {
		t.Run(testName, func(t *testing.T) {
			err := Unmarshal(raw, &holding{})
			assert.True(t, ErrEncoding.Is(err), "got %v", err)
		})
	}
}
