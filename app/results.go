package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/codec"
	"github.com/iov-one/swap/errors"
)

// ResultSet contains a list of keys or values returned by a query.
type ResultSet struct {
	// Empty results are kept so that keys and values stay aligned.
	Results [][]byte `protobuf:"bytes,1,rep,name=results"`
}

type resultSetMsg ResultSet

func (m *resultSetMsg) Reset()         { *m = resultSetMsg{} }
func (m *resultSetMsg) String() string { return proto.CompactTextString(m) }
func (*resultSetMsg) ProtoMessage()    {}

func (r *ResultSet) Marshal() ([]byte, error) {
	return codec.Marshal((*resultSetMsg)(r))
}

func (r *ResultSet) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*resultSetMsg)(r))
}

// ResultsFromKeys returns a ResultSet of all keys
// given a set of models
func ResultsFromKeys(models []swap.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values
// given a set of models
func ResultsFromValues(models []swap.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues
// and makes then a consistent whole again
func JoinResults(keys, values *ResultSet) ([]swap.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrInvalidState, "%d keys for %d values", len(kref), len(vref))
	}
	mods := make([]swap.Model, len(kref))
	for i := range mods {
		mods[i] = swap.Model{
			Key:   kref[i],
			Value: vref[i],
		}
	}
	return mods, nil
}

// UnmarshalOneResult will parse a resultset, and
// it if is not empty, unmarshal the first result into o
func UnmarshalOneResult(bz []byte, o swap.Persistent) error {
	var res ResultSet
	if err := res.Unmarshal(bz); err != nil {
		return err
	}
	if len(res.Results) == 0 {
		return errors.ErrNotFound
	}
	return o.Unmarshal(res.Results[0])
}
