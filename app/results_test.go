package app

import (
	"testing"

	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/swaptest/assert"
)

func TestResultsRoundTrip(t *testing.T) {
	models := []swap.Model{
		{Key: []byte("offers:1"), Value: []byte("first")},
		{Key: []byte("offers:2"), Value: nil},
	}

	keys, err := ResultsFromKeys(models).Marshal()
	assert.Nil(t, err)
	values, err := ResultsFromValues(models).Marshal()
	assert.Nil(t, err)

	var k, v ResultSet
	assert.Nil(t, k.Unmarshal(keys))
	assert.Nil(t, v.Unmarshal(values))

	got, err := JoinResults(&k, &v)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(got))
	assert.Equal(t, []byte("offers:2"), got[1].Key)
	assert.Equal(t, 0, len(got[1].Value))
}

func TestJoinResultsMismatch(t *testing.T) {
	keys := &ResultSet{Results: [][]byte{[]byte("a"), []byte("b")}}
	values := &ResultSet{Results: [][]byte{[]byte("a")}}

	_, err := JoinResults(keys, values)
	assert.IsErr(t, errors.ErrInvalidState, err)
}
