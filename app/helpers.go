package app

import (
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// ABCIStore exposes a single query path of an abci application as a
// ReadOnlyKVStore. Query data is the key as expected by the handler
// registered under that path, usually the primary key of a bucket.
type ABCIStore struct {
	app  Querier
	path string
}

// Querier is the part of an abci application answering queries.
type Querier interface {
	Query(abci.RequestQuery) abci.ResponseQuery
}

var _ swap.ReadOnlyKVStore = (*ABCIStore)(nil)

func NewABCIStore(app Querier, path string) *ABCIStore {
	return &ABCIStore{app: app, path: path}
}

// Get will query for exactly one value over the abci store.
func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	query := a.app.Query(abci.RequestQuery{
		Path: a.path,
		Data: key,
	})
	if query.Code != 0 {
		return nil, errors.ABCIError(query.Code, query.Log)
	}
	var value ResultSet
	if err := value.Unmarshal(query.Value); err != nil {
		return nil, errors.Wrap(err, "unmarshal result set")
	}
	switch len(value.Results) {
	case 0:
		return nil, nil
	case 1:
		return value.Results[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidState, "%d results for a single key", len(value.Results))
	}
}

// Has returns true if the given key in in the abci app store
func (a *ABCIStore) Has(key []byte) (bool, error) {
	v, err := a.Get(key)
	return v != nil, err
}
