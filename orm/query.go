package orm

import (
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

// KeyQueryMod is the only supported query mode. The query data is the
// primary key of the model.
const KeyQueryMod = ""

// QueryHandler exposes the content of a bucket through a query router.
type QueryHandler struct {
	bucket ModelBucket
}

var _ swap.QueryHandler = QueryHandler{}

// NewQueryHandler returns a handler answering primary key lookups.
func NewQueryHandler(b ModelBucket) QueryHandler {
	return QueryHandler{bucket: b}
}

// Query returns the stored model under given primary key. A missing
// entity results in an empty response, not in an error.
func (q QueryHandler) Query(db swap.ReadOnlyKVStore, mod string, data []byte) ([]swap.Model, error) {
	if mod != KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown query mode %q", mod)
	}
	key := q.bucket.DBKey(data)
	raw, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return []swap.Model{{Key: key, Value: raw}}, nil
}

// Register adds the handler under "/<bucket name>".
func (q QueryHandler) Register(qr swap.QueryRouter) {
	qr.Register("/"+q.bucket.Name(), q)
}
