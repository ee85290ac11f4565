package swaptest

import "github.com/iov-one/swap"

// Handler is a mock implementation of the swap.Handler interface.
//
// If WriteKey is set, each call stores WriteValue under it before
// returning, which allows to test the atomicity of the stack.
// Set CheckErr or DeliverErr to force error response for corresponding
// method.
type Handler struct {
	checkCall   int
	CheckResult swap.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult swap.DeliverResult
	DeliverErr    error

	WriteKey   []byte
	WriteValue []byte
}

var _ swap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db swap.KVStore) error {
	if h.WriteKey == nil {
		return nil
	}
	return db.Set(h.WriteKey, h.WriteValue)
}

// CheckCallCount returns the number of Check calls.
func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

// DeliverCallCount returns the number of Deliver calls.
func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

// CallCount returns the number of all calls.
func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// PanicHandler panics on every call with given value.
type PanicHandler struct {
	Value interface{}
}

var _ swap.Handler = PanicHandler{}

func (p PanicHandler) Check(swap.Context, swap.KVStore, swap.Tx) (*swap.CheckResult, error) {
	panic(p.Value)
}

func (p PanicHandler) Deliver(swap.Context, swap.KVStore, swap.Tx) (*swap.DeliverResult, error) {
	panic(p.Value)
}
