package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/swap/errors"
)

type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper()                       {}
func (r *recorder) Fatal(...interface{})          { r.failed = true }
func (r *recorder) Fatalf(string, ...interface{}) { r.failed = true }

func TestNil(t *testing.T) {
	var nilErr *errors.Error
	cases := map[string]struct {
		value    interface{}
		wantFail bool
	}{
		"nil":          {value: nil},
		"typed nil":    {value: nilErr},
		"nil slice":    {value: []byte(nil)},
		"error":        {value: fmt.Errorf("x"), wantFail: true},
		"not nillable": {value: 4, wantFail: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			r := &recorder{TB: t}
			Nil(r, tc.value)
			if r.failed != tc.wantFail {
				t.Fatalf("want fail %v", tc.wantFail)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	r := &recorder{TB: t}
	Equal(r, []byte("a"), []byte("a"))
	if r.failed {
		t.Fatal("equal values")
	}
	Equal(r, uint64(1), 1)
	if !r.failed {
		t.Fatal("different types are not equal")
	}
}

func TestIsErr(t *testing.T) {
	r := &recorder{TB: t}
	IsErr(r, errors.ErrNotFound, errors.Wrap(errors.ErrNotFound, "offer"))
	if r.failed {
		t.Fatal("wrapped error must match")
	}
	IsErr(r, errors.ErrNotFound, errors.ErrUnauthorized)
	if !r.failed {
		t.Fatal("different errors must not match")
	}
}
