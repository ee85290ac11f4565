package bech32

import (
	"bytes"
	"testing"

	"github.com/iov-one/swap/errors"
)

func TestEncodeDecode(t *testing.T) {
	cases := map[string]struct {
		hrp     string
		payload []byte
	}{
		"text payload": {hrp: "swap", payload: []byte("test-payload")},
		"address":      {hrp: "swap", payload: bytes.Repeat([]byte{0xab}, 32)},
		"empty":        {hrp: "swap", payload: nil},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			s, err := Encode(tc.hrp, tc.payload)
			if err != nil {
				t.Fatalf("encode: %s", err)
			}
			hrp, payload, err := Decode(s)
			if err != nil {
				t.Fatalf("decode %q: %s", s, err)
			}
			if hrp != tc.hrp {
				t.Fatalf("want %q hrp, got %q", tc.hrp, hrp)
			}
			if !bytes.Equal(tc.payload, payload) {
				t.Fatalf("want %x, got %x", tc.payload, payload)
			}
		})
	}
}

func TestDecodeInvalidChecksum(t *testing.T) {
	s, err := Encode("swap", []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	// flip the last checksum character
	last := s[len(s)-1]
	broken := s[:len(s)-1] + "q"
	if last == 'q' {
		broken = s[:len(s)-1] + "p"
	}
	if _, _, err := Decode(broken); !errors.ErrInvalidInput.Is(err) {
		t.Fatalf("want invalid input, got %+v", err)
	}
}
