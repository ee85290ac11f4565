package swap

import (
	"bytes"
	"testing"

	"github.com/jdgcs/ed25519/edwards25519"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDerivedAddressVectors(t *testing.T) {
	seedKey := MustParseAddress("SeedPubey1111111111111111111111111111111111")
	program := MustParseAddress("BPFLoader1111111111111111111111111111111111")

	cases := map[string]struct {
		seeds [][]byte
		want  string
	}{
		"empty and one byte seed": {
			seeds: [][]byte{{}, {1}},
			want:  "3gF2KMe9KiC6FNVBmfg9i267aMPvK37FewCip4eGBFcT",
		},
		"utf8 seed": {
			seeds: [][]byte{[]byte("☉")},
			want:  "7ytmC1nT1xY4RfxCV2ZgyA7UakC93do5ZdyhdF3EtPj7",
		},
		"two seeds": {
			seeds: [][]byte{[]byte("Talking"), []byte("Squirrels")},
			want:  "HwRVBufQ4haG5XSgpspwKtNd3PC9GM9m1196uJW36vds",
		},
		"public key seed": {
			seeds: [][]byte{seedKey},
			want:  "GUs5qLUfsEHkcMB9T38vjr18ypEhRuNWiePW2LoK4E3K",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			addr, err := CreateDerivedAddress(program, tc.seeds...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, addr.String())
		})
	}
}

func TestCreateDerivedAddressLimits(t *testing.T) {
	program := NewProgramID("test")

	// a max length seed is accepted, although it may derive an on-curve
	// address without a nonce
	_, err := CreateDerivedAddress(program, make([]byte, MaxSeedLength))
	assert.False(t, ErrSeeds.Is(err))
	_, _, err = FindDerivedAddress(program, make([]byte, MaxSeedLength))
	assert.NoError(t, err)

	_, err = CreateDerivedAddress(program, make([]byte, MaxSeedLength+1))
	assert.True(t, ErrSeeds.Is(err))

	_, err = CreateDerivedAddress(program, []byte("short"), make([]byte, MaxSeedLength+1))
	assert.True(t, ErrSeeds.Is(err))

	tooMany := make([][]byte, MaxSeeds+1)
	_, err = CreateDerivedAddress(program, tooMany...)
	assert.True(t, ErrSeeds.Is(err))
}

func TestFindDerivedAddress(t *testing.T) {
	Convey("Given a program and a seed list", t, func() {
		program := NewProgramID("offer")
		maker := bytes.Repeat([]byte{7}, AddressLength)
		seeds := [][]byte{[]byte("offer"), maker, {7, 0, 0, 0, 0, 0, 0, 0}}

		addr, nonce, err := FindDerivedAddress(program, seeds...)
		So(err, ShouldBeNil)
		So(addr.Validate(), ShouldBeNil)

		Convey("The address is off the ed25519 curve", func() {
			var pub [32]byte
			copy(pub[:], addr)
			var point edwards25519.ExtendedGroupElement
			So(point.FromBytes(&pub), ShouldBeFalse)
		})

		Convey("Derivation is deterministic", func() {
			again, againNonce, err := FindDerivedAddress(program, seeds...)
			So(err, ShouldBeNil)
			So(again.Equals(addr), ShouldBeTrue)
			So(againNonce, ShouldEqual, nonce)
		})

		Convey("The stored nonce re-derives the same address", func() {
			withNonce := append(append([][]byte{}, seeds...), []byte{nonce})
			got, err := CreateDerivedAddress(program, withNonce...)
			So(err, ShouldBeNil)
			So(got.Equals(addr), ShouldBeTrue)
		})

		Convey("A different nonce never yields the same address", func() {
			withNonce := append(append([][]byte{}, seeds...), []byte{nonce - 1})
			got, err := CreateDerivedAddress(program, withNonce...)
			if err == nil {
				So(got.Equals(addr), ShouldBeFalse)
			} else {
				So(ErrOnCurve.Is(err), ShouldBeTrue)
			}
		})

		Convey("Seed order matters", func() {
			reordered := [][]byte{maker, []byte("offer"), {7, 0, 0, 0, 0, 0, 0, 0}}
			got, _, err := FindDerivedAddress(program, reordered...)
			So(err, ShouldBeNil)
			So(got.Equals(addr), ShouldBeFalse)
		})

		Convey("Another program derives another address", func() {
			got, _, err := FindDerivedAddress(NewProgramID("other"), seeds...)
			So(err, ShouldBeNil)
			So(got.Equals(addr), ShouldBeFalse)
		})

		Convey("Caller seeds are not modified", func() {
			So(len(seeds), ShouldEqual, 3)
		})
	})
}

func TestFindDerivedAddressTooManySeeds(t *testing.T) {
	_, _, err := FindDerivedAddress(NewProgramID("test"), make([][]byte, MaxSeeds)...)
	if !ErrSeeds.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}
