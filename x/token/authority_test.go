package token

import (
	"context"
	"testing"

	"github.com/iov-one/swap"
	"github.com/iov-one/swap/swaptest"
)

func TestSignerAuthority(t *testing.T) {
	auth := &swaptest.CtxAuth{Key: "auth"}
	owner := swaptest.NewAddress()
	acct := &Account{Owner: owner}

	a := SignerAuthority{Auth: auth}
	if a.ProvesAuthorityFor(context.Background(), acct) {
		t.Fatal("unsigned context must not prove authority")
	}
	ctx := auth.SetSigners(context.Background(), swaptest.NewAddress(), owner)
	if !a.ProvesAuthorityFor(ctx, acct) {
		t.Fatal("owner signature must prove authority")
	}
}

func TestSeedAuthority(t *testing.T) {
	program := swap.NewProgramID("test")
	seeds := [][]byte{[]byte("vault"), []byte("seven")}
	owner, nonce, err := swap.FindDerivedAddress(program, seeds...)
	if err != nil {
		t.Fatalf("cannot derive: %s", err)
	}
	acct := &Account{Owner: owner}
	ctx := context.Background()

	cases := map[string]struct {
		auth SeedAuthority
		want bool
	}{
		"exact derivation inputs": {
			auth: SeedAuthority{Program: program, Seeds: [][]byte{seeds[0], seeds[1], {nonce}}},
			want: true,
		},
		"missing nonce": {
			auth: SeedAuthority{Program: program, Seeds: seeds},
			want: false,
		},
		"wrong nonce": {
			auth: SeedAuthority{Program: program, Seeds: [][]byte{seeds[0], seeds[1], {nonce - 1}}},
			want: false,
		},
		"seeds out of order": {
			auth: SeedAuthority{Program: program, Seeds: [][]byte{seeds[1], seeds[0], {nonce}}},
			want: false,
		},
		"another program": {
			auth: SeedAuthority{Program: ProgramID, Seeds: [][]byte{seeds[0], seeds[1], {nonce}}},
			want: false,
		},
		"seed too long": {
			auth: SeedAuthority{Program: program, Seeds: [][]byte{make([]byte, 33)}},
			want: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.auth.ProvesAuthorityFor(ctx, acct); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}
