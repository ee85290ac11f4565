package app

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/swap"
	"github.com/iov-one/swap/app"
	"github.com/iov-one/swap/crypto"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/x/token"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	// DefaultAccountDeposit is charged for every created token account.
	DefaultAccountDeposit = 10
	// devSupply is issued of every mint to the generated account.
	devSupply = 1000000
	// devBalance is the native balance of the generated account.
	devBalance = 1000000
)

// MintAddress returns the address of the mint with given symbol, as created
// by GenInitOptions.
func MintAddress(symbol string) (swap.Address, error) {
	addr, _, err := swap.FindDerivedAddress(token.ProgramID, []byte("mint"), []byte(symbol))
	return addr, err
}

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// Arguments are the two mint symbols (default AAA and BBB) followed by the
// owner address. If no address is given, a key is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	symbols := []string{"AAA", "BBB"}
	if len(args) >= 2 {
		symbols = args[:2]
	}

	var owner swap.Address
	if len(args) > 2 {
		addr, err := swap.ParseAddress(args[2])
		if err != nil {
			return nil, err
		}
		owner = addr
	} else {
		addr, secret, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		owner = addr
		fmt.Println(secret)
	}

	var mints []token.Mint
	var accounts []token.GenesisAccount
	for _, sym := range symbols {
		addr, err := MintAddress(sym)
		if err != nil {
			return nil, err
		}
		m := token.Mint{Address: addr, Decimals: 6, Symbol: sym}
		if err := m.Validate(); err != nil {
			return nil, errors.Wrapf(err, "mint %s", sym)
		}
		mints = append(mints, m)
		accounts = append(accounts, token.GenesisAccount{
			Owner:  owner,
			Mint:   addr,
			Amount: devSupply,
		})
	}

	state := map[string]interface{}{
		"conf": map[string]interface{}{
			"token": token.Configuration{AccountDeposit: DefaultAccountDeposit},
		},
		"mints":    mints,
		"accounts": accounts,
		"wallets": []token.GenesisWallet{
			{Address: owner, Balance: devBalance},
		},
	}
	return json.MarshalIndent(state, "", "  ")
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "swap.db")
	}

	application, err := Application(Name, Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		token.Initializer{},
	))

	// set the logger and return
	application.WithLogger(logger)
	return application, nil
}

// GenerateCoinKey returns the address of a new key, along with the hex
// encoded private key to print for the operator.
func GenerateCoinKey() (swap.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	raw, err := privKey.Marshal()
	if err != nil {
		return nil, "", err
	}
	return privKey.Address(), hex.EncodeToString(raw), nil
}
