/*
Package app links together all the various components
to construct the swapd app.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/swap"
	"github.com/iov-one/swap/app"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store/iavl"
	"github.com/iov-one/swap/x"
	"github.com/iov-one/swap/x/offer"
	"github.com/iov-one/swap/x/sigs"
	"github.com/iov-one/swap/x/token"
	"github.com/iov-one/swap/x/utils"
)

// Name is returned by abci Info.
const Name = "swapd"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, recovery and atomicity of every instruction.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		sigs.NewDecorator(),
		// a failed instruction leaves no trace, except for the signer
		// sequence that was already consumed
		utils.NewSavepoint().OnCheck().OnDeliver(),
		utils.NewActionTagger(),
	)
}

// Router returns a default router dispatching the offer instructions.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	offer.RegisterRoutes(r, authFn, token.NewController())
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/sigs", "/mints", "/accounts", "/wallets" and
// "/offers"
func QueryRouter() swap.QueryRouter {
	r := swap.NewQueryRouter()
	r.RegisterAll(
		sigs.RegisterQuery,
		token.RegisterQuery,
		offer.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() swap.Handler {
	return Chain().WithHandler(Router(Authenticator()))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h swap.Handler,
	tx swap.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (swap.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
