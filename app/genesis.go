package app

import (
	"github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...swap.Initializer) swap.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []swap.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts swap.Options, kv swap.KVStore) error {
	for i, init := range c.inits {
		if err := init.FromGenesis(opts, kv); err != nil {
			return errors.Wrapf(err, "initializer #%d (%T)", i, init)
		}
	}
	return nil
}
