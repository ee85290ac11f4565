package store

import "github.com/iov-one/swap"

// Aliases so that store implementations can be written without referring
// to the root package everywhere.
type (
	ReadOnlyKVStore  = swap.ReadOnlyKVStore
	SetDeleter       = swap.SetDeleter
	KVStore          = swap.KVStore
	Batch            = swap.Batch
	CacheableKVStore = swap.CacheableKVStore
	KVCacheWrap      = swap.KVCacheWrap
	CommitKVStore    = swap.CommitKVStore
	CommitID         = swap.CommitID
)
