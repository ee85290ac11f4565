package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGet is a test helper that fails on read errors.
func mustGet(t testing.TB, db ReadOnlyKVStore, key []byte) []byte {
	t.Helper()
	v, err := db.Get(key)
	require.NoError(t, err)
	return v
}

func mustHas(t testing.TB, db ReadOnlyKVStore, key []byte) bool {
	t.Helper()
	ok, err := db.Has(key)
	require.NoError(t, err)
	return ok
}

// TestBTreeCacheGetSet does basic sanity checks on our cache
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and
	// all queries should work
	base := devnull.CacheWrap()

	k, v := []byte("french"), []byte("fry")
	assert.Nil(t, mustGet(t, base, k))
	assert.False(t, mustHas(t, base, k))
	require.NoError(t, base.Set(k, v))
	assert.Equal(t, v, mustGet(t, base, k))
	assert.True(t, mustHas(t, base, k))

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assert.Equal(t, v, mustGet(t, cache, k))

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	require.NoError(t, cache.Set(k2, v2))
	assert.Equal(t, v2, mustGet(t, cache, k2))
	assert.Nil(t, mustGet(t, base, k2))
	assert.False(t, mustHas(t, base, k2))

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	assert.Equal(t, v, mustGet(t, base, k))
	assert.Equal(t, v2, mustGet(t, base, k2))

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	require.NoError(t, c2.Set(k3, v3))
	assert.Equal(t, v3, mustGet(t, c2, k3))
	c2.Discard()
	assert.Nil(t, mustGet(t, base, k3))

	// and commit another
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete(k))
	assert.False(t, mustHas(t, c3, k))
	assert.True(t, mustHas(t, base, k))
	require.NoError(t, c3.Write())

	assert.Nil(t, mustGet(t, base, k))
	assert.Equal(t, v2, mustGet(t, base, k2))

	// and to test devnull....
	require.NoError(t, base.Write())
	assert.Nil(t, mustGet(t, devnull, k2))
}

func TestBTreeCacheOverwrite(t *testing.T) {
	db := MemStore()
	k := []byte("vault")

	require.NoError(t, db.Set(k, []byte("100")))
	require.NoError(t, db.Set(k, []byte("40")))
	assert.Equal(t, []byte("40"), mustGet(t, db, k))

	// delete and recreate within a single layer
	c := db.CacheWrap()
	require.NoError(t, c.Delete(k))
	require.NoError(t, c.Set(k, []byte("0")))
	require.NoError(t, c.Write())
	assert.Equal(t, []byte("0"), mustGet(t, db, k))
}

func TestBTreeCacheNilKeyPanics(t *testing.T) {
	db := MemStore()
	assert.Panics(t, func() { _ = db.Set(nil, []byte("x")) })
	assert.Panics(t, func() { _ = db.Delete(nil) })
}
