// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rootcache

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/treehash/types/chainhash"
	"gitlab.com/jaxnet/treehash/types/treehash"
)

const (
	rootPrefix = 0x01

	// KeySize is 1 byte prefix + 32 bytes data digest + 8 bytes minLeaves.
	KeySize = 1 + chainhash.HashSize + 8
)

// ErrCorruptValue is returned when a stored root is not HashSize bytes.
var ErrCorruptValue = errors.New("corrupt root cache value")

// Cache memoizes treehash.MerkleRoot results keyed by the digest of the input
// and the requested minimum leaf count.
type Cache struct {
	store  Store
	hits   uint64
	misses uint64
}

// NewCache wraps store.  The Cache owns the store after this call.
func NewCache(store Store) *Cache {
	return &Cache{store: store}
}

// RootKey builds the store key for data padded to at least minLeaves leaves.
func RootKey(data []byte, minLeaves int) []byte {
	key := make([]byte, KeySize)
	key[0] = rootPrefix
	digest := chainhash.HashH(data)
	copy(key[1:], digest[:])
	binary.LittleEndian.PutUint64(key[1+chainhash.HashSize:], uint64(minLeaves))
	return key
}

// MerkleRoot returns treehash.MerkleRoot(data, minLeaves), served from the
// store when the same input was hashed before.
func (c *Cache) MerkleRoot(data []byte, minLeaves int) (chainhash.Hash, error) {
	if minLeaves < 0 {
		return chainhash.Hash{}, errors.Errorf("negative minimum leaf count %d", minLeaves)
	}
	if minLeaves > treehash.MaxLeafCount {
		return chainhash.Hash{}, errors.Wrapf(treehash.ErrTreeTooDeep,
			"minimum leaf count %d exceeds %d", minLeaves, treehash.MaxLeafCount)
	}

	key := RootKey(data, minLeaves)
	value, found, err := c.store.Get(key)
	if err != nil {
		return chainhash.Hash{}, errors.Wrap(err, "can not read root cache")
	}

	if found {
		if len(value) != chainhash.HashSize {
			return chainhash.Hash{}, errors.Wrapf(ErrCorruptValue, "got %d bytes for key %x", len(value), key)
		}
		atomic.AddUint64(&c.hits, 1)

		var root chainhash.Hash
		copy(root[:], value)
		log.Trace().Hex("key", key).Stringer("root", root).Msg("root cache hit")
		return root, nil
	}

	atomic.AddUint64(&c.misses, 1)
	root := treehash.MerkleRoot(data, minLeaves)
	if err := c.store.Put(key, root[:]); err != nil {
		return chainhash.Hash{}, errors.Wrap(err, "can not write root cache")
	}

	log.Trace().Hex("key", key).Stringer("root", root).Msg("root cache miss")
	return root, nil
}

// Stats returns the number of lookups served from the store and computed.
func (c *Cache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}

// Close closes the underlying store.
func (c *Cache) Close() error {
	return c.store.Close()
}
