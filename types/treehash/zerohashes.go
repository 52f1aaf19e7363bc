// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import (
	"sync"

	"gitlab.com/jaxnet/treehash/types/chainhash"
)

// zeroHashTable holds at index i the root of a perfect tree with 2^i all-zero
// leaves.  Index 0 is the zero chunk itself.
type zeroHashTable [MaxTreeDepth + 1]chainhash.Hash

var (
	zeroHashesOnce sync.Once
	zeroHashes     *zeroHashTable
)

func newZeroHashTable() *zeroHashTable {
	table := new(zeroHashTable)
	for i := 0; i < MaxTreeDepth; i++ {
		table[i+1] = chainhash.HashConcat(table[i][:], table[i][:])
	}
	return table
}

// ZeroHash returns the cached root of an all-zero subtree with 2^height
// leaves.  The table is built on first use and never modified afterwards, so
// concurrent readers need no locking.  Heights above MaxTreeDepth are fatal.
func ZeroHash(height int) chainhash.Hash {
	if height < 0 || height > MaxTreeDepth {
		fatalf("tree exceeds MaxTreeDepth of %d (requested zero hash %d)", MaxTreeDepth, height)
	}

	zeroHashesOnce.Do(func() {
		zeroHashes = newZeroHashTable()
		log.Trace().Int("depth", MaxTreeDepth).Msg("zero hash table built")
	})

	return zeroHashes[height]
}
