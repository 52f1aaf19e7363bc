// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import (
	"gitlab.com/jaxnet/treehash/types/chainhash"
)

// Reduce returns the root of a tree of the given height whose leaves are
// chunks followed by as many zero chunks as needed.  An empty chunk list gives
// the zero chunk; a single chunk at height 1 is returned as is.
//
// The input slice is not modified.
func Reduce(chunks []chainhash.Hash, height int) chainhash.Hash {
	store := NewChunkStore(len(chunks))
	for i := range chunks {
		store.Push(chunks[i])
	}

	return merkleizeChunks(store, 0, height)
}

// merkleizeChunks reduces store, whose chunks sit at tree level `level`
// (leaves are level 0), up to the root of a tree of the given height.  Parents
// overwrite the front of the store, which then shrinks to the parent count, so
// memory never grows beyond the input and padding costs one cached zero hash
// per level instead of hashing empty subtrees.
func merkleizeChunks(store *ChunkStore, level, height int) chainhash.Hash {
	checkHeight(height)

	if store.Len() == 0 {
		return chainhash.ZeroHash
	}

	// The root level needs no hashing.
	for ; level < height-1; level++ {
		childCount := store.Len()
		parentCount := (childCount + 1) / 2

		for i := 0; i < parentCount; i++ {
			if 2*i >= childCount {
				fatalf("parent %d at level %d has no left child", i, level+1)
			}
			left := store.Get(2 * i)

			right := ZeroHash(level)
			if 2*i+1 < childCount {
				right = store.Get(2*i + 1)
			}

			store.Set(i, chainhash.HashConcat(left[:], right[:]))
		}

		store.Truncate(parentCount)
	}

	root := store.Bytes()
	if len(root) != BytesPerChunk {
		fatalf("exactly one chunk should remain, got %d bytes for height %d", len(root), height)
	}

	var out chainhash.Hash
	copy(out[:], root)
	return out
}
