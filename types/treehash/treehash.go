// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import (
	"encoding/binary"
	"math/bits"

	"gitlab.com/jaxnet/treehash/types/chainhash"
)

const (
	// BytesPerChunk is the size of every leaf and node of the tree.
	BytesPerChunk = 32

	// HashSize is the size of a root.
	HashSize = chainhash.HashSize

	// MerkleHashChunk is the amount of leaf data hashed at once: one
	// sibling pair.
	MerkleHashChunk = 2 * BytesPerChunk

	// MaxTreeDepth is the largest supported tree height.
	MaxTreeDepth = 48

	// MaxLeafCount is the number of leaves of a MaxTreeDepth tree.
	MaxLeafCount = 1 << (MaxTreeDepth - 1)
)

// HeightForLeafCount returns the height of the smallest perfect tree with at
// least leafCount leaves.  Zero and one leaf both give height 1.
func HeightForLeafCount(leafCount int) int {
	if leafCount <= 1 {
		return 1
	}
	// ceil(log2(n)) is the bit length of n-1.
	return bits.Len(uint(leafCount-1)) + 1
}

// MixInLength returns hash(root || length), with length encoded little-endian
// and zero-padded to a chunk.  Variable-length collections use it as the last
// step of their root.
func MixInLength(root chainhash.Hash, length uint64) chainhash.Hash {
	var lengthChunk [BytesPerChunk]byte
	binary.LittleEndian.PutUint64(lengthChunk[:], length)

	return chainhash.HashConcat(root[:], lengthChunk[:])
}

// MerkleRoot returns the root of data split into chunks, padding the tree to
// at least minLeaves leaves.  Pass 0 for minLeaves to size the tree by data
// alone.
//
// When data fits in a single chunk and no padding is requested, no hashing is
// done and data is returned zero-padded.
func MerkleRoot(data []byte, minLeaves int) chainhash.Hash {
	leaves := (len(data) + BytesPerChunk - 1) / BytesPerChunk
	if minLeaves > leaves {
		leaves = minLeaves
	}

	hasher := NewHasher(HeightForLeafCount(leaves), Packed(1))
	hasher.Update(data)
	return hasher.Finish()
}
