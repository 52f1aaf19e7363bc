// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/jaxnet/treehash/types/chainhash"
)

func TestHeightForLeafCount(t *testing.T) {
	tests := []struct {
		leaves int
		want   int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{8, 4},
		{9, 5},
		{16, 5},
		{17, 6},
		{1 << 20, 21},
		{1<<20 + 1, 22},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HeightForLeafCount(tt.leaves), "%d leaves", tt.leaves)
	}
}

func TestHeightForValueCount(t *testing.T) {
	tests := []struct {
		packing Packing
		values  int
		want    int
	}{
		{NotPacked, 0, 1},
		{NotPacked, 1, 1},
		{NotPacked, 3, 3},
		{Packed(4), 4, 1},
		{Packed(4), 5, 2},
		{Packed(4), 8, 2},
		{Packed(4), 9, 3},
		{Packed(32), 32, 1},
		{Packed(32), 33, 2},
		{Packed(8), 8192, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.packing.HeightForValueCount(tt.values),
			"%v with %d values", tt.packing, tt.values)
	}
}

func TestPacking(t *testing.T) {
	var zero Packing
	assert.Equal(t, NotPacked, zero)
	assert.False(t, NotPacked.IsPacked())
	assert.Equal(t, 1, NotPacked.Factor())
	assert.Equal(t, "not-packed", NotPacked.String())

	p := Packed(16)
	assert.True(t, p.IsPacked())
	assert.Equal(t, 16, p.Factor())
	assert.Equal(t, "packed(16)", p.String())
	assert.Equal(t, 2, p.LeafCount(17))
	assert.Equal(t, 0, p.LeafCount(0))

	requireAssertion(t, func() { Packed(0) })
	requireAssertion(t, func() { Packed(BytesPerChunk + 1) })
}

func TestMixInLength(t *testing.T) {
	root := chainhash.Hash{}
	for i := range root {
		root[i] = 42
	}

	preimage := append(bytes.Repeat([]byte{42}, BytesPerChunk), 42)
	preimage = append(preimage, make([]byte, BytesPerChunk-1)...)
	assert.Equal(t, chainhash.Hash(sha256.Sum256(preimage)), MixInLength(root, 42))

	zeroPreimage := append(root.CloneBytes(), make([]byte, BytesPerChunk)...)
	assert.Equal(t, chainhash.Hash(sha256.Sum256(zeroPreimage)), MixInLength(root, 0))

	bigPreimage := append(root.CloneBytes(), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
	bigPreimage = append(bigPreimage, make([]byte, BytesPerChunk-8)...)
	assert.Equal(t, chainhash.Hash(sha256.Sum256(bigPreimage)), MixInLength(root, ^uint64(0)))
}

func TestMerkleRootAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	inputs := map[string]func(n int) []byte{
		"zero":   func(n int) []byte { return make([]byte, n) },
		"random": func(n int) []byte { return randomBytes(rng, n) },
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			for _, chunks := range []int{0, 1, 2, 3, 4, 8, 9} {
				checkMerkleRoot(t, input(chunks*BytesPerChunk), 0)
			}

			for i := 0; i < 32*BytesPerChunk; i += 7 {
				checkMerkleRoot(t, input(i), 0)
			}

			data := input(8 * BytesPerChunk)
			for minLeaves := 0; minLeaves < 64; minLeaves++ {
				checkMerkleRoot(t, data, minLeaves)
			}
		})
	}
}

func checkMerkleRoot(t *testing.T, data []byte, minLeaves int) {
	t.Helper()

	leaves := packChunks(data)
	count := len(leaves)
	if minLeaves > count {
		count = minLeaves
	}
	want := naiveMerkleize(leaves, HeightForLeafCount(count))

	assert.Equal(t, want, MerkleRoot(data, minLeaves),
		fmt.Sprintf("%d bytes, %d min leaves", len(data), minLeaves))
}

func TestMerkleRootShortData(t *testing.T) {
	data := []byte("jax")
	want := chainhash.Hash{'j', 'a', 'x'}
	assert.Equal(t, want, MerkleRoot(data, 0))
	assert.Equal(t, want, MerkleRoot(data, 1))
	assert.Equal(t, chainhash.ZeroHash, MerkleRoot(nil, 0))
}

func TestMerkleRootMaxDepth(t *testing.T) {
	data := make([]byte, 10*BytesPerChunk)
	assert.Equal(t, ZeroHash(MaxTreeDepth-1), MerkleRoot(data, 1<<uint(MaxTreeDepth-1)))

	requireAssertion(t, func() { MerkleRoot(data, 1<<uint(MaxTreeDepth)) })
}
