// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import (
	"crypto/sha256"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/treehash/types/chainhash"
)

// naiveMerkleize pads leaves with zero chunks to a perfect tree of the given
// height and hashes it layer by layer.  It uses crypto/sha256 and no cache so
// it shares nothing with the code under test.
func naiveMerkleize(leaves []chainhash.Hash, height int) chainhash.Hash {
	width := 1 << uint(height-1)
	layer := make([][32]byte, width)
	for i := range leaves {
		layer[i] = leaves[i]
	}

	for len(layer) > 1 {
		next := make([][32]byte, len(layer)/2)
		for i := range next {
			var pair [64]byte
			copy(pair[:32], layer[2*i][:])
			copy(pair[32:], layer[2*i+1][:])
			next[i] = sha256.Sum256(pair[:])
		}
		layer = next
	}

	return layer[0]
}

// recursiveRoot pairs and hashes a power-of-two number of leaves with no
// padding at all.
func recursiveRoot(leaves []chainhash.Hash) chainhash.Hash {
	if len(leaves) == 1 {
		return leaves[0]
	}
	mid := len(leaves) / 2
	left := recursiveRoot(leaves[:mid])
	right := recursiveRoot(leaves[mid:])

	var pair [64]byte
	copy(pair[:32], left[:])
	copy(pair[32:], right[:])
	return sha256.Sum256(pair[:])
}

// packChunks splits a packed byte stream into zero-padded leaves.
func packChunks(data []byte) []chainhash.Hash {
	var chunks []chainhash.Hash
	for len(data) > 0 {
		var chunk chainhash.Hash
		n := copy(chunk[:], data)
		data = data[n:]
		chunks = append(chunks, chunk)
	}
	return chunks
}

func testLeaves(n int) []chainhash.Hash {
	leaves := make([]chainhash.Hash, n)
	for i := range leaves {
		leaves[i] = chainhash.HashH([]byte{byte(i), byte(i >> 8), 0x4a})
	}
	return leaves
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

// requireAssertion fails unless fn panics with an AssertError.
func requireAssertion(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		_, ok := r.(AssertError)
		require.Truef(t, ok, "panic value %#v is not an AssertError", r)
	}()

	fn()
}
