// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/treehash/types/chainhash"
)

func TestHasherPackedSingleChunk(t *testing.T) {
	values := []uint64{1, 2, 3, 4}
	packing := UintPacking[uint64]()

	height := packing.HeightForValueCount(len(values))
	require.Equal(t, 1, height)

	hasher := NewHasher(height, packing)
	for _, v := range values {
		hasher.Update(UintBytes(v))
	}

	want := chainhash.Hash{
		0x01, 0, 0, 0, 0, 0, 0, 0,
		0x02, 0, 0, 0, 0, 0, 0, 0,
		0x03, 0, 0, 0, 0, 0, 0, 0,
		0x04, 0, 0, 0, 0, 0, 0, 0,
	}
	assert.Equal(t, want, hasher.Finish())
}

func TestHasherEmpty(t *testing.T) {
	for height := 1; height <= 8; height++ {
		for _, packing := range []Packing{NotPacked, Packed(4)} {
			hasher := NewHasher(height, packing)
			assert.Equal(t, ZeroHash(height-1), hasher.Finish(), "height %d %v", height, packing)
		}
	}
}

func TestHasherPackedMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, size := range []int{0, 1, 31, 32, 33, 63, 64, 65, 96, 127, 128, 129, 200, 320, 1000} {
		data := randomBytes(rng, size)
		leaves := packChunks(data)

		for extra := 0; extra < 3; extra++ {
			height := HeightForLeafCount(len(leaves)) + extra

			hasher := NewHasher(height, Packed(1))
			hasher.Update(data)

			assert.Equal(t, naiveMerkleize(leaves, height), hasher.Finish(),
				"%d bytes height %d", size, height)
		}
	}
}

func TestHasherNotPackedMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, count := range []int{1, 2, 3, 4, 5, 8, 9, 17} {
		for _, width := range []int{1, 4, 20, 32} {
			values := make([][]byte, count)
			leaves := make([]chainhash.Hash, count)
			for i := range values {
				values[i] = randomBytes(rng, width)
				copy(leaves[i][:], values[i])
			}

			height := NotPacked.HeightForValueCount(count)
			hasher := NewHasher(height, NotPacked)
			for _, v := range values {
				hasher.Update(v)
			}

			assert.Equal(t, naiveMerkleize(leaves, height), hasher.Finish(),
				"%d values of %d bytes", count, width)
		}
	}
}

func TestHasherNotPackedLongValue(t *testing.T) {
	// A value longer than a chunk spans several leaves; the tail is padded.
	value := bytes.Repeat([]byte{0xab}, 40)

	hasher := NewHasher(2, NotPacked)
	hasher.Update(value)

	var tail chainhash.Hash
	copy(tail[:], value[32:])
	var head chainhash.Hash
	copy(head[:], value[:32])

	assert.Equal(t, chainhash.HashConcat(head[:], tail[:]), hasher.Finish())
}

func TestHasherStreamingInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))

	for _, size := range []int{0, 5, 32, 33, 64, 100, 257, 1024} {
		data := randomBytes(rng, size)
		height := Packed(1).HeightForValueCount(len(packChunks(data))) + 1

		whole := NewHasher(height, Packed(1))
		whole.Update(data)
		want := whole.Finish()

		for round := 0; round < 20; round++ {
			t.Run(fmt.Sprintf("%d bytes round %d", size, round), func(t *testing.T) {
				hasher := NewHasher(height, Packed(1))
				rest := data
				for len(rest) > 0 {
					n := rng.Intn(len(rest)) + 1
					if rng.Intn(4) == 0 {
						hasher.Update(nil)
					}
					hasher.Update(rest[:n])
					rest = rest[n:]
				}
				assert.Equal(t, want, hasher.Finish())
			})
		}
	}
}

func TestHasherStreamingInvariantNotPacked(t *testing.T) {
	// Splitting on value boundaries, whole chunks at a time, keeps the root.
	rng := rand.New(rand.NewSource(99))
	data := randomBytes(rng, 7*BytesPerChunk)
	height := NotPacked.HeightForValueCount(7)

	whole := NewHasher(height, NotPacked)
	whole.Update(data)
	want := whole.Finish()

	perChunk := NewHasher(height, NotPacked)
	for i := 0; i < len(data); i += BytesPerChunk {
		perChunk.Update(data[i : i+BytesPerChunk])
	}
	assert.Equal(t, want, perChunk.Finish())
}

func TestHasherFirstChunkFastPath(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for size := 0; size <= BytesPerChunk; size++ {
		data := randomBytes(rng, size)

		var leaf chainhash.Hash
		copy(leaf[:], data)

		oneShot := NewHasher(1, Packed(1))
		oneShot.Update(data)

		split := NewHasher(1, Packed(1))
		for i := range data {
			split.Update(data[i : i+1])
		}

		want := Reduce([]chainhash.Hash{leaf}, 1)
		assert.Equal(t, want, oneShot.Finish(), "%d bytes", size)
		assert.Equal(t, want, split.Finish(), "%d bytes split", size)
	}
}

func TestHasherFirstChunkOnlyAtHeightOne(t *testing.T) {
	// Short data in a taller tree still goes through the hashing path.
	data := []byte{1, 2, 3}
	var leaf chainhash.Hash
	copy(leaf[:], data)

	hasher := NewHasher(3, Packed(1))
	hasher.Update(data)
	assert.Equal(t, naiveMerkleize([]chainhash.Hash{leaf}, 3), hasher.Finish())
}

func TestHasherKeepsHalfTheLeaves(t *testing.T) {
	hasher := NewHasher(5, Packed(1))
	hasher.Update(make([]byte, 10*BytesPerChunk+5))

	assert.Equal(t, 5, hasher.chunks.Len())
	assert.Equal(t, 5, hasher.bufLen)
}

func TestHasherWriter(t *testing.T) {
	data := randomBytes(rand.New(rand.NewSource(5)), 5000)
	height := HeightForLeafCount(len(packChunks(data)))

	direct := NewHasher(height, Packed(1))
	direct.Update(data)

	copied := NewHasher(height, Packed(1))
	n, err := io.Copy(copied, bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)

	assert.Equal(t, direct.Finish(), copied.Finish())
}

func TestHasherInvariants(t *testing.T) {
	requireAssertion(t, func() { NewHasher(0, NotPacked) })
	requireAssertion(t, func() { NewHasher(MaxTreeDepth+1, NotPacked) })

	requireAssertion(t, func() {
		hasher := NewHasher(2, NotPacked)
		hasher.Finish()
		hasher.Finish()
	})

	requireAssertion(t, func() {
		hasher := NewHasher(2, NotPacked)
		hasher.Finish()
		hasher.Update([]byte{1})
	})

	requireAssertion(t, func() {
		hasher := NewHasher(1, Packed(1))
		hasher.Update(make([]byte, BytesPerChunk+1))
		hasher.Finish()
	})

	requireAssertion(t, func() {
		// Three leaves overflow a tree of height 2.
		hasher := NewHasher(2, Packed(1))
		hasher.Update(make([]byte, 3*BytesPerChunk))
		hasher.Finish()
	})
}

func BenchmarkHasherBytes32Vector(b *testing.B) {
	const count = 8192

	rng := rand.New(rand.NewSource(1))
	values := make([]Bytes32, count)
	for i := range values {
		rng.Read(values[i][:])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		VectorRoot(values)
	}
}
