// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import (
	"github.com/minio/sha256-simd"
	"gitlab.com/jaxnet/treehash/types/chainhash"
)

// Hasher streams the bytes of a collection into a tree of fixed height.
//
// Leaves are buffered in pairs; as soon as a pair is complete it is hashed
// and only its parent is kept.  The packing policy is fixed at construction.
// A Hasher is consumed by Finish and must not be used afterwards.
type Hasher struct {
	height int
	packed bool

	// chunks holds the parents of completed leaf pairs (tree level 1).
	chunks *ChunkStore

	// buf collects the current leaf pair.
	buf    [MerkleHashChunk]byte
	bufLen int

	// firstChunk mirrors the stream while it still fits in one chunk, so a
	// single-leaf tree can be returned without hashing.
	firstChunk       [BytesPerChunk]byte
	firstChunkLen    int
	firstChunkActive bool

	finished bool
}

// NewHasher returns a Hasher for a tree of the given height.  Use
// Packing.HeightForValueCount or HeightForLeafCount to derive the height.
func NewHasher(height int, packing Packing) *Hasher {
	checkHeight(height)

	return &Hasher{
		height:           height,
		packed:           packing.IsPacked(),
		chunks:           NewChunkStore(0),
		firstChunkActive: true,
	}
}

// Height returns the tree height the hasher was created with.
func (h *Hasher) Height() int {
	return h.height
}

// Update feeds bytes into the tree.  When the hasher is not packed every
// push is a separate value: each piece of at most one chunk is zero-padded
// to a full leaf.
func (h *Hasher) Update(bytes []byte) {
	if h.finished {
		fatalf("hasher updated after finish")
	}

	h.updateFirstChunk(bytes)

	for len(bytes) > 0 {
		n := len(bytes)
		if n > BytesPerChunk {
			n = BytesPerChunk
		}
		piece := bytes[:n]
		bytes = bytes[n:]

		remaining := MerkleHashChunk - h.bufLen
		if remaining >= len(piece) {
			h.appendMaybePadded(piece)
		} else {
			// Only packed streams can straddle a pair boundary, and a piece is
			// never longer than one chunk, so one flush is enough.
			h.appendMaybePadded(piece[:remaining])
			h.flush()
			h.appendMaybePadded(piece[remaining:])
		}

		if h.bufLen == MerkleHashChunk {
			h.flush()
		}
	}
}

// Write implements io.Writer on top of Update so a Hasher can be the target
// of io.Copy.  It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Finish returns the root and invalidates the hasher.
func (h *Hasher) Finish() chainhash.Hash {
	if h.finished {
		fatalf("hasher finished twice")
	}
	h.finished = true

	if h.height == 1 {
		if !h.firstChunkActive {
			fatalf("more than one chunk of data for a single-leaf tree")
		}

		var root chainhash.Hash
		copy(root[:], h.firstChunk[:h.firstChunkLen])
		return root
	}

	// A partial pair, or no data at all, is completed with zero leaves.
	if h.bufLen > 0 || h.chunks.Len() == 0 {
		for i := h.bufLen; i < MerkleHashChunk; i++ {
			h.buf[i] = 0
		}
		h.bufLen = MerkleHashChunk
		h.flush()
	}

	root := merkleizeChunks(h.chunks, 1, h.height)
	h.chunks = nil
	return root
}

func (h *Hasher) updateFirstChunk(bytes []byte) {
	if !h.firstChunkActive {
		return
	}

	if h.firstChunkLen+len(bytes) > BytesPerChunk {
		h.firstChunkActive = false
		return
	}

	h.firstChunkLen += copy(h.firstChunk[h.firstChunkLen:], bytes)
}

func (h *Hasher) appendMaybePadded(piece []byte) {
	if len(piece) > BytesPerChunk {
		fatalf("piece of %d bytes exceeds a chunk", len(piece))
	}

	h.bufLen += copy(h.buf[h.bufLen:], piece)

	if !h.packed {
		for pad := len(piece); pad < BytesPerChunk; pad++ {
			h.buf[h.bufLen] = 0
			h.bufLen++
		}
	}
}

func (h *Hasher) flush() {
	if h.bufLen != MerkleHashChunk {
		fatalf("flushing %d bytes, want %d", h.bufLen, MerkleHashChunk)
	}

	h.chunks.Push(chainhash.Hash(sha256.Sum256(h.buf[:])))
	h.bufLen = 0
}
