// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import (
	"gitlab.com/jaxnet/treehash/types/chainhash"
)

// ChunkStore is an ordered, resizable sequence of chunks.  Failures are
// internal invariant violations and abort the computation.
type ChunkStore struct {
	chunks []chainhash.Hash
}

// NewChunkStore returns an empty store with room for capacity chunks.
func NewChunkStore(capacity int) *ChunkStore {
	return &ChunkStore{chunks: make([]chainhash.Hash, 0, capacity)}
}

// Len returns the number of chunks presently stored.
func (s *ChunkStore) Len() int {
	return len(s.chunks)
}

// Push appends chunk.
func (s *ChunkStore) Push(chunk chainhash.Hash) {
	s.chunks = append(s.chunks, chunk)
}

// Set overwrites the i'th chunk.
func (s *ChunkStore) Set(i int, chunk chainhash.Hash) {
	if i < 0 || i >= len(s.chunks) {
		fatalf("chunk store set index %d out of range [0, %d)", i, len(s.chunks))
	}
	s.chunks[i] = chunk
}

// Get returns the i'th chunk.
func (s *ChunkStore) Get(i int) chainhash.Hash {
	if i < 0 || i >= len(s.chunks) {
		fatalf("chunk store get index %d out of range [0, %d)", i, len(s.chunks))
	}
	return s.chunks[i]
}

// Truncate drops every chunk at index n and above.  It is a no-op when the
// store already holds n chunks or fewer.
func (s *ChunkStore) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(s.chunks) {
		s.chunks = s.chunks[:n]
	}
}

// Bytes consumes the store and returns all chunks concatenated in index
// order.  The store is empty afterwards.
func (s *ChunkStore) Bytes() []byte {
	out := make([]byte, 0, len(s.chunks)*BytesPerChunk)
	for i := range s.chunks {
		out = append(out, s.chunks[i][:]...)
	}
	s.chunks = nil
	return out
}
