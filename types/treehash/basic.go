// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import (
	"math/bits"

	"gitlab.com/jaxnet/treehash/types/chainhash"
)

// Uint is the set of unsigned integers with a basic tree hash encoding.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// UintSize returns the encoded width of T in bytes.
func UintSize[T Uint]() int {
	return bits.Len64(uint64(^T(0))) / 8
}

// putUint writes the little-endian encoding of v into dst and returns the
// number of bytes written.
func putUint[T Uint](dst []byte, v T) int {
	size := UintSize[T]()
	x := uint64(v)
	for i := 0; i < size; i++ {
		dst[i] = byte(x >> (8 * uint(i)))
	}
	return size
}

// UintBytes returns the little-endian encoding of v.
func UintBytes[T Uint](v T) []byte {
	out := make([]byte, UintSize[T]())
	putUint(out, v)
	return out
}

// UintRoot returns the root of a single integer: its little-endian bytes
// zero-padded to a chunk.
func UintRoot[T Uint](v T) chainhash.Hash {
	var root chainhash.Hash
	putUint(root[:], v)
	return root
}

// UintPacking returns the packing of a collection of T.
func UintPacking[T Uint]() Packing {
	return Packed(BytesPerChunk / UintSize[T]())
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// BoolRoot returns the root of a boolean, encoded as the uint8 0 or 1.
func BoolRoot(b bool) chainhash.Hash {
	return UintRoot(boolByte(b))
}

// BytesRoot returns the root of a fixed-size byte array of at most one
// chunk: the bytes zero-padded to a chunk.
func BytesRoot(b []byte) chainhash.Hash {
	if len(b) > BytesPerChunk {
		fatalf("byte array of %d bytes does not fit a chunk", len(b))
	}

	var root chainhash.Hash
	copy(root[:], b)
	return root
}

func applyUint[T Uint](v T, f func([]byte)) {
	var buf [8]byte
	n := putUint(buf[:], v)
	f(buf[:n])
}

// Leaf types.  Each one feeds its encoding to a parent collection through
// TreeHashApplyRoot and reports its own root through TreeHashRoot.
type (
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Bool    bool
	Bytes4  [4]byte
	Bytes32 [32]byte
)

func (v Uint8) TreeHashApplyRoot(f func([]byte)) { applyUint(v, f) }
func (Uint8) TreeHashPacking() Packing { return UintPacking[Uint8]() }
func (v Uint8) TreeHashRoot() chainhash.Hash { return UintRoot(v) }

func (v Uint16) TreeHashApplyRoot(f func([]byte)) { applyUint(v, f) }
func (Uint16) TreeHashPacking() Packing { return UintPacking[Uint16]() }
func (v Uint16) TreeHashRoot() chainhash.Hash { return UintRoot(v) }

func (v Uint32) TreeHashApplyRoot(f func([]byte)) { applyUint(v, f) }
func (Uint32) TreeHashPacking() Packing { return UintPacking[Uint32]() }
func (v Uint32) TreeHashRoot() chainhash.Hash { return UintRoot(v) }

func (v Uint64) TreeHashApplyRoot(f func([]byte)) { applyUint(v, f) }
func (Uint64) TreeHashPacking() Packing { return UintPacking[Uint64]() }
func (v Uint64) TreeHashRoot() chainhash.Hash { return UintRoot(v) }

func (v Bool) TreeHashApplyRoot(f func([]byte)) { applyUint(boolByte(bool(v)), f) }
func (Bool) TreeHashPacking() Packing { return UintPacking[uint8]() }
func (v Bool) TreeHashRoot() chainhash.Hash { return BoolRoot(bool(v)) }

func (v Bytes4) TreeHashApplyRoot(f func([]byte)) { f(v[:]) }
func (Bytes4) TreeHashPacking() Packing { return NotPacked }
func (v Bytes4) TreeHashRoot() chainhash.Hash { return BytesRoot(v[:]) }

func (v Bytes32) TreeHashApplyRoot(f func([]byte)) { f(v[:]) }
func (Bytes32) TreeHashPacking() Packing { return NotPacked }
func (v Bytes32) TreeHashRoot() chainhash.Hash { return chainhash.Hash(v) }
