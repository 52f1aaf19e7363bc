// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import "fmt"

// Packing describes how the values of a collection are laid out in leaves.
// The zero value is NotPacked.
type Packing struct {
	// factor is the number of values sharing one chunk; 0 means not packed.
	factor int
}

// NotPacked gives each value its own zero-padded chunk.
var NotPacked = Packing{}

// Packed places factor values in every chunk.  Only basic values of at most
// BytesPerChunk bytes pack, so factor must be in [1, BytesPerChunk].
func Packed(factor int) Packing {
	if factor < 1 || factor > BytesPerChunk {
		fatalf("packing factor %d is outside [1, %d]", factor, BytesPerChunk)
	}
	return Packing{factor: factor}
}

// IsPacked reports whether values share chunks.
func (p Packing) IsPacked() bool {
	return p.factor > 0
}

// Factor returns the number of values per chunk; 1 when not packed.
func (p Packing) Factor() int {
	if p.factor == 0 {
		return 1
	}
	return p.factor
}

// LeafCount returns the number of leaves valueCount values occupy.
func (p Packing) LeafCount(valueCount int) int {
	if valueCount <= 0 {
		return 0
	}
	factor := p.Factor()
	leaves := valueCount / factor
	if valueCount%factor != 0 {
		leaves++
	}
	return leaves
}

// HeightForValueCount returns the tree height needed for valueCount values.
func (p Packing) HeightForValueCount(valueCount int) int {
	return HeightForLeafCount(p.LeafCount(valueCount))
}

func (p Packing) String() string {
	if !p.IsPacked() {
		return "not-packed"
	}
	return fmt.Sprintf("packed(%d)", p.factor)
}
