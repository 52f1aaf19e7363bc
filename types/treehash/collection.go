// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import (
	"github.com/pkg/errors"
	"gitlab.com/jaxnet/treehash/types/chainhash"
)

// TreeHash is implemented by every value with a hash tree root.
//
// TreeHashPacking must not depend on the receiver: collections call it on the
// zero value of their element type.
type TreeHash interface {
	// TreeHashApplyRoot passes the bytes the value contributes to its
	// parent collection: the packed encoding for basic values, the root
	// otherwise.
	TreeHashApplyRoot(f func([]byte))

	// TreeHashPacking returns the packing of a collection of this type.
	TreeHashPacking() Packing

	// TreeHashRoot returns the root of the value itself.
	TreeHashRoot() chainhash.Hash
}

func streamRoot[T TreeHash](values []T, packing Packing, height int) chainhash.Hash {
	hasher := NewHasher(height, packing)
	for i := range values {
		values[i].TreeHashApplyRoot(hasher.Update)
	}
	return hasher.Finish()
}

func elementPacking[T TreeHash]() Packing {
	var zero T
	return zero.TreeHashPacking()
}

// VectorRoot returns the root of a fixed-size sequence.
func VectorRoot[T TreeHash](values []T) chainhash.Hash {
	packing := elementPacking[T]()
	return streamRoot(values, packing, packing.HeightForValueCount(len(values)))
}

// ListRoot returns the root of a variable-length sequence sized by its
// current length.
func ListRoot[T TreeHash](values []T) chainhash.Hash {
	return MixInLength(VectorRoot(values), uint64(len(values)))
}

// ListRootWithLimit returns the root of a variable-length sequence whose tree
// is sized for limit values.
func ListRootWithLimit[T TreeHash](values []T, limit int) (chainhash.Hash, error) {
	if len(values) > limit {
		return chainhash.Hash{}, errors.Wrapf(ErrListTooLong, "%d values, limit %d", len(values), limit)
	}

	packing := elementPacking[T]()
	height := packing.HeightForValueCount(limit)
	if height > MaxTreeDepth {
		return chainhash.Hash{}, errors.Wrapf(ErrTreeTooDeep, "limit %d needs height %d", limit, height)
	}

	root := streamRoot(values, packing, height)
	return MixInLength(root, uint64(len(values))), nil
}

// ContainerRoot returns the root of a fixed set of fields: one leaf per field
// holding the field's root.
func ContainerRoot(fields ...TreeHash) chainhash.Hash {
	hasher := NewHasher(HeightForLeafCount(len(fields)), NotPacked)
	for _, field := range fields {
		root := field.TreeHashRoot()
		hasher.Update(root[:])
	}
	return hasher.Finish()
}

// Vector is a fixed-size sequence usable as an element of other collections.
type Vector[T TreeHash] []T

func (v Vector[T]) TreeHashApplyRoot(f func([]byte)) {
	root := VectorRoot([]T(v))
	f(root[:])
}

func (Vector[T]) TreeHashPacking() Packing { return NotPacked }

func (v Vector[T]) TreeHashRoot() chainhash.Hash { return VectorRoot([]T(v)) }

// List is a variable-length sequence usable as an element of other
// collections.
type List[T TreeHash] []T

func (l List[T]) TreeHashApplyRoot(f func([]byte)) {
	root := ListRoot([]T(l))
	f(root[:])
}

func (List[T]) TreeHashPacking() Packing { return NotPacked }

func (l List[T]) TreeHashRoot() chainhash.Hash { return ListRoot([]T(l)) }
