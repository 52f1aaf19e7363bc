/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

// Package treehash computes SSZ hash tree roots.
//
// Values are reduced to 32-byte chunks and the chunks are hashed pairwise into
// a binary tree of fixed height:
//
// 	      parent = SHA256( concat(left, right) )
//
// Height counts levels including the root.  A tree of height h holds up to
// 2^(h-1) leaves; leaves that are not backed by data are all-zero chunks and
// whole missing subtrees are replaced by a cached zero hash of their level.
//
// Tree Topology:
//
// For height 1 (one leaf, no hashing):
// 	      0: root = chunk1
//
// For height 2:
//	      1:      root = H(chunk1 + chunk2)
//	             /       \
//	      0:   chunk1   chunk2
//
// For height 3 with 3 chunks:
//	      2:            root = node12 + node3z
//	                    /           \
//	      1:        node12         node3z
//	               /     \        /      \
//	      0:   chunk1  chunk2   chunk3   zero
//
// For height 4 with 3 chunks:
//	      3:                    root = node12_3z + Z2
//	                              /       \
//	      2:              node12_3z         Z2 = ZeroHash(2)
//	                     /         \
//	      1:        node12         node3z
//	               /     \        /      \
//	      0:   chunk1  chunk2   chunk3   zero
//
// Packing:
//
// Basic values narrower than a chunk (integers, booleans) are packed: their
// little-endian bytes are laid out back to back and every 32 bytes form one
// leaf.  Anything else occupies a whole zero-padded chunk per value.
//
// Streaming:
//
// Hasher accepts the bytes of a collection in pushes of any size.  It hashes
// every completed pair of leaves immediately and keeps only the pair's hash,
// so memory stays proportional to half the number of data leaves no matter how
// far the tree is padded.
//
// Variable-length collections finish with MixInLength, which hashes the root
// together with the element count.
package treehash
