// Copyright (c) 2015 The Decred developers
// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"github.com/minio/sha256-simd"
)

// HashB calculates hash(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// HashH calculates hash(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// HashConcat calculates hash(left || right) without allocating the
// concatenation.  It is the parent function of every binary tree in this
// module.
func HashConcat(left, right []byte) Hash {
	var buf [HashSize * 2]byte
	if len(left)+len(right) <= len(buf) {
		n := copy(buf[:], left)
		n += copy(buf[n:], right)
		return Hash(sha256.Sum256(buf[:n]))
	}

	h := sha256.New()
	_, _ = h.Write(left)
	_, _ = h.Write(right)

	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}
