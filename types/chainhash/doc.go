// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides abstracted hash functionality.
//
// This package provides a generic 32-byte hash type and the SHA-256 helpers
// used to build hash tree roots. Unlike the bitcoin-style hashes of the node,
// roots are printed and parsed in natural byte order.
package chainhash
