// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treehash

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrListTooLong is returned when a list holds more values than its limit.
var ErrListTooLong = errors.New("list exceeds its limit")

// ErrTreeTooDeep is returned when a requested capacity needs a tree taller
// than MaxTreeDepth.
var ErrTreeTooDeep = errors.New("tree exceeds max depth")

// AssertError identifies an error that indicates an internal code consistency
// issue and should be treated as a critical and unrecoverable error.  The
// engine panics with it instead of returning a root that could be wrong.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// fatalf logs the violated invariant and panics with an AssertError.
func fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Error().Str("invariant", msg).Msg("tree hash computation aborted")
	panic(AssertError(msg))
}

// checkHeight guards every entry point that takes a tree height.
func checkHeight(height int) {
	if height < 1 || height > MaxTreeDepth {
		fatalf("tree height %d is outside [1, %d]", height, MaxTreeDepth)
	}
}
