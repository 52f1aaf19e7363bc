// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gitlab.com/jaxnet/treehash/types/treehash"
)

func randomValues(n int) ([]treehash.Bytes32, error) {
	values := make([]treehash.Bytes32, n)
	for i := range values {
		if _, err := rand.Read(values[i][:]); err != nil {
			return nil, errors.Wrap(err, "unable to read random bytes")
		}
	}
	return values, nil
}

// runBench computes the vector root of values up to loops times and stops
// early once interrupted is closed.  Every loop must yield the same root.
func runBench(values []treehash.Bytes32, loops int, interrupted <-chan struct{},
	log zerolog.Logger) ([]LoopResult, error) {
	height := treehash.NotPacked.HeightForValueCount(len(values))
	results := make([]LoopResult, 0, loops)

	for loop := 0; loop < loops; loop++ {
		if interruptRequested(interrupted) {
			log.Info().Int("done", loop).Int("loops", loops).Msg("benchmark interrupted")
			break
		}

		start := time.Now()
		root := treehash.VectorRoot(values)
		elapsed := time.Since(start)

		if loop > 0 && results[0].Root != root.String() {
			return results, errors.Errorf("loop %d produced root %s, loop 0 produced %s",
				loop, root, results[0].Root)
		}

		results = append(results, LoopResult{
			Loop:      loop,
			Values:    len(values),
			Height:    height,
			ElapsedNs: elapsed.Nanoseconds(),
			Root:      root.String(),
		})
		log.Trace().Int("loop", loop).Dur("elapsed", elapsed).Msg("loop done")
	}

	return results, nil
}

// summarize returns the total and mean loop time of results.
func summarize(results []LoopResult) (total, mean time.Duration) {
	for _, r := range results {
		total += time.Duration(r.ElapsedNs)
	}
	if len(results) > 0 {
		mean = total / time.Duration(len(results))
	}
	return total, mean
}
