// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gitlab.com/jaxnet/treehash/config"
)

func main() {
	if err := treebenchMain(os.Args[1:]); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func treebenchMain(args []string) error {
	cfg, _, err := config.LoadConfig(args)
	if err != nil {
		return err
	}

	cfg.UseLoggers()
	log := cfg.Logger(config.UnitBench)
	interrupted := interruptListener(log)

	values, err := randomValues(cfg.Bench.Values)
	if err != nil {
		return err
	}

	log.Info().Int("values", cfg.Bench.Values).Int("loops", cfg.Bench.Loops).Msg("benchmark started")
	results, err := runBench(values, cfg.Bench.Loops, interrupted, log)
	if err != nil {
		return err
	}

	total, mean := summarize(results)
	log.Info().
		Int("loops", len(results)).
		Dur("total", total).
		Dur("mean", mean).
		Msg("benchmark finished")

	if cfg.Bench.CSVFile == "" {
		return nil
	}

	path := config.CleanAndExpandPath(cfg.Bench.CSVFile)
	if err := NewCSVStorage(path).SaveRows(results); err != nil {
		return errors.Wrap(err, "unable to save report")
	}
	log.Info().Str("path", path).Msg("report saved")
	return nil
}
