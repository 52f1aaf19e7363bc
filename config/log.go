// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gitlab.com/jaxnet/treehash/corelog"
	"gitlab.com/jaxnet/treehash/database/rootcache"
	"gitlab.com/jaxnet/treehash/types/treehash"
)

// Units that accept an individual log level.
const (
	UnitTreeHash  = "treehash"
	UnitRootCache = "rootcache"
	UnitCLI       = "cli"
	UnitBench     = "bench"
)

var knownUnits = map[string]struct{}{
	UnitTreeHash:  {},
	UnitRootCache: {},
	UnitCLI:       {},
	UnitBench:     {},
}

// logLevels is the parsed form of Config.LogLevel.
type logLevels struct {
	all   zerolog.Level
	units map[string]zerolog.Level
}

func (l logLevels) level(unit string) zerolog.Level {
	if level, ok := l.units[unit]; ok {
		return level
	}
	return l.all
}

// supportedUnits returns a sorted slice of the supported units for
// logging purposes.
func supportedUnits() []string {
	units := make([]string, 0, len(knownUnits))
	for unit := range knownUnits {
		units = append(units, unit)
	}

	// Sort the units for stable display.
	sort.Strings(units)
	return units
}

// parseLevels attempts to parse the specified log level.  A plain level
// applies to every unit, a list of unit=level pairs overrides single units.
func parseLevels(logLevel string) (logLevels, error) {
	levels := logLevels{all: corelog.DefaultLevel, units: map[string]zerolog.Level{}}

	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all units.
	if !strings.Contains(logLevel, ",") && !strings.Contains(logLevel, "=") {
		level, err := corelog.ParseLevel(logLevel)
		if err != nil {
			return levels, errors.Errorf("the specified log level [%v] is invalid", logLevel)
		}
		levels.all = level
		return levels, nil
	}

	// Split the specified string into unit/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, pair := range strings.Split(logLevel, ",") {
		if !strings.Contains(pair, "=") {
			return levels, errors.Errorf("the specified log level contains an "+
				"invalid unit/level pair [%v]", pair)
		}

		fields := strings.SplitN(pair, "=", 2)
		unit, name := fields[0], fields[1]

		if _, ok := knownUnits[unit]; !ok {
			return levels, errors.Errorf("the specified unit [%v] is invalid -- "+
				"supported units %v", unit, supportedUnits())
		}

		level, err := corelog.ParseLevel(name)
		if err != nil {
			return levels, errors.Errorf("the specified log level [%v] is invalid", name)
		}
		levels.units[unit] = level
	}

	return levels, nil
}

// Logger returns the logger of unit at the level the config selects for it.
// An invalid LogLevel falls back to corelog.DefaultLevel.
func (cfg *Config) Logger(unit string) zerolog.Logger {
	levels, _ := parseLevels(cfg.LogLevel)
	return corelog.New(unit, levels.level(unit), cfg.Logging)
}

// UseLoggers wires the library packages to loggers built from the config.
func (cfg *Config) UseLoggers() {
	treehash.UseLogger(cfg.Logger(UnitTreeHash))
	rootcache.UseLogger(cfg.Logger(UnitRootCache))
}
