// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/treehash/types/treehash"
)

const (
	flagConfig   = "config"
	flagLogLevel = "loglevel"
	flagDataDir  = "datadir"
	flagDBType   = "dbtype"

	flagType          = "type"
	flagList          = "list"
	flagLimit         = "limit"
	flagMinLeaves     = "min-leaves"
	flagNoCache       = "no-cache"
	flagCount         = "count"
	flagPackingFactor = "packing-factor"
	flagDepth         = "depth"
	flagDump          = "dump"
	flagRoot          = "root"
	flagLength        = "length"
)

var standardFlags = map[string]cli.Flag{
	flagConfig: &cli.StringFlag{
		Name:    flagConfig,
		Aliases: []string{"C"},
		Usage:   "path to yaml configuration file",
	},
	flagLogLevel: &cli.StringFlag{
		Name:    flagLogLevel,
		Aliases: []string{"d"},
		Usage:   "log level for all units, or <unit>=<level> pairs",
	},
	flagDataDir: &cli.StringFlag{
		Name:    flagDataDir,
		Aliases: []string{"b"},
		Usage:   "directory to store the root cache",
	},
	flagDBType: &cli.StringFlag{
		Name:  flagDBType,
		Usage: "root cache backend {badger, leveldb, memory}",
	},

	flagType: &cli.StringFlag{
		Name:     flagType,
		Aliases:  []string{"t"},
		Usage:    "element type {" + typeNames() + "}",
		Required: true,
	},
	flagList: &cli.BoolFlag{
		Name:  flagList,
		Usage: "hash a variable-length list (mixes in the length)",
	},
	flagLimit: &cli.IntFlag{
		Name:  flagLimit,
		Usage: "maximum list length; sizes the tree of a list",
	},
	flagMinLeaves: &cli.IntFlag{
		Name:  flagMinLeaves,
		Usage: "pad the tree to at least this many leaves",
	},
	flagNoCache: &cli.BoolFlag{
		Name:  flagNoCache,
		Usage: "bypass the root cache",
	},
	flagCount: &cli.IntFlag{
		Name:     flagCount,
		Aliases:  []string{"n"},
		Usage:    "number of values",
		Required: true,
	},
	flagPackingFactor: &cli.IntFlag{
		Name:  flagPackingFactor,
		Usage: "values per leaf, 1 to 32",
		Value: 1,
	},
	flagDepth: &cli.IntFlag{
		Name:  flagDepth,
		Usage: "last height to print",
		Value: treehash.MaxTreeDepth,
	},
	flagDump: &cli.BoolFlag{
		Name:  flagDump,
		Usage: "dump raw table bytes",
	},
	flagRoot: &cli.StringFlag{
		Name:     flagRoot,
		Usage:    "hex-encoded 32-byte root",
		Required: true,
	},
	flagLength: &cli.Uint64Flag{
		Name:     flagLength,
		Usage:    "length to mix in",
		Required: true,
	},
}
