// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/treehash/config"
	"gitlab.com/jaxnet/treehash/corelog"
	"gitlab.com/jaxnet/treehash/database/rootcache"
)

func main() {
	err := newCliApp(&App{}).Run(os.Args)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func newCliApp(app *App) *cli.App {
	return &cli.App{
		Name:     "treehash",
		Usage:    "SSZ hash tree roots of values and files",
		Flags:    app.InitFlags(),
		Before:   app.InitCfg,
		After:    app.Close,
		Commands: app.getCommands(),
	}
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:      "root",
			Usage:     "hash tree root of a vector or list of basic values",
			ArgsUsage: "VALUES...",
			Flags: []cli.Flag{
				standardFlags[flagType],
				standardFlags[flagList],
				standardFlags[flagLimit],
			},
			Action: app.RootCmd,
		},
		{
			Name:      "file",
			Usage:     "merkle root of the file contents split into 32-byte leaves",
			ArgsUsage: "PATH",
			Flags: []cli.Flag{
				standardFlags[flagMinLeaves],
				standardFlags[flagNoCache],
			},
			Action: app.FileCmd,
		},
		{
			Name:  "height",
			Usage: "height of the tree holding a number of values",
			Flags: []cli.Flag{
				standardFlags[flagCount],
				standardFlags[flagPackingFactor],
			},
			Action: app.HeightCmd,
		},
		{
			Name:  "zero-hashes",
			Usage: "roots of all-zero subtrees",
			Flags: []cli.Flag{
				standardFlags[flagDepth],
				standardFlags[flagDump],
			},
			Action: app.ZeroHashesCmd,
		},
		{
			Name:  "mix-in",
			Usage: "mix a length into a root",
			Flags: []cli.Flag{
				standardFlags[flagRoot],
				standardFlags[flagLength],
			},
			Action: app.MixInCmd,
		},
	}
}

type App struct {
	config config.Config
	log    zerolog.Logger
	cache  *rootcache.Cache
}

func (app *App) InitFlags() []cli.Flag {
	return []cli.Flag{
		standardFlags[flagConfig],
		standardFlags[flagLogLevel],
		standardFlags[flagDataDir],
		standardFlags[flagDBType],
	}
}

func (app *App) InitCfg(c *cli.Context) error {
	app.config = config.Default()
	app.log = corelog.Disabled

	if path := c.String(flagConfig); path != "" {
		if err := config.LoadFile(config.CleanAndExpandPath(path), &app.config); err != nil {
			return cli.NewExitError(err, 1)
		}
		app.config.ConfigFile = path
	}

	if c.IsSet(flagLogLevel) {
		app.config.LogLevel = c.String(flagLogLevel)
	}
	if c.IsSet(flagDataDir) {
		app.config.DataDir = c.String(flagDataDir)
	}
	if c.IsSet(flagDBType) {
		app.config.DBType = c.String(flagDBType)
	}

	app.config.Normalize()
	if err := app.config.Validate(); err != nil {
		return cli.NewExitError(err, 1)
	}

	app.config.UseLoggers()
	app.log = app.config.Logger(config.UnitCLI)
	app.log.Debug().
		Str("data_dir", app.config.DataDir).
		Str("db_type", app.config.DBType).
		Msg("configuration loaded")
	return nil
}

// Cache opens the root cache on first use.
func (app *App) Cache() (*rootcache.Cache, error) {
	if app.cache != nil {
		return app.cache, nil
	}

	cache, err := app.config.OpenCache()
	if err != nil {
		return nil, err
	}
	app.cache = cache
	return cache, nil
}

func (app *App) Close(*cli.Context) error {
	if app.cache == nil {
		return nil
	}

	hits, misses := app.cache.Stats()
	app.log.Debug().Uint64("hits", hits).Uint64("misses", misses).Msg("closing root cache")

	err := app.cache.Close()
	app.cache = nil
	return err
}
