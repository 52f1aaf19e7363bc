// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/treehash/types/chainhash"
	"gitlab.com/jaxnet/treehash/types/treehash"
)

func (app *App) RootCmd(c *cli.Context) error {
	spec := collectionSpec{list: c.Bool(flagList), limit: c.Int(flagLimit)}
	if spec.limit < 0 || (spec.limit > 0 && !spec.list) {
		return cli.NewExitError("--limit needs --list and a positive value", 1)
	}

	root, err := valuesRoot(c.String(flagType), c.Args().Slice(), spec)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to compute root"), 1)
	}

	app.log.Debug().Str("type", c.String(flagType)).Int("values", c.Args().Len()).
		Bool("list", spec.list).Msg("root computed")
	fmt.Fprintln(c.App.Writer, root)
	return nil
}

func (app *App) FileCmd(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return cli.NewExitError("exactly one PATH is required", 1)
	}

	minLeaves := c.Int(flagMinLeaves)
	if minLeaves < 0 || minLeaves > treehash.MaxLeafCount {
		return cli.NewExitError(fmt.Sprintf("--min-leaves must be in [0, %d]", treehash.MaxLeafCount), 1)
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to read file"), 1)
	}

	var root chainhash.Hash
	if c.Bool(flagNoCache) {
		root = treehash.MerkleRoot(data, minLeaves)
	} else {
		cache, err := app.Cache()
		if err != nil {
			return cli.NewExitError(errors.Wrap(err, "unable to open root cache"), 1)
		}
		root, err = cache.MerkleRoot(data, minLeaves)
		if err != nil {
			return cli.NewExitError(errors.Wrap(err, "unable to compute root"), 1)
		}
	}

	fmt.Fprintln(c.App.Writer, root)
	return nil
}

func (app *App) HeightCmd(c *cli.Context) error {
	count := c.Int(flagCount)
	if count < 0 {
		return cli.NewExitError("--count must not be negative", 1)
	}

	factor := c.Int(flagPackingFactor)
	if factor < 1 || factor > treehash.BytesPerChunk {
		return cli.NewExitError(fmt.Sprintf("--packing-factor must be in [1, %d]", treehash.BytesPerChunk), 1)
	}

	packing := treehash.Packed(factor)
	app.log.Debug().Stringer("packing", packing).Int("leaves", packing.LeafCount(count)).Msg("height")
	fmt.Fprintln(c.App.Writer, packing.HeightForValueCount(count))
	return nil
}

func (app *App) ZeroHashesCmd(c *cli.Context) error {
	depth := c.Int(flagDepth)
	if depth < 0 || depth > treehash.MaxTreeDepth {
		return cli.NewExitError(fmt.Sprintf("--depth must be in [0, %d]", treehash.MaxTreeDepth), 1)
	}

	table := make([]chainhash.Hash, depth+1)
	for i := range table {
		table[i] = treehash.ZeroHash(i)
	}

	if c.Bool(flagDump) {
		spew.Fdump(c.App.Writer, table)
		return nil
	}

	for i, hash := range table {
		fmt.Fprintf(c.App.Writer, "%2d %s\n", i, hash)
	}
	return nil
}

func (app *App) MixInCmd(c *cli.Context) error {
	rootHex := strings.TrimPrefix(c.String(flagRoot), "0x")
	if len(rootHex) != chainhash.MaxHashStringSize {
		return cli.NewExitError(fmt.Sprintf("--root must be %d hex characters, got %d",
			chainhash.MaxHashStringSize, len(rootHex)), 1)
	}

	root, err := chainhash.NewHashFromStr(rootHex)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "invalid root"), 1)
	}

	fmt.Fprintln(c.App.Writer, treehash.MixInLength(*root, c.Uint64(flagLength)))
	return nil
}
