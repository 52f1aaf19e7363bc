// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/treehash/types/chainhash"
	"gitlab.com/jaxnet/treehash/types/treehash"
)

// collectionSpec describes how typed values are combined into one root.
type collectionSpec struct {
	list  bool
	limit int
}

type rootFunc func(args []string, spec collectionSpec) (chainhash.Hash, error)

var valueTypes = map[string]rootFunc{
	"uint8":   uintRoot[treehash.Uint8],
	"uint16":  uintRoot[treehash.Uint16],
	"uint32":  uintRoot[treehash.Uint32],
	"uint64":  uintRoot[treehash.Uint64],
	"bool":    boolRoot,
	"bytes4":  bytes4Root,
	"bytes32": bytes32Root,
}

func typeNames() string {
	names := make([]string, 0, len(valueTypes))
	for name := range valueTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// valuesRoot parses args as values of the named type and returns the root of
// their collection.
func valuesRoot(typeName string, args []string, spec collectionSpec) (chainhash.Hash, error) {
	root, ok := valueTypes[strings.ToLower(typeName)]
	if !ok {
		return chainhash.Hash{}, errors.Errorf("unknown type %q, want one of {%s}", typeName, typeNames())
	}
	return root(args, spec)
}

func collectionRoot[T treehash.TreeHash](values []T, spec collectionSpec) (chainhash.Hash, error) {
	switch {
	case !spec.list:
		return treehash.VectorRoot(values), nil
	case spec.limit > 0:
		return treehash.ListRootWithLimit(values, spec.limit)
	default:
		return treehash.ListRoot(values), nil
	}
}

func uintRoot[T interface {
	treehash.Uint
	treehash.TreeHash
}](args []string, spec collectionSpec) (chainhash.Hash, error) {
	values := make([]T, len(args))
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 0, treehash.UintSize[T]()*8)
		if err != nil {
			return chainhash.Hash{}, errors.Wrapf(err, "value #%d", i)
		}
		values[i] = T(v)
	}
	return collectionRoot(values, spec)
}

func boolRoot(args []string, spec collectionSpec) (chainhash.Hash, error) {
	values := make([]treehash.Bool, len(args))
	for i, arg := range args {
		v, err := strconv.ParseBool(arg)
		if err != nil {
			return chainhash.Hash{}, errors.Wrapf(err, "value #%d", i)
		}
		values[i] = treehash.Bool(v)
	}
	return collectionRoot(values, spec)
}

func bytes4Root(args []string, spec collectionSpec) (chainhash.Hash, error) {
	values := make([]treehash.Bytes4, len(args))
	for i, arg := range args {
		if err := decodeFixedHex(values[i][:], arg); err != nil {
			return chainhash.Hash{}, errors.Wrapf(err, "value #%d", i)
		}
	}
	return collectionRoot(values, spec)
}

func bytes32Root(args []string, spec collectionSpec) (chainhash.Hash, error) {
	values := make([]treehash.Bytes32, len(args))
	for i, arg := range args {
		if err := decodeFixedHex(values[i][:], arg); err != nil {
			return chainhash.Hash{}, errors.Wrapf(err, "value #%d", i)
		}
	}
	return collectionRoot(values, spec)
}

// decodeFixedHex decodes src, with or without a 0x prefix, into exactly
// len(dst) bytes.
func decodeFixedHex(dst []byte, src string) error {
	src = strings.TrimPrefix(strings.TrimPrefix(src, "0x"), "0X")
	if hex.DecodedLen(len(src)) != len(dst) {
		return errors.Errorf("want %d hex-encoded bytes, got %q", len(dst), src)
	}
	_, err := hex.Decode(dst, []byte(src))
	return err
}
