// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rootcache

import (
	"os"

	"github.com/dgraph-io/badger"
	"github.com/pkg/errors"
)

const badgerDbType = "badger"

type badgerDB struct {
	db *badger.DB
}

// BadgerDB opens (or creates) a badger backed Store at path.
func BadgerDB(path string) (Store, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, errors.Wrap(err, "can not create badger directory")
	}

	opts := badger.DefaultOptions(path).WithLogger(badgerLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "can not open badger")
	}

	return &badgerDB{db: db}, nil
}

func (b *badgerDB) Get(key []byte) (value []byte, found bool, err error) {
	err = b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)
		found = err == nil
		return err
	})
	return value, found, err
}

func (b *badgerDB) Put(key, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (b *badgerDB) Close() error {
	return b.db.Close()
}

// badgerLogger routes badger's own messages to the package logger.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	log.Error().Str("db_type", badgerDbType).Msgf(format, args...)
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	log.Warn().Str("db_type", badgerDbType).Msgf(format, args...)
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	log.Debug().Str("db_type", badgerDbType).Msgf(format, args...)
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	log.Trace().Str("db_type", badgerDbType).Msgf(format, args...)
}

func init() {
	mustRegister(Driver{DbType: badgerDbType, Open: BadgerDB})
}
