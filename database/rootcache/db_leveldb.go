// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rootcache

import (
	"github.com/btcsuite/goleveldb/leveldb"
	"github.com/pkg/errors"
)

const levelDbType = "leveldb"

type levelDB struct {
	db *leveldb.DB
}

// LevelDB opens (or creates) a leveldb backed Store at path.
func LevelDB(path string) (Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "can not open leveldb")
	}
	return &levelDB{db: db}, nil
}

func (l *levelDB) Get(key []byte) ([]byte, bool, error) {
	value, err := l.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (l *levelDB) Put(key, value []byte) error {
	return l.db.Put(key, value, nil)
}

func (l *levelDB) Close() error {
	return l.db.Close()
}

func init() {
	mustRegister(Driver{DbType: levelDbType, Open: LevelDB})
}
