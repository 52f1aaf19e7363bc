// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rootcache

import "sync"

const memoryDbType = "memory"

type memoryDB struct {
	sync.RWMutex
	values map[string][]byte
}

// MemoryDB returns a Store kept in process memory.
func MemoryDB() Store {
	return &memoryDB{values: make(map[string][]byte)}
}

func (d *memoryDB) Get(key []byte) ([]byte, bool, error) {
	d.RLock()
	value, ok := d.values[string(key)]
	d.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (d *memoryDB) Put(key, value []byte) error {
	d.Lock()
	d.values[string(key)] = append([]byte(nil), value...)
	d.Unlock()
	return nil
}

func (d *memoryDB) Close() error {
	d.Lock()
	d.values = make(map[string][]byte)
	d.Unlock()
	return nil
}

func init() {
	mustRegister(Driver{
		DbType: memoryDbType,
		Open:   func(string) (Store, error) { return MemoryDB(), nil },
	})
}
