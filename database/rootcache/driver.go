// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rootcache

import (
	"sort"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownDriver is returned by Open for an unregistered db type.
	ErrUnknownDriver = errors.New("unknown root cache driver")

	// ErrDuplicateDriver is returned when a driver is registered twice.
	ErrDuplicateDriver = errors.New("duplicate root cache driver")
)

// Store is the key/value backend of a Cache.
type Store interface {
	// Get returns the value stored under key.  found is false, with a nil
	// error, when the key is absent.
	Get(key []byte) (value []byte, found bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(key, value []byte) error

	// Close releases the backend.
	Close() error
}

// Driver defines a structure for backend drivers to use when they registered
// themselves as a backend which implements the Store interface.
type Driver struct {
	// DbType is the identifier used to uniquely identify a specific
	// backend.
	DbType string

	// Open is the function that will be invoked with the path of the
	// database on disk.  Drivers without persistence ignore it.
	Open func(path string) (Store, error)
}

// drivers holds all of the registered database backends.
var drivers = make(map[string]*Driver)

// RegisterDriver adds a backend database driver to available interfaces.
// ErrDuplicateDriver is returned if the database type for the driver has
// already been registered.
func RegisterDriver(driver Driver) error {
	if _, exists := drivers[driver.DbType]; exists {
		return errors.Wrapf(ErrDuplicateDriver, "driver %q is already registered", driver.DbType)
	}

	drivers[driver.DbType] = &driver
	return nil
}

// SupportedDrivers returns a sorted slice of strings that represent the
// database drivers that have been registered and are therefore supported.
func SupportedDrivers() []string {
	supportedDBs := make([]string, 0, len(drivers))
	for _, drv := range drivers {
		supportedDBs = append(supportedDBs, drv.DbType)
	}
	sort.Strings(supportedDBs)
	return supportedDBs
}

// Open opens the store of the given type at path.
func Open(dbType, path string) (Store, error) {
	drv, exists := drivers[dbType]
	if !exists {
		return nil, errors.Wrapf(ErrUnknownDriver, "driver %q is not registered", dbType)
	}

	store, err := drv.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can not open %s root cache at %s", dbType, path)
	}

	log.Debug().Str("db_type", dbType).Str("path", path).Msg("root cache opened")
	return store, nil
}

func mustRegister(driver Driver) {
	if err := RegisterDriver(driver); err != nil {
		panic(err)
	}
}
