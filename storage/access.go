// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/audittracker/fault"
)

// Access - database access through a write batch
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Pending() int
	Put([]byte, []byte) error
}

// AccessData - batch plus read-your-writes overlay
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: cache,
	}
}

// Begin - start a batch, only one may be open
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrBatchInUse
	}

	d.inUse = true
	return nil
}

// Put - outside a batch the write goes straight to the database
func (d *AccessData) Put(key []byte, value []byte) error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return d.db.Put(key, value, nil)
	}
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
	return nil
}

// Delete - outside a batch the delete goes straight to the database
func (d *AccessData) Delete(key []byte) {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		_ = d.db.Delete(key, nil)
		return
	}
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch atomically and close it
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.ErrBatchNotInUse
	}

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	return err
}

// Abort - discard the batch
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// Get - overlay first then database
func (d *AccessData) Get(key []byte) ([]byte, error) {
	d.Lock()
	val, found := d.getFromCache(key)
	d.Unlock()

	if found {
		if nil == val {
			return nil, leveldb.ErrNotFound
		}
		return val, nil
	}
	return d.db.Get(key, nil)
}

func (d *AccessData) getFromCache(key []byte) ([]byte, bool) {
	if !d.inUse {
		return nil, false
	}
	return d.cache.Get(string(key))
}

// Iterator - committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// Has - overlay first then database
func (d *AccessData) Has(key []byte) (bool, error) {
	d.Lock()
	val, found := d.getFromCache(key)
	d.Unlock()

	if found {
		return nil != val, nil
	}
	return d.db.Has(key, nil)
}

// InUse - true while a batch is open
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Pending - number of keys written in the open batch
func (d *AccessData) Pending() int {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return 0
	}
	return d.cache.Len()
}
