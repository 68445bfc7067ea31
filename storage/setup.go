// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/logger"
)

// the prefixed tables
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Wallets      *PoolHandle `prefix:"W"`
	Indexes      *PoolHandle `prefix:"I"`
	History      *PoolHandle `prefix:"T"`
	HistoryIndex *PoolHandle `prefix:"X"`
	Counters     *PoolHandle `prefix:"N"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// Store - account store over one leveldb database
type Store struct {
	sync.RWMutex
	log     *logger.L
	db      *leveldb.DB
	access  Access
	pool    pools
	indexes map[string]IndexFunc
}

// Open - open or create a database directory
func Open(directory string) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}
	db, err := leveldb.OpenFile(directory, opt)
	if nil != err {
		return nil, err
	}
	return newStore(db, newCache())
}

// OpenMemory - a database that is discarded on Close
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return newStore(db, newCache())
}

func newStore(db *leveldb.DB, cache Cache) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}
	switch version {
	case 0:
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	case currentDBVersion:
	default:
		return nil, fmt.Errorf("database version: %d  expected: %d", version, currentDBVersion)
	}

	s := &Store{
		log:     logger.New("storage"),
		db:      db,
		access:  newDA(db, new(leveldb.Batch), cache),
		indexes: make(map[string]IndexFunc),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(s.pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: s.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	s.log.Infof("opened database version: 0x%x", currentDBVersion)

	ok = true // prevent db close
	return s, nil
}

// Close - close the database
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	s.access.Abort()
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// Begin - start a block level batch
func (s *Store) Begin() error {
	return s.access.Begin()
}

// Commit - write the open batch atomically
func (s *Store) Commit() error {
	n := s.access.Pending()
	err := s.access.Commit()
	if nil != err {
		s.log.Errorf("commit error: %s", err)
		return err
	}
	s.log.Debugf("committed: %d keys", n)
	return nil
}

// Abort - discard everything written since Begin
func (s *Store) Abort() {
	s.access.Abort()
	s.log.Debug("batch aborted")
}

// InBatch - true while a batch is open
func (s *Store) InBatch() bool {
	return s.access.InUse()
}

// run f inside a batch unless one is already open
func (s *Store) batched(f func() error) error {
	if s.access.InUse() {
		return f()
	}
	err := s.access.Begin()
	if nil != err {
		return err
	}
	err = f()
	if nil != err {
		s.access.Abort()
		return err
	}
	return s.access.Commit()
}

// returns version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fault.ErrTruncatedRecord
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
