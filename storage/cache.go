// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// kind of write held in the overlay
const (
	dbPut = iota
	dbDelete
)

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// Cache - read-your-writes overlay of the open batch
//
// Get returns found with a nil value for a key deleted in the overlay
type Cache interface {
	Get(string) ([]byte, bool)
	Set(int, string, []byte)
	Clear()
	Len() int
}

// entries live exactly as long as the batch, so no expiry and no
// janitor goroutine
type overlay struct {
	entries *cache.Cache
}

type overlayEntry struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &overlay{
		entries: cache.New(cache.NoExpiration, 0),
	}
}

func (o *overlay) Get(key string) ([]byte, bool) {
	item, found := o.entries.Get(key)
	if !found {
		return nil, false
	}

	entry := item.(overlayEntry)
	if dbDelete == entry.op {
		return nil, true
	}
	return entry.value, true
}

// Set - the value is copied, the caller may reuse its buffer
func (o *overlay) Set(op int, key string, value []byte) {
	entry := overlayEntry{
		op: op,
	}
	if dbPut == op {
		entry.value = make([]byte, len(value))
		copy(entry.value, value)
	}
	o.entries.Set(key, entry, cache.NoExpiration)
}

func (o *overlay) Clear() {
	o.entries.Flush()
}

func (o *overlay) Len() int {
	return o.entries.ItemCount()
}
