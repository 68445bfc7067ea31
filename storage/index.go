// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/wallet"
)

// IndexFunc - the keys a wallet holds in one index
type IndexFunc func(w *wallet.Wallet) ([]string, error)

// separates index name from key
const indexSeparator = 0x00

func indexKey(name string, key string) []byte {
	k := make([]byte, 0, len(name)+1+len(key))
	k = append(k, name...)
	k = append(k, indexSeparator)
	return append(k, key...)
}

// RegisterIndex - add a named secondary index maintained by Reindex
func (s *Store) RegisterIndex(name string, f IndexFunc) error {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.indexes[name]; ok {
		return fault.ErrDuplicateRegistration
	}
	s.indexes[name] = f
	return nil
}

// FindByIndex - the wallet holding a key in an index
//
// second result is false when no wallet holds the key
func (s *Store) FindByIndex(name string, key string) (*wallet.Wallet, bool, error) {
	s.RLock()
	defer s.RUnlock()

	if _, ok := s.indexes[name]; !ok {
		return nil, false, fault.ErrIndexNotRegistered
	}

	publicKey := s.pool.Indexes.Get(indexKey(name, key))
	if nil == publicKey {
		return nil, false, nil
	}
	w, err := s.getWallet(publicKey)
	if nil != err {
		return nil, false, err
	}
	if nil == w {
		return nil, false, nil
	}
	return w, true, nil
}

// ForgetIndex - drop every entry of an index and the attribute it is
// derived from, ready for a rebuild
func (s *Store) ForgetIndex(name string, attribute string) error {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.indexes[name]; !ok {
		return fault.ErrIndexNotRegistered
	}

	return s.batched(func() error {
		keys := [][]byte{}
		err := s.pool.Indexes.NewFetchCursor().Prefix(indexKey(name, "")).Map(func(key []byte, value []byte) error {
			keys = append(keys, key)
			return nil
		})
		if nil != err {
			return err
		}
		for _, key := range keys {
			s.pool.Indexes.Delete(key)
		}

		return s.pool.Wallets.NewFetchCursor().Map(func(key []byte, value []byte) error {
			w, err := wallet.Unpack(value)
			if nil != err {
				return err
			}
			if !w.HasAttribute(attribute) {
				return nil
			}
			w.ForgetAttribute(attribute)
			packed, err := w.Pack()
			if nil != err {
				return err
			}
			s.pool.Wallets.Put(key, packed)
			return nil
		})
	})
}
