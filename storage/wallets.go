// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/wallet"
)

// FindAccountByKey - the stored wallet of an account or a new empty one
func (s *Store) FindAccountByKey(acc *account.Account) (*wallet.Wallet, error) {
	s.RLock()
	defer s.RUnlock()

	w, err := s.getWallet(acc.PublicKey)
	if nil != err {
		return nil, err
	}
	if nil == w {
		return wallet.New(acc), nil
	}
	return w, nil
}

// HasAccount - true if a wallet was ever stored for the key
func (s *Store) HasAccount(publicKey []byte) bool {
	s.RLock()
	defer s.RUnlock()
	return s.pool.Wallets.Has(publicKey)
}

// Reindex - persist a wallet and bring every registered index up to date
func (s *Store) Reindex(w *wallet.Wallet) error {
	s.Lock()
	defer s.Unlock()

	return s.batched(func() error {
		return s.reindex(w)
	})
}

func (s *Store) reindex(w *wallet.Wallet) error {
	publicKey := w.PublicKey()

	old, err := s.getWallet(publicKey)
	if nil != err {
		return err
	}

	for name, f := range s.indexes {
		before := map[string]struct{}{}
		if nil != old {
			keys, err := f(old)
			if nil != err {
				return err
			}
			for _, key := range keys {
				before[key] = struct{}{}
			}
		}
		after := map[string]struct{}{}
		keys, err := f(w)
		if nil != err {
			return err
		}
		for _, key := range keys {
			after[key] = struct{}{}
		}

		for key := range before {
			if _, ok := after[key]; ok {
				continue
			}
			// only drop entries this wallet still owns
			if bytes.Equal(s.pool.Indexes.Get(indexKey(name, key)), publicKey) {
				s.pool.Indexes.Delete(indexKey(name, key))
			}
		}
		for key := range after {
			if _, ok := before[key]; ok {
				continue
			}
			s.pool.Indexes.Put(indexKey(name, key), publicKey)
		}
	}

	packed, err := w.Pack()
	if nil != err {
		return err
	}
	s.pool.Wallets.Put(publicKey, packed)
	return nil
}

// Wallets - every stored wallet in public key order
//
// only committed data is visible
func (s *Store) Wallets() ([]*wallet.Wallet, error) {
	s.RLock()
	defer s.RUnlock()

	wallets := []*wallet.Wallet{}
	err := s.pool.Wallets.NewFetchCursor().Map(func(key []byte, value []byte) error {
		w, err := wallet.Unpack(value)
		if nil != err {
			return err
		}
		wallets = append(wallets, w)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return wallets, nil
}

func (s *Store) getWallet(publicKey []byte) (*wallet.Wallet, error) {
	packed := s.pool.Wallets.Get(publicKey)
	if nil == packed {
		return nil, nil
	}
	return wallet.Unpack(packed)
}
