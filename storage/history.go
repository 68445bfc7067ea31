// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

var historyCounterKey = []byte("history")

func sequenceKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

// AppendHistory - record a committed transaction at the end of history
func (s *Store) AppendHistory(tx *transactionrecord.Transaction) (transactionrecord.Link, error) {
	s.Lock()
	defer s.Unlock()

	packed, err := tx.Pack()
	if nil != err {
		return transactionrecord.Link{}, err
	}
	txId := packed.MakeLink()

	err = s.batched(func() error {
		if s.pool.HistoryIndex.Has(txId[:]) {
			return fault.ErrTransactionAlreadyExists
		}
		next, _ := s.pool.Counters.GetN(historyCounterKey)
		s.pool.History.Put(sequenceKey(next), packed)
		s.pool.HistoryIndex.PutN(txId[:], next)
		s.pool.Counters.PutN(historyCounterKey, next+1)
		return nil
	})
	if nil != err {
		return transactionrecord.Link{}, err
	}
	return txId, nil
}

// RemoveHistory - drop the most recent transaction from history
//
// only the latest transaction may be removed
func (s *Store) RemoveHistory(txId transactionrecord.Link) error {
	s.Lock()
	defer s.Unlock()

	return s.batched(func() error {
		n, found := s.pool.HistoryIndex.GetN(txId[:])
		if !found {
			return fault.ErrTransactionNotFound
		}
		next, _ := s.pool.Counters.GetN(historyCounterKey)
		if n+1 != next {
			return fault.ErrNotRevertible
		}
		s.pool.History.Delete(sequenceKey(n))
		s.pool.HistoryIndex.Delete(txId[:])
		s.pool.Counters.PutN(historyCounterKey, n)
		return nil
	})
}

// HasTransaction - true if the id is in history
func (s *Store) HasTransaction(txId transactionrecord.Link) bool {
	s.RLock()
	defer s.RUnlock()
	return s.pool.HistoryIndex.Has(txId[:])
}

// HistoryCount - number of transactions in history
func (s *Store) HistoryCount() uint64 {
	s.RLock()
	defer s.RUnlock()
	n, _ := s.pool.Counters.GetN(historyCounterKey)
	return n
}

// ReplayHistory - call f with successive batches of committed
// transactions in commit order
//
// only committed data is visible, so call outside of a batch
func (s *Store) ReplayHistory(batchSize int, f func([]*transactionrecord.Transaction) error) error {
	if batchSize <= 0 {
		return fault.ErrInvalidCount
	}

	s.RLock()
	cursor := s.pool.History.NewFetchCursor()
	s.RUnlock()

	for {
		s.RLock()
		elements, err := cursor.Fetch(batchSize)
		s.RUnlock()
		if nil != err {
			return err
		}
		if 0 == len(elements) {
			return nil
		}

		txs := make([]*transactionrecord.Transaction, 0, len(elements))
		for _, e := range elements {
			tx, err := transactionrecord.Packed(e.Value).Unpack()
			if nil != err {
				return err
			}
			txs = append(txs, tx)
		}

		err = f(txs)
		if nil != err {
			return err
		}
	}
}
