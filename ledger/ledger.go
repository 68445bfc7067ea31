// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"
	"math"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/chain"
	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/handler"
	"github.com/bitmark-inc/audittracker/reservoir"
	"github.com/bitmark-inc/audittracker/storage"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

// DefaultBatchSize - bootstrap replay batch size
const DefaultBatchSize = 1000

// Options - pipeline parameters
type Options struct {
	Chain      string
	AddonBytes uint64
	FeePerByte uint64
	BatchSize  int
}

// Ledger - pipeline from submission to committed state
type Ledger struct {
	sync.Mutex
	log      *logger.L
	options  Options
	network  byte
	registry *handler.Registry
	store    *storage.Store
	pool     *reservoir.Pool
	sink     handler.EventSink
}

// New - create the pipeline and register the store indexes of all
// handlers
func New(options Options, registry *handler.Registry, store *storage.Store, pool *reservoir.Pool, sink handler.EventSink) (*Ledger, error) {

	log := logger.New("ledger")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	if !chain.Valid(options.Chain) {
		return nil, fault.ErrInvalidChain
	}
	if options.BatchSize <= 0 {
		options.BatchSize = DefaultBatchSize
	}

	for _, kind := range registry.Kinds() {
		h, _ := registry.Get(kind)
		indexer, ok := h.(handler.Indexer)
		if !ok {
			continue
		}
		for name, f := range indexer.Indexes() {
			err := store.RegisterIndex(name, f)
			if nil != err {
				return nil, err
			}
			log.Debugf("kind: %s  index: %s", kind, name)
		}
	}

	log.Infof("chain: %s  kinds: %v", options.Chain, registry.Kinds())

	return &Ledger{
		log:      log,
		options:  options,
		network:  chain.NetworkByte(options.Chain),
		registry: registry,
		store:    store,
		pool:     pool,
		sink:     sink,
	}, nil
}

// Submit - decode a packed transaction and submit it
func (l *Ledger) Submit(packed transactionrecord.Packed) (transactionrecord.Link, error) {
	tx, err := packed.Unpack()
	if nil != err {
		return transactionrecord.Link{}, err
	}
	return l.SubmitTransaction(tx)
}

// SubmitTransaction - check a transaction and admit it to the pool
func (l *Ledger) SubmitTransaction(tx *transactionrecord.Transaction) (transactionrecord.Link, error) {

	h, err := l.check(tx)
	if nil != err {
		if fault.ErrHandlerNotActivated == err || fault.ErrUnknownTransactionKind == err {
			l.pool.PushAdmissionError(tx, reservoir.ErrCodeUnsupported, fmt.Sprintf("transaction kind: %s is not accepted", tx.Kind))
			return transactionrecord.Link{}, fault.ErrPoolUnsupported
		}
		return transactionrecord.Link{}, err
	}

	minimumFee, err := h.DynamicFee(tx, l.options.AddonBytes, l.options.FeePerByte)
	if nil != err {
		return transactionrecord.Link{}, err
	}
	if tx.Fee < minimumFee {
		l.pool.PushAdmissionError(tx, reservoir.ErrCodeLowFee, fmt.Sprintf("fee: %d is below minimum: %d", tx.Fee, minimumFee))
		return transactionrecord.Link{}, fault.ErrPoolFeeTooLow
	}

	txId, err := tx.Id()
	if nil != err {
		return transactionrecord.Link{}, err
	}

	// no block may be half applied while committed state is read
	l.Lock()
	defer l.Unlock()

	if l.store.HasTransaction(txId) {
		l.pool.PushAdmissionError(tx, reservoir.ErrCodeDuplicate, "transaction already committed")
		return txId, fault.ErrTransactionAlreadyExists
	}

	err = h.CanBeAccepted(tx, l.store)
	if nil != err {
		l.pool.PushAdmissionError(tx, reservoir.ErrCodeApply, err.Error())
		l.log.Infof("submit: %s  kind: %s  rejected: %s", txId, tx.Kind, err)
		return txId, err
	}

	txId, err = l.pool.Admit(tx, h)
	if nil != err {
		l.log.Infof("submit: %s  kind: %s  rejected: %s", txId, tx.Kind, err)
		return txId, err
	}

	l.log.Infof("submit: %s  kind: %s  accepted", txId, tx.Kind)
	return txId, nil
}

// Commit - apply a block atomically
func (l *Ledger) Commit(block []*transactionrecord.Transaction) error {
	if 0 == len(block) {
		return fault.ErrBlockIsEmpty
	}

	l.Lock()
	defer l.Unlock()

	err := l.store.Begin()
	if nil != err {
		return err
	}

	handlers := make([]handler.Handler, len(block))
	txIds := make([]transactionrecord.Link, len(block))
	for i, tx := range block {
		h, txId, err := l.apply(tx)
		if nil != err {
			l.store.Abort()
			l.log.Warnf("block invalid at: %d  error: %s", i, err)
			return err
		}
		handlers[i] = h
		txIds[i] = txId
	}

	err = l.store.Commit()
	if nil != err {
		return err
	}

	for i, tx := range block {
		l.pool.Remove(txIds[i])
		handlers[i].EmitEvents(tx, l.sink)
	}

	l.log.Infof("committed: %d transactions", len(block))
	return nil
}

func (l *Ledger) apply(tx *transactionrecord.Transaction) (handler.Handler, transactionrecord.Link, error) {
	h, err := l.check(tx)
	if nil != err {
		return nil, transactionrecord.Link{}, err
	}

	w, err := l.store.FindAccountByKey(tx.Sender)
	if nil != err {
		return nil, transactionrecord.Link{}, err
	}
	err = h.ThrowIfCannotBeApplied(tx, w, l.store)
	if nil != err {
		return nil, transactionrecord.Link{}, err
	}
	err = h.ApplyToSender(tx, l.store)
	if nil != err {
		return nil, transactionrecord.Link{}, err
	}
	err = h.ApplyToRecipient(tx, l.store)
	if nil != err {
		return nil, transactionrecord.Link{}, err
	}

	txId, err := l.store.AppendHistory(tx)
	if nil != err {
		return nil, transactionrecord.Link{}, err
	}
	return h, txId, nil
}

// Revert - undo a committed block, last transaction first
func (l *Ledger) Revert(block []*transactionrecord.Transaction) error {
	if 0 == len(block) {
		return fault.ErrBlockIsEmpty
	}

	l.Lock()
	defer l.Unlock()

	err := l.store.Begin()
	if nil != err {
		return err
	}

	for i := len(block) - 1; i >= 0; i -= 1 {
		err := l.revert(block[i])
		if nil != err {
			l.store.Abort()
			l.log.Warnf("revert failed at: %d  error: %s", i, err)
			return err
		}
	}

	err = l.store.Commit()
	if nil != err {
		return err
	}

	l.log.Infof("reverted: %d transactions", len(block))
	return nil
}

func (l *Ledger) revert(tx *transactionrecord.Transaction) error {
	h, ok := l.registry.Get(tx.Kind)
	if !ok {
		return fault.ErrUnknownTransactionKind
	}
	txId, err := tx.Id()
	if nil != err {
		return err
	}

	err = h.RevertForRecipient(tx, l.store)
	if nil != err {
		return err
	}
	err = h.RevertForSender(tx, l.store)
	if nil != err {
		return err
	}
	return l.store.RemoveHistory(txId)
}

// Bootstrap - rebuild derived account state from history
func (l *Ledger) Bootstrap() error {
	l.Lock()
	defer l.Unlock()

	for _, kind := range l.registry.Kinds() {
		h, _ := l.registry.Get(kind)
		err := h.Bootstrap(l.store, l.options.BatchSize)
		if nil != err {
			l.log.Errorf("bootstrap: %s  error: %s", kind, err)
			return err
		}
	}

	l.log.Infof("bootstrap complete  history: %d  batch size: %d", l.store.HistoryCount(), l.options.BatchSize)
	return nil
}

// Credit - add to the balance of an account, used for genesis funding
func (l *Ledger) Credit(acc *account.Account, amount uint64) error {
	l.Lock()
	defer l.Unlock()

	w, err := l.store.FindAccountByKey(acc)
	if nil != err {
		return err
	}
	if w.Balance > math.MaxUint64-amount {
		return fault.ErrInsufficientBalance
	}
	w.Balance += amount

	l.log.Infof("credit: %s  amount: %d  balance: %d", acc, amount, w.Balance)
	return l.store.Reindex(w)
}

// checks common to submit and commit
func (l *Ledger) check(tx *transactionrecord.Transaction) (handler.Handler, error) {
	if nil == tx {
		return nil, fault.ErrMissingAsset
	}
	if l.network != tx.Network {
		return nil, fault.ErrInvalidChain
	}
	err := tx.Verify()
	if nil != err {
		return nil, err
	}

	h, err := l.registry.Activated(tx.Kind)
	if nil != err {
		return nil, err
	}

	err = h.Validate(tx)
	if nil != err {
		return nil, err
	}
	return h, nil
}
