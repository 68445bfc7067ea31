// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/audittracker/background"
	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

// defaults
const (
	DefaultExpiry = 2 * time.Hour
	DefaultRate   = 100.0
	DefaultBurst  = 200

	// limit the retained errors per transaction
	maximumErrors = 10
)

// Configuration - pool limits
//
// a zero or negative rate disables rate limiting
type Configuration struct {
	Expiry time.Duration
	Rate   float64
	Burst  int
}

// AdmissionError - reason a transaction was not accepted
type AdmissionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error - the error interface
func (e AdmissionError) Error() string {
	return e.Code + ": " + e.Message
}

type pendingItem struct {
	sequence uint64
	tx       *transactionrecord.Transaction
}

// Pool - pending transactions
type Pool struct {
	sync.Mutex
	log      *logger.L
	pending  *cache.Cache
	errors   *cache.Cache
	limiter  *rate.Limiter
	sequence uint64
	expiry   expiryData
	bg       *background.T
}

// New - create a pool and start its expiry process
func New(configuration Configuration) (*Pool, error) {

	log := logger.New("reservoir")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	expiry := configuration.Expiry
	if expiry <= 0 {
		expiry = DefaultExpiry
	}

	limit := rate.Inf
	if configuration.Rate > 0 {
		limit = rate.Limit(configuration.Rate)
	}
	burst := configuration.Burst
	if burst <= 0 {
		burst = DefaultBurst
	}

	p := &Pool{
		log:     log,
		pending: cache.New(expiry, cache.NoExpiration),
		errors:  cache.New(expiry, cache.NoExpiration),
		limiter: rate.NewLimiter(limit, burst),
		expiry: expiryData{
			log:    logger.New("reservoir-expiry"),
			period: expiryPeriod(expiry),
		},
	}
	p.pending.OnEvicted(func(key string, value interface{}) {
		p.log.Debugf("evicted: %s", key)
	})

	log.Infof("starting… expiry: %s  rate: %v  burst: %d", expiry, limit, burst)

	p.bg = background.Start(background.Processes{&p.expiry}, p)

	return p, nil
}

// Close - stop the expiry process
func (p *Pool) Close() {
	p.bg.Stop()
	p.log.Info("finished")
	p.log.Flush()
}

// Admit - check a transaction with its guard and insert it
//
// the returned error is a pool fault, the detailed reason is also
// available from Errors
func (p *Pool) Admit(tx *transactionrecord.Transaction, guard Guard) (transactionrecord.Link, error) {

	txId, err := tx.Id()
	if nil != err {
		return transactionrecord.Link{}, err
	}

	p.Lock()
	defer p.Unlock()

	if !p.limiter.Allow() {
		p.pushError(txId, ErrCodeRateLimited, "pool submission rate exceeded")
		return txId, fault.ErrPoolRateLimited
	}

	if _, found := p.pending.Get(txId.String()); found {
		p.pushError(txId, ErrCodeDuplicate, fmt.Sprintf("transaction %s already in the pool", txId))
		return txId, fault.ErrPoolDuplicate
	}

	if !guard.CanEnterPool(tx, pendingView{p}) {
		p.log.Debugf("rejected: %s", txId)
		return txId, fault.ErrPendingConflict
	}

	p.sequence += 1
	p.pending.SetDefault(txId.String(), &pendingItem{
		sequence: p.sequence,
		tx:       tx,
	})
	p.log.Debugf("admitted: %s  kind: %s", txId, tx.Kind)

	return txId, nil
}

// TransactionsOfKind - pending transactions of one kind in admission order
func (p *Pool) TransactionsOfKind(kind transactionrecord.Kind) []*transactionrecord.Transaction {
	p.Lock()
	defer p.Unlock()
	return p.transactionsOfKind(kind)
}

func (p *Pool) transactionsOfKind(kind transactionrecord.Kind) []*transactionrecord.Transaction {
	items := make([]*pendingItem, 0)
	for _, item := range p.pending.Items() {
		entry := item.Object.(*pendingItem)
		if kind == entry.tx.Kind {
			items = append(items, entry)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].sequence < items[j].sequence
	})

	txs := make([]*transactionrecord.Transaction, len(items))
	for i, entry := range items {
		txs[i] = entry.tx
	}
	return txs
}

// PushAdmissionError - record a rejection reason for a transaction
func (p *Pool) PushAdmissionError(tx *transactionrecord.Transaction, code string, message string) {
	txId, err := tx.Id()
	if nil != err {
		p.log.Errorf("admission error for unpackable transaction: %s", err)
		return
	}

	p.Lock()
	defer p.Unlock()
	p.pushError(txId, code, message)
}

func (p *Pool) pushError(txId transactionrecord.Link, code string, message string) {
	p.log.Infof("%s: %s: %s", txId, code, message)

	key := txId.String()
	errs := []AdmissionError{}
	if value, found := p.errors.Get(key); found {
		errs = value.([]AdmissionError)
	}
	if len(errs) >= maximumErrors {
		errs = errs[1:]
	}
	errs = append(errs, AdmissionError{
		Code:    code,
		Message: message,
	})
	p.errors.SetDefault(key, errs)
}

// Errors - admission errors recorded for a transaction, oldest first
func (p *Pool) Errors(txId transactionrecord.Link) []AdmissionError {
	p.Lock()
	defer p.Unlock()

	value, found := p.errors.Get(txId.String())
	if !found {
		return nil
	}
	errs := value.([]AdmissionError)
	result := make([]AdmissionError, len(errs))
	copy(result, errs)
	return result
}

// Has - true if the transaction is pending
func (p *Pool) Has(txId transactionrecord.Link) bool {
	p.Lock()
	defer p.Unlock()
	_, found := p.pending.Get(txId.String())
	return found
}

// Remove - drop a pending transaction, e.g. after commit
func (p *Pool) Remove(txId transactionrecord.Link) {
	p.Lock()
	defer p.Unlock()
	p.pending.Delete(txId.String())
}

// Count - number of unexpired pending transactions
func (p *Pool) Count() int {
	p.Lock()
	defer p.Unlock()
	return len(p.pending.Items())
}

// pendingView - access for a guard while the pool lock is held
type pendingView struct {
	p *Pool
}

func (v pendingView) TransactionsOfKind(kind transactionrecord.Kind) []*transactionrecord.Transaction {
	return v.p.transactionsOfKind(kind)
}

func (v pendingView) PushAdmissionError(tx *transactionrecord.Transaction, code string, message string) {
	txId, err := tx.Id()
	if nil != err {
		v.p.log.Errorf("admission error for unpackable transaction: %s", err)
		return
	}
	v.p.pushError(txId, code, message)
}
