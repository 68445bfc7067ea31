// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir_test

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/builder"
	"github.com/bitmark-inc/audittracker/chain"
	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/reservoir"
	"github.com/bitmark-inc/audittracker/reservoir/mocks"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "reservoir-test")
	if nil != err {
		fmt.Fprintf(os.Stderr, "temp dir error: %s\n", err)
		os.Exit(1)
	}

	err = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	})
	if nil != err {
		fmt.Fprintf(os.Stderr, "logger error: %s\n", err)
		os.Exit(1)
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

func setupPool(t *testing.T, configuration reservoir.Configuration) *reservoir.Pool {
	p, err := reservoir.New(configuration)
	if nil != err {
		t.Fatalf("new pool error: %s", err)
	}
	return p
}

func makeAdded(t *testing.T, seed byte, nonce uint64, invoice string) *transactionrecord.Transaction {
	privateKey, err := account.PrivateKeyFromSeed(true, bytes.Repeat([]byte{seed}, 32))
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	tx, err := builder.NewInvoiceAdded(transactionrecord.InvoiceAdded{
		Amount:   11356000000,
		Currency: "EUR",
		Date:     "2019-01-01T00:00:00.000Z",
		Invoice:  invoice,
		Customer: "A. Buyer",
	}).Network(chain.Testing).Nonce(nonce).Sign(privateKey)
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	return tx
}

// conflicts on the invoice of pending InvoiceAdded transactions
type invoiceGuard struct{}

func (invoiceGuard) CanEnterPool(tx *transactionrecord.Transaction, pending reservoir.Pending) bool {
	invoice := tx.Asset.(*transactionrecord.InvoiceAdded).Invoice
	for _, p := range pending.TransactionsOfKind(tx.Kind) {
		if p.Asset.(*transactionrecord.InvoiceAdded).Invoice == invoice {
			pending.PushAdmissionError(tx, reservoir.ErrCodePending, "conflict: "+invoice)
			return false
		}
	}
	return true
}

func TestAdmit(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := setupPool(t, reservoir.Configuration{})
	defer p.Close()

	guard := mocks.NewMockGuard(ctl)
	guard.EXPECT().CanEnterPool(gomock.Any(), gomock.Any()).Return(true).Times(3)

	txs := []*transactionrecord.Transaction{
		makeAdded(t, 0x01, 1, "2019/0001"),
		makeAdded(t, 0x01, 2, "2019/0002"),
		makeAdded(t, 0x02, 1, "2019/0003"),
	}
	for i, tx := range txs {
		txId, err := p.Admit(tx, guard)
		assert.Nil(t, err, "admit: %d", i)
		assert.True(t, p.Has(txId), "pending: %d", i)
	}

	assert.Equal(t, 3, p.Count(), "count")
	assert.Equal(t, txs, p.TransactionsOfKind(transactionrecord.InvoiceAddedKind), "admission order")
	assert.Equal(t, 0, len(p.TransactionsOfKind(transactionrecord.InvoicePaidKind)), "other kind")

	txId, _ := txs[1].Id()
	p.Remove(txId)
	assert.False(t, p.Has(txId), "removed still pending")
	assert.Equal(t, 2, p.Count(), "count after remove")
}

func TestAdmitDuplicate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := setupPool(t, reservoir.Configuration{})
	defer p.Close()

	guard := mocks.NewMockGuard(ctl)
	guard.EXPECT().CanEnterPool(gomock.Any(), gomock.Any()).Return(true).Times(1)

	tx := makeAdded(t, 0x01, 1, "2019/0001")

	_, err := p.Admit(tx, guard)
	assert.Nil(t, err, "first admit")

	txId, err := p.Admit(tx, guard)
	assert.Equal(t, fault.ErrPoolDuplicate, err, "second admit")

	errs := p.Errors(txId)
	assert.Equal(t, 1, len(errs), "error count")
	assert.Equal(t, reservoir.ErrCodeDuplicate, errs[0].Code, "error code")
}

func TestAdmitGuardRejects(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := setupPool(t, reservoir.Configuration{})
	defer p.Close()

	tx := makeAdded(t, 0x01, 1, "2019/0001")

	guard := mocks.NewMockGuard(ctl)
	guard.EXPECT().CanEnterPool(tx, gomock.Any()).DoAndReturn(
		func(tx *transactionrecord.Transaction, pending reservoir.Pending) bool {
			pending.PushAdmissionError(tx, reservoir.ErrCodePending, "already in the pool")
			return false
		}).Times(1)

	txId, err := p.Admit(tx, guard)
	assert.Equal(t, fault.ErrPendingConflict, err, "admit")
	assert.True(t, fault.IsErrPool(err), "pool class")
	assert.False(t, p.Has(txId), "rejected transaction pending")

	errs := p.Errors(txId)
	assert.Equal(t, []reservoir.AdmissionError{
		{Code: reservoir.ErrCodePending, Message: "already in the pool"},
	}, errs, "errors")
}

func TestPushAdmissionError(t *testing.T) {
	p := setupPool(t, reservoir.Configuration{})
	defer p.Close()

	tx := makeAdded(t, 0x01, 1, "2019/0001")
	txId, _ := tx.Id()

	assert.Nil(t, p.Errors(txId), "no errors yet")

	for i := 0; i < 15; i += 1 {
		p.PushAdmissionError(tx, reservoir.ErrCodeLowFee, fmt.Sprintf("attempt %d", i))
	}

	errs := p.Errors(txId)
	assert.Equal(t, 10, len(errs), "retained errors")
	assert.Equal(t, "attempt 5", errs[0].Message, "oldest retained")
	assert.Equal(t, "attempt 14", errs[9].Message, "newest")
	assert.Equal(t, "ERR_LOW_FEE: attempt 14", errs[9].Error(), "error text")
}

func TestAdmitRateLimited(t *testing.T) {
	p := setupPool(t, reservoir.Configuration{
		Rate:  0.001,
		Burst: 1,
	})
	defer p.Close()

	_, err := p.Admit(makeAdded(t, 0x01, 1, "2019/0001"), invoiceGuard{})
	assert.Nil(t, err, "first admit")

	txId, err := p.Admit(makeAdded(t, 0x01, 2, "2019/0002"), invoiceGuard{})
	assert.Equal(t, fault.ErrPoolRateLimited, err, "second admit")
	assert.Equal(t, reservoir.ErrCodeRateLimited, p.Errors(txId)[0].Code, "error code")
	assert.Equal(t, 1, p.Count(), "count")
}

func TestExpiry(t *testing.T) {
	p := setupPool(t, reservoir.Configuration{
		Expiry: 50 * time.Millisecond,
	})
	defer p.Close()

	txId, err := p.Admit(makeAdded(t, 0x01, 1, "2019/0001"), invoiceGuard{})
	assert.Nil(t, err, "admit")
	assert.True(t, p.Has(txId), "pending")

	time.Sleep(100 * time.Millisecond)

	assert.False(t, p.Has(txId), "expired transaction pending")
	assert.Equal(t, 0, p.Count(), "count")
	assert.Equal(t, 0, len(p.TransactionsOfKind(transactionrecord.InvoiceAddedKind)), "expired listed")
}

func TestConcurrentConflictingAdmission(t *testing.T) {
	p := setupPool(t, reservoir.Configuration{})
	defer p.Close()

	const submitters = 20

	txs := make([]*transactionrecord.Transaction, submitters)
	for i := range txs {
		txs[i] = makeAdded(t, byte(i+1), 1, "2019/0001")
	}

	var wg sync.WaitGroup
	results := make([]error, submitters)
	for i := range txs {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, results[n] = p.Admit(txs[n], invoiceGuard{})
		}(i)
	}
	wg.Wait()

	accepted := 0
	for i, err := range results {
		if nil == err {
			accepted += 1
			continue
		}
		assert.Equal(t, fault.ErrPendingConflict, err, "submitter: %d", i)
	}
	assert.Equal(t, 1, accepted, "accepted")
	assert.Equal(t, 1, p.Count(), "count")
}
