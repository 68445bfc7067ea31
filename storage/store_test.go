// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/builder"
	"github.com/bitmark-inc/audittracker/chain"
	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/storage"
	"github.com/bitmark-inc/audittracker/transactionrecord"
	"github.com/bitmark-inc/audittracker/wallet"
)

const invoicesIndex = "invoices"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "storage-test")
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

func invoiceKeys(w *wallet.Wallet) ([]string, error) {
	invoices := map[string]string{}
	if w.HasAttribute("invoiceAdded.invoices") {
		err := w.GetAttribute("invoiceAdded.invoices", &invoices)
		if nil != err {
			return nil, err
		}
	}
	keys := make([]string, 0, len(invoices))
	for invoice := range invoices {
		keys = append(keys, invoice)
	}
	return keys, nil
}

func setupStore(t *testing.T) *storage.Store {
	s, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory store error: %s", err)
	}
	err = s.RegisterIndex(invoicesIndex, invoiceKeys)
	if nil != err {
		t.Fatalf("register index error: %s", err)
	}
	return s
}

func testAccount(t *testing.T, seed byte) (*account.PrivateKey, *account.Account) {
	privateKey, err := account.PrivateKeyFromSeed(true, bytes.Repeat([]byte{seed}, 32))
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return privateKey, privateKey.Account()
}

func testTransaction(t *testing.T, nonce uint64) *transactionrecord.Transaction {
	privateKey, _ := testAccount(t, 0x33)
	tx, err := builder.NewInvoiceAdded(transactionrecord.InvoiceAdded{
		Amount:   uint64(1000 * nonce),
		Currency: "EUR",
		Date:     "2019-01-01T00:00:00.000Z",
		Invoice:  fmt.Sprintf("2019/%04d", nonce),
		Customer: "A. Buyer",
	}).Network(chain.Testing).Nonce(nonce).Sign(privateKey)
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	return tx
}

func TestFindAccountByKeyNewWallet(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	_, acc := testAccount(t, 0x01)

	w, err := s.FindAccountByKey(acc)
	assert.Nil(t, err, "find")
	assert.Equal(t, uint64(0), w.Nonce, "nonce")
	assert.Equal(t, uint64(0), w.Balance, "balance")
	assert.Equal(t, acc.PublicKeyBytes(), w.PublicKey(), "public key")
	assert.False(t, s.HasAccount(acc.PublicKeyBytes()), "unsaved account present")
}

func TestReindexAndFindByIndex(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	_, acc := testAccount(t, 0x01)

	w, _ := s.FindAccountByKey(acc)
	w.Nonce = 1
	err := w.SetAttribute("invoiceAdded.invoices", map[string]string{"2019/0001": "aa"})
	assert.Nil(t, err, "set attribute")

	err = s.Reindex(w)
	assert.Nil(t, err, "reindex")
	assert.True(t, s.HasAccount(acc.PublicKeyBytes()), "saved account missing")

	found, ok, err := s.FindByIndex(invoicesIndex, "2019/0001")
	assert.Nil(t, err, "find by index")
	assert.True(t, ok, "indexed invoice missing")
	assert.Equal(t, uint64(1), found.Nonce, "indexed wallet nonce")

	_, ok, err = s.FindByIndex(invoicesIndex, "2019/0002")
	assert.Nil(t, err, "find by index")
	assert.False(t, ok, "unknown invoice found")

	_, _, err = s.FindByIndex("unknown", "2019/0001")
	assert.Equal(t, fault.ErrIndexNotRegistered, err, "unregistered index")

	w.ForgetAttribute("invoiceAdded")
	err = s.Reindex(w)
	assert.Nil(t, err, "reindex after removal")

	_, ok, _ = s.FindByIndex(invoicesIndex, "2019/0001")
	assert.False(t, ok, "removed invoice still indexed")
}

func TestReindexMalformedAttribute(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	_, acc := testAccount(t, 0x01)

	w, _ := s.FindAccountByKey(acc)
	err := w.SetAttribute("invoiceAdded.invoices", "2019/0001")
	assert.Nil(t, err, "set attribute")

	err = s.Reindex(w)
	assert.NotNil(t, err, "malformed attribute indexed")
	assert.False(t, s.HasAccount(acc.PublicKeyBytes()), "wallet saved after index failure")
}

func TestReindexKeepsOtherOwner(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	_, acc1 := testAccount(t, 0x01)
	_, acc2 := testAccount(t, 0x02)

	w1, _ := s.FindAccountByKey(acc1)
	_ = w1.SetAttribute("invoiceAdded.invoices", map[string]string{"2019/0001": "aa"})
	_ = s.Reindex(w1)

	// a second wallet taking the key over
	w2, _ := s.FindAccountByKey(acc2)
	_ = w2.SetAttribute("invoiceAdded.invoices", map[string]string{"2019/0001": "bb"})
	_ = s.Reindex(w2)

	w1.ForgetAttribute("invoiceAdded")
	_ = s.Reindex(w1)

	found, ok, err := s.FindByIndex(invoicesIndex, "2019/0001")
	assert.Nil(t, err, "find by index")
	assert.True(t, ok, "entry of other owner removed")
	assert.Equal(t, acc2.PublicKeyBytes(), found.PublicKey(), "owner")
}

func TestRegisterIndexTwice(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	err := s.RegisterIndex(invoicesIndex, invoiceKeys)
	assert.Equal(t, fault.ErrDuplicateRegistration, err, "duplicate index")
}

func TestForgetIndex(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	_, acc := testAccount(t, 0x01)

	w, _ := s.FindAccountByKey(acc)
	w.Nonce = 3
	_ = w.SetAttribute("invoiceAdded.invoices", map[string]string{"2019/0001": "aa", "2019/0002": "bb"})
	_ = w.SetAttribute("other.value", "kept")
	_ = s.Reindex(w)

	err := s.ForgetIndex(invoicesIndex, "invoiceAdded")
	assert.Nil(t, err, "forget")

	for _, invoice := range []string{"2019/0001", "2019/0002"} {
		_, ok, _ := s.FindByIndex(invoicesIndex, invoice)
		assert.False(t, ok, "index entry left: %s", invoice)
	}

	w, _ = s.FindAccountByKey(acc)
	assert.False(t, w.HasAttribute("invoiceAdded"), "attribute left")
	assert.True(t, w.HasAttribute("other.value"), "unrelated attribute dropped")
	assert.Equal(t, uint64(3), w.Nonce, "nonce changed")

	err = s.ForgetIndex("unknown", "x")
	assert.Equal(t, fault.ErrIndexNotRegistered, err, "unregistered index")
}

func TestAbortDiscardsEverything(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	_, acc := testAccount(t, 0x01)

	err := s.Begin()
	assert.Nil(t, err, "begin")
	assert.True(t, s.InBatch(), "batch not open")

	w, _ := s.FindAccountByKey(acc)
	w.Balance = 100
	_ = w.SetAttribute("invoiceAdded.invoices", map[string]string{"2019/0001": "aa"})
	_ = s.Reindex(w)

	// visible inside the batch
	inside, _ := s.FindAccountByKey(acc)
	assert.Equal(t, uint64(100), inside.Balance, "balance inside batch")
	_, ok, _ := s.FindByIndex(invoicesIndex, "2019/0001")
	assert.True(t, ok, "index inside batch")

	_, err = s.AppendHistory(testTransaction(t, 1))
	assert.Nil(t, err, "append")

	s.Abort()
	assert.False(t, s.InBatch(), "batch still open")

	after, _ := s.FindAccountByKey(acc)
	assert.Equal(t, uint64(0), after.Balance, "balance persisted")
	_, ok, _ = s.FindByIndex(invoicesIndex, "2019/0001")
	assert.False(t, ok, "index persisted")
	assert.Equal(t, uint64(0), s.HistoryCount(), "history persisted")
	assert.False(t, s.HasAccount(acc.PublicKeyBytes()), "account persisted")
}

func TestCommitPersists(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	_, acc := testAccount(t, 0x01)

	_ = s.Begin()
	w, _ := s.FindAccountByKey(acc)
	w.Balance = 100
	_ = s.Reindex(w)
	err := s.Commit()
	assert.Nil(t, err, "commit")

	wallets, err := s.Wallets()
	assert.Nil(t, err, "wallets")
	assert.Equal(t, 1, len(wallets), "wallet count")
	assert.Equal(t, uint64(100), wallets[0].Balance, "balance")

	err = s.Commit()
	assert.Equal(t, fault.ErrBatchNotInUse, err, "second commit")
}

func TestHistory(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	ids := []transactionrecord.Link{}
	for i := uint64(1); i <= 5; i += 1 {
		txId, err := s.AppendHistory(testTransaction(t, i))
		assert.Nil(t, err, "append: %d", i)
		ids = append(ids, txId)
	}
	assert.Equal(t, uint64(5), s.HistoryCount(), "count")
	assert.True(t, s.HasTransaction(ids[2]), "has transaction")

	_, err := s.AppendHistory(testTransaction(t, 3))
	assert.Equal(t, fault.ErrTransactionAlreadyExists, err, "duplicate")

	err = s.RemoveHistory(ids[2])
	assert.Equal(t, fault.ErrNotRevertible, err, "remove from the middle")

	err = s.RemoveHistory(transactionrecord.Link{})
	assert.Equal(t, fault.ErrTransactionNotFound, err, "remove unknown")

	err = s.RemoveHistory(ids[4])
	assert.Nil(t, err, "remove latest")
	err = s.RemoveHistory(ids[3])
	assert.Nil(t, err, "remove next latest")

	assert.Equal(t, uint64(3), s.HistoryCount(), "count after remove")
	assert.False(t, s.HasTransaction(ids[4]), "removed transaction present")

	// the sequence slot is reused
	txId, err := s.AppendHistory(testTransaction(t, 9))
	assert.Nil(t, err, "append after remove")
	assert.Equal(t, uint64(4), s.HistoryCount(), "count after append")
	assert.True(t, s.HasTransaction(txId), "appended transaction missing")
}

func TestReplayHistory(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	const total = 7
	for i := uint64(1); i <= total; i += 1 {
		_, err := s.AppendHistory(testTransaction(t, i))
		assert.Nil(t, err, "append: %d", i)
	}

	for _, batchSize := range []int{1, 3, 100} {
		nonces := []uint64{}
		batches := 0
		err := s.ReplayHistory(batchSize, func(txs []*transactionrecord.Transaction) error {
			batches += 1
			assert.LessOrEqual(t, len(txs), batchSize, "batch too large")
			for _, tx := range txs {
				nonces = append(nonces, tx.Nonce)
			}
			return nil
		})
		assert.Nil(t, err, "replay: %d", batchSize)
		assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7}, nonces, "replay order: %d", batchSize)
		assert.Equal(t, (total+batchSize-1)/batchSize, batches, "batch count: %d", batchSize)
	}

	err := s.ReplayHistory(0, func([]*transactionrecord.Transaction) error { return nil })
	assert.Equal(t, fault.ErrInvalidCount, err, "zero batch size")

	err = s.ReplayHistory(2, func([]*transactionrecord.Transaction) error { return fault.ErrNotRevertible })
	assert.Equal(t, fault.ErrNotRevertible, err, "callback error")
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")

	s, err := storage.Open(dir)
	assert.Nil(t, err, "open")

	_, acc := testAccount(t, 0x01)
	w, _ := s.FindAccountByKey(acc)
	w.Nonce = 4
	_ = s.Reindex(w)
	_, _ = s.AppendHistory(testTransaction(t, 1))
	s.Close()

	s, err = storage.Open(dir)
	assert.Nil(t, err, "reopen")
	defer s.Close()

	w, _ = s.FindAccountByKey(acc)
	assert.Equal(t, uint64(4), w.Nonce, "nonce")
	assert.Equal(t, uint64(1), s.HistoryCount(), "history")
}
