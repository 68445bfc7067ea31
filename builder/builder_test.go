// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/builder"
	"github.com/bitmark-inc/audittracker/chain"
	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

func testKey(t *testing.T) *account.PrivateKey {
	privateKey, err := account.PrivateKeyFromSeed(true, bytes.Repeat([]byte{0x22}, 32))
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return privateKey
}

func TestBuildInvoiceAdded(t *testing.T) {
	privateKey := testKey(t)

	tx, err := builder.NewInvoiceAdded(transactionrecord.InvoiceAdded{
		Amount:   11356000000,
		Currency: "EUR",
		Date:     "2019-01-01T00:00:00.000Z",
		Invoice:  "2019/0001",
		Customer: "A. Buyer",
	}).Network(chain.Testing).Nonce(7).Sign(privateKey)
	assert.Nil(t, err, "sign")

	assert.Equal(t, transactionrecord.CurrentVersion, tx.Version, "version")
	assert.Equal(t, transactionrecord.TypeGroup, tx.TypeGroup, "type group")
	assert.Equal(t, transactionrecord.InvoiceAddedKind, tx.Kind, "kind")
	assert.Equal(t, uint64(7), tx.Nonce, "nonce")
	assert.Equal(t, builder.StaticFee, tx.Fee, "fee")
	assert.Equal(t, uint64(0), tx.Amount, "envelope amount")
	assert.Equal(t, byte(chain.TestingNetwork), tx.Network, "network")
	assert.Equal(t, privateKey.Account().String(), tx.Sender.String(), "sender")
	assert.Nil(t, tx.Verify(), "verify")

	packed, err := tx.Pack()
	assert.Nil(t, err, "pack")
	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, tx, unpacked, "round trip")
}

func TestBuildAllKinds(t *testing.T) {
	privateKey := testKey(t)
	hash := strings.Repeat("ab", 32)

	builders := []*builder.Builder{
		builder.NewInvoicePaid(transactionrecord.InvoicePaid{Hash: hash, Ids: []string{"2019/0001"}}),
		builder.NewInvoiceCanceled(transactionrecord.InvoiceCanceled{Hash: hash, Ids: []string{"2019/0001"}}),
		builder.NewInvoiceSplit(transactionrecord.InvoiceSplit{
			Amount:        1,
			Currency:      "EUR",
			Date:          "2019-01-01T00:00:00.000Z",
			Invoice:       "2019/0001-A",
			ParentInvoice: "2019/0001",
		}),
	}
	kinds := []transactionrecord.Kind{
		transactionrecord.InvoicePaidKind,
		transactionrecord.InvoiceCanceledKind,
		transactionrecord.InvoiceSplitKind,
	}

	for i, b := range builders {
		tx, err := b.Network(chain.Local).Fee(1).Sign(privateKey)
		assert.Nil(t, err, "%d: sign", i)
		assert.Equal(t, kinds[i], tx.Kind, "%d: kind", i)
		assert.Equal(t, uint64(1), tx.Fee, "%d: fee", i)
		assert.Nil(t, tx.Verify(), "%d: verify", i)
	}
}

func TestBuildRefusesInvalidAsset(t *testing.T) {
	privateKey := testKey(t)

	b := builder.NewInvoiceAdded(transactionrecord.InvoiceAdded{
		Amount:   11356000000,
		Currency: "2019/0001",
		Date:     "2019-01-01T00:00:00.000Z",
		Invoice:  "2019/0001",
		Customer: "A. Buyer",
	}).Network(chain.Testing)

	tx, err := b.Sign(privateKey)
	assert.Nil(t, tx, "signed invalid asset")
	assert.True(t, fault.IsStructural(err), "error not structural: %v", err)

	tx, err = b.Sender(privateKey.Account()).Build()
	assert.Nil(t, tx, "built invalid asset")
	assert.True(t, fault.IsStructural(err), "error not structural: %v", err)
}

func TestBuildUnsigned(t *testing.T) {
	privateKey := testKey(t)

	tx, err := builder.NewInvoiceAdded(transactionrecord.InvoiceAdded{
		Amount:   1,
		Currency: "USD",
		Date:     "2019-01-01T00:00:00.000Z",
		Invoice:  "2019/0002",
		Customer: "B. Buyer",
	}).Network(chain.Testing).Sender(privateKey.Account()).Build()
	assert.Nil(t, err, "build")
	assert.Equal(t, 0, len(tx.Signature), "unsigned transaction has a signature")
	assert.Equal(t, fault.ErrInvalidSignature, tx.Verify(), "unsigned transaction verifies")

	// a test key on the live network cannot be signed
	_, err = builder.NewInvoiceAdded(transactionrecord.InvoiceAdded{
		Amount:   1,
		Currency: "USD",
		Date:     "2019-01-01T00:00:00.000Z",
		Invoice:  "2019/0002",
		Customer: "B. Buyer",
	}).Sign(privateKey)
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "test key signed for live network")
}
