// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package builder - construct signed invoice transactions
package builder

import (
	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/chain"
	"github.com/bitmark-inc/audittracker/schema"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

// StaticFee - default fee of every invoice kind
const StaticFee = uint64(5000000000)

// Builder - accumulates envelope settings around one asset
type Builder struct {
	tx transactionrecord.Transaction
}

func newBuilder(asset transactionrecord.Asset) *Builder {
	return &Builder{
		tx: transactionrecord.Transaction{
			Version:   transactionrecord.CurrentVersion,
			Network:   chain.BitmarkNetwork,
			TypeGroup: transactionrecord.TypeGroup,
			Kind:      asset.Kind(),
			Nonce:     1,
			Fee:       StaticFee,
			Amount:    0,
			Asset:     asset,
		},
	}
}

// NewInvoiceAdded - builder for an InvoiceAdded transaction
func NewInvoiceAdded(asset transactionrecord.InvoiceAdded) *Builder {
	return newBuilder(&asset)
}

// NewInvoicePaid - builder for an InvoicePaid transaction
func NewInvoicePaid(asset transactionrecord.InvoicePaid) *Builder {
	return newBuilder(&asset)
}

// NewInvoiceCanceled - builder for an InvoiceCanceled transaction
func NewInvoiceCanceled(asset transactionrecord.InvoiceCanceled) *Builder {
	return newBuilder(&asset)
}

// NewInvoiceSplit - builder for an InvoiceSplit transaction
func NewInvoiceSplit(asset transactionrecord.InvoiceSplit) *Builder {
	return newBuilder(&asset)
}

// Network - set the network byte from a chain name
func (b *Builder) Network(name string) *Builder {
	b.tx.Network = chain.NetworkByte(name)
	return b
}

// Nonce - set the sender nonce
func (b *Builder) Nonce(nonce uint64) *Builder {
	b.tx.Nonce = nonce
	return b
}

// Fee - override the static fee
func (b *Builder) Fee(fee uint64) *Builder {
	b.tx.Fee = fee
	return b
}

// Sender - set the sender without signing
func (b *Builder) Sender(sender *account.Account) *Builder {
	b.tx.Sender = sender
	return b
}

// Build - validated unsigned transaction
func (b *Builder) Build() (*transactionrecord.Transaction, error) {
	tx := b.tx
	tx.Signature = nil
	err := schema.Validate(&tx)
	if nil != err {
		return nil, err
	}
	return &tx, nil
}

// Sign - validated transaction signed by the private key
//
// the sender becomes the account of the key
func (b *Builder) Sign(privateKey *account.PrivateKey) (*transactionrecord.Transaction, error) {
	tx := b.tx
	tx.Sender = privateKey.Account()
	tx.Signature = nil

	err := schema.Validate(&tx)
	if nil != err {
		return nil, err
	}
	err = tx.Sign(privateKey)
	if nil != err {
		return nil, err
	}
	return &tx, nil
}
