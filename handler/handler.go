// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/audittracker/reservoir"
	"github.com/bitmark-inc/audittracker/storage"
	"github.com/bitmark-inc/audittracker/transactionrecord"
	"github.com/bitmark-inc/audittracker/wallet"
)

// event names
const (
	EventInvoiceAdded    = "invoice.added"
	EventInvoicePaid     = "invoice.paid"
	EventInvoiceCanceled = "invoice.canceled"
	EventInvoiceSplit    = "invoice.split"
)

// Codec - asset decoding for one kind
type Codec interface {
	Kind() transactionrecord.Kind
	Unpack(record transactionrecord.Packed) (transactionrecord.Asset, int, error)
}

// Validator - structural validation before a transaction is accepted
type Validator interface {
	Validate(tx *transactionrecord.Transaction) error
}

// Applier - state changes of a committed transaction
//
// ThrowIfCannotBeApplied never changes state, a non-nil result
// invalidates the enclosing block
//
// CanBeAccepted is the part of it that only depends on committed
// state shared by all accounts, it is checked on submission so that
// the pool never holds a transaction no block could include
type Applier interface {
	CanBeAccepted(tx *transactionrecord.Transaction, store Store) error
	ThrowIfCannotBeApplied(tx *transactionrecord.Transaction, w *wallet.Wallet, store Store) error
	ApplyToSender(tx *transactionrecord.Transaction, store Store) error
	RevertForSender(tx *transactionrecord.Transaction, store Store) error
	ApplyToRecipient(tx *transactionrecord.Transaction, store Store) error
	RevertForRecipient(tx *transactionrecord.Transaction, store Store) error
	Bootstrap(store Store, batchSize int) error
}

// AdmissionGuard - conflict check against pending transactions
type AdmissionGuard interface {
	reservoir.Guard
}

// Notifier - events of a committed transaction
type Notifier interface {
	EmitEvents(tx *transactionrecord.Transaction, sink EventSink)
}

// Handler - everything needed to process one kind
type Handler interface {
	Codec
	Validator
	Applier
	AdmissionGuard
	Notifier

	IsActivated() bool
	DynamicFee(tx *transactionrecord.Transaction, addonBytes uint64, feePerByte uint64) (uint64, error)
}

// Indexer - a handler that needs store indexes registered before use
type Indexer interface {
	Indexes() map[string]storage.IndexFunc
}
