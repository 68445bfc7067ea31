// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"bytes"
	"fmt"
	"math"

	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/reservoir"
	"github.com/bitmark-inc/audittracker/schema"
	"github.com/bitmark-inc/audittracker/transactionrecord"
	"github.com/bitmark-inc/audittracker/wallet"
)

// operations common to all kinds
type base struct {
	kind      transactionrecord.Kind
	event     string
	activated bool
	validator *schema.Validator
}

func (b *base) Kind() transactionrecord.Kind {
	return b.kind
}

func (b *base) IsActivated() bool {
	return b.activated
}

func (b *base) Unpack(record transactionrecord.Packed) (transactionrecord.Asset, int, error) {
	return transactionrecord.UnpackAsset(b.kind, record)
}

func (b *base) Validate(tx *transactionrecord.Transaction) error {
	if b.kind != tx.Kind {
		return fault.ErrUnknownTransactionKind
	}
	if nil == b.validator {
		return schema.Validate(tx)
	}
	return b.validator.Validate(tx)
}

// fee proportional to the packed size
func (b *base) DynamicFee(tx *transactionrecord.Transaction, addonBytes uint64, feePerByte uint64) (uint64, error) {
	size, err := tx.Size()
	if nil != err {
		return 0, err
	}
	return (addonBytes + uint64(size)) * feePerByte, nil
}

func (b *base) CanBeAccepted(tx *transactionrecord.Transaction, store Store) error {
	return nil
}

func (b *base) ThrowIfCannotBeApplied(tx *transactionrecord.Transaction, w *wallet.Wallet, store Store) error {
	err := schema.CheckAssetFields(tx.Asset)
	if nil != err {
		return err
	}
	return checkSender(tx, w)
}

func (b *base) ApplyToSender(tx *transactionrecord.Transaction, store Store) error {
	w, err := applySender(tx, store)
	if nil != err {
		return err
	}
	return store.Reindex(w)
}

func (b *base) RevertForSender(tx *transactionrecord.Transaction, store Store) error {
	w, err := revertSender(tx, store)
	if nil != err {
		return err
	}
	return store.Reindex(w)
}

// no recipient side effects for any invoice kind
func (b *base) ApplyToRecipient(tx *transactionrecord.Transaction, store Store) error {
	return nil
}

func (b *base) RevertForRecipient(tx *transactionrecord.Transaction, store Store) error {
	return nil
}

func (b *base) Bootstrap(store Store, batchSize int) error {
	return nil
}

func (b *base) EmitEvents(tx *transactionrecord.Transaction, sink EventSink) {
	sink.Emit(b.event, tx)
}

// reject tx if a pending transaction of the same kind has the same key
func (b *base) admit(tx *transactionrecord.Transaction, pending reservoir.Pending, key func(transactionrecord.Asset) string) bool {
	k := key(tx.Asset)
	for _, p := range pending.TransactionsOfKind(b.kind) {
		if k == key(p.Asset) {
			pending.PushAdmissionError(tx, reservoir.ErrCodePending, fmt.Sprintf("%s for \"%s\" already in the pool", b.kind, k))
			return false
		}
	}
	return true
}

// generic sender checks: nonce sequence and fee cover
func checkSender(tx *transactionrecord.Transaction, w *wallet.Wallet) error {
	if nil == tx.Sender || nil == w || !bytes.Equal(tx.Sender.PublicKey, w.PublicKey()) {
		return fault.ErrSenderMismatch
	}
	if math.MaxUint64 == w.Nonce {
		return fault.ErrNonceOverflow
	}
	if w.Nonce+1 != tx.Nonce {
		return fault.ErrInvalidNonce
	}
	if w.Balance < tx.Fee {
		return fault.ErrInsufficientBalance
	}
	return nil
}

// sender wallet after fee and nonce are applied, not yet stored
func applySender(tx *transactionrecord.Transaction, store Store) (*wallet.Wallet, error) {
	w, err := store.FindAccountByKey(tx.Sender)
	if nil != err {
		return nil, err
	}
	err = checkSender(tx, w)
	if nil != err {
		return nil, err
	}
	w.Balance -= tx.Fee
	w.Nonce = tx.Nonce
	return w, nil
}

// sender wallet after fee and nonce are restored, not yet stored
func revertSender(tx *transactionrecord.Transaction, store Store) (*wallet.Wallet, error) {
	w, err := store.FindAccountByKey(tx.Sender)
	if nil != err {
		return nil, err
	}
	if w.Nonce != tx.Nonce || 0 == w.Nonce {
		return nil, fault.ErrInvalidNonce
	}
	w.Balance += tx.Fee
	w.Nonce -= 1
	return w, nil
}
