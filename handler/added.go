// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"sort"

	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/reservoir"
	"github.com/bitmark-inc/audittracker/schema"
	"github.com/bitmark-inc/audittracker/storage"
	"github.com/bitmark-inc/audittracker/transactionrecord"
	"github.com/bitmark-inc/audittracker/wallet"
)

// attribute bag and index of added invoices
const (
	InvoicesIndex     = "invoices"
	AddedAttribute    = "invoiceAdded"
	InvoicesAttribute = AddedAttribute + ".invoices"
)

// InvoiceAdded - the stateful invoice handler
type InvoiceAdded struct {
	base
}

// NewInvoiceAdded - handler for InvoiceAdded
func NewInvoiceAdded(activated bool, validator *schema.Validator) *InvoiceAdded {
	return &InvoiceAdded{
		base: base{
			kind:      transactionrecord.InvoiceAddedKind,
			event:     EventInvoiceAdded,
			activated: activated,
			validator: validator,
		},
	}
}

// InvoicesOf - the invoices held in a wallet's bag, sorted
func InvoicesOf(w *wallet.Wallet) ([]string, error) {
	invoices, err := invoiceBag(w)
	if nil != err {
		return nil, err
	}
	keys := make([]string, 0, len(invoices))
	for invoice, present := range invoices {
		if present {
			keys = append(keys, invoice)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Indexes - the global invoice index
func (h *InvoiceAdded) Indexes() map[string]storage.IndexFunc {
	return map[string]storage.IndexFunc{
		InvoicesIndex: InvoicesOf,
	}
}

// DynamicFee - zero fee kind
func (h *InvoiceAdded) DynamicFee(tx *transactionrecord.Transaction, addonBytes uint64, feePerByte uint64) (uint64, error) {
	return 0, nil
}

// ThrowIfCannotBeApplied - fails if the invoice is already held by the
// sender or any other account
func (h *InvoiceAdded) ThrowIfCannotBeApplied(tx *transactionrecord.Transaction, w *wallet.Wallet, store Store) error {
	err := h.base.ThrowIfCannotBeApplied(tx, w, store)
	if nil != err {
		return err
	}

	invoice, err := invoiceOf(tx)
	if nil != err {
		return err
	}
	invoices, err := invoiceBag(w)
	if nil != err {
		return err
	}
	if invoices[invoice] {
		return fault.ErrInvoiceAlreadyExists
	}

	return h.CanBeAccepted(tx, store)
}

// CanBeAccepted - fails if a committed wallet already holds the invoice
//
// sender nonce and balance are not checked so that a sender can have
// several transactions pending
func (h *InvoiceAdded) CanBeAccepted(tx *transactionrecord.Transaction, store Store) error {
	invoice, err := invoiceOf(tx)
	if nil != err {
		return err
	}
	_, found, err := store.FindByIndex(InvoicesIndex, invoice)
	if nil != err {
		return err
	}
	if found {
		return fault.ErrInvoiceAlreadyExists
	}
	return nil
}

// ApplyToSender - fee and nonce then mark the invoice present
func (h *InvoiceAdded) ApplyToSender(tx *transactionrecord.Transaction, store Store) error {
	invoice, err := invoiceOf(tx)
	if nil != err {
		return err
	}
	w, err := applySender(tx, store)
	if nil != err {
		return err
	}

	err = addInvoice(w, invoice)
	if nil != err {
		return err
	}
	return store.Reindex(w)
}

// RevertForSender - restore fee and nonce then remove the invoice
func (h *InvoiceAdded) RevertForSender(tx *transactionrecord.Transaction, store Store) error {
	invoice, err := invoiceOf(tx)
	if nil != err {
		return err
	}
	w, err := revertSender(tx, store)
	if nil != err {
		return err
	}

	invoices, err := invoiceBag(w)
	if nil != err {
		return err
	}
	if !invoices[invoice] {
		return fault.ErrInvoiceNotPresent
	}
	delete(invoices, invoice)

	if 0 == len(invoices) {
		w.ForgetAttribute(AddedAttribute)
	} else {
		err = w.SetAttribute(InvoicesAttribute, invoices)
		if nil != err {
			return err
		}
	}
	return store.Reindex(w)
}

// Bootstrap - rebuild every bag from committed InvoiceAdded history
//
// each batch is committed separately; fee and nonce are already part
// of stored wallets and are not replayed
func (h *InvoiceAdded) Bootstrap(store Store, batchSize int) error {
	err := store.ForgetIndex(InvoicesIndex, AddedAttribute)
	if nil != err {
		return err
	}

	return store.ReplayHistory(batchSize, func(txs []*transactionrecord.Transaction) error {
		err := store.Begin()
		if nil != err {
			return err
		}
		for _, tx := range txs {
			if h.kind != tx.Kind {
				continue
			}
			invoice, err := invoiceOf(tx)
			if nil != err {
				store.Abort()
				return err
			}
			w, err := store.FindAccountByKey(tx.Sender)
			if nil != err {
				store.Abort()
				return err
			}
			err = addInvoice(w, invoice)
			if nil != err {
				store.Abort()
				return err
			}
			err = store.Reindex(w)
			if nil != err {
				store.Abort()
				return err
			}
		}
		return store.Commit()
	})
}

// CanEnterPool - no other pending InvoiceAdded for the same invoice
func (h *InvoiceAdded) CanEnterPool(tx *transactionrecord.Transaction, pending reservoir.Pending) bool {
	return h.admit(tx, pending, func(asset transactionrecord.Asset) string {
		return asset.(*transactionrecord.InvoiceAdded).Invoice
	})
}

func invoiceOf(tx *transactionrecord.Transaction) (string, error) {
	added, ok := tx.Asset.(*transactionrecord.InvoiceAdded)
	if !ok || nil == added {
		return "", fault.ErrInvoiceAddedAsset
	}
	return added.Invoice, nil
}

// read or initialise the invoice map of a wallet
func invoiceBag(w *wallet.Wallet) (map[string]bool, error) {
	invoices := map[string]bool{}
	if !w.HasAttribute(InvoicesAttribute) {
		return invoices, nil
	}
	err := w.GetAttribute(InvoicesAttribute, &invoices)
	if nil != err {
		return nil, fault.ErrMalformedInvoiceBag
	}
	return invoices, nil
}

func addInvoice(w *wallet.Wallet, invoice string) error {
	invoices, err := invoiceBag(w)
	if nil != err {
		return err
	}
	invoices[invoice] = true
	return w.SetAttribute(InvoicesAttribute, invoices)
}
