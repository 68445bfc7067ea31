// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/audittracker/reservoir"
	"github.com/bitmark-inc/audittracker/schema"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

// InvoicePaid - attestation that a batch of invoices was paid
type InvoicePaid struct {
	base
}

// NewInvoicePaid - handler for InvoicePaid
func NewInvoicePaid(activated bool, validator *schema.Validator) *InvoicePaid {
	return &InvoicePaid{
		base: base{
			kind:      transactionrecord.InvoicePaidKind,
			event:     EventInvoicePaid,
			activated: activated,
			validator: validator,
		},
	}
}

// CanEnterPool - no other pending InvoicePaid for the same hash
func (h *InvoicePaid) CanEnterPool(tx *transactionrecord.Transaction, pending reservoir.Pending) bool {
	return h.admit(tx, pending, func(asset transactionrecord.Asset) string {
		return asset.(*transactionrecord.InvoicePaid).Hash
	})
}

// InvoiceCanceled - attestation that a batch of invoices was canceled
type InvoiceCanceled struct {
	base
}

// NewInvoiceCanceled - handler for InvoiceCanceled
func NewInvoiceCanceled(activated bool, validator *schema.Validator) *InvoiceCanceled {
	return &InvoiceCanceled{
		base: base{
			kind:      transactionrecord.InvoiceCanceledKind,
			event:     EventInvoiceCanceled,
			activated: activated,
			validator: validator,
		},
	}
}

// DynamicFee - zero fee kind
func (h *InvoiceCanceled) DynamicFee(tx *transactionrecord.Transaction, addonBytes uint64, feePerByte uint64) (uint64, error) {
	return 0, nil
}

// CanEnterPool - no other pending InvoiceCanceled for the same hash
func (h *InvoiceCanceled) CanEnterPool(tx *transactionrecord.Transaction, pending reservoir.Pending) bool {
	return h.admit(tx, pending, func(asset transactionrecord.Asset) string {
		return asset.(*transactionrecord.InvoiceCanceled).Hash
	})
}

// InvoiceSplit - attestation that part of an invoice became a new one
//
// the parent invoice is not looked up
type InvoiceSplit struct {
	base
}

// NewInvoiceSplit - handler for InvoiceSplit
func NewInvoiceSplit(activated bool, validator *schema.Validator) *InvoiceSplit {
	return &InvoiceSplit{
		base: base{
			kind:      transactionrecord.InvoiceSplitKind,
			event:     EventInvoiceSplit,
			activated: activated,
			validator: validator,
		},
	}
}

// CanEnterPool - no other pending InvoiceSplit for the same invoice
func (h *InvoiceSplit) CanEnterPool(tx *transactionrecord.Transaction, pending reservoir.Pending) bool {
	return h.admit(tx, pending, func(asset transactionrecord.Asset) string {
		return asset.(*transactionrecord.InvoiceSplit).Invoice
	})
}
