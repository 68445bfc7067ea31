// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// Kind - type code of a transaction within the invoice type group
type Kind uint16

// TypeGroup - the type group shared by all invoice transactions
const TypeGroup = uint32(1001)

// enumerate the possible invoice transaction kinds
const (
	InvoiceAddedKind    = Kind(0)
	InvoicePaidKind     = Kind(1)
	InvoiceCanceledKind = Kind(2)
	InvoiceSplitKind    = Kind(3)

	// this item must be last
	InvalidKind = Kind(4)
)

// AllKinds - every valid kind in type code order
var AllKinds = []Kind{
	InvoiceAddedKind,
	InvoicePaidKind,
	InvoiceCanceledKind,
	InvoiceSplitKind,
}

// Valid - true for a known kind
func (kind Kind) Valid() bool {
	return kind < InvalidKind
}

// Key - the attribute and schema key of a kind
func (kind Kind) Key() string {
	switch kind {
	case InvoiceAddedKind:
		return "invoiceAdded"
	case InvoicePaidKind:
		return "invoicePaid"
	case InvoiceCanceledKind:
		return "invoiceCanceled"
	case InvoiceSplitKind:
		return "invoiceSplit"
	default:
		return "*unknown*"
	}
}

// String - display name of a kind
func (kind Kind) String() string {
	switch kind {
	case InvoiceAddedKind:
		return "InvoiceAdded"
	case InvoicePaidKind:
		return "InvoicePaid"
	case InvoiceCanceledKind:
		return "InvoiceCanceled"
	case InvoiceSplitKind:
		return "InvoiceSplit"
	default:
		return "*unknown*"
	}
}

// KindFromKey - reverse of Key
func KindFromKey(key string) (Kind, bool) {
	for _, kind := range AllKinds {
		if key == kind.Key() {
			return kind, true
		}
	}
	return InvalidKind, false
}
