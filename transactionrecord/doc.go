// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - invoice lifecycle transaction records
//
// A transaction is an envelope (version, network, type group, kind,
// nonce, sender, fee, amount) followed by a kind specific asset and
// an optional ed25519 signature.
//
// Asset fields are packed in a fixed order with no type tags:
//
//   InvoiceAdded:    amount(8) | len currency | len date | len invoice | len customer
//   InvoiceSplit:    amount(8) | len currency | len date | len invoice | len parent_invoice
//   InvoicePaid:     len hash | count | (len id)*
//   InvoiceCanceled: len hash | count | (len id)*
//
// every length or count is a single byte, integers are little endian
package transactionrecord
