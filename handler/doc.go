// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - per kind processing of invoice transactions
//
// each kind has one Handler combining its codec, validation,
// apply/revert state changes, pool admission check and events;
// handlers are looked up by kind in a Registry created at startup
//
// InvoiceAdded is the only kind that changes account attributes: the
// sender's "invoiceAdded.invoices" map holds every invoice it added and
// the "invoices" index maps each invoice to its holder so at most one
// account can hold an invoice.  The other kinds are attestations that
// only pay the fee and advance the nonce.
package handler
