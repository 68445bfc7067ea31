// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Asset - the kind specific payload of a transaction
type Asset interface {
	Kind() Kind
	Pack() (Packed, error)
}

// InvoiceAdded - register a new invoice against the sender
type InvoiceAdded struct {
	Amount   uint64 `json:"amount,string"` // minor currency units
	Currency string `json:"currency"`      // utf-8
	Date     string `json:"date"`          // ISO-8601 date-time
	Invoice  string `json:"invoice"`       // utf-8: identifier
	Customer string `json:"customer"`      // utf-8
}

// InvoicePaid - attest a batch of invoices as paid
type InvoicePaid struct {
	Hash string   `json:"hash"` // hex digest of the batch
	Ids  []string `json:"ids"`  // invoice identifiers
}

// InvoiceCanceled - attest a batch of invoices as canceled
type InvoiceCanceled struct {
	Hash string   `json:"hash"` // hex digest of the batch
	Ids  []string `json:"ids"`  // invoice identifiers
}

// InvoiceSplit - derive a child invoice from a parent
type InvoiceSplit struct {
	Amount        uint64 `json:"amount,string"`  // minor currency units
	Currency      string `json:"currency"`       // utf-8
	Date          string `json:"date"`           // ISO-8601 date-time
	Invoice       string `json:"invoice"`        // utf-8: child identifier
	ParentInvoice string `json:"parent_invoice"` // utf-8: not checked against history
}

// Kind - kind of this asset
func (added *InvoiceAdded) Kind() Kind { return InvoiceAddedKind }

// Kind - kind of this asset
func (paid *InvoicePaid) Kind() Kind { return InvoicePaidKind }

// Kind - kind of this asset
func (canceled *InvoiceCanceled) Kind() Kind { return InvoiceCanceledKind }

// Kind - kind of this asset
func (split *InvoiceSplit) Kind() Kind { return InvoiceSplitKind }

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
