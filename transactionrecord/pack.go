// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/audittracker/fault"
)

// wire ceilings from single byte prefixes
const (
	maxFieldLength = 255
	maxIdCount     = 255
)

// pack InvoiceAdded
//
// amount followed by the string fields in struct order
func (added *InvoiceAdded) Pack() (Packed, error) {
	message := appendUint64(nil, added.Amount)
	return appendStrings(message, added.Currency, added.Date, added.Invoice, added.Customer)
}

// pack InvoiceSplit
//
// same layout as InvoiceAdded with parent_invoice in place of customer
func (split *InvoiceSplit) Pack() (Packed, error) {
	message := appendUint64(nil, split.Amount)
	return appendStrings(message, split.Currency, split.Date, split.Invoice, split.ParentInvoice)
}

// pack InvoicePaid
func (paid *InvoicePaid) Pack() (Packed, error) {
	return packBatch(paid.Hash, paid.Ids)
}

// pack InvoiceCanceled
func (canceled *InvoiceCanceled) Pack() (Packed, error) {
	return packBatch(canceled.Hash, canceled.Ids)
}

// hash followed by a counted list of ids
func packBatch(hash string, ids []string) (Packed, error) {
	if len(ids) > maxIdCount {
		return nil, fault.ErrCountTooLarge
	}
	message, err := appendString(nil, hash)
	if nil != err {
		return nil, err
	}
	message = append(message, byte(len(ids)))
	return appendStrings(message, ids...)
}

func appendStrings(buffer Packed, items ...string) (Packed, error) {
	for _, s := range items {
		var err error
		buffer, err = appendString(buffer, s)
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

// append a single field to a buffer
//
// the field is prefixed by a one byte length, longer fields are
// refused rather than truncated
func appendString(buffer Packed, s string) (Packed, error) {
	if len(s) > maxFieldLength {
		return nil, fault.ErrFieldTooLong
	}
	if !utf8.ValidString(s) {
		return nil, fault.ErrUTF8
	}
	buffer = append(buffer, byte(len(s)))
	return append(buffer, s...), nil
}

// append a fixed 8 byte little endian integer
func appendUint64(buffer Packed, value uint64) Packed {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint32(buffer Packed, value uint32) Packed {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint16(buffer Packed, value uint16) Packed {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	return append(buffer, b[:]...)
}
