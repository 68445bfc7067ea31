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

// UnpackAsset - turn a byte slice into an asset of the given kind
//
// fields are consumed in pack order; returns the asset and the
// number of bytes used, any bytes after that belong to the caller
//
// must cast result to correct type
//
// e.g.
//   switch a := asset.(type) {
//   case *transactionrecord.InvoiceAdded:
func UnpackAsset(kind Kind, record Packed) (Asset, int, error) {
	n := 0

	switch kind {

	case InvoiceAddedKind, InvoiceSplitKind:

		amount, err := readUint64(record, &n)
		if nil != err {
			return nil, 0, err
		}
		fields := [4]string{}
		for i := range fields {
			fields[i], err = readString(record, &n)
			if nil != err {
				return nil, 0, err
			}
		}

		if InvoiceAddedKind == kind {
			r := &InvoiceAdded{
				Amount:   amount,
				Currency: fields[0],
				Date:     fields[1],
				Invoice:  fields[2],
				Customer: fields[3],
			}
			return r, n, nil
		}
		r := &InvoiceSplit{
			Amount:        amount,
			Currency:      fields[0],
			Date:          fields[1],
			Invoice:       fields[2],
			ParentInvoice: fields[3],
		}
		return r, n, nil

	case InvoicePaidKind, InvoiceCanceledKind:

		hash, err := readString(record, &n)
		if nil != err {
			return nil, 0, err
		}

		count, err := readByte(record, &n)
		if nil != err {
			return nil, 0, err
		}

		ids := make([]string, count)
		for i := 0; i < int(count); i += 1 {
			ids[i], err = readString(record, &n)
			if nil != err {
				return nil, 0, err
			}
		}

		if InvoicePaidKind == kind {
			return &InvoicePaid{Hash: hash, Ids: ids}, n, nil
		}
		return &InvoiceCanceled{Hash: hash, Ids: ids}, n, nil

	default:
		return nil, 0, fault.ErrUnknownTransactionKind
	}
}

// read a length prefixed string advancing the offset
func readString(record Packed, n *int) (string, error) {
	if *n >= len(record) {
		return "", fault.ErrTruncatedRecord
	}
	length := int(record[*n])
	start := *n + 1
	end := start + length
	if end > len(record) {
		return "", fault.ErrTruncatedRecord
	}
	s := string(record[start:end])
	if !utf8.ValidString(s) {
		return "", fault.ErrUTF8
	}
	*n = end
	return s, nil
}

func readBytes(record Packed, n *int, length int) ([]byte, error) {
	end := *n + length
	if end > len(record) {
		return nil, fault.ErrTruncatedRecord
	}
	b := make([]byte, length)
	copy(b, record[*n:end])
	*n = end
	return b, nil
}

func readUint64(record Packed, n *int) (uint64, error) {
	b, err := readBytes(record, n, 8)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func readUint32(record Packed, n *int) (uint32, error) {
	b, err := readBytes(record, n, 4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func readUint16(record Packed, n *int) (uint16, error) {
	b, err := readBytes(record, n, 2)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func readByte(record Packed, n *int) (byte, error) {
	if *n >= len(record) {
		return 0, fault.ErrTruncatedRecord
	}
	b := record[*n]
	*n += 1
	return b, nil
}
