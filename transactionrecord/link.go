// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/audittracker/fault"
)

// LinkLength - bytes in a transaction id
const LinkLength = 32

// Link - transaction id, SHA3-256 of the complete packed record
type Link [LinkLength]byte

// MakeLink - create the id of a packed record
func (record Packed) MakeLink() Link {
	return Link(sha3.Sum256(record))
}

// Bytes - convert a binary link to byte slice
func (link Link) Bytes() []byte {
	return link[:]
}

// String - hex string for use by the fmt package (for %s)
func (link Link) String() string {
	return hex.EncodeToString(link[:])
}

// Scan - convert a hex text representation to a link for the fmt scan routines
func (link *Link) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return link.UnmarshalText(token)
}

// MarshalText - convert link to hex text
func (link Link) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(LinkLength)
	buffer := make([]byte, size)
	hex.Encode(buffer, link[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a link
func (link *Link) UnmarshalText(s []byte) error {
	if LinkLength != hex.DecodedLen(len(s)) {
		return fault.ErrHashLength
	}
	byteCount, err := hex.Decode(link[:], s)
	if nil != err {
		return err
	}
	if LinkLength != byteCount {
		return fault.ErrHashLength
	}
	return nil
}
