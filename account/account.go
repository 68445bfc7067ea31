// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/audittracker/fault"
)

// miscellaneous constants
const (
	// ED25519 is the only supported key algorithm
	ED25519 = 1

	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an ed25519 public key on either the live or test network
type Account struct {
	Test      bool
	PublicKey []byte
}

// AccountFromPublicKey - wrap raw public key bytes
func AccountFromPublicKey(test bool, publicKey []byte) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	pk := make([]byte, len(publicKey))
	copy(pk, publicKey)
	return &Account{
		Test:      test,
		PublicKey: pk,
	}, nil
}

// AccountFromBase58 - this converts a Base58 encoded string and returns an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	if len(accountDecoded) <= 1+checksumLength {
		return nil, fault.ErrNotPublicKey
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - this converts a byte encoded buffer and returns an account
//
// buffer = key variant byte ++ public key
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	if 0 == len(accountBytes) {
		return nil, fault.ErrNotPublicKey
	}

	keyVariant := accountBytes[0]
	if keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	return AccountFromPublicKey(isTest, accountBytes[1:])
}

// IsTesting - true for a test network account
func (account *Account) IsTesting() bool {
	return account.Test
}

// PublicKeyBytes - the raw ed25519 public key
func (account *Account) PublicKeyBytes() []byte {
	return account.PublicKey
}

// Bytes - key variant followed by public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift | publicKeyCode)
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding of bytes with a 4 byte SHA3 checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// IsZero - the all zero public key is never a valid sender
func (account *Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// CheckSignature - verify an ed25519 signature over a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// MarshalText - convert an account to its base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a base58 string to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
