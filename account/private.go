// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/audittracker/fault"
)

// PrivateKey - signing key for an account
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a random key pair
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: privateKey,
	}, nil
}

// PrivateKeyFromSeed - deterministic key from a 32 byte seed
func PrivateKeyFromSeed(test bool, seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrPrivateKeyLength
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// PrivateKeyFromHex - either a hex seed or a full hex private key
func PrivateKeyFromHex(test bool, s string) (*PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	switch len(b) {
	case ed25519.SeedSize:
		return PrivateKeyFromSeed(test, b)
	case ed25519.PrivateKeySize:
		return &PrivateKey{
			Test:       test,
			PrivateKey: ed25519.PrivateKey(b),
		}, nil
	default:
		return nil, fault.ErrPrivateKeyLength
	}
}

// Account - the public half
func (privateKey *PrivateKey) Account() *Account {
	publicKey := privateKey.PrivateKey.Public().(ed25519.PublicKey)
	return &Account{
		Test:      privateKey.Test,
		PublicKey: []byte(publicKey),
	}
}

// Seed - the 32 byte seed the key was derived from
func (privateKey *PrivateKey) Seed() []byte {
	return privateKey.PrivateKey.Seed()
}

// Sign - produce an ed25519 signature
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}
