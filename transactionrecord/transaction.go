// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/chain"
	"github.com/bitmark-inc/audittracker/fault"
)

// envelope constants
const (
	CurrentVersion = uint8(2)

	recordMarker    = 0xff
	signatureLength = ed25519.SignatureSize

	// marker, version, network, type group, kind, nonce, sender, fee, amount
	headerLength = 1 + 1 + 1 + 4 + 2 + 8 + ed25519.PublicKeySize + 8 + 8
)

// Transaction - the envelope around an invoice asset
type Transaction struct {
	Version   uint8             `json:"version"`
	Network   uint8             `json:"network"`
	TypeGroup uint32            `json:"typeGroup"`
	Kind      Kind              `json:"type"`
	Nonce     uint64            `json:"nonce,string"`
	Sender    *account.Account  `json:"senderPublicKey"` // base58
	Fee       uint64            `json:"fee,string"`
	Amount    uint64            `json:"amount,string"` // always zero
	Asset     Asset             `json:"asset"`
	Signature account.Signature `json:"signature,omitempty"` // hex
}

// SigningMessage - the packed record without any signature
func (tx *Transaction) SigningMessage() (Packed, error) {
	if nil == tx.Asset {
		return nil, fault.ErrMissingAsset
	}
	if nil == tx.Sender {
		return nil, fault.ErrWalletMissingPublicKey
	}
	if ed25519.PublicKeySize != len(tx.Sender.PublicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	name, ok := chain.NameFromNetwork(tx.Network)
	if !ok {
		return nil, fault.ErrInvalidChain
	}
	if tx.Sender.IsTesting() != chain.IsTesting(name) {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	if tx.Asset.Kind() != tx.Kind {
		return nil, fault.ErrUnknownTransactionKind
	}

	message := make(Packed, 0, headerLength)
	message = append(message, recordMarker, tx.Version, tx.Network)
	message = appendUint32(message, tx.TypeGroup)
	message = appendUint16(message, uint16(tx.Kind))
	message = appendUint64(message, tx.Nonce)
	message = append(message, tx.Sender.PublicKey...)
	message = appendUint64(message, tx.Fee)
	message = appendUint64(message, tx.Amount)

	asset, err := tx.Asset.Pack()
	if nil != err {
		return nil, err
	}
	return append(message, asset...), nil
}

// Pack - the full record, signature last when present
func (tx *Transaction) Pack() (Packed, error) {
	message, err := tx.SigningMessage()
	if nil != err {
		return nil, err
	}
	switch len(tx.Signature) {
	case 0:
		return message, nil
	case signatureLength:
		return append(message, tx.Signature...), nil
	default:
		return nil, fault.ErrInvalidSignature
	}
}

// Unpack - turn a complete byte slice into a transaction
//
// any bytes left after the asset must be exactly one signature
func (record Packed) Unpack() (*Transaction, error) {
	n := 0

	marker, err := readByte(record, &n)
	if nil != err {
		return nil, err
	}
	if recordMarker != marker {
		return nil, fault.ErrNotTransactionPack
	}

	version, err := readByte(record, &n)
	if nil != err {
		return nil, err
	}
	if CurrentVersion != version {
		return nil, fault.ErrUnsupportedVersion
	}

	network, err := readByte(record, &n)
	if nil != err {
		return nil, err
	}
	name, ok := chain.NameFromNetwork(network)
	if !ok {
		return nil, fault.ErrInvalidChain
	}

	typeGroup, err := readUint32(record, &n)
	if nil != err {
		return nil, err
	}
	if TypeGroup != typeGroup {
		return nil, fault.ErrInvalidTypeGroup
	}

	k, err := readUint16(record, &n)
	if nil != err {
		return nil, err
	}
	kind := Kind(k)
	if !kind.Valid() {
		return nil, fault.ErrUnknownTransactionKind
	}

	nonce, err := readUint64(record, &n)
	if nil != err {
		return nil, err
	}

	publicKey, err := readBytes(record, &n, ed25519.PublicKeySize)
	if nil != err {
		return nil, err
	}
	sender, err := account.AccountFromPublicKey(chain.IsTesting(name), publicKey)
	if nil != err {
		return nil, err
	}

	fee, err := readUint64(record, &n)
	if nil != err {
		return nil, err
	}
	amount, err := readUint64(record, &n)
	if nil != err {
		return nil, err
	}

	asset, assetLength, err := UnpackAsset(kind, record[n:])
	if nil != err {
		return nil, err
	}
	n += assetLength

	var signature account.Signature
	switch len(record) - n {
	case 0:
	case signatureLength:
		signature, _ = readBytes(record, &n, signatureLength)
	default:
		return nil, fault.ErrTrailingData
	}

	tx := &Transaction{
		Version:   version,
		Network:   network,
		TypeGroup: typeGroup,
		Kind:      kind,
		Nonce:     nonce,
		Sender:    sender,
		Fee:       fee,
		Amount:    amount,
		Asset:     asset,
		Signature: signature,
	}
	return tx, nil
}

// Id - SHA3-256 of the packed record including any signature
func (tx *Transaction) Id() (Link, error) {
	packed, err := tx.Pack()
	if nil != err {
		return Link{}, err
	}
	return packed.MakeLink(), nil
}

// Size - bytes in the packed record
func (tx *Transaction) Size() (int, error) {
	packed, err := tx.Pack()
	if nil != err {
		return 0, err
	}
	return len(packed), nil
}

// Sign - attach the signature of the sender
func (tx *Transaction) Sign(privateKey *account.PrivateKey) error {
	signer := privateKey.Account()
	if nil == tx.Sender {
		tx.Sender = signer
	} else if signer.String() != tx.Sender.String() {
		return fault.ErrSenderMismatch
	}

	message, err := tx.SigningMessage()
	if nil != err {
		return err
	}
	tx.Signature = privateKey.Sign(message)
	return nil
}

// Verify - check the sender signature
func (tx *Transaction) Verify() error {
	if signatureLength != len(tx.Signature) {
		return fault.ErrInvalidSignature
	}
	message, err := tx.SigningMessage()
	if nil != err {
		return err
	}
	return tx.Sender.CheckSignature(message, tx.Signature)
}
