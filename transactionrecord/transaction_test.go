// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/chain"
	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/transactionrecord"
	"github.com/bitmark-inc/audittracker/util"
)

// test keys, the public key is from a known account
var (
	senderPublicKey = mustHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db")
	signerSeed      = mustHex("6396dd14d2381e00682feb2a1b3171584361d70495abd33a43d6151a442d1bed")
)

func makeAdded(sender *account.Account) *transactionrecord.Transaction {
	return &transactionrecord.Transaction{
		Version:   transactionrecord.CurrentVersion,
		Network:   chain.TestingNetwork,
		TypeGroup: transactionrecord.TypeGroup,
		Kind:      transactionrecord.InvoiceAddedKind,
		Nonce:     1,
		Sender:    sender,
		Fee:       5000000000,
		Amount:    0,
		Asset: &transactionrecord.InvoiceAdded{
			Amount:   11356000000,
			Currency: "EUR",
			Date:     "2019-01-01T00:00:00.000Z",
			Invoice:  "2019/0001",
			Customer: "A. Buyer",
		},
	}
}

func TestPackEnvelope(t *testing.T) {
	sender, err := account.AccountFromPublicKey(true, senderPublicKey)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	tx := makeAdded(sender)

	expected := []byte{
		0xff, 0x02, 0x1e, 0xe9, 0x03, 0x00, 0x00, 0x00,
		0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x73, 0x11, 0x14, 0x26, 0x7f, 0x15, 0x75,
		0x4a, 0x5f, 0xce, 0x4a, 0xae, 0xd8, 0x38, 0x0b,
		0x28, 0xaf, 0xf2, 0x5a, 0xf7, 0xb3, 0x78, 0xb0,
		0x11, 0xd9, 0x2e, 0xf7, 0xb3, 0xf0, 0x89, 0x10,
		0xdb, 0x00, 0xf2, 0x05, 0x2a, 0x01, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0xcf, 0xde, 0xa4, 0x02, 0x00, 0x00,
		0x00, 0x03, 0x45, 0x55, 0x52, 0x18, 0x32, 0x30,
		0x31, 0x39, 0x2d, 0x30, 0x31, 0x2d, 0x30, 0x31,
		0x54, 0x30, 0x30, 0x3a, 0x30, 0x30, 0x3a, 0x30,
		0x30, 0x2e, 0x30, 0x30, 0x30, 0x5a, 0x09, 0x32,
		0x30, 0x31, 0x39, 0x2f, 0x30, 0x30, 0x30, 0x31,
		0x08, 0x41, 0x2e, 0x20, 0x42, 0x75, 0x79, 0x65,
		0x72,
	}

	expectedTxId := transactionrecord.Link{
		0x37, 0x0e, 0xa8, 0x05, 0xf1, 0x7d, 0x42, 0xfd,
		0x79, 0x13, 0xda, 0x95, 0xd4, 0x06, 0xbd, 0xde,
		0xb6, 0x95, 0x3b, 0xe3, 0x8a, 0x63, 0xd9, 0xf1,
		0x0c, 0x78, 0xa5, 0x08, 0x97, 0x9b, 0xf1, 0x94,
	}

	packed, err := tx.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	txId, err := tx.Id()
	if nil != err {
		t.Fatalf("id error: %s", err)
	}
	if txId != expectedTxId {
		t.Errorf("pack tx id: %#v  expected: %#v", txId, expectedTxId)
		t.Errorf("*** GENERATED tx id:\n%s", util.FormatBytes("expectedTxId", txId[:]))
	}

	unpacked, err := transactionrecord.Packed(packed).Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if !reflect.DeepEqual(tx, unpacked) {
		t.Fatalf("different, original: %v  recovered: %v", tx, unpacked)
	}

	size, err := tx.Size()
	if nil != err {
		t.Fatalf("size error: %s", err)
	}
	if len(expected) != size {
		t.Errorf("size: %d  expected: %d", size, len(expected))
	}
}

func TestSignAndVerify(t *testing.T) {
	privateKey, err := account.PrivateKeyFromSeed(true, signerSeed)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}

	tx := makeAdded(nil)
	err = tx.Verify()
	if fault.ErrInvalidSignature != err {
		t.Errorf("unsigned verify: expected: %v  actual: %v", fault.ErrInvalidSignature, err)
	}

	err = tx.Sign(privateKey)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if err := tx.Verify(); nil != err {
		t.Fatalf("verify error: %s", err)
	}

	packed, err := tx.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if !reflect.DeepEqual(tx, unpacked) {
		t.Fatalf("different, original: %v  recovered: %v", tx, unpacked)
	}
	if err := unpacked.Verify(); nil != err {
		t.Errorf("verify after unpack error: %s", err)
	}

	repacked, err := unpacked.Pack()
	if nil != err {
		t.Fatalf("repack error: %s", err)
	}
	if !bytes.Equal(packed, repacked) {
		t.Errorf("repack: %x  expected: %x", repacked, packed)
	}

	b, err := json.MarshalIndent(unpacked, "", "  ")
	if nil != err {
		t.Fatalf("json error: %s", err)
	}
	t.Logf("Transaction: JSON: %s", b)

	// any change invalidates the signature
	unpacked.Fee += 1
	if fault.ErrInvalidSignature != unpacked.Verify() {
		t.Errorf("modified fee still verifies")
	}

	// signing with a different key is refused
	other, err := account.PrivateKeyFromSeed(true, bytes.Repeat([]byte{0x42}, 32))
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	if fault.ErrSenderMismatch != tx.Sign(other) {
		t.Errorf("foreign signer accepted")
	}
}

func TestUnpackEnvelopeErrors(t *testing.T) {
	sender, err := account.AccountFromPublicKey(true, senderPublicKey)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	packed, err := makeAdded(sender).Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	type mutation struct {
		name   string
		record transactionrecord.Packed
		err    error
	}
	mutate := func(offset int, value byte) transactionrecord.Packed {
		record := append(transactionrecord.Packed{}, packed...)
		record[offset] = value
		return record
	}

	tests := []mutation{
		{"empty", transactionrecord.Packed{}, fault.ErrTruncatedRecord},
		{"marker", mutate(0, 0x00), fault.ErrNotTransactionPack},
		{"version", mutate(1, 0x01), fault.ErrUnsupportedVersion},
		{"network", mutate(2, 0x01), fault.ErrInvalidChain},
		{"type group", mutate(3, 0xea), fault.ErrInvalidTypeGroup},
		{"kind", mutate(7, 0x09), fault.ErrUnknownTransactionKind},
		{"header only", packed[:65], fault.ErrTruncatedRecord},
		{"trailing", append(append(transactionrecord.Packed{}, packed...), 0x00), fault.ErrTrailingData},
	}

	for _, test := range tests {
		_, err := test.record.Unpack()
		if test.err != err {
			t.Errorf("%s: expected: %v  actual: %v", test.name, test.err, err)
		}
	}
}

func TestPackEnvelopeErrors(t *testing.T) {
	live, err := account.AccountFromPublicKey(false, senderPublicKey)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}

	tx := makeAdded(live)
	if _, err := tx.Pack(); fault.ErrWrongNetworkForPublicKey != err {
		t.Errorf("live key on test network: expected: %v  actual: %v", fault.ErrWrongNetworkForPublicKey, err)
	}

	tx.Network = chain.BitmarkNetwork
	if _, err := tx.Pack(); nil != err {
		t.Errorf("live key on live network: error: %s", err)
	}

	tx.Kind = transactionrecord.InvoicePaidKind
	if _, err := tx.Pack(); fault.ErrUnknownTransactionKind != err {
		t.Errorf("kind mismatch: expected: %v  actual: %v", fault.ErrUnknownTransactionKind, err)
	}

	tx.Kind = transactionrecord.InvoiceAddedKind
	tx.Asset = nil
	if _, err := tx.Pack(); fault.ErrMissingAsset != err {
		t.Errorf("no asset: expected: %v  actual: %v", fault.ErrMissingAsset, err)
	}

	tx = makeAdded(live)
	tx.Network = chain.BitmarkNetwork
	tx.Signature = account.Signature{0x01, 0x02}
	if _, err := tx.Pack(); fault.ErrInvalidSignature != err {
		t.Errorf("short signature: expected: %v  actual: %v", fault.ErrInvalidSignature, err)
	}
}

func TestLinkText(t *testing.T) {
	link := transactionrecord.Packed("abc").MakeLink()
	text, err := link.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	var back transactionrecord.Link
	if err := back.UnmarshalText(text); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if back != link {
		t.Errorf("link: %s  expected: %s", back, link)
	}
	if fault.ErrHashLength != back.UnmarshalText([]byte("abcd")) {
		t.Errorf("short link text accepted")
	}
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}
