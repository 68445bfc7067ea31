// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/builder"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

type signedResult struct {
	TxId        transactionrecord.Link         `json:"txId"`
	Kind        string                         `json:"kind"`
	Transaction *transactionrecord.Transaction `json:"transaction"`
	Packed      transactionrecord.Packed       `json:"hex"`
}

func runAdded(c *cli.Context) error {
	b := builder.NewInvoiceAdded(transactionrecord.InvoiceAdded{
		Amount:   c.Uint64("amount"),
		Currency: strings.TrimSpace(c.String("currency")),
		Date:     strings.TrimSpace(c.String("date")),
		Invoice:  strings.TrimSpace(c.String("invoice")),
		Customer: strings.TrimSpace(c.String("customer")),
	})
	return signAndPrint(c, b)
}

func runPaid(c *cli.Context) error {
	b := builder.NewInvoicePaid(transactionrecord.InvoicePaid{
		Hash: strings.TrimSpace(c.String("hash")),
		Ids:  c.StringSlice("id"),
	})
	return signAndPrint(c, b)
}

func runCanceled(c *cli.Context) error {
	b := builder.NewInvoiceCanceled(transactionrecord.InvoiceCanceled{
		Hash: strings.TrimSpace(c.String("hash")),
		Ids:  c.StringSlice("id"),
	})
	return signAndPrint(c, b)
}

func runSplit(c *cli.Context) error {
	b := builder.NewInvoiceSplit(transactionrecord.InvoiceSplit{
		Amount:        c.Uint64("amount"),
		Currency:      strings.TrimSpace(c.String("currency")),
		Date:          strings.TrimSpace(c.String("date")),
		Invoice:       strings.TrimSpace(c.String("invoice")),
		ParentInvoice: strings.TrimSpace(c.String("parent")),
	})
	return signAndPrint(c, b)
}

// common tail of every signing command
func signAndPrint(c *cli.Context, b *builder.Builder) error {

	m := c.App.Metadata["config"].(*metadata)

	key := strings.TrimSpace(c.String("key"))
	if "" == key {
		return ErrMissingKey
	}
	privateKey, err := account.PrivateKeyFromHex(m.testnet, key)
	if nil != err {
		return err
	}

	tx, err := b.Network(m.network).Nonce(c.Uint64("nonce")).Fee(c.Uint64("fee")).Sign(privateKey)
	if nil != err {
		return err
	}

	packed, err := tx.Pack()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", tx.Sender)
		fmt.Fprintf(m.e, "packed size: %d\n", len(packed))
	}

	return printJson(m.w, signedResult{
		TxId:        packed.MakeLink(),
		Kind:        tx.Kind.String(),
		Transaction: tx,
		Packed:      packed,
	})
}
