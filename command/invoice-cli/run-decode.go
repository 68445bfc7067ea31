// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/audittracker/chain"
	"github.com/bitmark-inc/audittracker/handler"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

type decodeResult struct {
	TxId        transactionrecord.Link         `json:"txId"`
	Kind        string                         `json:"kind"`
	Chain       string                         `json:"chain"`
	Verified    bool                           `json:"verified"`
	Size        int                            `json:"size"`
	Transaction *transactionrecord.Transaction `json:"transaction"`
}

type feeResult struct {
	Kind       string `json:"kind"`
	Size       int    `json:"size"`
	Fee        uint64 `json:"fee,string"`
	MinimumFee uint64 `json:"minimum_fee,string"`
	Sufficient bool   `json:"sufficient"`
}

func unpackArgument(c *cli.Context) (*transactionrecord.Transaction, transactionrecord.Packed, error) {
	s := strings.TrimSpace(c.Args().First())
	if "" == s {
		return nil, nil, ErrMissingHex
	}

	var packed transactionrecord.Packed
	err := packed.UnmarshalText([]byte(s))
	if nil != err {
		return nil, nil, err
	}
	tx, err := packed.Unpack()
	if nil != err {
		return nil, nil, err
	}
	return tx, packed, nil
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, packed, err := unpackArgument(c)
	if nil != err {
		return err
	}

	name, ok := chain.NameFromNetwork(tx.Network)
	if !ok {
		name = fmt.Sprintf("unknown: 0x%02x", tx.Network)
	}

	err = tx.Verify()
	if nil != err && m.verbose {
		fmt.Fprintf(m.e, "verify error: %s\n", err)
	}

	return printJson(m.w, decodeResult{
		TxId:        packed.MakeLink(),
		Kind:        tx.Kind.String(),
		Chain:       name,
		Verified:    nil == err,
		Size:        len(packed),
		Transaction: tx,
	})
}

func runFee(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, packed, err := unpackArgument(c)
	if nil != err {
		return err
	}

	registry, err := handler.NewInvoiceRegistry(true)
	if nil != err {
		return err
	}
	h, ok := registry.Get(tx.Kind)
	if !ok {
		return ErrUnexpectedKind
	}

	minimumFee, err := h.DynamicFee(tx, c.Uint64("addon-bytes"), c.Uint64("fee-per-byte"))
	if nil != err {
		return err
	}

	return printJson(m.w, feeResult{
		Kind:       tx.Kind.String(),
		Size:       len(packed),
		Fee:        tx.Fee,
		MinimumFee: minimumFee,
		Sufficient: tx.Fee >= minimumFee,
	})
}
