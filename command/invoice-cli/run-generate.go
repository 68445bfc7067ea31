// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/audittracker/account"
)

type generateResult struct {
	Account    *account.Account `json:"account"`
	PrivateKey string           `json:"private_key"`
	Seed       string           `json:"seed"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "network: %s\n", m.network)
	}

	return printJson(m.w, generateResult{
		Account:    privateKey.Account(),
		PrivateKey: hex.EncodeToString(privateKey.PrivateKey),
		Seed:       hex.EncodeToString(privateKey.Seed()),
	})
}
