// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/configuration"
	"github.com/bitmark-inc/audittracker/ledger"
	"github.com/bitmark-inc/audittracker/storage"
)

// credit genesis balances to accounts that have never been stored
func fundGenesis(log *logger.L, l *ledger.Ledger, store *storage.Store, genesis []configuration.GenesisType) error {
	for _, g := range genesis {
		acc, err := account.AccountFromBase58(g.Account)
		if nil != err {
			return err
		}
		if store.HasAccount(acc.PublicKey) {
			log.Debugf("genesis: %s already funded", acc)
			continue
		}
		err = l.Credit(acc, g.Balance)
		if nil != err {
			return err
		}
		log.Infof("genesis: %s  balance: %d", acc, g.Balance)
	}
	return nil
}
