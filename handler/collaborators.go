// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/transactionrecord"
	"github.com/bitmark-inc/audittracker/wallet"
)

//go:generate mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks

// Store - account store used by apply, revert and bootstrap
type Store interface {
	Begin() error
	Commit() error
	Abort()
	FindAccountByKey(acc *account.Account) (*wallet.Wallet, error)
	FindByIndex(name string, key string) (*wallet.Wallet, bool, error)
	Reindex(w *wallet.Wallet) error
	ForgetIndex(name string, attribute string) error
	ReplayHistory(batchSize int, f func([]*transactionrecord.Transaction) error) error
}

// EventSink - fire and forget event delivery
type EventSink interface {
	Emit(name string, payload interface{})
}
