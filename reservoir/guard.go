// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

//go:generate mockgen -source=guard.go -destination=mocks/mock_guard.go -package=mocks

// admission error codes
const (
	ErrCodePending     = "ERR_PENDING"
	ErrCodeLowFee      = "ERR_LOW_FEE"
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
	ErrCodeDuplicate   = "ERR_DUPLICATE"
	ErrCodeUnsupported = "ERR_UNSUPPORTED"
	ErrCodeApply       = "ERR_APPLY"
)

// Pending - the view of the pool given to an admission guard
type Pending interface {
	TransactionsOfKind(kind transactionrecord.Kind) []*transactionrecord.Transaction
	PushAdmissionError(tx *transactionrecord.Transaction, code string, message string)
}

// Guard - decides if a transaction may join the pending transactions
//
// a false result must be accompanied by an admission error
type Guard interface {
	CanEnterPool(tx *transactionrecord.Transaction, pending Pending) bool
}
