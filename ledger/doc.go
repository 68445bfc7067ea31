// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the transaction pipeline
//
// Submit: decode, verify signature, validate, check activation and
// fee, then admit to the pending pool
//
// Commit: apply a block of transactions to the account store in one
// batch; a single failure invalidates the block and nothing of it is
// stored, on success the transactions leave the pool and their events
// are emitted
//
// Revert: undo a block in reverse order in one batch
package ledger
