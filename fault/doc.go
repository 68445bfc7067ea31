// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// The error classes follow the order a transaction meets them:
//   LengthError, InvalidError - structural schema failure, never retried
//   RecordError               - packed data cannot be decoded
//   PoolError                 - pending pool admission refused, may resubmit
//   ExistsError               - committed state invariant violated
package fault
