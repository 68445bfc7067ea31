// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - pool of signed transactions waiting to be
// committed in a block
//
// admission runs the kind specific guard and the insert under one lock
// so of two conflicting submissions only one can be accepted, the
// other is rejected and the reason is kept as an admission error that
// the submitter can read back by transaction id
package reservoir
