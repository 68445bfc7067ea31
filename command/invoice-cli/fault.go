// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/audittracker/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingHex     = fault.InvalidError("missing hex transaction argument")
	ErrMissingKey     = fault.InvalidError("missing private key")
	ErrUnexpectedKind = fault.ProcessError("internal error: unexpected transaction kind")
)
