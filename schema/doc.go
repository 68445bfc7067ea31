// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package schema - structural validation of invoice transactions
//
// each kind has a declarative constraint tree extending a common
// envelope tree; string formats are checked by named predicates and
// any string longer than the wire ceiling is refused before the
// constraint engine runs
package schema
