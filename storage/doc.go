// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk account store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. sequence     = commit order as big endian uint64 (8 bytes)
// 4. txId         = transaction digest as 32 byte SHA3-256(data)
// 5. public key   = ed25519 public key (32 bytes)
//
// Wallets:
//
//   W ++ public key            - account state
//                                data: wallet JSON
//
// Indexes:
//
//   I ++ name ++ 0x00 ++ key   - secondary index over wallet attributes
//                                data: public key
//
// History:
//
//   T ++ sequence              - committed transactions in commit order
//                                data: packed transaction
//   X ++ txId                  - position of a committed transaction
//                                data: sequence
//
// Counters:
//
//   N ++ name                  - next value of a counter
//                                data: big endian uint64
package storage
