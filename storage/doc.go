// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++       = concatenation of byte data
// 3. owner    = identity bytes (variable length, at most 64 bytes)
// 4. id       = big endian uint64 (8 bytes)
// 5. amount   = big endian uint128 (16 bytes)
// 6. varbytes = varint64 length ++ bytes
//
// Notes:
//
//   n ++ owner ++ id           - note owned by owner
//                                data: varbytes(title) ++ varbytes(content)
//   i                          - next note id
//                                data: id
//
// Ledger:
//
//   b ++ owner                 - balance, absent means zero
//                                data: amount
//   t ++ id                    - transfer event, append only
//                                data: varbytes(from) ++ varbytes(to) ++ amount ++ timestamp
//   x                          - next transfer id
//                                data: id
//
// Version:
//
//   0x00 ++ "VERSION"          - database layout version
//                                data: big endian uint32
package storage
