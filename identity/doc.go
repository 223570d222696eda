// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - opaque caller identities
//
// An identity is a short byte string.  The single byte 0x04 is the
// anonymous caller; a signed caller is identified by the SHA3-224
// digest of its ed25519 public key followed by 0x02.  The text form
// is base58 with a four byte SHA3-256 checksum.
package identity
