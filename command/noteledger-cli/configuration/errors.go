// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/bitmark-inc/noteledger/fault"
)

// client configuration errors - keep in alphabetic order
var (
	ErrCryptoFailed              = fault.ProcessError("encrypt or decrypt failed")
	ErrIdentityNameAlreadyExists = fault.ExistsError("identity name already exists")
	ErrIdentityNameNotFound      = fault.NotFoundError("identity name not found")
	ErrInvalidSalt               = fault.InvalidError("invalid salt")
	ErrInvalidSeed               = fault.InvalidError("invalid seed")
	ErrNotPrivateKey             = fault.InvalidError("identity has no private key")
	ErrRequiredConnect           = fault.InvalidError("connect is required")
	ErrWrongPassword             = fault.InvalidError("wrong password")
)
