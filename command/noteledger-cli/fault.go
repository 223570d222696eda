// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/noteledger/fault"
)

// command line errors - keep in alphabetic order
var (
	ErrInvalidPasswordLength = fault.InvalidError("password must be at least 8 characters")
	ErrPasswordMismatch      = fault.InvalidError("passwords do not match")
	ErrRequiredAmount        = fault.InvalidError("amount is required")
	ErrRequiredConnect       = fault.InvalidError("connect is required")
	ErrRequiredDescription   = fault.InvalidError("description is required")
	ErrRequiredId            = fault.InvalidError("note id is required")
	ErrRequiredIdentity      = fault.InvalidError("identity is required")
	ErrRequiredReceiver      = fault.InvalidError("receiver is required")
	ErrRequiredSeed          = fault.InvalidError("one of seed or new is required")
	ErrRequiredTitle         = fault.InvalidError("title is required")
)
