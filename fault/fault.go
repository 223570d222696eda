// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InsufficientError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrBalanceOverflow         = InvalidError("balance overflow")
	ErrCannotDecodeIdentity    = InvalidError("cannot decode identity")
	ErrCertificateFileExists   = ExistsError("certificate file already exists")
	ErrDatabaseIsNotSet        = ProcessError("database is not set")
	ErrDatabaseVersion         = ProcessError("database version is not supported")
	ErrDuplicatePrefix         = InvalidError("duplicate pool prefix")
	ErrExpiredCredentials      = InvalidError("credentials timestamp outside allowed window")
	ErrIdentityTooLong         = InvalidError("identity too long")
	ErrInsufficientBalance     = InsufficientError("insufficient balance")
	ErrInvalidAmount           = InvalidError("invalid amount")
	ErrInvalidConfiguration    = InvalidError("invalid configuration")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidCursor           = InvalidError("invalid cursor")
	ErrInvalidIpAddress        = InvalidError("invalid IP address")
	ErrInvalidKeyLength        = InvalidError("invalid key length")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidPrefix           = InvalidError("invalid pool prefix")
	ErrInvalidPublicKey        = InvalidError("invalid public key")
	ErrInvalidSignature        = InvalidError("invalid signature")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrKeyFileExists           = ExistsError("key file already exists")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrNoteTooLarge            = InvalidError("note too large")
	ErrNotFoundConfigFile      = NotFoundError("config file is not found")
	ErrRateLimiting            = ProcessError("rate limit exceeded")
	ErrReadOnly                = ProcessError("not available in read-only mode")
	ErrRecordCorrupt           = ProcessError("stored record is corrupt")
	ErrReplayedCredentials     = InvalidError("credentials already used")
	ErrTransactionAlreadyInUse = ProcessError("transaction already in use")
	ErrTransactionNotInUse     = ProcessError("transaction not in use")
	ErrTransferExists          = ExistsError("transfer already exists")
	ErrTrapped                 = ProcessError("invocation trapped")
	ErrUnauthenticated         = PermissionError("unauthenticated")
	ErrUnauthorized            = PermissionError("not authorized")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InsufficientError) Error() string { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e PermissionError) Error() string   { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

// determine the class of an error, also through any %w wrapping
func IsErrExists(e error) bool       { var c ExistsError; return errors.As(e, &c) }
func IsErrInsufficient(e error) bool { var c InsufficientError; return errors.As(e, &c) }
func IsErrInvalid(e error) bool      { var c InvalidError; return errors.As(e, &c) }
func IsErrNotFound(e error) bool     { var c NotFoundError; return errors.As(e, &c) }
func IsErrPermission(e error) bool   { var c PermissionError; return errors.As(e, &c) }
func IsErrProcess(e error) bool      { var c ProcessError; return errors.As(e, &c) }
