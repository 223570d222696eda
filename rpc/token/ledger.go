// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/noteledger/amount"
	"github.com/bitmark-inc/noteledger/auth"
	"github.com/bitmark-inc/noteledger/canister"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/ledger"
	"github.com/bitmark-inc/noteledger/rpc/ratelimit"
)

// Ledger
// ------

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

// Ledger - type for RPC
type Ledger struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Gate     *auth.Gate
	Canister canister.Canister
	ReadOnly bool
}

// New - create the ledger service
func New(log *logger.L, gate *auth.Gate, c canister.Canister, readOnly bool) *Ledger {
	return &Ledger{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Gate:     gate,
		Canister: c,
		ReadOnly: readOnly,
	}
}

// BalanceReply - a balance as decimal text
type BalanceReply struct {
	Owner   identity.Identity `json:"owner"`
	Balance amount.Amount     `json:"balance"`
}

// Balance of any identity
// -----------------------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner identity.Identity `json:"owner"` // base58
}

// Balance - balance of an identity, zero if it never received anything
func (l *Ledger) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Owner) {
		return fault.ErrMissingParameters
	}

	l.Log.Infof("Ledger.Balance: owner: %s", arguments.Owner)

	balance, err := l.Canister.BalanceOf(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Owner = arguments.Owner
	reply.Balance = balance
	return nil
}

// Balance of the caller
// ---------------------

// MyBalanceArguments - arguments for RPC
type MyBalanceArguments struct {
	auth.Credentials
}

// MyBalance - balance of the caller
func (l *Ledger) MyBalance(arguments *MyBalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	caller, err := l.Gate.Resolve("Ledger.MyBalance", arguments.Credentials)
	if nil != err {
		return err
	}

	l.Log.Infof("Ledger.MyBalance: caller: %s", caller.Identity)

	balance, err := l.Canister.MyBalance(caller)
	if nil != err {
		return err
	}
	reply.Owner = caller.Identity
	reply.Balance = balance
	return nil
}

// Transfer and mint
// -----------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	auth.Credentials
	To     identity.Identity `json:"to"`     // base58
	Amount amount.Amount     `json:"amount"` // decimal
}

// SignedFields - the fields bound into the credentials signature
func (arguments TransferArguments) SignedFields() [][]byte {
	return [][]byte{arguments.To.Bytes(), arguments.Amount.Bytes()}
}

// TransferReply - empty on success
type TransferReply struct{}

// Transfer - move tokens from the caller
func (l *Ledger) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if l.ReadOnly {
		return fault.ErrReadOnly
	}

	if nil == arguments || 0 == len(arguments.To) {
		return fault.ErrMissingParameters
	}

	caller, err := l.Gate.Resolve("Ledger.Transfer", arguments.Credentials, arguments.SignedFields()...)
	if nil != err {
		return err
	}

	l.Log.Infof("Ledger.Transfer: caller: %s  to: %s  amount: %s", caller.Identity, arguments.To, arguments.Amount)

	return l.Canister.Transfer(caller, arguments.To, arguments.Amount)
}

// Mint - create tokens, controllers only
func (l *Ledger) Mint(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if l.ReadOnly {
		return fault.ErrReadOnly
	}

	if nil == arguments || 0 == len(arguments.To) {
		return fault.ErrMissingParameters
	}

	caller, err := l.Gate.Resolve("Ledger.Mint", arguments.Credentials, arguments.SignedFields()...)
	if nil != err {
		return err
	}

	l.Log.Infof("Ledger.Mint: caller: %s  to: %s  amount: %s", caller.Identity, arguments.To, arguments.Amount)

	return l.Canister.MintTo(caller, arguments.To, arguments.Amount)
}

// The caller's transfer history
// -----------------------------

// TransfersArguments - arguments for RPC
type TransfersArguments struct {
	auth.Credentials
}

// TransfersReply - events in ascending id order
type TransfersReply struct {
	Transfers []ledger.TransferEvent `json:"transfers"`
}

// Transfers - every event sent or received by the caller
func (l *Ledger) Transfers(arguments *TransfersArguments, reply *TransfersReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	caller, err := l.Gate.Resolve("Ledger.Transfers", arguments.Credentials)
	if nil != err {
		return err
	}

	l.Log.Infof("Ledger.Transfers: caller: %s", caller.Identity)

	transfers, err := l.Canister.MyTransfers(caller)
	if nil != err {
		return err
	}
	reply.Transfers = transfers
	return nil
}
