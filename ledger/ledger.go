// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - token balances and the transfer state machine
package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/amount"
	"github.com/bitmark-inc/noteledger/counter"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/storage"
)

// Ledger - balances plus the log of every change to them
type Ledger struct {
	log       *logger.L
	balances  *storage.PoolHandle
	transfers *TransferLog
	ids       *counter.Persistent
}

// New - bind a ledger to its pools
func New(balances *storage.PoolHandle, transfers *storage.PoolHandle, ids *counter.Persistent) *Ledger {
	return &Ledger{
		log:       logger.New("ledger"),
		balances:  balances,
		transfers: newTransferLog(transfers),
		ids:       ids,
	}
}

// BalanceOf - committed balance, zero if never credited
func (l *Ledger) BalanceOf(id identity.Identity) (amount.Amount, error) {
	return decodeBalance(l.balances.Get(storage.IdentityKey(id)))
}

// Transfer - move value from one identity to another
//
// the checks run in this order before anything is staged:
// anonymous sender, zero or self transfer (success, no event),
// insufficient balance, recipient overflow
func (l *Ledger) Transfer(trx storage.Transaction, from identity.Identity, to identity.Identity, value amount.Amount, timestamp uint64) error {
	if from.IsAnonymous() {
		return fault.ErrUnauthenticated
	}
	if value.IsZero() || from.Equal(to) {
		return nil
	}

	fromBalance, err := l.stagedBalance(trx, from)
	if nil != err {
		return err
	}
	debited, ok := fromBalance.Sub(value)
	if !ok {
		l.log.Debugf("transfer: from: %s  balance: %s < %s", from, fromBalance, value)
		return fault.ErrInsufficientBalance
	}

	toBalance, err := l.stagedBalance(trx, to)
	if nil != err {
		return err
	}
	credited, ok := toBalance.Add(value)
	if !ok {
		l.log.Warnf("transfer: to: %s  balance overflow", to)
		return fault.ErrBalanceOverflow
	}

	event := TransferEvent{
		Id:        l.ids.Next(trx),
		From:      from,
		To:        to,
		Amount:    value,
		Timestamp: timestamp,
	}
	err = l.transfers.Append(trx, event)
	if nil != err {
		return err
	}

	trx.Put(l.balances, storage.IdentityKey(from), debited.Bytes())
	trx.Put(l.balances, storage.IdentityKey(to), credited.Bytes())

	l.log.Infof("transfer: id: %d  from: %s  to: %s  amount: %s", event.Id, from, to, value)
	return nil
}

// MintTo - create value for an identity, controllers only
//
// the event records the minting controller as the sender; no balance
// is debited
func (l *Ledger) MintTo(trx storage.Transaction, caller identity.Identity, isController bool, to identity.Identity, value amount.Amount, timestamp uint64) error {
	if !isController {
		return fault.ErrUnauthorized
	}
	if value.IsZero() {
		return nil
	}

	toBalance, err := l.stagedBalance(trx, to)
	if nil != err {
		return err
	}
	credited, ok := toBalance.Add(value)
	if !ok {
		l.log.Warnf("mint: to: %s  balance overflow", to)
		return fault.ErrBalanceOverflow
	}

	event := TransferEvent{
		Id:        l.ids.Next(trx),
		From:      caller,
		To:        to,
		Amount:    value,
		Timestamp: timestamp,
	}
	err = l.transfers.Append(trx, event)
	if nil != err {
		return err
	}

	trx.Put(l.balances, storage.IdentityKey(to), credited.Bytes())

	l.log.Infof("mint: id: %d  by: %s  to: %s  amount: %s", event.Id, caller, to, value)
	return nil
}

// TransfersFor - every event sending to or from id, ascending by event id
func (l *Ledger) TransfersFor(id identity.Identity) ([]TransferEvent, error) {
	result := make([]TransferEvent, 0)
	err := l.transfers.Scan(func(event TransferEvent) error {
		if event.From.Equal(id) || event.To.Equal(id) {
			result = append(result, event)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return result, nil
}

// ScanTransfers - visit the whole committed log in id order
func (l *Ledger) ScanTransfers(f func(TransferEvent) error) error {
	return l.transfers.Scan(f)
}

// NextTransferId - id the next event will receive
func (l *Ledger) NextTransferId() uint64 {
	return l.ids.Peek()
}

func (l *Ledger) stagedBalance(trx storage.Transaction, id identity.Identity) (amount.Amount, error) {
	return decodeBalance(trx.Get(l.balances, storage.IdentityKey(id)))
}

func decodeBalance(value []byte) (amount.Amount, error) {
	if nil == value {
		return amount.Zero, nil
	}
	a, err := amount.FromBytes(value)
	if nil != err {
		return amount.Zero, fault.ErrRecordCorrupt
	}
	return a, nil
}
