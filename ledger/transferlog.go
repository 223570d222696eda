// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/noteledger/amount"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/storage"
	"github.com/bitmark-inc/noteledger/util"
)

// TransferEvent - one committed movement of tokens
type TransferEvent struct {
	Id        uint64            `json:"id"`
	From      identity.Identity `json:"from"`
	To        identity.Identity `json:"to"`
	Amount    amount.Amount     `json:"amount"`
	Timestamp uint64            `json:"timestamp"`
}

// TransferLog - append only id -> event map
//
// there is deliberately no update or delete
type TransferLog struct {
	pool *storage.PoolHandle
}

func newTransferLog(pool *storage.PoolHandle) *TransferLog {
	return &TransferLog{
		pool: pool,
	}
}

// Append - stage a new event, an existing id is refused
func (l *TransferLog) Append(trx storage.Transaction, event TransferEvent) error {
	key := storage.Uint64Key(event.Id)
	if trx.Has(l.pool, key) {
		return fault.ErrTransferExists
	}
	trx.Put(l.pool, key, packEvent(event))
	return nil
}

// Scan - visit committed events in ascending id order
func (l *TransferLog) Scan(f func(TransferEvent) error) error {
	return l.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if storage.IdSize != len(key) {
			return fault.ErrInvalidKeyLength
		}
		event, err := unpackEvent(binary.BigEndian.Uint64(key), value)
		if nil != err {
			return err
		}
		return f(event)
	})
}

// value: varbytes(from) ++ varbytes(to) ++ amount ++ timestamp
func packEvent(event TransferEvent) []byte {
	buffer := make([]byte, 0, len(event.From)+len(event.To)+amount.Size+8+2)
	buffer = util.AppendBytes(buffer, event.From)
	buffer = util.AppendBytes(buffer, event.To)
	buffer = append(buffer, event.Amount.Bytes()...)

	timestamp := make([]byte, 8)
	binary.BigEndian.PutUint64(timestamp, event.Timestamp)
	return append(buffer, timestamp...)
}

func unpackEvent(id uint64, value []byte) (TransferEvent, error) {
	from, rest, ok := util.SplitBytes(value)
	if !ok {
		return TransferEvent{}, fault.ErrRecordCorrupt
	}
	to, rest, ok := util.SplitBytes(rest)
	if !ok || amount.Size+8 != len(rest) {
		return TransferEvent{}, fault.ErrRecordCorrupt
	}
	a, err := amount.FromBytes(rest[:amount.Size])
	if nil != err {
		return TransferEvent{}, fault.ErrRecordCorrupt
	}
	return TransferEvent{
		Id:        id,
		From:      append(identity.Identity{}, from...),
		To:        append(identity.Identity{}, to...),
		Amount:    a,
		Timestamp: binary.BigEndian.Uint64(rest[amount.Size:]),
	}, nil
}
