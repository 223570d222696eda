// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package canister - the externally callable entry operations
//
// every operation is either a query (read lock, committed state) or an
// update (exclusive, all-or-nothing) run through the host
package canister

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/amount"
	"github.com/bitmark-inc/noteledger/auth"
	"github.com/bitmark-inc/noteledger/counter"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/host"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/ledger"
	"github.com/bitmark-inc/noteledger/notes"
	"github.com/bitmark-inc/noteledger/storage"
)

// default note limits
const (
	DefaultMaximumTitle   = 256
	DefaultMaximumContent = 64 * 1024
)

// Limits - note payload limits in bytes
type Limits struct {
	MaximumTitle   int
	MaximumContent int
}

// Info - description of the running service
type Info struct {
	NextNoteId     uint64
	NextTransferId uint64
	Uptime         time.Duration
}

// Canister - the entry operations
type Canister interface {
	ListForCaller(caller auth.Caller) ([]notes.Note, error)
	CreateNote(caller auth.Caller, title string, content string) (notes.Note, error)
	UpdateNote(caller auth.Caller, id uint64, title string, content string) (*notes.Note, error)
	DeleteNote(caller auth.Caller, id uint64) (bool, error)
	Whoami(caller auth.Caller) identity.Identity
	BalanceOf(id identity.Identity) (amount.Amount, error)
	MyBalance(caller auth.Caller) (amount.Amount, error)
	Transfer(caller auth.Caller, to identity.Identity, value amount.Amount) error
	MintTo(caller auth.Caller, to identity.Identity, value amount.Amount) error
	MyTransfers(caller auth.Caller) ([]ledger.TransferEvent, error)
	Info() Info
}

type canisterData struct {
	log     *logger.L
	host    *host.Host
	notes   *notes.Store
	noteIds *counter.Persistent
	ledger  *ledger.Ledger
	limits  Limits
	start   time.Time
}

// New - wire the stores onto an open database
//
// zero limits take the defaults
func New(db *storage.Database, h *host.Host, limits Limits) Canister {
	if limits.MaximumTitle <= 0 {
		limits.MaximumTitle = DefaultMaximumTitle
	}
	if limits.MaximumContent <= 0 {
		limits.MaximumContent = DefaultMaximumContent
	}

	noteIds := counter.NewPersistent(db.Pool.NoteNextId)
	transferIds := counter.NewPersistent(db.Pool.TransferNextId)

	return &canisterData{
		log:     logger.New("canister"),
		host:    h,
		notes:   notes.New(db.Pool.Notes, noteIds),
		noteIds: noteIds,
		ledger:  ledger.New(db.Pool.Balances, db.Pool.Transfers, transferIds),
		limits:  limits,
		start:   time.Now(),
	}
}

// notes
// -----

func (c *canisterData) ListForCaller(caller auth.Caller) ([]notes.Note, error) {
	var result []notes.Note
	err := c.host.Query(func() (err error) {
		result, err = c.notes.ListFor(caller.Identity)
		return err
	})
	return result, err
}

func (c *canisterData) CreateNote(caller auth.Caller, title string, content string) (notes.Note, error) {
	if caller.Identity.IsAnonymous() {
		return notes.Note{}, fault.ErrUnauthenticated
	}
	if err := c.checkLimits(title, content); nil != err {
		return notes.Note{}, err
	}

	var note notes.Note
	err := c.host.Update(func(trx storage.Transaction) error {
		note = c.notes.Create(trx, caller.Identity, title, content)
		return nil
	})
	if nil != err {
		return notes.Note{}, err
	}
	return note, nil
}

func (c *canisterData) UpdateNote(caller auth.Caller, id uint64, title string, content string) (*notes.Note, error) {
	if caller.Identity.IsAnonymous() {
		return nil, fault.ErrUnauthenticated
	}
	if err := c.checkLimits(title, content); nil != err {
		return nil, err
	}

	var note *notes.Note
	err := c.host.Update(func(trx storage.Transaction) error {
		note = c.notes.Update(trx, caller.Identity, id, title, content)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return note, nil
}

func (c *canisterData) DeleteNote(caller auth.Caller, id uint64) (bool, error) {
	if caller.Identity.IsAnonymous() {
		return false, fault.ErrUnauthenticated
	}

	deleted := false
	err := c.host.Update(func(trx storage.Transaction) error {
		deleted = c.notes.Delete(trx, caller.Identity, id)
		return nil
	})
	if nil != err {
		return false, err
	}
	return deleted, nil
}

func (c *canisterData) checkLimits(title string, content string) error {
	if len(title) > c.limits.MaximumTitle || len(content) > c.limits.MaximumContent {
		return fault.ErrNoteTooLarge
	}
	return nil
}

// identity
// --------

func (c *canisterData) Whoami(caller auth.Caller) identity.Identity {
	return caller.Identity
}

// ledger
// ------

func (c *canisterData) BalanceOf(id identity.Identity) (amount.Amount, error) {
	result := amount.Zero
	err := c.host.Query(func() (err error) {
		result, err = c.ledger.BalanceOf(id)
		return err
	})
	return result, err
}

func (c *canisterData) MyBalance(caller auth.Caller) (amount.Amount, error) {
	return c.BalanceOf(caller.Identity)
}

func (c *canisterData) Transfer(caller auth.Caller, to identity.Identity, value amount.Amount) error {
	err := c.host.Update(func(trx storage.Transaction) error {
		return c.ledger.Transfer(trx, caller.Identity, to, value, c.host.Now())
	})
	if nil != err {
		c.log.Debugf("transfer from: %s  to: %s  error: %s", caller.Identity, to, err)
	}
	return err
}

func (c *canisterData) MintTo(caller auth.Caller, to identity.Identity, value amount.Amount) error {
	err := c.host.Update(func(trx storage.Transaction) error {
		return c.ledger.MintTo(trx, caller.Identity, caller.Controller, to, value, c.host.Now())
	})
	if nil != err {
		c.log.Warnf("mint by: %s  to: %s  error: %s", caller.Identity, to, err)
	}
	return err
}

func (c *canisterData) MyTransfers(caller auth.Caller) ([]ledger.TransferEvent, error) {
	var result []ledger.TransferEvent
	err := c.host.Query(func() (err error) {
		result, err = c.ledger.TransfersFor(caller.Identity)
		return err
	})
	return result, err
}

// service
// -------

// counters are left at zero if the stores cannot be read
func (c *canisterData) Info() Info {
	info := Info{
		Uptime: time.Since(c.start),
	}
	err := c.host.Query(func() error {
		info.NextNoteId = c.noteIds.Peek()
		info.NextTransferId = c.ledger.NextTransferId()
		return nil
	})
	if nil != err {
		c.log.Errorf("info: read counters: %s", err)
		info.NextNoteId = 0
		info.NextTransferId = 0
	}
	return info
}
