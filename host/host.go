// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - serialize calls against the database
//
// Queries run concurrently with each other against committed state.
// An update runs alone inside a storage transaction which is committed
// only if the update returns nil; an error or a panic discards every
// staged write.
package host

import (
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/storage"
)

// Clock - source of host time
type Clock func() time.Time

// Host - call serializer
type Host struct {
	sync.RWMutex
	log   *logger.L
	db    *storage.Database
	clock Clock
}

// New - create a host over an open database
//
// a nil clock uses the system time
func New(db *storage.Database, clock Clock) *Host {
	if nil == clock {
		clock = time.Now
	}
	return &Host{
		log:   logger.New("host"),
		db:    db,
		clock: clock,
	}
}

// Now - host time in nanoseconds since the unix epoch
func (h *Host) Now() uint64 {
	return uint64(h.clock().UnixNano())
}

// Query - run a read only call
func (h *Host) Query(f func() error) (err error) {
	h.RLock()
	defer h.RUnlock()

	defer func() {
		if r := recover(); nil != r {
			h.log.Errorf("query trapped: %v", r)
			err = fmt.Errorf("%w: %v", fault.ErrTrapped, r)
		}
	}()

	return f()
}

// Update - run a state changing call atomically
func (h *Host) Update(f func(trx storage.Transaction) error) (err error) {
	h.Lock()
	defer h.Unlock()

	trx, err := h.db.Begin()
	if nil != err {
		h.log.Criticalf("begin: %s", err)
		return err
	}

	committed := false
	defer func() {
		if r := recover(); nil != r {
			h.log.Errorf("update trapped: %v", r)
			err = fmt.Errorf("%w: %v", fault.ErrTrapped, r)
		}
		if !committed {
			trx.Abort()
		}
	}()

	err = f(trx)
	if nil != err {
		return err
	}

	committed = true
	err = trx.Commit()
	if nil != err {
		h.log.Criticalf("commit: %s", err)
	}
	return err
}
