// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"github.com/bitmark-inc/noteledger/storage"
)

// first value handed out by a fresh counter
const initialValue = 1

// the single key inside the counter's pool
var counterKey = []byte{}

// Persistent - a monotonic id allocator stored in its own pool
//
// values start at 1 and are never reused, even if the record using
// them is later deleted
type Persistent struct {
	pool *storage.PoolHandle
}

// NewPersistent - bind an allocator to a pool
func NewPersistent(pool *storage.PoolHandle) *Persistent {
	return &Persistent{
		pool: pool,
	}
}

// Next - return the current value and stage the increment
//
// the allocation is only durable when trx commits
func (p *Persistent) Next(trx storage.Transaction) uint64 {
	n, found := trx.GetN(p.pool, counterKey)
	if !found {
		n = initialValue
	}
	trx.PutN(p.pool, counterKey, n+1)
	return n
}

// Peek - the value the next allocation will return
func (p *Persistent) Peek() uint64 {
	n, found := p.pool.GetN(counterKey)
	if !found {
		return initialValue
	}
	return n
}
