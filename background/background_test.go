// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteledger/background"
)

type ticker struct {
	count    int64
	finished int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	started := args.(chan struct{})
	started <- struct{}{}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddInt64(&state.count, 1)
		time.Sleep(time.Millisecond)
	}

	atomic.StoreInt32(&state.finished, 1)
}

func TestStartStop(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	started := make(chan struct{}, 2)
	p := background.Start(background.Processes{proc1, proc2}, started)

	<-started
	<-started
	time.Sleep(10 * time.Millisecond)

	p.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&proc1.finished), "first not finished")
	assert.Equal(t, int32(1), atomic.LoadInt32(&proc2.finished), "second not finished")
	assert.True(t, atomic.LoadInt64(&proc1.count) > 0, "first never ran")
	assert.True(t, atomic.LoadInt64(&proc2.count) > 0, "second never ran")
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}
