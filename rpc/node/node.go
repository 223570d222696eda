// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/noteledger/auth"
	"github.com/bitmark-inc/noteledger/canister"
	"github.com/bitmark-inc/noteledger/counter"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Gate     *auth.Gate
	Canister canister.Canister
	Start    time.Time
	Version  string
	ReadOnly bool
	counter  *counter.Counter
}

// New - create the node service
func New(log *logger.L, gate *auth.Gate, c canister.Canister, start time.Time, version string, counter *counter.Counter, readOnly bool) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Gate:     gate,
		Canister: c,
		Start:    start,
		Version:  version,
		ReadOnly: readOnly,
		counter:  counter,
	}
}

// ---

// WhoamiArguments - arguments for RPC
type WhoamiArguments struct {
	auth.Credentials
}

// WhoamiReply - the resolved caller
type WhoamiReply struct {
	Identity   identity.Identity `json:"identity"`
	Anonymous  bool              `json:"anonymous"`
	Controller bool              `json:"controller"`
}

// Whoami - echo the identity the credentials resolve to
func (node *Node) Whoami(arguments *WhoamiArguments, reply *WhoamiReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	caller, err := node.Gate.Resolve("Node.Whoami", arguments.Credentials)
	if nil != err {
		return err
	}

	id := node.Canister.Whoami(caller)
	reply.Identity = id
	reply.Anonymous = id.IsAnonymous()
	reply.Controller = caller.Controller
	return nil
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version        string `json:"version"`
	Uptime         string `json:"uptime"`
	ReadOnly       bool   `json:"readOnly"`
	RPCs           uint64 `json:"rpcs"`
	NextNoteId     uint64 `json:"nextNoteId,string"`
	NextTransferId uint64 `json:"nextTransferId,string"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Canister {
		return fault.ErrDatabaseIsNotSet
	}

	info := node.Canister.Info()

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.ReadOnly = node.ReadOnly
	reply.RPCs = node.counter.Uint64()
	reply.NextNoteId = info.NextNoteId
	reply.NextTransferId = info.NextTransferId
	return nil
}
