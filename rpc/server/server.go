// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/auth"
	"github.com/bitmark-inc/noteledger/canister"
	"github.com/bitmark-inc/noteledger/counter"
	"github.com/bitmark-inc/noteledger/rpc/node"
	"github.com/bitmark-inc/noteledger/rpc/note"
	"github.com/bitmark-inc/noteledger/rpc/token"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, c canister.Canister, gate *auth.Gate, readOnly bool) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(note.New(log, gate, c, readOnly))
	_ = server.Register(token.New(log, gate, c, readOnly))
	_ = server.Register(node.New(log, gate, c, start, version, rpcCount, readOnly))

	return server
}
