// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/noteledger/auth"
)

// Client - to hold RPC connections streams
type Client struct {
	conn       net.Conn
	client     *rpc.Client
	privateKey ed25519.PrivateKey // nil for anonymous calls
	verbose    bool
	handle     io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a noteledgerd
func NewClient(connect string, privateKey ed25519.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:       conn,
		client:     jsonrpc.NewClient(conn),
		privateKey: privateKey,
		verbose:    verbose,
		handle:     handle,
	}
	return r, nil
}

// Close - shutdown the noteledgerd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// sign a method call, anonymous if there is no key
func (client *Client) credentials(method string, fields ...[]byte) auth.Credentials {
	if nil == client.privateKey {
		return auth.Credentials{}
	}
	return auth.Sign(client.privateKey, method, time.Now(), fields...)
}
