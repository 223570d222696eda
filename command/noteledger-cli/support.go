// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/noteledger/command/noteledger-cli/rpccalls"
)

// unlock the selected identity, nil when running anonymously
func getPrivateKey(c *cli.Context, m *metadata) (ed25519.PrivateKey, error) {

	if c.GlobalBool("anonymous") {
		return nil, nil
	}

	name, err := checkName(c.GlobalString("identity"), m.config)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
	}

	return m.config.PrivateKey(name, password)
}

// connect to the configured noteledgerd, signing as the selected identity
func signedClient(c *cli.Context, m *metadata) (*rpccalls.Client, error) {

	privateKey, err := getPrivateKey(c, m)
	if nil != err {
		return nil, err
	}

	return rpccalls.NewClient(m.config.Connect, privateKey, m.verbose, m.e)
}

// connect without any identity
func anonymousClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.config.Connect, nil, m.verbose, m.e)
}
