// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteledger/command/noteledger-cli/rpccalls"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkRecipient(c.String("owner"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	client, err := anonymousClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetBalance(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runMyBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := signedClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetMyBalance()
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runTransfer(c *cli.Context) error {
	return transferOrMint(c, false)
}

func runMint(c *cli.Context) error {
	return transferOrMint(c, true)
}

func transferOrMint(c *cli.Context, mint bool) error {

	m := c.App.Metadata["config"].(*metadata)

	to, err := checkRecipient(c.String("receiver"), m.config)
	if nil != err {
		return err
	}

	value, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "receiver: %s\n", to)
		fmt.Fprintf(m.e, "amount: %s\n", value)
	}

	client, err := signedClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	data := &rpccalls.TransferData{
		To:     to,
		Amount: value,
	}

	if mint {
		_, err = client.Mint(data)
	} else {
		_, err = client.Transfer(data)
	}
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "ok\n")
	return nil
}

func runTransfers(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := signedClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetTransfers()
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
