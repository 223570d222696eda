// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runNoteledgerInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := anonymousClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}

func runWhoami(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := signedClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Whoami()
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
