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

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := signedClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListNotes()
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	title, err := checkTitle(c.String("title"))
	if nil != err {
		return err
	}
	content := c.String("content")

	if m.verbose {
		fmt.Fprintf(m.e, "title: %s\n", title)
		fmt.Fprintf(m.e, "content bytes: %d\n", len(content))
	}

	client, err := signedClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateNote(&rpccalls.NoteData{
		Title:   title,
		Content: content,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkNoteId(c.String("id"))
	if nil != err {
		return err
	}

	title, err := checkTitle(c.String("title"))
	if nil != err {
		return err
	}
	content := c.String("content")

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d\n", id)
		fmt.Fprintf(m.e, "title: %s\n", title)
	}

	client, err := signedClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.UpdateNote(&rpccalls.NoteData{
		Id:      id,
		Title:   title,
		Content: content,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkNoteId(c.String("id"))
	if nil != err {
		return err
	}

	client, err := signedClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.DeleteNote(id)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
