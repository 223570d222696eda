// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/noteledger/rpc/note"
)

// NoteData - title and content for create and update
type NoteData struct {
	Id      uint64
	Title   string
	Content string
}

// ListNotes - all notes of the signing identity
func (client *Client) ListNotes() (*note.ListReply, error) {

	args := note.ListArguments{
		Credentials: client.credentials("Notes.List"),
	}

	client.printJson("List Request", args)

	reply := &note.ListReply{}
	err := client.client.Call("Notes.List", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)

	return reply, nil
}

// CreateNote - store a new note
func (client *Client) CreateNote(data *NoteData) (*note.CreateReply, error) {

	args := note.CreateArguments{
		Title:   data.Title,
		Content: data.Content,
	}
	args.Credentials = client.credentials("Notes.Create", args.SignedFields()...)

	client.printJson("Create Request", args)

	reply := &note.CreateReply{}
	err := client.client.Call("Notes.Create", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Create Reply", reply)

	return reply, nil
}

// UpdateNote - overwrite an existing note
func (client *Client) UpdateNote(data *NoteData) (*note.UpdateReply, error) {

	args := note.UpdateArguments{
		Id:      data.Id,
		Title:   data.Title,
		Content: data.Content,
	}
	args.Credentials = client.credentials("Notes.Update", args.SignedFields()...)

	client.printJson("Update Request", args)

	reply := &note.UpdateReply{}
	err := client.client.Call("Notes.Update", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Update Reply", reply)

	return reply, nil
}

// DeleteNote - remove a note
func (client *Client) DeleteNote(id uint64) (*note.DeleteReply, error) {

	args := note.DeleteArguments{
		Id: id,
	}
	args.Credentials = client.credentials("Notes.Delete", args.SignedFields()...)

	client.printJson("Delete Request", args)

	reply := &note.DeleteReply{}
	err := client.client.Call("Notes.Delete", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Delete Reply", reply)

	return reply, nil
}
