// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/noteledger/auth"
	"github.com/bitmark-inc/noteledger/canister"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/notes"
	"github.com/bitmark-inc/noteledger/rpc/ratelimit"
)

// Notes
// -----

const (
	rateLimitNotes = 200
	rateBurstNotes = 100
)

// Notes - type for RPC
type Notes struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Gate     *auth.Gate
	Canister canister.Canister
	ReadOnly bool
}

// New - create the notes service
func New(log *logger.L, gate *auth.Gate, c canister.Canister, readOnly bool) *Notes {
	return &Notes{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNotes, rateBurstNotes),
		Gate:     gate,
		Canister: c,
		ReadOnly: readOnly,
	}
}

// List the caller's notes
// -----------------------

// ListArguments - arguments for RPC
type ListArguments struct {
	auth.Credentials
}

// ListReply - notes in ascending id order
type ListReply struct {
	Notes []notes.Note `json:"notes"`
}

// List - all notes of the caller
func (n *Notes) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	caller, err := n.Gate.Resolve("Notes.List", arguments.Credentials)
	if nil != err {
		return err
	}

	n.Log.Infof("Notes.List: caller: %s", caller.Identity)

	list, err := n.Canister.ListForCaller(caller)
	if nil != err {
		return err
	}
	reply.Notes = list
	return nil
}

// Create a note
// -------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	auth.Credentials
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SignedFields - the fields bound into the credentials signature
func (arguments CreateArguments) SignedFields() [][]byte {
	return [][]byte{[]byte(arguments.Title), []byte(arguments.Content)}
}

// CreateReply - the stored note with its new id
type CreateReply struct {
	Note notes.Note `json:"note"`
}

// Create - store a new note owned by the caller
func (n *Notes) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}
	if n.ReadOnly {
		return fault.ErrReadOnly
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	caller, err := n.Gate.Resolve("Notes.Create", arguments.Credentials, arguments.SignedFields()...)
	if nil != err {
		return err
	}

	n.Log.Infof("Notes.Create: caller: %s  title: %q", caller.Identity, arguments.Title)

	note, err := n.Canister.CreateNote(caller, arguments.Title, arguments.Content)
	if nil != err {
		return err
	}
	reply.Note = note
	return nil
}

// Update a note
// -------------

// UpdateArguments - arguments for RPC
type UpdateArguments struct {
	auth.Credentials
	Id      uint64 `json:"id,string"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (arguments UpdateArguments) SignedFields() [][]byte {
	return [][]byte{auth.Uint64(arguments.Id), []byte(arguments.Title), []byte(arguments.Content)}
}

// UpdateReply - the note, nil if the caller has no such note
type UpdateReply struct {
	Note *notes.Note `json:"note"`
}

// Update - overwrite one of the caller's notes
func (n *Notes) Update(arguments *UpdateArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}
	if n.ReadOnly {
		return fault.ErrReadOnly
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	caller, err := n.Gate.Resolve("Notes.Update", arguments.Credentials, arguments.SignedFields()...)
	if nil != err {
		return err
	}

	n.Log.Infof("Notes.Update: caller: %s  id: %d", caller.Identity, arguments.Id)

	note, err := n.Canister.UpdateNote(caller, arguments.Id, arguments.Title, arguments.Content)
	if nil != err {
		return err
	}
	reply.Note = note
	return nil
}

// Delete a note
// -------------

// DeleteArguments - arguments for RPC
type DeleteArguments struct {
	auth.Credentials
	Id uint64 `json:"id,string"`
}

func (arguments DeleteArguments) SignedFields() [][]byte {
	return [][]byte{auth.Uint64(arguments.Id)}
}

// DeleteReply - whether a note was removed
type DeleteReply struct {
	Deleted bool `json:"deleted"`
}

// Delete - remove one of the caller's notes
func (n *Notes) Delete(arguments *DeleteArguments, reply *DeleteReply) error {

	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}
	if n.ReadOnly {
		return fault.ErrReadOnly
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	caller, err := n.Gate.Resolve("Notes.Delete", arguments.Credentials, arguments.SignedFields()...)
	if nil != err {
		return err
	}

	n.Log.Infof("Notes.Delete: caller: %s  id: %d", caller.Identity, arguments.Id)

	deleted, err := n.Canister.DeleteNote(caller, arguments.Id)
	if nil != err {
		return err
	}
	reply.Deleted = deleted
	return nil
}
