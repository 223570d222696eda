// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package notes - per-owner note records
package notes

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/counter"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/storage"
	"github.com/bitmark-inc/noteledger/util"
)

// Note - a single owned note
type Note struct {
	Id      uint64 `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Store - notes keyed by owner ++ id
type Store struct {
	log  *logger.L
	pool *storage.PoolHandle
	ids  *counter.Persistent
}

// New - create a store over a pool and its id allocator
func New(pool *storage.PoolHandle, ids *counter.Persistent) *Store {
	return &Store{
		log:  logger.New("notes"),
		pool: pool,
		ids:  ids,
	}
}

// ListFor - all notes of one owner, ascending by id
//
// the range of a short owner also covers longer owners that extend
// it, so keys of any other length are skipped
func (s *Store) ListFor(owner identity.Identity) ([]Note, error) {
	first, last := storage.OwnerRange(owner)
	keyLength := len(first)

	result := make([]Note, 0)
	err := s.pool.NewRangeCursor(first, last).Map(func(key []byte, value []byte) error {
		if keyLength != len(key) {
			return nil
		}
		k, err := storage.DecodeOwnerKey(key)
		if nil != err {
			return err
		}
		note, err := unpackNote(k.Id, value)
		if nil != err {
			s.log.Errorf("list: owner: %s  id: %d  error: %s", owner, k.Id, err)
			return err
		}
		result = append(result, note)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return result, nil
}

// Create - allocate the next id and store the note under the owner
func (s *Store) Create(trx storage.Transaction, owner identity.Identity, title string, content string) Note {
	note := Note{
		Id:      s.ids.Next(trx),
		Title:   title,
		Content: content,
	}
	trx.Put(s.pool, storage.EncodeOwnerKey(owner, note.Id), packNote(note))
	s.log.Debugf("create: owner: %s  id: %d", owner, note.Id)
	return note
}

// Update - overwrite an existing note of this owner
//
// returns nil when owner has no note with this id
func (s *Store) Update(trx storage.Transaction, owner identity.Identity, id uint64, title string, content string) *Note {
	key := storage.EncodeOwnerKey(owner, id)
	if !trx.Has(s.pool, key) {
		return nil
	}
	note := Note{
		Id:      id,
		Title:   title,
		Content: content,
	}
	trx.Put(s.pool, key, packNote(note))
	s.log.Debugf("update: owner: %s  id: %d", owner, id)
	return &note
}

// Delete - remove a note of this owner, false if there was none
func (s *Store) Delete(trx storage.Transaction, owner identity.Identity, id uint64) bool {
	key := storage.EncodeOwnerKey(owner, id)
	if !trx.Has(s.pool, key) {
		return false
	}
	trx.Delete(s.pool, key)
	s.log.Debugf("delete: owner: %s  id: %d", owner, id)
	return true
}

// value: varbytes(title) ++ varbytes(content)
func packNote(note Note) []byte {
	buffer := make([]byte, 0, len(note.Title)+len(note.Content)+2*util.Varint64MaximumBytes)
	buffer = util.AppendBytes(buffer, []byte(note.Title))
	return util.AppendBytes(buffer, []byte(note.Content))
}

func unpackNote(id uint64, value []byte) (Note, error) {
	title, rest, ok := util.SplitBytes(value)
	if !ok {
		return Note{}, fault.ErrRecordCorrupt
	}
	content, rest, ok := util.SplitBytes(rest)
	if !ok || 0 != len(rest) {
		return Note{}, fault.ErrRecordCorrupt
	}
	return Note{
		Id:      id,
		Title:   string(title),
		Content: string(content),
	}, nil
}
