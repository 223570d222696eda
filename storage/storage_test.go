// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/fixtures"
	"github.com/bitmark-inc/noteledger/storage"
)

func setupTestDatabase(t *testing.T) (*storage.Database, string) {
	fixtures.SetupTestLogger()
	name := fixtures.DatabaseName("storage")
	db, err := storage.Open(name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db, name
}

func teardownTestDatabase(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

func TestCommitIsVisible(t *testing.T) {
	db, _ := setupTestDatabase(t)
	defer teardownTestDatabase(db)

	trx, err := db.Begin()
	assert.Nil(t, err, "begin")
	trx.Put(db.Pool.Notes, []byte("key-one"), []byte("data-one"))
	trx.PutN(db.Pool.NoteNextId, []byte{}, 42)

	assert.Equal(t, []byte("data-one"), trx.Get(db.Pool.Notes, []byte("key-one")), "staged read")
	assert.True(t, trx.InUse(), "in use")

	assert.Nil(t, trx.Commit(), "commit")
	assert.False(t, trx.InUse(), "released")

	assert.Equal(t, []byte("data-one"), db.Pool.Notes.Get([]byte("key-one")), "committed")
	n, found := db.Pool.NoteNextId.GetN([]byte{})
	assert.True(t, found, "counter found")
	assert.Equal(t, uint64(42), n, "counter")
}

func TestGetNTruncatedRecord(t *testing.T) {
	db, _ := setupTestDatabase(t)
	defer teardownTestDatabase(db)

	trx, err := db.Begin()
	assert.Nil(t, err, "begin")
	trx.Put(db.Pool.TransferNextId, []byte{}, []byte{0x01, 0x02, 0x03})
	assert.Nil(t, trx.Commit(), "commit")

	assert.Panics(t, func() {
		db.Pool.TransferNextId.GetN([]byte{})
	}, "short counter record")
}

func TestAbortDiscards(t *testing.T) {
	db, _ := setupTestDatabase(t)
	defer teardownTestDatabase(db)

	trx, err := db.Begin()
	assert.Nil(t, err, "begin")
	trx.Put(db.Pool.Balances, []byte("owner"), []byte("value"))
	assert.True(t, trx.Has(db.Pool.Balances, []byte("owner")), "staged")
	trx.Abort()

	assert.Nil(t, db.Pool.Balances.Get([]byte("owner")), "aborted write")
	assert.False(t, db.Pool.Balances.Has([]byte("owner")), "has after abort")
}

func TestBeginTwice(t *testing.T) {
	db, _ := setupTestDatabase(t)
	defer teardownTestDatabase(db)

	trx, err := db.Begin()
	assert.Nil(t, err, "first begin")

	_, err = db.Begin()
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "second begin")

	trx.Abort()
	trx, err = db.Begin()
	assert.Nil(t, err, "begin after abort")
	trx.Abort()
}

func TestCommitWithoutBegin(t *testing.T) {
	db, _ := setupTestDatabase(t)
	defer teardownTestDatabase(db)

	trx, err := db.Begin()
	assert.Nil(t, err, "begin")
	assert.Nil(t, trx.Commit(), "commit")
	assert.Equal(t, fault.ErrTransactionNotInUse, trx.Commit(), "second commit")
}

func TestStagedDeleteHidesCommitted(t *testing.T) {
	db, _ := setupTestDatabase(t)
	defer teardownTestDatabase(db)

	key := []byte("key")

	trx, _ := db.Begin()
	trx.Put(db.Pool.Notes, key, []byte("value"))
	assert.Nil(t, trx.Commit(), "commit put")

	trx, _ = db.Begin()
	trx.Delete(db.Pool.Notes, key)
	assert.Nil(t, trx.Get(db.Pool.Notes, key), "staged delete get")
	assert.False(t, trx.Has(db.Pool.Notes, key), "staged delete has")
	trx.Abort()

	assert.Equal(t, []byte("value"), db.Pool.Notes.Get(key), "delete aborted")

	trx, _ = db.Begin()
	trx.Delete(db.Pool.Notes, key)
	assert.Nil(t, trx.Commit(), "commit delete")
	assert.Nil(t, db.Pool.Notes.Get(key), "deleted")
}

func TestRegionIsolation(t *testing.T) {
	db, _ := setupTestDatabase(t)
	defer teardownTestDatabase(db)

	key := []byte("same-key")

	trx, _ := db.Begin()
	trx.Put(db.Pool.Notes, key, []byte("note"))
	trx.Put(db.Pool.Balances, key, []byte("balance"))
	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []byte("note"), db.Pool.Notes.Get(key), "notes")
	assert.Equal(t, []byte("balance"), db.Pool.Balances.Get(key), "balances")
	assert.Nil(t, db.Pool.Transfers.Get(key), "transfers")

	count := 0
	err := db.Pool.Notes.NewFetchCursor().Map(func(k []byte, v []byte) error {
		count += 1
		assert.Equal(t, key, k, "prefix stripped")
		assert.Equal(t, []byte("note"), v, "value")
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, 1, count, "only one element in region")
}

func TestRangeCursor(t *testing.T) {
	db, _ := setupTestDatabase(t)
	defer teardownTestDatabase(db)

	trx, _ := db.Begin()
	trx.Put(db.Pool.Notes, storage.EncodeOwnerKey(fixtures.Alice, 1), []byte("a1"))
	trx.Put(db.Pool.Notes, storage.EncodeOwnerKey(fixtures.Alice, ^uint64(0)), []byte("amax"))
	trx.Put(db.Pool.Notes, storage.EncodeOwnerKey(fixtures.Bob, 2), []byte("b2"))
	assert.Nil(t, trx.Commit(), "commit")

	values := []string{}
	first, last := storage.OwnerRange(fixtures.Alice)
	err := db.Pool.Notes.NewRangeCursor(first, last).Map(func(k []byte, v []byte) error {
		values = append(values, string(v))
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, []string{"a1", "amax"}, values, "alice only, inclusive")
}

func TestReopenPersists(t *testing.T) {
	db, name := setupTestDatabase(t)
	defer fixtures.TeardownTestLogger()

	trx, _ := db.Begin()
	trx.PutN(db.Pool.TransferNextId, []byte{}, 7)
	assert.Nil(t, trx.Commit(), "commit")
	db.Close()

	db, err := storage.Open(name, storage.ReadOnly)
	assert.Nil(t, err, "reopen read only")
	defer db.Close()

	n, found := db.Pool.TransferNextId.GetN([]byte{})
	assert.True(t, found, "found")
	assert.Equal(t, uint64(7), n, "value")
}

func TestOpenReadOnlyMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := storage.Open(fixtures.DatabaseName("missing"), storage.ReadOnly)
	assert.NotNil(t, err, "read only must not create")
}
