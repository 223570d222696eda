// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/noteledger/fault"
)

// Pools - the storage regions
//
// note all must be exported (i.e. initial capital) or initialisation will fail
type Pools struct {
	Notes          *PoolHandle `prefix:"n"`
	NoteNextId     *PoolHandle `prefix:"i"`
	Balances       *PoolHandle `prefix:"b"`
	Transfers      *PoolHandle `prefix:"t"`
	TransferNextId *PoolHandle `prefix:"x"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open store and its pools
type Database struct {
	sync.Mutex
	db     *leveldb.DB
	access Access
	trx    Transaction
	Pool   Pools
}

// Open - open or create the database and bind the pools
func Open(name string, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	db, version, err := getDB(name, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %q has no version and is read only", name)
			return nil, fault.ErrDatabaseVersion
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	access := newDA(db, new(leveldb.Batch), newCache())
	d := &Database{
		db:     db,
		access: access,
		trx:    newTransaction(access),
	}

	err = bindPools(&d.Pool, access)
	if nil != err {
		log.Criticalf("pool setup: %s", err)
		return nil, err
	}

	log.Infof("opened: %q  version: %d", name, currentDBVersion)
	ok = true // prevent db close
	return d, nil
}

// bindPools - reflect over the prefix tags and create each handle
//
// a missing, malformed, reserved or duplicate prefix is an error
func bindPools(pools interface{}, access Access) error {

	ptr := reflect.ValueOf(pools)
	if reflect.Ptr != ptr.Kind() || reflect.Struct != ptr.Elem().Kind() {
		return fault.ErrInvalidStructPointer
	}

	// get write access by using pointer + Elem()
	poolValue := ptr.Elem()
	poolType := poolValue.Type()
	handleType := reflect.TypeOf((*PoolHandle)(nil))

	seen := make(map[byte]string)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		if handleType != fieldInfo.Type || "" != fieldInfo.PkgPath {
			return fault.ErrInvalidStructPointer
		}

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) || versionKey[0] == prefixTag[0] {
			return fmt.Errorf("%w: pool: %s  prefix: %q", fault.ErrInvalidPrefix, fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("%w: pool: %s and pool: %s  prefix: %q", fault.ErrDuplicatePrefix, other, fieldInfo.Name, prefixTag)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Begin - start the single staged transaction
//
// fails if a transaction is already open
func (d *Database) Begin() (Transaction, error) {
	err := d.trx.Begin()
	if nil != err {
		return nil, err
	}
	return d.trx, nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		d.db.Close()
		d.db = nil
	}
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("%w: version length: expected: %d  actual: %d", fault.ErrDatabaseVersion, 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
