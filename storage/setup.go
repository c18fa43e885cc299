// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/hyperledger/iroha-sub006/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Roles          *PoolHandle `prefix:"r" database:"wsv"`
	Domains        *PoolHandle `prefix:"D" database:"wsv"`
	Accounts       *PoolHandle `prefix:"a" database:"wsv"`
	AccountRoles   *PoolHandle `prefix:"R" database:"wsv"`
	AccountDetails *PoolHandle `prefix:"d" database:"wsv"`
	Grantable      *PoolHandle `prefix:"g" database:"wsv"`
	Signatories    *PoolHandle `prefix:"S" database:"wsv"`
	Assets         *PoolHandle `prefix:"x" database:"wsv"`
	AccountAssets  *PoolHandle `prefix:"X" database:"wsv"`
	Peers          *PoolHandle `prefix:"M" database:"wsv"`
	PeerTLS        *PoolHandle `prefix:"N" database:"wsv"`
	SyncingPeers   *PoolHandle `prefix:"m" database:"wsv"`
	SyncingPeerTLS *PoolHandle `prefix:"n" database:"wsv"`
	Settings       *PoolHandle `prefix:"i" database:"wsv"`
	TopBlock       *PoolHandle `prefix:"Q" database:"wsv"`
	Blocks         *PoolHandle `prefix:"B" database:"blocks"`
	TestData       *PoolHandle `prefix:"Z" database:"wsv"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentWSVDBVersion    = 0x100
	currentBlocksDBVersion = 0x100
)

// holds the database handles
var poolData struct {
	sync.RWMutex
	dbWSV     *leveldb.DB
	dbBlocks  *leveldb.DB
	trx       Transaction
	wsvTrx    *leveldb.Batch
	blocksTrx *leveldb.Batch
	wsvCache  Cache
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connections
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false

	if nil != poolData.dbWSV {
		return fault.ErrAlreadyInitialised
	}

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	wsvDatabase := database + "-wsv.leveldb"
	blocksDatabase := database + "-blocks.leveldb"

	db, wsvVersion, err := getDB(wsvDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.dbWSV = db

	// ensure no database downgrade
	if wsvVersion > currentWSVDBVersion {
		fault.Criticalf("wsv database version: %d > current version: %d", wsvVersion, currentWSVDBVersion)
		return fmt.Errorf("wsv database version: %d > current version: %d", wsvVersion, currentWSVDBVersion)
	}

	db, blocksVersion, err := getDB(blocksDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.dbBlocks = db

	// ensure no database downgrade
	if blocksVersion > currentBlocksDBVersion {
		fault.Criticalf("blocks database version: %d > current version: %d", blocksVersion, currentBlocksDBVersion)
		return fmt.Errorf("blocks database version: %d > current version: %d", blocksVersion, currentBlocksDBVersion)
	}

	// tag empty databases as current version
	if !readOnly {
		if 0 == wsvVersion {
			err = putVersion(poolData.dbWSV, currentWSVDBVersion)
			if nil != err {
				return err
			}
		}
		if 0 == blocksVersion {
			err = putVersion(poolData.dbBlocks, currentBlocksDBVersion)
			if nil != err {
				return err
			}
		}
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// databases
	poolData.wsvTrx = new(leveldb.Batch)
	poolData.blocksTrx = new(leveldb.Batch)
	poolData.wsvCache = newCache()
	wsvDBAccess := newDA(poolData.dbWSV, poolData.wsvTrx, poolData.wsvCache)
	blocksDBAccess := newDA(poolData.dbBlocks, poolData.blocksTrx, newCache())
	access := []Access{wsvDBAccess, blocksDBAccess}
	poolData.trx = newTransaction(access)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		var db *leveldb.DB
		var dbAccess Access
		switch dbName := fieldInfo.Tag.Get("database"); dbName {
		case "wsv":
			db = poolData.dbWSV
			dbAccess = wsvDBAccess
		case "blocks":
			db = poolData.dbBlocks
			dbAccess = blocksDBAccess
		default:
			return fmt.Errorf("pool: %v  has invalid database: %q", fieldInfo, dbName)
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			db:     db,
			access: dbAccess,
		}

		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.dbBlocks {
		poolData.dbBlocks.Close()
		poolData.dbBlocks = nil
	}
	if nil != poolData.dbWSV {
		poolData.dbWSV.Close()
		poolData.dbWSV = nil
	}
}

// Finalise - close the database connections
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//
//	database handle
//	version number
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
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// NewDBTransaction - acquire the single database transaction
func NewDBTransaction() (Transaction, error) {
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}

// IsInitialised - check the database connection is open
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.dbWSV
}
