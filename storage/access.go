// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_errors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/hyperledger/iroha-sub006/fault"
)

// Access - batched access to one database
type Access interface {
	Begin()
	Put([]byte, []byte)
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Write() error
	Abort()
	Iterator(*ldb_util.Range) iterator.Iterator
}

// AccessData - a write batch with a read-through cache in front of it
type AccessData struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		db:    db,
		batch: batch,
		cache: cache,
	}
}

func (d *AccessData) Begin() {
	d.batch.Reset()
}

func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

// Get - pending writes first, then the database
//
// a key deleted in this batch reads as absent even while the old
// record is still on disk
func (d *AccessData) Get(key []byte) ([]byte, error) {
	value, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, nil
		}
		return value, nil
	}

	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	if nil != err {
		return nil, convertError(err)
	}
	return value, nil
}

func (d *AccessData) Has(key []byte) (bool, error) {
	_, op, found := d.cache.Get(string(key))
	if found {
		return dbPut == op, nil
	}

	has, err := d.db.Has(key, nil)
	if nil != err {
		return false, convertError(err)
	}
	return has, nil
}

func (d *AccessData) Write() error {
	err := d.db.Write(d.batch, nil)
	if nil != err {
		return convertError(err)
	}
	d.batch.Reset()
	return nil
}

func (d *AccessData) Abort() {
	d.batch.Reset()
	d.cache.Clear()
}

func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// map a driver error to the core taxonomy; corruption of previously
// committed data is the one fatal class
func convertError(err error) error {
	if nil == err {
		return nil
	}
	if ldb_errors.IsCorrupted(err) {
		return fault.ErrCorruptedStore
	}
	return fault.DBError{Code: 1, Description: err.Error()}
}
