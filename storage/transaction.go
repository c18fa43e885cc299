// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/hyperledger/iroha-sub006/fault"
)

// Transaction - one block's worth of buffered writes
//
// a single transaction spans all databases; nothing is durable before
// Commit and nothing survives Abort
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, error)
	GetN(*PoolHandle, []byte) (uint64, bool, error)
	Has(*PoolHandle, []byte) (bool, error)
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - the single in-flight transaction
type TransactionData struct {
	sync.Mutex
	access []Access
	inUse  bool
}

func newTransaction(access []Access) Transaction {
	return &TransactionData{
		access: access,
		inUse:  false,
	}
}

// Begin - acquire exclusive use; only one transaction is open at a time
func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionAlreadyInUse
	}

	for _, a := range t.access {
		a.Begin()
	}
	t.inUse = true
	return nil
}

func (t *TransactionData) Put(pool *PoolHandle, key []byte, value []byte) {
	pool.access.Put(pool.prefixKey(key), value)
}

func (t *TransactionData) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	pool.access.Put(pool.prefixKey(key), buffer)
}

func (t *TransactionData) Delete(pool *PoolHandle, key []byte) {
	pool.access.Delete(pool.prefixKey(key))
}

func (t *TransactionData) Get(pool *PoolHandle, key []byte) ([]byte, error) {
	return pool.access.Get(pool.prefixKey(key))
}

func (t *TransactionData) GetN(pool *PoolHandle, key []byte) (uint64, bool, error) {
	buffer, err := pool.access.Get(pool.prefixKey(key))
	if nil != err {
		return 0, false, err
	}
	if nil == buffer {
		return 0, false, nil
	}
	if len(buffer) < 8 {
		return 0, false, fault.ErrCorruptedStore
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

func (t *TransactionData) Has(pool *PoolHandle, key []byte) (bool, error) {
	return pool.access.Has(pool.prefixKey(key))
}

// Commit - flush every database's batch durably and release the transaction
func (t *TransactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	for _, a := range t.access {
		if err := a.Write(); nil != err {
			return err
		}
	}
	for _, a := range t.access {
		a.Abort() // reset batches and drop the read-through cache
	}
	t.inUse = false
	return nil
}

// Abort - discard all buffered writes and release the transaction
func (t *TransactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, a := range t.access {
		a.Abort()
	}
	t.inUse = false
}

func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}
