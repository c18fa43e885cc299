// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package blockstore

import (
	"github.com/hyperledger/iroha-sub006/blockrecord"
	"github.com/hyperledger/iroha-sub006/fault"
)

// backend names accepted by New
const (
	MemoryBackend  = "memory"
	FileBackend    = "file"
	LevelDBBackend = "leveldb"
)

// Store - an append-only run of blocks keyed by height
//
// all implementations are safe for concurrent use
type Store interface {

	// Insert - append a block; false if its height is already present
	// or the block cannot be stored
	Insert(block *blockrecord.Block) bool

	// Fetch - the block at a height; nil when absent or undecodable
	Fetch(height uint64) *blockrecord.Block

	// Size - number of stored blocks
	Size() uint64

	// ForEach - visit stored blocks in ascending height order
	ForEach(f func(block *blockrecord.Block) error) error

	// Clear - drop every stored block
	Clear() error

	// Close - release backend resources
	Close() error
}

// Config - backend selection and tuning
type Config struct {
	Backend   string // memory, file or leveldb
	Directory string // file backend only
	CacheSize int    // memory backend: most-recent window, 0 = unbounded
}

// New - construct the configured backend
func New(config Config) (Store, error) {
	switch config.Backend {
	case MemoryBackend:
		return newMemoryStore(config.CacheSize)
	case FileBackend:
		return newFileStore(config.Directory)
	case LevelDBBackend:
		return newLevelDBStore()
	default:
		return nil, fault.ErrInvalidBlockStoreName
	}
}
