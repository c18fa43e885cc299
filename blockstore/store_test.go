// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package blockstore_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/iroha-sub006/blockdigest"
	"github.com/hyperledger/iroha-sub006/blockrecord"
	"github.com/hyperledger/iroha-sub006/blockstore"
	"github.com/hyperledger/iroha-sub006/fault"
	"github.com/hyperledger/iroha-sub006/storage"
)

const (
	databaseFileName = "test-blockstore"
	fileStoreDir     = "test-blockstore-files"
)

func removeFiles() {
	os.RemoveAll(databaseFileName + "-wsv.leveldb")
	os.RemoveAll(databaseFileName + "-blocks.leveldb")
	os.RemoveAll(fileStoreDir)
}

func testBlock(height uint64) *blockrecord.Block {
	return &blockrecord.Block{
		Height:        height,
		PreviousBlock: blockdigest.NewDigest([]byte{byte(height - 1)}),
		CreatedAt:     1600000000000 + height,
		Transactions: []blockrecord.Transaction{{
			CreatorAccountID: "alice@wonderland",
			CreatedAt:        1600000000000 + height,
			Commands: []blockrecord.Command{{
				SetQuorum: &blockrecord.SetQuorum{
					AccountID: "alice@wonderland",
					Quorum:    uint32(height),
				},
			}},
		}},
	}
}

// exercise the Store contract shared by all backends
func checkStoreContract(t *testing.T, store blockstore.Store) {
	assert.Equal(t, uint64(0), store.Size(), "new store not empty")

	assert.True(t, store.Insert(testBlock(1)), "first insert refused")
	assert.True(t, store.Insert(testBlock(2)), "second insert refused")
	assert.True(t, store.Insert(testBlock(3)), "third insert refused")

	// a height can be stored once only
	assert.False(t, store.Insert(testBlock(2)), "duplicate height accepted")
	assert.Equal(t, uint64(3), store.Size(), "size mismatch")

	block := store.Fetch(2)
	require.NotNil(t, block, "stored block missing")
	assert.Equal(t, testBlock(2), block, "fetched block mismatch")

	assert.Nil(t, store.Fetch(99), "absent height must fetch nil")

	// ascending order
	heights := []uint64(nil)
	err := store.ForEach(func(b *blockrecord.Block) error {
		heights = append(heights, b.Height)
		return nil
	})
	assert.Nil(t, err, "ForEach failed")
	assert.Equal(t, []uint64{1, 2, 3}, heights, "iteration order wrong")

	assert.Nil(t, store.Clear(), "Clear failed")
	assert.Equal(t, uint64(0), store.Size(), "store not empty after Clear")
	assert.Nil(t, store.Fetch(1), "cleared block still present")

	assert.Nil(t, store.Close(), "Close failed")
}

func TestMemoryStore(t *testing.T) {
	store, err := blockstore.New(blockstore.Config{Backend: blockstore.MemoryBackend})
	require.Nil(t, err, "New failed")
	checkStoreContract(t, store)
}

func TestMemoryStoreWindow(t *testing.T) {
	store, err := blockstore.New(blockstore.Config{
		Backend:   blockstore.MemoryBackend,
		CacheSize: 2,
	})
	require.Nil(t, err, "New failed")
	defer store.Close()

	assert.True(t, store.Insert(testBlock(1)), "insert refused")
	assert.True(t, store.Insert(testBlock(2)), "insert refused")
	assert.True(t, store.Insert(testBlock(3)), "insert refused")

	// only the most recent window survives
	assert.Equal(t, uint64(2), store.Size(), "window size not enforced")
	assert.Nil(t, store.Fetch(1), "oldest block should have fallen off")
	assert.NotNil(t, store.Fetch(3), "newest block missing")
}

func TestFileStore(t *testing.T) {
	removeFiles()
	defer removeFiles()

	store, err := blockstore.New(blockstore.Config{
		Backend:   blockstore.FileBackend,
		Directory: fileStoreDir,
	})
	require.Nil(t, err, "New failed")
	checkStoreContract(t, store)
}

func TestFileStoreCorruptBlock(t *testing.T) {
	removeFiles()
	defer removeFiles()

	store, err := blockstore.New(blockstore.Config{
		Backend:   blockstore.FileBackend,
		Directory: fileStoreDir,
	})
	require.Nil(t, err, "New failed")
	defer store.Close()

	require.True(t, store.Insert(testBlock(1)), "insert refused")

	// damage the stored file
	path := blockstore.BlockPath(fileStoreDir, 1)
	require.Nil(t, ioutil.WriteFile(path, []byte("garbage"), 0600), "overwrite failed")

	assert.Nil(t, store.Fetch(1), "undecodable block must fetch nil")
}

func TestLevelDBStore(t *testing.T) {
	removeFiles()
	defer removeFiles()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	require.Nil(t, err, "storage initialise error")
	defer storage.Finalise()

	store, err := blockstore.New(blockstore.Config{Backend: blockstore.LevelDBBackend})
	require.Nil(t, err, "New failed")
	checkStoreContract(t, store)
}

func TestLevelDBStoreNotInitialised(t *testing.T) {
	_, err := blockstore.New(blockstore.Config{Backend: blockstore.LevelDBBackend})
	assert.Equal(t, fault.ErrNotInitialised, err, "uninitialised storage must be refused")
}

func TestUnknownBackend(t *testing.T) {
	_, err := blockstore.New(blockstore.Config{Backend: "rocksdb"})
	assert.Equal(t, fault.ErrInvalidBlockStoreName, err, "unknown backend must be refused")
}
