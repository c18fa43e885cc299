// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package blockstore

import (
	"github.com/prometheus/common/log"

	"github.com/hyperledger/iroha-sub006/blockrecord"
	"github.com/hyperledger/iroha-sub006/fault"
	"github.com/hyperledger/iroha-sub006/storage"
	"github.com/hyperledger/iroha-sub006/wsvkey"
)

// levelDBStore - blocks in the dedicated storage pool
//
// the fixed width hex height key keeps the pool in ascending height
// order, so cursor iteration is already the ForEach order
type levelDBStore struct {
	codec wsvkey.Codec
}

func newLevelDBStore() (Store, error) {
	if !storage.IsInitialised() {
		return nil, fault.ErrNotInitialised
	}
	return &levelDBStore{codec: wsvkey.DefaultCodec}, nil
}

func (s *levelDBStore) Insert(block *blockrecord.Block) bool {
	packed, err := block.Pack()
	if nil != err {
		log.Errorf("block storage: pack height %d: %s", block.Height, err)
		return false
	}

	key := s.codec.HeightKey(block.Height)
	if storage.Pool.Blocks.Has(key) {
		return false
	}
	storage.Pool.Blocks.Put(key, packed)
	return true
}

func (s *levelDBStore) Fetch(height uint64) *blockrecord.Block {
	packed := storage.Pool.Blocks.Get(s.codec.HeightKey(height))
	if nil == packed {
		return nil
	}

	block, err := blockrecord.Unpack(packed)
	if nil != err {
		log.Errorf("block storage: undecodable block at height %d: %s", height, err)
		return nil
	}
	return block
}

func (s *levelDBStore) Size() uint64 {
	count := uint64(0)
	_ = storage.Pool.Blocks.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	return count
}

func (s *levelDBStore) ForEach(f func(block *blockrecord.Block) error) error {
	return storage.Pool.Blocks.NewFetchCursor().Map(func(key []byte, value []byte) error {
		block, err := blockrecord.Unpack(value)
		if nil != err {
			height, keyErr := s.codec.DecodeHeightKey(key)
			if nil != keyErr {
				height = 0
			}
			log.Errorf("block storage: undecodable block at height %d: %s", height, err)
			return nil
		}
		return f(block)
	})
}

func (s *levelDBStore) Clear() error {
	heights := []uint64(nil)
	err := storage.Pool.Blocks.NewFetchCursor().Map(func(key []byte, value []byte) error {
		height, err := s.codec.DecodeHeightKey(key)
		if nil != err {
			return fault.ErrCorruptedStore
		}
		heights = append(heights, height)
		return nil
	})
	if nil != err {
		return err
	}

	for _, height := range heights {
		storage.Pool.Blocks.Delete(s.codec.HeightKey(height))
	}
	return nil
}

func (s *levelDBStore) Close() error {
	// the pool belongs to the storage package, nothing to release here
	return nil
}
