// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package blockstore

import (
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/hyperledger/iroha-sub006/blockrecord"
)

// memoryStore - volatile block run used for candidate chains
//
// with a cache size set the store keeps only the most recent window
// of blocks, old heights falling off as new ones arrive
type memoryStore struct {
	sync.RWMutex
	blocks map[uint64][]byte
	window *lru.Cache
}

func newMemoryStore(cacheSize int) (Store, error) {
	s := &memoryStore{}
	if cacheSize > 0 {
		window, err := lru.New(cacheSize)
		if nil != err {
			return nil, err
		}
		s.window = window
	} else {
		s.blocks = map[uint64][]byte{}
	}
	return s, nil
}

func (s *memoryStore) Insert(block *blockrecord.Block) bool {
	packed, err := block.Pack()
	if nil != err {
		return false
	}

	s.Lock()
	defer s.Unlock()

	if nil != s.window {
		if s.window.Contains(block.Height) {
			return false
		}
		s.window.Add(block.Height, packed)
		return true
	}

	if _, ok := s.blocks[block.Height]; ok {
		return false
	}
	s.blocks[block.Height] = packed
	return true
}

func (s *memoryStore) Fetch(height uint64) *blockrecord.Block {
	s.RLock()
	defer s.RUnlock()

	var packed []byte
	if nil != s.window {
		value, ok := s.window.Get(height)
		if !ok {
			return nil
		}
		packed = value.([]byte)
	} else {
		value, ok := s.blocks[height]
		if !ok {
			return nil
		}
		packed = value
	}

	block, err := blockrecord.Unpack(packed)
	if nil != err {
		return nil
	}
	return block
}

func (s *memoryStore) Size() uint64 {
	s.RLock()
	defer s.RUnlock()

	if nil != s.window {
		return uint64(s.window.Len())
	}
	return uint64(len(s.blocks))
}

func (s *memoryStore) ForEach(f func(block *blockrecord.Block) error) error {
	s.RLock()
	heights := s.sortedHeights()
	s.RUnlock()

	for _, height := range heights {
		block := s.Fetch(height)
		if nil == block {
			continue
		}
		if err := f(block); nil != err {
			return err
		}
	}
	return nil
}

func (s *memoryStore) Clear() error {
	s.Lock()
	defer s.Unlock()

	if nil != s.window {
		s.window.Purge()
	} else {
		s.blocks = map[uint64][]byte{}
	}
	return nil
}

func (s *memoryStore) Close() error {
	return s.Clear()
}

// caller must hold at least the read lock
func (s *memoryStore) sortedHeights() []uint64 {
	heights := []uint64(nil)
	if nil != s.window {
		for _, key := range s.window.Keys() {
			heights = append(heights, key.(uint64))
		}
	} else {
		for height := range s.blocks {
			heights = append(heights, height)
		}
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	return heights
}
