// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package blockstore

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/prometheus/common/log"

	"github.com/hyperledger/iroha-sub006/blockrecord"
)

// fileStore - one packed file per block under a single directory
type fileStore struct {
	sync.RWMutex
	directory string
}

func newFileStore(directory string) (Store, error) {
	if err := os.MkdirAll(directory, 0700); nil != err {
		return nil, err
	}
	return &fileStore{directory: directory}, nil
}

// BlockPath - the file holding one height
func BlockPath(directory string, height uint64) string {
	return filepath.Join(directory, fmt.Sprintf("%016d.blk", height))
}

func (s *fileStore) Insert(block *blockrecord.Block) bool {
	packed, err := block.Pack()
	if nil != err {
		log.Errorf("block storage: pack height %d: %s", block.Height, err)
		return false
	}

	s.Lock()
	defer s.Unlock()

	path := BlockPath(s.directory, block.Height)
	if _, err := os.Stat(path); nil == err {
		return false
	}

	if err := ioutil.WriteFile(path, packed, 0600); nil != err {
		log.Errorf("block storage: write %q: %s", path, err)
		return false
	}
	return true
}

func (s *fileStore) Fetch(height uint64) *blockrecord.Block {
	s.RLock()
	defer s.RUnlock()

	path := BlockPath(s.directory, height)
	packed, err := ioutil.ReadFile(path)
	if nil != err {
		return nil
	}

	block, err := blockrecord.Unpack(packed)
	if nil != err {
		log.Errorf("block storage: undecodable block file %q: %s", path, err)
		return nil
	}
	return block
}

func (s *fileStore) Size() uint64 {
	s.RLock()
	defer s.RUnlock()
	return uint64(len(s.heights()))
}

func (s *fileStore) ForEach(f func(block *blockrecord.Block) error) error {
	s.RLock()
	heights := s.heights()
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

func (s *fileStore) Clear() error {
	s.Lock()
	defer s.Unlock()

	for _, height := range s.heights() {
		if err := os.Remove(BlockPath(s.directory, height)); nil != err {
			return err
		}
	}
	return nil
}

func (s *fileStore) Close() error {
	return nil
}

// caller must hold at least the read lock
func (s *fileStore) heights() []uint64 {
	entries, err := ioutil.ReadDir(s.directory)
	if nil != err {
		log.Errorf("block storage: read directory %q: %s", s.directory, err)
		return nil
	}

	heights := []uint64(nil)
	for _, entry := range entries {
		var height uint64
		if _, err := fmt.Sscanf(entry.Name(), "%016d.blk", &height); nil != err {
			continue
		}
		heights = append(heights, height)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	return heights
}
