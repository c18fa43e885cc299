// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvrecord

import (
	"strconv"
	"strings"

	"github.com/hyperledger/iroha-sub006/blockdigest"
	"github.com/hyperledger/iroha-sub006/fault"
)

// TopBlockInfo - height and hash of the most recently committed block
//
// this is the world state view's own notion of "current height",
// updated once per committed block, deliberately independent of any
// block store's record count
type TopBlockInfo struct {
	Height uint64
	Hash   blockdigest.Digest
}

// LedgerState - immutable snapshot produced after a successful commit
//
// shared by pointer; never modified after construction
type LedgerState struct {
	Top          TopBlockInfo
	Peers        []Peer
	SyncingPeers []Peer
}

// Pack - serialise as "<height>#<hex hash>"
func (t TopBlockInfo) Pack() []byte {
	return []byte(strconv.FormatUint(t.Height, 10) + "#" + t.Hash.String())
}

// ParseTopBlockInfo - the inverse of Pack
func ParseTopBlockInfo(buffer []byte) (TopBlockInfo, error) {
	info := TopBlockInfo{}

	s := string(buffer)
	i := strings.IndexByte(s, '#')
	if i < 0 {
		return info, fault.ErrCannotDecodeKey
	}

	height, err := strconv.ParseUint(s[:i], 10, 64)
	if nil != err {
		return info, fault.ErrCannotDecodeKey
	}

	hash, err := blockdigest.DigestFromHex(s[i+1:])
	if nil != err {
		return info, fault.ErrCannotDecodeKey
	}

	info.Height = height
	info.Hash = hash
	return info, nil
}
