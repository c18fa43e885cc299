// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvquery

import (
	"github.com/hyperledger/iroha-sub006/fault"
	"github.com/hyperledger/iroha-sub006/storage"
	"github.com/hyperledger/iroha-sub006/wsvkey"
	"github.com/hyperledger/iroha-sub006/wsvrecord"
)

// keys are built the same way the command executor builds them
var keyCodec = wsvkey.DefaultCodec

// TopBlockInfo - height and hash of the last committed block
//
// an empty store reads as height 0 with the zero hash; a present but
// undecodable record means previously committed state was damaged
func TopBlockInfo() (wsvrecord.TopBlockInfo, error) {
	buffer := storage.Pool.TopBlock.Get(keyCodec.TopBlockKey())
	if nil == buffer {
		return wsvrecord.TopBlockInfo{}, nil
	}

	info, err := wsvrecord.ParseTopBlockInfo(buffer)
	if nil != err {
		return wsvrecord.TopBlockInfo{}, fault.ErrCorruptedStore
	}
	return info, nil
}

// Peers - all peers of one class, with TLS certificates joined in
func Peers(syncing bool) ([]wsvrecord.Peer, error) {
	addressPool := storage.Pool.Peers
	tlsPool := storage.Pool.PeerTLS
	if syncing {
		addressPool = storage.Pool.SyncingPeers
		tlsPool = storage.Pool.SyncingPeerTLS
	}

	peers := []wsvrecord.Peer(nil)

	err := addressPool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		publicKey, err := keyCodec.DecodePeerKey(key)
		if nil != err {
			return fault.ErrCorruptedStore
		}

		peer := wsvrecord.Peer{
			PublicKey: publicKey,
			Address:   string(value),
			IsSyncing: syncing,
		}

		tlsKey, err := keyCodec.PeerKey(publicKey)
		if nil != err {
			return fault.ErrCorruptedStore
		}
		if certificate := tlsPool.Get(tlsKey); nil != certificate {
			peer.TLSCertificate = string(certificate)
		}

		peers = append(peers, peer)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return peers, nil
}

// PeerByPublicKey - look a peer up in both classes
func PeerByPublicKey(publicKey wsvrecord.PublicKey) (*wsvrecord.Peer, error) {
	normalised, err := publicKey.Normalised()
	if nil != err {
		return nil, err
	}

	key, err := keyCodec.PeerKey(normalised)
	if nil != err {
		return nil, err
	}

	type class struct {
		addresses *storage.PoolHandle
		tls       *storage.PoolHandle
		syncing   bool
	}
	for _, c := range []class{
		{storage.Pool.Peers, storage.Pool.PeerTLS, false},
		{storage.Pool.SyncingPeers, storage.Pool.SyncingPeerTLS, true},
	} {
		address := c.addresses.Get(key)
		if nil == address {
			continue
		}
		peer := &wsvrecord.Peer{
			PublicKey: normalised,
			Address:   string(address),
			IsSyncing: c.syncing,
		}
		if certificate := c.tls.Get(key); nil != certificate {
			peer.TLSCertificate = string(certificate)
		}
		return peer, nil
	}
	return nil, fault.ErrPeerNotFound
}

// LedgerState - assemble the post-commit snapshot from committed state
func LedgerState() (*wsvrecord.LedgerState, error) {
	top, err := TopBlockInfo()
	if nil != err {
		return nil, err
	}

	peers, err := Peers(false)
	if nil != err {
		return nil, err
	}

	syncingPeers, err := Peers(true)
	if nil != err {
		return nil, err
	}

	return &wsvrecord.LedgerState{
		Top:          top,
		Peers:        peers,
		SyncingPeers: syncingPeers,
	}, nil
}
