// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package synchroniser

import (
	"context"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/hyperledger/iroha-sub006/blockrecord"
	"github.com/hyperledger/iroha-sub006/fault"
	"github.com/hyperledger/iroha-sub006/mutable"
	"github.com/hyperledger/iroha-sub006/wsvquery"
	"github.com/hyperledger/iroha-sub006/wsvrecord"
)

// BlockLoader - stream blocks from a remote peer starting at a height
type BlockLoader interface {
	RetrieveBlocks(ctx context.Context, fromHeight uint64, peer wsvrecord.PublicKey) (BlockReader, error)
}

// BlockReader - one remote block stream
//
// Read returns fault.ErrIterationComplete when the peer has no more
// blocks to offer
type BlockReader interface {
	Read() (*blockrecord.Block, error)
}

// ChainValidator - accept or reject a candidate extension of the chain
type ChainValidator interface {
	Validate(candidate *blockrecord.Block, top wsvrecord.TopBlockInfo) bool
}

// Outcome - a consensus round result handed to the synchroniser
type Outcome interface {
	outcome()
}

// PairValid - consensus matched the locally built block; it is
// already fully validated and only needs committing
type PairValid struct {
	Block *blockrecord.Block
}

func (PairValid) outcome() {}

// Synchronizable - the network is ahead; blocks up to RequiredHeight
// must be fetched from one of the listed peers
type Synchronizable struct {
	RequiredHeight uint64
	PublicKeys     []wsvrecord.PublicKey
}

func (Synchronizable) outcome() {}

// Event - the published result of a processed outcome
type Event struct {
	State            *wsvrecord.LedgerState
	CommittedHeights []uint64            // ascending
	Peer             wsvrecord.PublicKey // empty for a local commit
}

// Config - synchronisation tuning
type Config struct {
	BlockRate   float64       // downloaded blocks per second, 0 = unlimited
	PeerTimeout time.Duration // budget for one peer's whole stream
}

// Synchroniser - drives the commit pipeline from consensus outcomes
//
// invocations are single flight: the mutex guarantees the commit for
// height h finishes before the download of h+1 begins
type Synchroniser struct {
	sync.Mutex
	log       *logger.L
	factory   *mutable.Factory
	loader    BlockLoader
	validator ChainValidator
	limiter   *rate.Limiter
	timeout   time.Duration
}

// New - a synchroniser over the commit pipeline and a block source
func New(factory *mutable.Factory, loader BlockLoader, validator ChainValidator, config Config) *Synchroniser {
	limit := rate.Inf
	if config.BlockRate > 0 {
		limit = rate.Limit(config.BlockRate)
	}
	timeout := config.PeerTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Synchroniser{
		log:       logger.New("synchroniser"),
		factory:   factory,
		loader:    loader,
		validator: validator,
		limiter:   rate.NewLimiter(limit, 1),
		timeout:   timeout,
	}
}

// ProcessOutcome - commit what the outcome demands and report the event
func (s *Synchroniser) ProcessOutcome(ctx context.Context, outcome Outcome) (*Event, error) {
	s.Lock()
	defer s.Unlock()

	switch o := outcome.(type) {
	case PairValid:
		return s.commitLocal(o.Block)
	case Synchronizable:
		top, err := wsvquery.TopBlockInfo()
		if nil != err {
			return nil, err
		}
		return s.downloadAndCommitMissingBlocks(ctx, top.Height+1, o.RequiredHeight, o.PublicKeys)
	default:
		return nil, fault.ErrInvalidOutcome
	}
}

// commit the block consensus already validated
func (s *Synchroniser) commitLocal(block *blockrecord.Block) (*Event, error) {
	state, err := s.commitOne(block)
	if nil != err {
		return nil, err
	}

	s.log.Infof("local block %d committed", block.Height)
	return &Event{
		State:            state,
		CommittedHeights: []uint64{block.Height},
	}, nil
}

// fetch [start..target] trying each candidate peer in turn
//
// a peer that fails validation or drops its stream is skipped; store
// corruption is fatal and aborts the whole attempt
func (s *Synchroniser) downloadAndCommitMissingBlocks(
	ctx context.Context,
	start uint64,
	target uint64,
	peers []wsvrecord.PublicKey,
) (*Event, error) {
	if start > target {
		return nil, fault.ErrOutOfSequenceBlock
	}

	height := start
	committed := []uint64(nil)
	servingPeer := wsvrecord.PublicKey("")
	var state *wsvrecord.LedgerState

	for _, peer := range peers {
		var err error
		state, err = s.downloadFromPeer(ctx, peer, &height, target, &committed)
		if nil == err {
			servingPeer = peer
			break
		}

		if fault.IsErrCorruption(err) || fault.IsErrDB(err) {
			s.log.Criticalf("download from %s: %s", peer, err)
			return nil, err
		}
		s.log.Warnf("download from %s failed at height %d: %s", peer, height, err)
	}

	if height <= target {
		s.log.Errorf("no peer could supply heights %d..%d", height, target)
		return nil, fault.ErrPeersExhausted
	}

	s.log.Infof("synchronised heights %d..%d from %s", start, target, servingPeer)
	return &Event{
		State:            state,
		CommittedHeights: committed,
		Peer:             servingPeer,
	}, nil
}

// stream blocks from one peer until the target is reached
func (s *Synchroniser) downloadFromPeer(
	ctx context.Context,
	peer wsvrecord.PublicKey,
	height *uint64,
	target uint64,
	committed *[]uint64,
) (*wsvrecord.LedgerState, error) {
	peerCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reader, err := s.loader.RetrieveBlocks(peerCtx, *height, peer)
	if nil != err {
		return nil, err
	}

	var state *wsvrecord.LedgerState
	for *height <= target {
		if err := s.limiter.Wait(peerCtx); nil != err {
			return nil, err
		}

		block, err := reader.Read()
		if nil != err {
			// an early end of stream still leaves heights missing
			return nil, err
		}

		top, err := wsvquery.TopBlockInfo()
		if nil != err {
			return nil, err
		}
		if !s.validator.Validate(block, top) {
			return nil, fault.ErrBlockValidationFailed
		}

		state, err = s.commitOne(block)
		if nil != err {
			return nil, err
		}

		*committed = append(*committed, block.Height)
		*height = block.Height + 1
	}
	return state, nil
}

// one block through its own mutable storage
func (s *Synchroniser) commitOne(block *blockrecord.Block) (*wsvrecord.LedgerState, error) {
	ms, err := s.factory.NewMutableStorage()
	if nil != err {
		return nil, err
	}

	if err := ms.Apply(block); nil != err {
		ms.Rollback()
		return nil, err
	}

	state, err := ms.Commit()
	if nil != err {
		ms.Rollback()
		return nil, err
	}
	return state, nil
}
