// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package mutable

import (
	"github.com/bitmark-inc/logger"

	"github.com/hyperledger/iroha-sub006/blockrecord"
	"github.com/hyperledger/iroha-sub006/blockstore"
	"github.com/hyperledger/iroha-sub006/datamodel"
	"github.com/hyperledger/iroha-sub006/fault"
	"github.com/hyperledger/iroha-sub006/storage"
	"github.com/hyperledger/iroha-sub006/wsvcommand"
	"github.com/hyperledger/iroha-sub006/wsvquery"
	"github.com/hyperledger/iroha-sub006/wsvrecord"
)

// Factory - creates one MutableStorage per candidate block
type Factory struct {
	log    *logger.L
	blocks blockstore.Store
	models *datamodel.Registry
}

// NewFactory - bind the commit pipeline to its block store and data models
func NewFactory(blocks blockstore.Store, models *datamodel.Registry) *Factory {
	return &Factory{
		log:    logger.New("mutable"),
		blocks: blocks,
		models: models,
	}
}

// mutable storage lifecycle
const (
	stateOpen = iota
	stateApplied
	stateFinished
)

// MutableStorage - staged application of one block
//
// exactly one may exist at a time: it owns the single database
// transaction. Apply stages the block's commands, then either Commit
// makes everything durable or Rollback leaves the store untouched.
type MutableStorage struct {
	factory    *Factory
	trx        storage.Transaction
	executor   *wsvcommand.Executor
	top        wsvrecord.TopBlockInfo
	block      *blockrecord.Block
	pendingTop wsvrecord.TopBlockInfo
	state      int
}

// NewMutableStorage - begin the transaction for one block
func (f *Factory) NewMutableStorage() (*MutableStorage, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	top, err := wsvquery.TopBlockInfo()
	if nil != err {
		trx.Abort()
		return nil, err
	}

	return &MutableStorage{
		factory:  f,
		trx:      trx,
		executor: wsvcommand.New(trx),
		top:      top,
		state:    stateOpen,
	}, nil
}

// Apply - stage every command of the block
//
// the block must directly extend the committed top; an out of
// sequence height is refused without touching anything. The first
// failing command rolls the whole staging back and finishes this
// MutableStorage.
func (m *MutableStorage) Apply(block *blockrecord.Block) error {
	if stateOpen != m.state {
		return fault.ErrMutableStorageFinished
	}

	if block.Height != m.top.Height+1 {
		return fault.ErrOutOfSequenceBlock
	}

	for _, transaction := range block.Transactions {
		for _, command := range transaction.Commands {
			err := m.execute(transaction.CreatorAccountID, command)
			if nil != err {
				wrapped := wrapCommand(command, transaction.CreatorAccountID, err)
				m.factory.log.Warnf("apply height %d: %s", block.Height, wrapped)
				m.factory.models.RollbackTransaction()
				m.abandon()
				return wrapped
			}
		}
		m.factory.models.CommitTransaction()
	}

	digest, err := block.Digest()
	if nil != err {
		m.abandon()
		return err
	}

	m.block = block
	m.pendingTop = wsvrecord.TopBlockInfo{
		Height: block.Height,
		Hash:   digest,
	}
	m.state = stateApplied
	return nil
}

// Commit - make the applied block durable and snapshot the ledger
//
// order matters: the top marker and block are staged, the batch is
// flushed, only then do data models see the block as committed
func (m *MutableStorage) Commit() (*wsvrecord.LedgerState, error) {
	switch m.state {
	case stateOpen:
		return nil, fault.ErrEmptyTransaction
	case stateFinished:
		return nil, fault.ErrMutableStorageFinished
	}

	if err := m.executor.SetTopBlockInfo(m.pendingTop); nil != err {
		m.abandon()
		return nil, err
	}

	// a block already stored at this height only passes if it is this
	// very block: an earlier commit interrupted after the store write
	if !m.factory.blocks.Insert(m.block) && !m.storedBlockMatches() {
		m.factory.log.Errorf("commit height %d: different block already stored", m.block.Height)
		m.abandon()
		return nil, fault.ErrBlockAlreadyExists
	}

	if err := m.trx.Commit(); nil != err {
		m.factory.log.Errorf("commit height %d: %s", m.block.Height, err)
		m.abandon()
		return nil, err
	}
	m.factory.models.CommitBlock()
	m.state = stateFinished

	m.factory.log.Infof("committed height %d hash %s", m.pendingTop.Height, m.pendingTop.Hash)

	return wsvquery.LedgerState()
}

// Rollback - abandon everything staged by this MutableStorage
func (m *MutableStorage) Rollback() {
	if stateFinished == m.state {
		return
	}
	m.abandon()
}

// every abandoned block tells the data models so, whatever phase it
// failed in: transaction-committed model effects must not outlive it
func (m *MutableStorage) abandon() {
	m.factory.models.RollbackBlock()
	m.finish()
}

func (m *MutableStorage) finish() {
	m.trx.Abort()
	m.state = stateFinished
}

func (m *MutableStorage) storedBlockMatches() bool {
	stored := m.factory.blocks.Fetch(m.block.Height)
	if nil == stored {
		return false
	}
	digest, err := stored.Digest()
	return nil == err && digest == m.pendingTop.Hash
}

// route one command to the executor or the data model registry
func (m *MutableStorage) execute(creator wsvrecord.AccountID, command blockrecord.Command) error {
	ex := m.executor

	switch {
	case nil != command.AddPeer:
		return ex.InsertPeer(command.AddPeer.Peer)

	case nil != command.AddSignatory:
		c := command.AddSignatory
		return ex.InsertSignatory(c.AccountID, c.PublicKey)

	case nil != command.AppendRole:
		c := command.AppendRole
		return ex.InsertAccountRole(c.AccountID, c.RoleName)

	case nil != command.CallDataModel:
		c := command.CallDataModel
		return m.factory.models.Execute(datamodel.Call{
			Caller:  creator,
			Target:  c.Target,
			Payload: c.Payload,
		})

	case nil != command.CreateAccount:
		return m.createAccount(command.CreateAccount)

	case nil != command.CreateAsset:
		c := command.CreateAsset
		return ex.InsertAsset(wsvrecord.Asset{
			Name:      c.AssetName,
			Domain:    c.DomainID,
			Precision: c.Precision,
		})

	case nil != command.CreateDomain:
		c := command.CreateDomain
		return ex.InsertDomain(wsvrecord.Domain{
			ID:          c.DomainID,
			DefaultRole: c.DefaultRole,
		})

	case nil != command.CreateRole:
		c := command.CreateRole
		return ex.InsertRole(c.RoleName, c.Permissions)

	case nil != command.DetachRole:
		c := command.DetachRole
		return ex.DeleteAccountRole(c.AccountID, c.RoleName)

	case nil != command.GrantPermission:
		c := command.GrantPermission
		return ex.InsertGrantablePermission(c.Grantee, creator, c.Permission)

	case nil != command.RemovePeer:
		return ex.DeletePeer(command.RemovePeer.PublicKey)

	case nil != command.RemoveSignatory:
		c := command.RemoveSignatory
		return ex.DeleteSignatory(c.AccountID, c.PublicKey)

	case nil != command.RevokePermission:
		c := command.RevokePermission
		return ex.DeleteGrantablePermission(c.Grantee, creator, c.Permission)

	case nil != command.SetAccountDetail:
		c := command.SetAccountDetail
		return ex.SetAccountKV(c.AccountID, creator, c.Key, c.Value)

	case nil != command.SetBalance:
		c := command.SetBalance
		return ex.UpsertAccountAsset(c.AccountID, c.AssetID, c.Amount)

	case nil != command.SetQuorum:
		c := command.SetQuorum
		return ex.UpdateAccount(c.AccountID, c.Quorum)

	default:
		return fault.ErrEmptyCommand
	}
}

// CreateAccount is compound: the account record, its first signatory
// and the domain's default role all come into being together
func (m *MutableStorage) createAccount(c *blockrecord.CreateAccount) error {
	ex := m.executor

	defaultRole, err := ex.DomainDefaultRole(c.DomainID)
	if nil != err {
		return err
	}

	account := wsvrecord.Account{
		Name:   c.AccountName,
		Domain: c.DomainID,
		Quorum: 1,
	}
	if err := ex.InsertAccount(account); nil != err {
		return err
	}

	id, err := account.ID()
	if nil != err {
		return err
	}
	if err := ex.InsertSignatory(id, c.PublicKey); nil != err {
		return err
	}
	return ex.InsertAccountRole(id, defaultRole)
}
