// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvcommand

import (
	"strconv"

	"github.com/hyperledger/iroha-sub006/fault"
	"github.com/hyperledger/iroha-sub006/storage"
	"github.com/hyperledger/iroha-sub006/wsvkey"
	"github.com/hyperledger/iroha-sub006/wsvrecord"
)

// settings keys for the maintained peer counts
const (
	peersCountKey        = "peers_count"
	syncingPeersCountKey = "syncing_peers_count"
)

// Executor - applies single world state mutations to an open transaction
//
// every write goes to the transaction batch; nothing here is durable
// until the caller commits. Each method checks its own existence
// preconditions against the batch-plus-committed view and returns the
// most specific fault error; the caller adds command context.
type Executor struct {
	trx   storage.Transaction
	codec wsvkey.Codec
}

// New - an executor bound to one open transaction
func New(trx storage.Transaction) *Executor {
	return &Executor{
		trx:   trx,
		codec: wsvkey.DefaultCodec,
	}
}

// InsertRole - create a role with its permission set
func (ex *Executor) InsertRole(roleName string, permissions wsvrecord.RolePermissionSet) error {
	key, err := ex.codec.RoleKey(roleName)
	if nil != err {
		return err
	}

	exists, err := ex.trx.Has(storage.Pool.Roles, key)
	if nil != err {
		return err
	}
	if exists {
		return fault.ErrRoleAlreadyExists
	}

	ex.trx.Put(storage.Pool.Roles, key, []byte(permissions.Bitstring()))
	return nil
}

// InsertRolePermissions - wholesale replace an existing role's permission set
func (ex *Executor) InsertRolePermissions(roleName string, permissions wsvrecord.RolePermissionSet) error {
	key, err := ex.codec.RoleKey(roleName)
	if nil != err {
		return err
	}

	exists, err := ex.trx.Has(storage.Pool.Roles, key)
	if nil != err {
		return err
	}
	if !exists {
		return fault.ErrRoleNotFound
	}

	ex.trx.Put(storage.Pool.Roles, key, []byte(permissions.Bitstring()))
	return nil
}

// RolePermissions - read a role's permission set
func (ex *Executor) RolePermissions(roleName string) (wsvrecord.RolePermissionSet, error) {
	key, err := ex.codec.RoleKey(roleName)
	if nil != err {
		return wsvrecord.RolePermissionSet{}, err
	}

	value, err := ex.trx.Get(storage.Pool.Roles, key)
	if nil != err {
		return wsvrecord.RolePermissionSet{}, err
	}
	if nil == value {
		return wsvrecord.RolePermissionSet{}, fault.ErrRoleNotFound
	}
	return wsvrecord.ParseRolePermissionSet(string(value))
}

// InsertAccountRole - attach an existing role to an existing account
func (ex *Executor) InsertAccountRole(id wsvrecord.AccountID, roleName string) error {
	if err := ex.requireAccount(id); nil != err {
		return err
	}
	if err := ex.requireRole(roleName); nil != err {
		return err
	}

	key, err := ex.codec.AccountRoleKey(id, roleName)
	if nil != err {
		return err
	}
	ex.trx.Put(storage.Pool.AccountRoles, key, []byte{})
	return nil
}

// DeleteAccountRole - detach a role from an account
//
// removing an attachment that was never made is not an error
func (ex *Executor) DeleteAccountRole(id wsvrecord.AccountID, roleName string) error {
	if err := ex.requireAccount(id); nil != err {
		return err
	}

	key, err := ex.codec.AccountRoleKey(id, roleName)
	if nil != err {
		return err
	}
	ex.trx.Delete(storage.Pool.AccountRoles, key)
	return nil
}

// InsertGrantablePermission - grant permittee a permission over account
//
// read-modify-write of the permission bit-string
func (ex *Executor) InsertGrantablePermission(
	permittee wsvrecord.AccountID,
	account wsvrecord.AccountID,
	permission wsvrecord.GrantablePermission,
) error {
	return ex.modifyGrantable(permittee, account, permission, true)
}

// DeleteGrantablePermission - revoke a previously granted permission
func (ex *Executor) DeleteGrantablePermission(
	permittee wsvrecord.AccountID,
	account wsvrecord.AccountID,
	permission wsvrecord.GrantablePermission,
) error {
	return ex.modifyGrantable(permittee, account, permission, false)
}

func (ex *Executor) modifyGrantable(
	permittee wsvrecord.AccountID,
	account wsvrecord.AccountID,
	permission wsvrecord.GrantablePermission,
	grant bool,
) error {
	if err := ex.requireAccount(account); nil != err {
		return err
	}

	key, err := ex.codec.GrantableKey(permittee, account)
	if nil != err {
		return err
	}

	set := wsvrecord.GrantablePermissionSet{}
	value, err := ex.trx.Get(storage.Pool.Grantable, key)
	if nil != err {
		return err
	}
	if nil != value {
		set, err = wsvrecord.ParseGrantablePermissionSet(string(value))
		if nil != err {
			return err
		}
	}

	if grant {
		err = set.Set(permission)
	} else {
		err = set.Unset(permission)
	}
	if nil != err {
		return err
	}

	ex.trx.Put(storage.Pool.Grantable, key, []byte(set.Bitstring()))
	return nil
}

// InsertAccount - create an account in an existing domain
func (ex *Executor) InsertAccount(account wsvrecord.Account) error {
	if err := account.Validate(); nil != err {
		return err
	}
	if err := ex.requireDomain(account.Domain); nil != err {
		return err
	}

	id, err := account.ID()
	if nil != err {
		return err
	}
	key, err := ex.codec.AccountKey(id)
	if nil != err {
		return err
	}

	exists, err := ex.trx.Has(storage.Pool.Accounts, key)
	if nil != err {
		return err
	}
	if exists {
		return fault.ErrAccountAlreadyExists
	}

	ex.trx.Put(storage.Pool.Accounts, key, quorumValue(account.Quorum))
	return nil
}

// UpdateAccount - set the quorum of an existing account
func (ex *Executor) UpdateAccount(id wsvrecord.AccountID, quorum uint32) error {
	if quorum < 1 {
		return fault.ErrInvalidIdentifier
	}
	if err := ex.requireAccount(id); nil != err {
		return err
	}

	key, err := ex.codec.AccountKey(id)
	if nil != err {
		return err
	}
	ex.trx.Put(storage.Pool.Accounts, key, quorumValue(quorum))
	return nil
}

// SetAccountKV - store one writer-scoped detail on an existing account
func (ex *Executor) SetAccountKV(id wsvrecord.AccountID, writer wsvrecord.AccountID, detailKey string, value string) error {
	if err := ex.requireAccount(id); nil != err {
		return err
	}

	key, err := ex.codec.AccountDetailKey(id, writer, detailKey)
	if nil != err {
		return err
	}
	ex.trx.Put(storage.Pool.AccountDetails, key, []byte(value))
	return nil
}

// InsertDomain - create a domain with its default role
func (ex *Executor) InsertDomain(domain wsvrecord.Domain) error {
	if err := domain.Validate(); nil != err {
		return err
	}
	if err := ex.requireRole(domain.DefaultRole); nil != err {
		return err
	}

	key, err := ex.codec.DomainKey(domain.ID)
	if nil != err {
		return err
	}

	exists, err := ex.trx.Has(storage.Pool.Domains, key)
	if nil != err {
		return err
	}
	if exists {
		return fault.ErrDomainAlreadyExists
	}

	ex.trx.Put(storage.Pool.Domains, key, []byte(domain.DefaultRole))
	return nil
}

// DomainDefaultRole - the default role recorded for a domain
func (ex *Executor) DomainDefaultRole(domainID string) (string, error) {
	key, err := ex.codec.DomainKey(domainID)
	if nil != err {
		return "", err
	}

	value, err := ex.trx.Get(storage.Pool.Domains, key)
	if nil != err {
		return "", err
	}
	if nil == value {
		return "", fault.ErrDomainNotFound
	}
	return string(value), nil
}

// InsertAsset - create an asset in an existing domain
func (ex *Executor) InsertAsset(asset wsvrecord.Asset) error {
	if err := ex.requireDomain(asset.Domain); nil != err {
		return err
	}

	id, err := asset.ID()
	if nil != err {
		return err
	}
	key, err := ex.codec.AssetKey(id)
	if nil != err {
		return err
	}

	exists, err := ex.trx.Has(storage.Pool.Assets, key)
	if nil != err {
		return err
	}
	if exists {
		return fault.ErrAssetAlreadyExists
	}

	ex.trx.Put(storage.Pool.Assets, key, []byte(strconv.FormatUint(uint64(asset.Precision), 10)))
	return nil
}

// AssetPrecision - the precision recorded for an asset
func (ex *Executor) AssetPrecision(id wsvrecord.AssetID) (uint8, error) {
	key, err := ex.codec.AssetKey(id)
	if nil != err {
		return 0, err
	}

	value, err := ex.trx.Get(storage.Pool.Assets, key)
	if nil != err {
		return 0, err
	}
	if nil == value {
		return 0, fault.ErrAssetNotFound
	}

	precision, err := strconv.ParseUint(string(value), 10, 8)
	if nil != err {
		return 0, fault.ErrCorruptedStore
	}
	return uint8(precision), nil
}

// UpsertAccountAsset - overwrite an account's balance of one asset
func (ex *Executor) UpsertAccountAsset(id wsvrecord.AccountID, asset wsvrecord.AssetID, balance string) error {
	if err := ex.requireAccount(id); nil != err {
		return err
	}

	precision, err := ex.AssetPrecision(asset)
	if nil != err {
		return err
	}
	if err := wsvrecord.ValidateAmount(balance, precision); nil != err {
		return err
	}

	key, err := ex.codec.AccountAssetKey(id, asset)
	if nil != err {
		return err
	}
	ex.trx.Put(storage.Pool.AccountAssets, key, []byte(balance))
	return nil
}

// InsertSignatory - attach a public key to an existing account
func (ex *Executor) InsertSignatory(id wsvrecord.AccountID, publicKey wsvrecord.PublicKey) error {
	if err := ex.requireAccount(id); nil != err {
		return err
	}

	key, err := ex.codec.SignatoryKey(id, publicKey)
	if nil != err {
		return err
	}

	exists, err := ex.trx.Has(storage.Pool.Signatories, key)
	if nil != err {
		return err
	}
	if exists {
		return fault.ErrSignatoryAlreadyExists
	}

	ex.trx.Put(storage.Pool.Signatories, key, []byte{})
	return nil
}

// DeleteSignatory - detach a public key from an account
func (ex *Executor) DeleteSignatory(id wsvrecord.AccountID, publicKey wsvrecord.PublicKey) error {
	if err := ex.requireAccount(id); nil != err {
		return err
	}

	key, err := ex.codec.SignatoryKey(id, publicKey)
	if nil != err {
		return err
	}

	exists, err := ex.trx.Has(storage.Pool.Signatories, key)
	if nil != err {
		return err
	}
	if !exists {
		return fault.ErrSignatoryNotFound
	}

	ex.trx.Delete(storage.Pool.Signatories, key)
	return nil
}

// InsertPeer - record a new peer
//
// a public key may appear in only one class, so existence is checked
// across both address tables; the TLS certificate is stored only when
// one was supplied
func (ex *Executor) InsertPeer(peer wsvrecord.Peer) error {
	if err := peer.Validate(); nil != err {
		return err
	}

	normalised, err := peer.PublicKey.Normalised()
	if nil != err {
		return err
	}
	key, err := ex.codec.PeerKey(normalised)
	if nil != err {
		return err
	}

	for _, pool := range []*storage.PoolHandle{storage.Pool.Peers, storage.Pool.SyncingPeers} {
		exists, err := ex.trx.Has(pool, key)
		if nil != err {
			return err
		}
		if exists {
			return fault.ErrPeerAlreadyExists
		}
	}

	addressPool := storage.Pool.Peers
	tlsPool := storage.Pool.PeerTLS
	countKey := peersCountKey
	if peer.IsSyncing {
		addressPool = storage.Pool.SyncingPeers
		tlsPool = storage.Pool.SyncingPeerTLS
		countKey = syncingPeersCountKey
	}

	ex.trx.Put(addressPool, key, []byte(peer.Address))
	if "" != peer.TLSCertificate {
		ex.trx.Put(tlsPool, key, []byte(peer.TLSCertificate))
	}
	return ex.adjustCount(countKey, +1)
}

// DeletePeer - remove a peer from whichever class holds it
//
// the address, any TLS certificate and the class count all go;
// removing an unknown peer is not an error
func (ex *Executor) DeletePeer(publicKey wsvrecord.PublicKey) error {
	normalised, err := publicKey.Normalised()
	if nil != err {
		return err
	}
	key, err := ex.codec.PeerKey(normalised)
	if nil != err {
		return err
	}

	type class struct {
		addresses *storage.PoolHandle
		tls       *storage.PoolHandle
		countKey  string
	}
	for _, c := range []class{
		{storage.Pool.Peers, storage.Pool.PeerTLS, peersCountKey},
		{storage.Pool.SyncingPeers, storage.Pool.SyncingPeerTLS, syncingPeersCountKey},
	} {
		exists, err := ex.trx.Has(c.addresses, key)
		if nil != err {
			return err
		}
		if !exists {
			continue
		}
		ex.trx.Delete(c.addresses, key)
		ex.trx.Delete(c.tls, key)
		if err := ex.adjustCount(c.countKey, -1); nil != err {
			return err
		}
	}
	return nil
}

// SetTopBlockInfo - advance the recorded commit point
func (ex *Executor) SetTopBlockInfo(info wsvrecord.TopBlockInfo) error {
	ex.trx.Put(storage.Pool.TopBlock, ex.codec.TopBlockKey(), info.Pack())
	return nil
}

// AccountQuorum - the quorum recorded for an account
func (ex *Executor) AccountQuorum(id wsvrecord.AccountID) (uint32, error) {
	key, err := ex.codec.AccountKey(id)
	if nil != err {
		return 0, err
	}

	value, err := ex.trx.Get(storage.Pool.Accounts, key)
	if nil != err {
		return 0, err
	}
	if nil == value {
		return 0, fault.ErrAccountNotFound
	}

	quorum, err := strconv.ParseUint(string(value), 10, 32)
	if nil != err {
		return 0, fault.ErrCorruptedStore
	}
	return uint32(quorum), nil
}

func quorumValue(quorum uint32) []byte {
	return []byte(strconv.FormatUint(uint64(quorum), 10))
}

// account existence check against the transaction view
func (ex *Executor) requireAccount(id wsvrecord.AccountID) error {
	key, err := ex.codec.AccountKey(id)
	if nil != err {
		return err
	}
	exists, err := ex.trx.Has(storage.Pool.Accounts, key)
	if nil != err {
		return err
	}
	if !exists {
		return fault.ErrAccountNotFound
	}
	return nil
}

func (ex *Executor) requireDomain(domainID string) error {
	key, err := ex.codec.DomainKey(domainID)
	if nil != err {
		return err
	}
	exists, err := ex.trx.Has(storage.Pool.Domains, key)
	if nil != err {
		return err
	}
	if !exists {
		return fault.ErrDomainNotFound
	}
	return nil
}

func (ex *Executor) requireRole(roleName string) error {
	key, err := ex.codec.RoleKey(roleName)
	if nil != err {
		return err
	}
	exists, err := ex.trx.Has(storage.Pool.Roles, key)
	if nil != err {
		return err
	}
	if !exists {
		return fault.ErrRoleNotFound
	}
	return nil
}

func (ex *Executor) adjustCount(countKey string, delta int64) error {
	key, err := ex.codec.SettingKey(countKey)
	if nil != err {
		return err
	}

	count, _, err := ex.trx.GetN(storage.Pool.Settings, key)
	if nil != err {
		return err
	}

	if delta < 0 && count < uint64(-delta) {
		return fault.ErrCorruptedStore
	}
	ex.trx.PutN(storage.Pool.Settings, key, uint64(int64(count)+delta))
	return nil
}
