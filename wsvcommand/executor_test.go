// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvcommand_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/iroha-sub006/blockdigest"
	"github.com/hyperledger/iroha-sub006/fault"
	"github.com/hyperledger/iroha-sub006/storage"
	"github.com/hyperledger/iroha-sub006/wsvcommand"
	"github.com/hyperledger/iroha-sub006/wsvquery"
	"github.com/hyperledger/iroha-sub006/wsvrecord"
)

const databaseFileName = "test-command"

func removeFiles() {
	os.RemoveAll(databaseFileName + "-wsv.leveldb")
	os.RemoveAll(databaseFileName + "-blocks.leveldb")
}

// open storage and begin one transaction with an executor on it
func setup(t *testing.T) (*wsvcommand.Executor, storage.Transaction) {
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	require.Nil(t, err, "storage initialise error")

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "transaction begin error")

	return wsvcommand.New(trx), trx
}

func teardown(t *testing.T, trx storage.Transaction) {
	trx.Abort()
	storage.Finalise()
	removeFiles()
}

// create role + domain + account scaffolding used by most tests
func scaffold(t *testing.T, ex *wsvcommand.Executor) wsvrecord.AccountID {
	permissions := wsvrecord.RolePermissionSet{}
	require.Nil(t, permissions.Set(wsvrecord.CanAddPeer), "Set failed")

	require.Nil(t, ex.InsertRole("user", permissions), "InsertRole failed")
	require.Nil(t, ex.InsertDomain(wsvrecord.Domain{ID: "wonderland", DefaultRole: "user"}), "InsertDomain failed")
	require.Nil(t, ex.InsertAccount(wsvrecord.Account{Name: "alice", Domain: "wonderland", Quorum: 1}), "InsertAccount failed")

	return wsvrecord.AccountID("alice@wonderland")
}

func TestInsertRole(t *testing.T) {
	ex, trx := setup(t)
	defer teardown(t, trx)

	permissions := wsvrecord.RolePermissionSet{}
	assert.Nil(t, permissions.Set(wsvrecord.CanCreateAccount), "Set failed")

	err := ex.InsertRole("admin", permissions)
	assert.Nil(t, err, "InsertRole failed")

	err = ex.InsertRole("admin", permissions)
	assert.Equal(t, fault.ErrRoleAlreadyExists, err, "duplicate role must be refused")

	stored, err := ex.RolePermissions("admin")
	assert.Nil(t, err, "RolePermissions failed")
	assert.True(t, stored.IsSet(wsvrecord.CanCreateAccount), "permission lost")
}

func TestInsertRolePermissionsReplaces(t *testing.T) {
	ex, trx := setup(t)
	defer teardown(t, trx)

	first := wsvrecord.RolePermissionSet{}
	assert.Nil(t, first.Set(wsvrecord.CanCreateAccount), "Set failed")
	assert.Nil(t, ex.InsertRole("admin", first), "InsertRole failed")

	second := wsvrecord.RolePermissionSet{}
	assert.Nil(t, second.Set(wsvrecord.CanAddPeer), "Set failed")
	assert.Nil(t, ex.InsertRolePermissions("admin", second), "InsertRolePermissions failed")

	stored, err := ex.RolePermissions("admin")
	assert.Nil(t, err, "RolePermissions failed")
	assert.False(t, stored.IsSet(wsvrecord.CanCreateAccount), "old permission survived replace")
	assert.True(t, stored.IsSet(wsvrecord.CanAddPeer), "new permission missing")

	err = ex.InsertRolePermissions("missing", second)
	assert.Equal(t, fault.ErrRoleNotFound, err, "unknown role must be refused")
}

func TestInsertDomain(t *testing.T) {
	ex, trx := setup(t)
	defer teardown(t, trx)

	err := ex.InsertDomain(wsvrecord.Domain{ID: "wonderland", DefaultRole: "user"})
	assert.Equal(t, fault.ErrRoleNotFound, err, "domain with unknown default role must be refused")

	assert.Nil(t, ex.InsertRole("user", wsvrecord.RolePermissionSet{}), "InsertRole failed")
	assert.Nil(t, ex.InsertDomain(wsvrecord.Domain{ID: "wonderland", DefaultRole: "user"}), "InsertDomain failed")

	err = ex.InsertDomain(wsvrecord.Domain{ID: "wonderland", DefaultRole: "user"})
	assert.Equal(t, fault.ErrDomainAlreadyExists, err, "duplicate domain must be refused")

	role, err := ex.DomainDefaultRole("wonderland")
	assert.Nil(t, err, "DomainDefaultRole failed")
	assert.Equal(t, "user", role, "default role mismatch")

	_, err = ex.DomainDefaultRole("nowhere")
	assert.Equal(t, fault.ErrDomainNotFound, err, "unknown domain must be not-found")
}

func TestInsertAccount(t *testing.T) {
	ex, trx := setup(t)
	defer teardown(t, trx)

	err := ex.InsertAccount(wsvrecord.Account{Name: "alice", Domain: "wonderland", Quorum: 1})
	assert.Equal(t, fault.ErrDomainNotFound, err, "account in unknown domain must be refused")

	id := scaffold(t, ex)

	err = ex.InsertAccount(wsvrecord.Account{Name: "alice", Domain: "wonderland", Quorum: 1})
	assert.Equal(t, fault.ErrAccountAlreadyExists, err, "duplicate account must be refused")

	quorum, err := ex.AccountQuorum(id)
	assert.Nil(t, err, "AccountQuorum failed")
	assert.Equal(t, uint32(1), quorum, "quorum mismatch")

	assert.Nil(t, ex.UpdateAccount(id, 3), "UpdateAccount failed")
	quorum, err = ex.AccountQuorum(id)
	assert.Nil(t, err, "AccountQuorum failed")
	assert.Equal(t, uint32(3), quorum, "quorum not updated")

	err = ex.UpdateAccount("bob@wonderland", 2)
	assert.Equal(t, fault.ErrAccountNotFound, err, "unknown account must be refused")
}

func TestAccountRoles(t *testing.T) {
	ex, trx := setup(t)
	defer teardown(t, trx)

	id := scaffold(t, ex)

	err := ex.InsertAccountRole(id, "missing")
	assert.Equal(t, fault.ErrRoleNotFound, err, "unknown role must be refused")

	err = ex.InsertAccountRole("bob@wonderland", "user")
	assert.Equal(t, fault.ErrAccountNotFound, err, "unknown account must be refused")

	assert.Nil(t, ex.InsertAccountRole(id, "user"), "InsertAccountRole failed")
	assert.Nil(t, ex.DeleteAccountRole(id, "user"), "DeleteAccountRole failed")

	// detaching again is not an error
	assert.Nil(t, ex.DeleteAccountRole(id, "user"), "repeat DeleteAccountRole failed")
}

func TestGrantablePermissions(t *testing.T) {
	ex, trx := setup(t)
	defer teardown(t, trx)

	id := scaffold(t, ex)
	require.Nil(t, ex.InsertAccount(wsvrecord.Account{Name: "bob", Domain: "wonderland", Quorum: 1}), "InsertAccount failed")
	bob := wsvrecord.AccountID("bob@wonderland")

	err := ex.InsertGrantablePermission(bob, "carol@wonderland", wsvrecord.CanSetMyQuorum)
	assert.Equal(t, fault.ErrAccountNotFound, err, "grant over unknown account must be refused")

	assert.Nil(t, ex.InsertGrantablePermission(bob, id, wsvrecord.CanSetMyQuorum), "grant failed")
	assert.Nil(t, ex.InsertGrantablePermission(bob, id, wsvrecord.CanAddMySignatory), "second grant failed")

	// revoking one permission keeps the other
	assert.Nil(t, ex.DeleteGrantablePermission(bob, id, wsvrecord.CanSetMyQuorum), "revoke failed")
	assert.Nil(t, ex.InsertGrantablePermission(bob, id, wsvrecord.CanSetMyQuorum), "re-grant failed")
}

func TestAccountDetail(t *testing.T) {
	ex, trx := setup(t)
	defer teardown(t, trx)

	id := scaffold(t, ex)

	err := ex.SetAccountKV("bob@wonderland", id, "age", "30")
	assert.Equal(t, fault.ErrAccountNotFound, err, "detail on unknown account must be refused")

	assert.Nil(t, ex.SetAccountKV(id, id, "age", "30"), "SetAccountKV failed")
	assert.Nil(t, ex.SetAccountKV(id, id, "age", "31"), "overwrite failed")
}

func TestAssets(t *testing.T) {
	ex, trx := setup(t)
	defer teardown(t, trx)

	id := scaffold(t, ex)

	err := ex.InsertAsset(wsvrecord.Asset{Name: "coin", Domain: "nowhere", Precision: 2})
	assert.Equal(t, fault.ErrDomainNotFound, err, "asset in unknown domain must be refused")

	assert.Nil(t, ex.InsertAsset(wsvrecord.Asset{Name: "coin", Domain: "wonderland", Precision: 2}), "InsertAsset failed")

	err = ex.InsertAsset(wsvrecord.Asset{Name: "coin", Domain: "wonderland", Precision: 2})
	assert.Equal(t, fault.ErrAssetAlreadyExists, err, "duplicate asset must be refused")

	precision, err := ex.AssetPrecision("coin#wonderland")
	assert.Nil(t, err, "AssetPrecision failed")
	assert.Equal(t, uint8(2), precision, "precision mismatch")

	// balances respect the recorded precision
	assert.Nil(t, ex.UpsertAccountAsset(id, "coin#wonderland", "100.25"), "UpsertAccountAsset failed")
	assert.Nil(t, ex.UpsertAccountAsset(id, "coin#wonderland", "99"), "overwrite failed")

	err = ex.UpsertAccountAsset(id, "coin#wonderland", "1.234")
	assert.Equal(t, fault.ErrInvalidAmount, err, "excess precision must be refused")

	err = ex.UpsertAccountAsset(id, "token#wonderland", "1")
	assert.Equal(t, fault.ErrAssetNotFound, err, "unknown asset must be refused")
}

func TestSignatories(t *testing.T) {
	ex, trx := setup(t)
	defer teardown(t, trx)

	id := scaffold(t, ex)

	assert.Nil(t, ex.InsertSignatory(id, "AB12"), "InsertSignatory failed")

	// the stored form is case folded
	err := ex.InsertSignatory(id, "ab12")
	assert.Equal(t, fault.ErrSignatoryAlreadyExists, err, "duplicate signatory must be refused")

	assert.Nil(t, ex.DeleteSignatory(id, "AB12"), "DeleteSignatory failed")

	err = ex.DeleteSignatory(id, "ab12")
	assert.Equal(t, fault.ErrSignatoryNotFound, err, "missing signatory must be refused")

	err = ex.InsertSignatory(id, "not-hex")
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "malformed key must be refused")
}

func TestPeers(t *testing.T) {
	ex, trx := setup(t)
	defer teardown(t, trx)

	alpha := wsvrecord.Peer{
		PublicKey:      "AA11",
		Address:        "alpha.example.com:10001",
		TLSCertificate: "pem-alpha",
	}
	assert.Nil(t, ex.InsertPeer(alpha), "InsertPeer failed")

	// the same key in either class is a duplicate
	err := ex.InsertPeer(wsvrecord.Peer{PublicKey: "aa11", Address: "other:1", IsSyncing: true})
	assert.Equal(t, fault.ErrPeerAlreadyExists, err, "duplicate peer must be refused")

	gamma := wsvrecord.Peer{PublicKey: "cc33", Address: "gamma.example.com:10001", IsSyncing: true}
	assert.Nil(t, ex.InsertPeer(gamma), "syncing InsertPeer failed")

	require.Nil(t, trx.Commit(), "Commit failed")

	peers, err := wsvquery.Peers(false)
	assert.Nil(t, err, "Peers failed")
	require.Equal(t, 1, len(peers), "peer count mismatch")
	assert.Equal(t, wsvrecord.PublicKey("aa11"), peers[0].PublicKey, "stored key not folded")
	assert.Equal(t, "pem-alpha", peers[0].TLSCertificate, "TLS certificate lost")

	syncing, err := wsvquery.Peers(true)
	assert.Nil(t, err, "Peers failed")
	assert.Equal(t, 1, len(syncing), "syncing peer count mismatch")

	// delete removes the peer from whichever class holds it
	trx2, err := storage.NewDBTransaction()
	require.Nil(t, err, "second Begin failed")
	ex2 := wsvcommand.New(trx2)

	assert.Nil(t, ex2.DeletePeer("AA11"), "DeletePeer failed")
	assert.Nil(t, ex2.DeletePeer("dd44"), "unknown DeletePeer must not fail")
	require.Nil(t, trx2.Commit(), "second Commit failed")

	peers, err = wsvquery.Peers(false)
	assert.Nil(t, err, "Peers failed")
	assert.Equal(t, 0, len(peers), "peer not removed")
}

func TestSetTopBlockInfo(t *testing.T) {
	ex, trx := setup(t)
	defer teardown(t, trx)

	info := wsvrecord.TopBlockInfo{
		Height: 9,
		Hash:   blockdigest.NewDigest([]byte("nine")),
	}
	assert.Nil(t, ex.SetTopBlockInfo(info), "SetTopBlockInfo failed")
	require.Nil(t, trx.Commit(), "Commit failed")

	stored, err := wsvquery.TopBlockInfo()
	assert.Nil(t, err, "TopBlockInfo failed")
	assert.Equal(t, info, stored, "top block info mismatch")
}
