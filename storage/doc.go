// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk world state view
//
// maintain separate pools of records in key->value form
//
// This maintains two LevelDB databases split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++  = concatenation of byte data
// 3. the composite part after the prefix is built by the wsvkey codec
//
// World state (wsv database):
//
//	r ++ role                          - role permission bit-string
//	D ++ domain                        - default role
//	a ++ domain/name                   - account quorum (decimal)
//	R ++ domain/name/role              - account role (presence, empty data)
//	d ++ domain/name/writer/key        - account detail value
//	g ++ domain/name/grantee           - grantable permission bit-string
//	S ++ domain/name/pubkey            - signatory (presence, empty data)
//	x ++ domain/name                   - asset precision (decimal)
//	X ++ domain/name/asset             - account asset balance (decimal string)
//	M ++ pubkey                        - peer address
//	N ++ pubkey                        - peer TLS certificate
//	m ++ pubkey                        - syncing peer address
//	n ++ pubkey                        - syncing peer TLS certificate
//	i ++ key                           - settings value
//	Q ++ "top_block"                   - height # hex hash of last commit
//
// Blocks (blocks database):
//
//	B ++ height (%016x)                - packed block
//
// Testing:
//
//	Z ++ key                           - testing data
package storage
