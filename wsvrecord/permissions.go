// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvrecord

import (
	"github.com/hyperledger/iroha-sub006/fault"
)

// RolePermission - a single permission attachable to a named role
type RolePermission uint

// role permissions - the order is the wire order of the bit-string,
// so new permissions are only ever appended
const (
	CanAppendRole RolePermission = iota
	CanCreateRole
	CanDetachRole
	CanAddAssetQuantity
	CanSubtractAssetQuantity
	CanAddPeer
	CanRemovePeer
	CanAddSignatory
	CanRemoveSignatory
	CanSetQuorum
	CanCreateAccount
	CanSetDetail
	CanCreateAsset
	CanTransferAsset
	CanReceiveAsset
	CanCreateDomain
	CanReadAssets
	CanGetRoles
	CanGetMyAccount
	CanGetAllAccounts
	CanGetDomainAccounts
	CanGetMySignatories
	CanGetAllSignatories
	CanGetDomainSignatories
	CanGetMyAccountAssets
	CanGetAllAccountAssets
	CanGetDomainAccountAssets
	CanGetMyAccountDetail
	CanGetAllAccountDetail
	CanGetDomainAccountDetail
	CanGetMyAccountTransactions
	CanGetAllAccountTransactions
	CanGetDomainAccountTransactions
	CanGetMyAccountAssetTransactions
	CanGetAllAccountAssetTransactions
	CanGetDomainAccountAssetTransactions
	CanGetMyTransactions
	CanGetAllTransactions
	CanGetBlocks
	CanGetPeers
	CanGrantCanAddMySignatory
	CanGrantCanRemoveMySignatory
	CanGrantCanSetMyQuorum
	CanGrantCanSetMyAccountDetail
	CanGrantCanTransferMyAssets
	CanAddDomainAssetQuantity
	CanSubtractDomainAssetQuantity
	CanRoot

	// RolePermissionCount - the width of the role bit-string
	RolePermissionCount
)

// GrantablePermission - a permission one account grants to another
type GrantablePermission uint

// grantable permissions - wire order of the bit-string
const (
	CanAddMySignatory GrantablePermission = iota
	CanRemoveMySignatory
	CanSetMyQuorum
	CanSetMyAccountDetail
	CanTransferMyAssets

	// GrantablePermissionCount - the width of the grantable bit-string
	GrantablePermissionCount
)

const (
	roleWords      = (int(RolePermissionCount) + 63) / 64
	grantableWords = (int(GrantablePermissionCount) + 63) / 64
)

// RolePermissionSet - fixed width bitset of role permissions
type RolePermissionSet [roleWords]uint64

// GrantablePermissionSet - fixed width bitset of grantable permissions
type GrantablePermissionSet [grantableWords]uint64

// Set - turn a permission bit on; setting an already set bit is a no-op
func (s *RolePermissionSet) Set(p RolePermission) error {
	if p >= RolePermissionCount {
		return fault.ErrInvalidPermission
	}
	s[p/64] |= 1 << (uint(p) % 64)
	return nil
}

// Unset - turn a permission bit off; unsetting an absent bit is a no-op
func (s *RolePermissionSet) Unset(p RolePermission) error {
	if p >= RolePermissionCount {
		return fault.ErrInvalidPermission
	}
	s[p/64] &^= 1 << (uint(p) % 64)
	return nil
}

// IsSet - test one permission bit
func (s RolePermissionSet) IsSet(p RolePermission) bool {
	if p >= RolePermissionCount {
		return false
	}
	return 0 != s[p/64]&(1<<(uint(p)%64))
}

// Bitstring - serialise to a constant width '0'/'1' string
func (s RolePermissionSet) Bitstring() string {
	return bitstring(s[:], int(RolePermissionCount))
}

// ParseRolePermissionSet - the inverse of Bitstring
func ParseRolePermissionSet(text string) (RolePermissionSet, error) {
	set := RolePermissionSet{}
	err := parseBitstring(set[:], text, int(RolePermissionCount))
	return set, err
}

// Set - turn a permission bit on; setting an already set bit is a no-op
func (s *GrantablePermissionSet) Set(p GrantablePermission) error {
	if p >= GrantablePermissionCount {
		return fault.ErrInvalidPermission
	}
	s[p/64] |= 1 << (uint(p) % 64)
	return nil
}

// Unset - turn a permission bit off; unsetting an absent bit is a no-op
func (s *GrantablePermissionSet) Unset(p GrantablePermission) error {
	if p >= GrantablePermissionCount {
		return fault.ErrInvalidPermission
	}
	s[p/64] &^= 1 << (uint(p) % 64)
	return nil
}

// IsSet - test one permission bit
func (s GrantablePermissionSet) IsSet(p GrantablePermission) bool {
	if p >= GrantablePermissionCount {
		return false
	}
	return 0 != s[p/64]&(1<<(uint(p)%64))
}

// Bitstring - serialise to a constant width '0'/'1' string
func (s GrantablePermissionSet) Bitstring() string {
	return bitstring(s[:], int(GrantablePermissionCount))
}

// ParseGrantablePermissionSet - the inverse of Bitstring
func ParseGrantablePermissionSet(text string) (GrantablePermissionSet, error) {
	set := GrantablePermissionSet{}
	err := parseBitstring(set[:], text, int(GrantablePermissionCount))
	return set, err
}

// character i of the string is bit i of the set
func bitstring(words []uint64, width int) string {
	buffer := make([]byte, width)
	for i := 0; i < width; i += 1 {
		if 0 != words[i/64]&(1<<(uint(i)%64)) {
			buffer[i] = '1'
		} else {
			buffer[i] = '0'
		}
	}
	return string(buffer)
}

func parseBitstring(words []uint64, text string, width int) error {
	if len(text) != width {
		return fault.ErrInvalidPermission
	}
	for i := 0; i < width; i += 1 {
		switch text[i] {
		case '1':
			words[i/64] |= 1 << (uint(i) % 64)
		case '0':
		default:
			return fault.ErrInvalidPermission
		}
	}
	return nil
}
