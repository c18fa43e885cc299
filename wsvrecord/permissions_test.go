// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperledger/iroha-sub006/wsvrecord"
)

// setting a bit twice and unsetting an absent bit must be no-ops
func TestGrantableIdempotence(t *testing.T) {
	set := wsvrecord.GrantablePermissionSet{}

	assert.NoError(t, set.Set(wsvrecord.CanSetMyQuorum))
	once := set.Bitstring()

	assert.NoError(t, set.Set(wsvrecord.CanSetMyQuorum))
	assert.Equal(t, once, set.Bitstring(), "setting a set bit changed the set")

	assert.NoError(t, set.Unset(wsvrecord.CanTransferMyAssets))
	assert.Equal(t, once, set.Bitstring(), "unsetting an absent bit changed the set")

	assert.NoError(t, set.Unset(wsvrecord.CanSetMyQuorum))
	assert.Equal(t, wsvrecord.GrantablePermissionSet{}.Bitstring(), set.Bitstring())
}

func TestRolePermissionSetBitstringRoundTrip(t *testing.T) {
	set := wsvrecord.RolePermissionSet{}
	assert.NoError(t, set.Set(wsvrecord.CanCreateRole))
	assert.NoError(t, set.Set(wsvrecord.CanAddPeer))
	assert.NoError(t, set.Set(wsvrecord.CanRoot))

	text := set.Bitstring()
	assert.Len(t, text, int(wsvrecord.RolePermissionCount))

	back, err := wsvrecord.ParseRolePermissionSet(text)
	assert.NoError(t, err)
	assert.Equal(t, set, back)

	assert.True(t, back.IsSet(wsvrecord.CanCreateRole))
	assert.True(t, back.IsSet(wsvrecord.CanAddPeer))
	assert.True(t, back.IsSet(wsvrecord.CanRoot))
	assert.False(t, back.IsSet(wsvrecord.CanRemovePeer))
}

func TestParseBitstringRejectsMalformedInput(t *testing.T) {
	_, err := wsvrecord.ParseRolePermissionSet("01")
	assert.Error(t, err, "wrong width accepted")

	bad := make([]byte, int(wsvrecord.RolePermissionCount))
	for i := range bad {
		bad[i] = '0'
	}
	bad[3] = 'x'
	_, err = wsvrecord.ParseRolePermissionSet(string(bad))
	assert.Error(t, err, "non-binary character accepted")
}

func TestPermissionOutOfRange(t *testing.T) {
	set := wsvrecord.RolePermissionSet{}
	assert.Error(t, set.Set(wsvrecord.RolePermissionCount))
	assert.Error(t, set.Unset(wsvrecord.RolePermissionCount+1))
	assert.False(t, set.IsSet(wsvrecord.RolePermissionCount))
}
