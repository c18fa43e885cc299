// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/iroha-sub006/wsvkey"
	"github.com/hyperledger/iroha-sub006/wsvrecord"
)

var codec = wsvkey.DefaultCodec

// decode(encode(id)) == id for all valid account identities
func TestAccountKeyRoundTrip(t *testing.T) {
	ids := []wsvrecord.AccountID{
		"admin@test",
		"a@d",
		"some_user@soramitsu.co.jp",
	}

	for _, id := range ids {
		key, err := codec.AccountKey(id)
		require.NoError(t, err)

		back, err := codec.DecodeAccountKey(key)
		require.NoError(t, err)
		assert.Equal(t, id, back)
	}
}

func TestJoinRejectsDelimiterAndEmptyFields(t *testing.T) {
	_, err := codec.Join("domain", "")
	assert.Error(t, err)

	_, err = codec.Join("dom/ain", "name")
	assert.Error(t, err)

	_, err = codec.Join()
	assert.Error(t, err)
}

// a malformed or foreign key must never decode to a wrong entity
func TestDecodeRejectsForeignKeys(t *testing.T) {
	_, err := codec.DecodeAccountKey([]byte("only-one-field"))
	assert.Error(t, err)

	_, err = codec.DecodeAccountKey([]byte("a/b/c"))
	assert.Error(t, err)

	_, err = codec.DecodeAccountKey([]byte("domain/"))
	assert.Error(t, err)

	_, err = codec.DecodePeerKey([]byte("not-a-hex-key"))
	assert.Error(t, err)
}

func TestCompositeKeys(t *testing.T) {
	key, err := codec.AccountRoleKey("alice@wallet", "user")
	require.NoError(t, err)
	assert.Equal(t, []byte("wallet/alice/user"), key)

	key, err = codec.GrantableKey("alice@wallet", "bob@wallet")
	require.NoError(t, err)
	assert.Equal(t, []byte("wallet/alice/bob@wallet"), key)

	key, err = codec.AccountDetailKey("alice@wallet", "bob@wallet", "age")
	require.NoError(t, err)
	assert.Equal(t, []byte("wallet/alice/bob@wallet/age"), key)

	key, err = codec.AccountAssetKey("alice@wallet", "coin#wallet")
	require.NoError(t, err)
	assert.Equal(t, []byte("wallet/alice/coin#wallet"), key)

	_, err = codec.AccountRoleKey("not-an-account-id", "user")
	assert.Error(t, err)
}

// peer keys are normalised to lower case
func TestPeerKeyNormalisation(t *testing.T) {
	key, err := codec.PeerKey("A1B2C3")
	require.NoError(t, err)
	assert.Equal(t, []byte("a1b2c3"), key)

	back, err := codec.DecodePeerKey(key)
	require.NoError(t, err)
	assert.Equal(t, wsvrecord.PublicKey("a1b2c3"), back)
}

// height keys order lexically the same as numerically
func TestHeightKeyOrderAndRoundTrip(t *testing.T) {
	previous := codec.HeightKey(0)
	for _, height := range []uint64{1, 2, 9, 10, 255, 256, 1 << 32} {
		key := codec.HeightKey(height)
		assert.True(t, string(previous) < string(key),
			"key for %d does not sort after its predecessor", height)

		back, err := codec.DecodeHeightKey(key)
		require.NoError(t, err)
		assert.Equal(t, height, back)

		previous = key
	}

	_, err := codec.DecodeHeightKey([]byte("123"))
	assert.Error(t, err)

	_, err = codec.DecodeHeightKey([]byte("zzzzzzzzzzzzzzzz"))
	assert.Error(t, err)
}
