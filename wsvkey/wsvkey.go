// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvkey

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/hyperledger/iroha-sub006/fault"
	"github.com/hyperledger/iroha-sub006/wsvrecord"
)

// Codec - builds and splits the composite part of storage keys
//
// the namespace tag itself is the storage pool prefix; the codec only
// deals with the identifier fields that follow it
type Codec struct {
	Delimiter byte
}

// DefaultCodec - the layout used by every production database
var DefaultCodec = Codec{Delimiter: '/'}

// number of hex digits in a height key; fixed width so that the
// lexicographic order of keys equals the numeric order of heights
const heightKeyLength = 16

// Join - concatenate identifier fields with the delimiter
//
// every field must be non-empty and must not contain the delimiter,
// otherwise the encoding would not split back unambiguously
func (c Codec) Join(fields ...string) ([]byte, error) {
	if 0 == len(fields) {
		return nil, fault.ErrInvalidIdentifier
	}
	size := len(fields) - 1
	for _, field := range fields {
		if "" == field {
			return nil, fault.ErrInvalidIdentifier
		}
		if bytes.IndexByte([]byte(field), c.Delimiter) >= 0 {
			return nil, fault.ErrKeyDelimiterInField
		}
		size += len(field)
	}

	key := make([]byte, 0, size)
	for i, field := range fields {
		if i > 0 {
			key = append(key, c.Delimiter)
		}
		key = append(key, field...)
	}
	return key, nil
}

// Split - break a key into exactly count fields
//
// a malformed or foreign-format key yields an error, never a wrong
// entity
func (c Codec) Split(key []byte, count int) ([]string, error) {
	parts := bytes.Split(key, []byte{c.Delimiter})
	if len(parts) != count {
		return nil, fault.ErrCannotDecodeKey
	}
	fields := make([]string, count)
	for i, part := range parts {
		if 0 == len(part) {
			return nil, fault.ErrCannotDecodeKey
		}
		fields[i] = string(part)
	}
	return fields, nil
}

// RoleKey - key within the roles pool
func (c Codec) RoleKey(roleName string) ([]byte, error) {
	return c.Join(roleName)
}

// DecodeRoleKey - inverse of RoleKey
func (c Codec) DecodeRoleKey(key []byte) (string, error) {
	fields, err := c.Split(key, 1)
	if nil != err {
		return "", err
	}
	return fields[0], nil
}

// DomainKey - key within the domains pool
func (c Codec) DomainKey(domainID string) ([]byte, error) {
	return c.Join(domainID)
}

// AccountKey - key within the accounts pool: domain/name
func (c Codec) AccountKey(id wsvrecord.AccountID) ([]byte, error) {
	name, domain, err := id.Split()
	if nil != err {
		return nil, err
	}
	return c.Join(domain, name)
}

// DecodeAccountKey - inverse of AccountKey
func (c Codec) DecodeAccountKey(key []byte) (wsvrecord.AccountID, error) {
	fields, err := c.Split(key, 2)
	if nil != err {
		return "", err
	}
	return wsvrecord.NewAccountID(fields[1], fields[0])
}

// AccountRoleKey - key within the account roles pool: domain/name/role
func (c Codec) AccountRoleKey(id wsvrecord.AccountID, roleName string) ([]byte, error) {
	name, domain, err := id.Split()
	if nil != err {
		return nil, err
	}
	return c.Join(domain, name, roleName)
}

// GrantableKey - key within the grantable permissions pool:
// grantor-domain/grantor-name/grantee-id
func (c Codec) GrantableKey(grantor wsvrecord.AccountID, grantee wsvrecord.AccountID) ([]byte, error) {
	name, domain, err := grantor.Split()
	if nil != err {
		return nil, err
	}
	if _, _, err := grantee.Split(); nil != err {
		return nil, err
	}
	return c.Join(domain, name, string(grantee))
}

// SignatoryKey - key within the signatories pool: domain/name/pubkey
func (c Codec) SignatoryKey(id wsvrecord.AccountID, publicKey wsvrecord.PublicKey) ([]byte, error) {
	name, domain, err := id.Split()
	if nil != err {
		return nil, err
	}
	normalised, err := publicKey.Normalised()
	if nil != err {
		return nil, err
	}
	return c.Join(domain, name, string(normalised))
}

// AccountDetailKey - key within the account details pool:
// domain/name/writer-id/detail-key
func (c Codec) AccountDetailKey(id wsvrecord.AccountID, writer wsvrecord.AccountID, detailKey string) ([]byte, error) {
	name, domain, err := id.Split()
	if nil != err {
		return nil, err
	}
	if _, _, err := writer.Split(); nil != err {
		return nil, err
	}
	return c.Join(domain, name, string(writer), detailKey)
}

// AssetKey - key within the assets pool: domain/name
func (c Codec) AssetKey(id wsvrecord.AssetID) ([]byte, error) {
	name, domain, err := id.Split()
	if nil != err {
		return nil, err
	}
	return c.Join(domain, name)
}

// AccountAssetKey - key within the account assets pool:
// domain/name/asset-id
func (c Codec) AccountAssetKey(id wsvrecord.AccountID, asset wsvrecord.AssetID) ([]byte, error) {
	name, domain, err := id.Split()
	if nil != err {
		return nil, err
	}
	if _, _, err := asset.Split(); nil != err {
		return nil, err
	}
	return c.Join(domain, name, string(asset))
}

// PeerKey - key within a peer address or certificate pool
func (c Codec) PeerKey(publicKey wsvrecord.PublicKey) ([]byte, error) {
	normalised, err := publicKey.Normalised()
	if nil != err {
		return nil, err
	}
	return c.Join(string(normalised))
}

// DecodePeerKey - inverse of PeerKey
func (c Codec) DecodePeerKey(key []byte) (wsvrecord.PublicKey, error) {
	fields, err := c.Split(key, 1)
	if nil != err {
		return "", err
	}
	publicKey, err := wsvrecord.PublicKey(fields[0]).Normalised()
	if nil != err {
		return "", fault.ErrCannotDecodeKey
	}
	return publicKey, nil
}

// SettingKey - key within the settings pool
func (c Codec) SettingKey(name string) ([]byte, error) {
	return c.Join(name)
}

// TopBlockKey - the singleton record of the most recent commit
func (c Codec) TopBlockKey() []byte {
	return []byte("top_block")
}

// HeightKey - fixed width hexadecimal block height
func (c Codec) HeightKey(height uint64) []byte {
	return []byte(fmt.Sprintf("%016x", height))
}

// DecodeHeightKey - inverse of HeightKey
func (c Codec) DecodeHeightKey(key []byte) (uint64, error) {
	if heightKeyLength != len(key) {
		return 0, fault.ErrCannotDecodeKey
	}
	height, err := strconv.ParseUint(string(key), 16, 64)
	if nil != err {
		return 0, fault.ErrCannotDecodeKey
	}
	return height, nil
}
