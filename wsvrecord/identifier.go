// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvrecord

import (
	"encoding/hex"
	"strings"

	"github.com/hyperledger/iroha-sub006/fault"
)

// identifier delimiters; "/" is additionally reserved by the key codec
const (
	accountDelimiter = "@"
	assetDelimiter   = "#"
	keyDelimiter     = "/"
)

// AccountID - composite account identity: name@domain
type AccountID string

// AssetID - composite asset identity: name#domain
type AssetID string

// PublicKey - peer or signatory key as a hex string
type PublicKey string

// ValidateIdentifier - check a single identifier field
//
// an identifier must be non-empty and must not contain any of the
// delimiters used by the composite identifier forms or the key codec
func ValidateIdentifier(s string) error {
	if "" == s {
		return fault.ErrInvalidIdentifier
	}
	if strings.ContainsAny(s, accountDelimiter+assetDelimiter+keyDelimiter) {
		return fault.ErrInvalidIdentifier
	}
	return nil
}

// NewAccountID - build a composite account id from its parts
func NewAccountID(name string, domain string) (AccountID, error) {
	if err := ValidateIdentifier(name); nil != err {
		return "", err
	}
	if err := ValidateIdentifier(domain); nil != err {
		return "", err
	}
	return AccountID(name + accountDelimiter + domain), nil
}

// Split - break a composite account id back into its parts
func (id AccountID) Split() (string, string, error) {
	parts := strings.Split(string(id), accountDelimiter)
	if 2 != len(parts) {
		return "", "", fault.ErrInvalidIdentifier
	}
	if err := ValidateIdentifier(parts[0]); nil != err {
		return "", "", err
	}
	if err := ValidateIdentifier(parts[1]); nil != err {
		return "", "", err
	}
	return parts[0], parts[1], nil
}

// NewAssetID - build a composite asset id from its parts
func NewAssetID(name string, domain string) (AssetID, error) {
	if err := ValidateIdentifier(name); nil != err {
		return "", err
	}
	if err := ValidateIdentifier(domain); nil != err {
		return "", err
	}
	return AssetID(name + assetDelimiter + domain), nil
}

// Split - break a composite asset id back into its parts
func (id AssetID) Split() (string, string, error) {
	parts := strings.Split(string(id), assetDelimiter)
	if 2 != len(parts) {
		return "", "", fault.ErrInvalidIdentifier
	}
	if err := ValidateIdentifier(parts[0]); nil != err {
		return "", "", err
	}
	if err := ValidateIdentifier(parts[1]); nil != err {
		return "", "", err
	}
	return parts[0], parts[1], nil
}

// Normalised - lower-cased, hex validated copy of a public key
//
// storage always holds the normalised form so that lookups are
// case insensitive
func (pk PublicKey) Normalised() (PublicKey, error) {
	if "" == pk {
		return "", fault.ErrInvalidPublicKey
	}
	lower := strings.ToLower(string(pk))
	if _, err := hex.DecodeString(lower); nil != err {
		return "", fault.ErrInvalidPublicKey
	}
	return PublicKey(lower), nil
}
