// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvrecord

import (
	"strings"

	"github.com/hyperledger/iroha-sub006/fault"
)

// Asset - a transferable value type within one domain
type Asset struct {
	Name      string
	Domain    string
	Precision uint8 // number of decimal digits after the point
}

// AccountAsset - the balance one account holds of one asset
//
// the balance is kept as a fixed precision decimal string, never as a
// binary float
type AccountAsset struct {
	Account AccountID
	Asset   AssetID
	Balance string
}

// ID - the composite identity of the asset
func (a Asset) ID() (AssetID, error) {
	return NewAssetID(a.Name, a.Domain)
}

// ValidateAmount - check a decimal balance string against a precision
//
// accepted form: digits, optionally followed by '.' and at most
// precision fractional digits; an empty string or a bare '.' is
// rejected
func ValidateAmount(amount string, precision uint8) error {
	if "" == amount {
		return fault.ErrInvalidAmount
	}
	whole := amount
	fraction := ""
	if i := strings.IndexByte(amount, '.'); i >= 0 {
		whole = amount[:i]
		fraction = amount[i+1:]
		if "" == fraction {
			return fault.ErrInvalidAmount
		}
	}
	if "" == whole {
		return fault.ErrInvalidAmount
	}
	if len(fraction) > int(precision) {
		return fault.ErrInvalidAmount
	}
	for _, c := range whole + fraction {
		if c < '0' || c > '9' {
			return fault.ErrInvalidAmount
		}
	}
	return nil
}
