// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvrecord

import (
	"github.com/hyperledger/iroha-sub006/fault"
)

// Account - an account within one domain
type Account struct {
	Name   string
	Domain string
	Quorum uint32
}

// Domain - a namespace of accounts and assets
type Domain struct {
	ID          string
	DefaultRole string
}

// ID - the composite identity of the account
func (a Account) ID() (AccountID, error) {
	return NewAccountID(a.Name, a.Domain)
}

// Validate - check the account fields
func (a Account) Validate() error {
	if err := ValidateIdentifier(a.Name); nil != err {
		return err
	}
	if err := ValidateIdentifier(a.Domain); nil != err {
		return err
	}
	if a.Quorum < 1 {
		return fault.ErrInvalidIdentifier
	}
	return nil
}

// Validate - check the domain fields
func (d Domain) Validate() error {
	if err := ValidateIdentifier(d.ID); nil != err {
		return err
	}
	return ValidateIdentifier(d.DefaultRole)
}
