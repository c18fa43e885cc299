// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package wsvrecord - typed records of the world state view
//
// accounts, domains, roles, assets, peers and the permission bitsets
// attached to them, together with the composite identifier forms:
//
//	account id = name@domain
//	asset id   = name#domain
//
// permission sets are fixed width bitsets serialised as '0'/'1'
// bit-strings of constant length so that stored values never change
// width when new bits are toggled
package wsvrecord
