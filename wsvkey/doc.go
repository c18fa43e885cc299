// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package wsvkey - deterministic key encoding for world state records
//
// every entity lives in its own storage pool; the pool supplies the
// single byte namespace tag and this codec supplies the composite
// identifier part of the key
//
// layout within each pool (++ = delimiter "/"):
//
//	roles:          role
//	domains:        domain                     data: default role
//	accounts:       domain ++ name             data: quorum (decimal)
//	account roles:  domain ++ name ++ role     data: empty
//	grantable:      domain ++ name ++ grantee  data: permission bit-string
//	signatories:    domain ++ name ++ pubkey   data: empty
//	details:        domain ++ name ++ writer ++ key
//	assets:         domain ++ name             data: precision (decimal)
//	account assets: domain ++ name ++ asset id data: decimal balance
//	peers:          pubkey                     data: address
//	peer tls:       pubkey                     data: certificate
//	settings:       key                        data: value
//	top block:      "top_block"                data: height # hex hash
//	blocks:         height as %016x            data: packed block
//
// encoding is injective: identifier fields never contain the
// delimiter, so decoding splits back unambiguously or fails with an
// explicit error
package wsvkey
