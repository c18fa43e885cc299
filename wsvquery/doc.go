// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package wsvquery - read committed world state
//
// these reads bypass any open transaction: they see only durable
// state, which is exactly what a post-commit ledger snapshot and a
// synchronisation start point need
package wsvquery
