// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package blockrecord - the immutable block and its commands
//
// a block is identified by a 1-based height and carries an ordered
// list of transactions; each transaction carries an ordered list of
// world state view commands executed on the creator's behalf
//
// blocks are persisted in canonical msgpack so that the digest of the
// packed bytes is stable across nodes
package blockrecord
