// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package blockstore - keep the chain of packed blocks
//
// a Store is append-only and keyed by height: the memory backend
// holds candidate chains during synchronisation, the file backend
// writes one block file per height, the leveldb backend shares the
// node's block database. Which one a node runs with is purely a
// configuration choice, the commit pipeline sees only the Store
// interface.
package blockstore
