// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package blockdigest - implementation of block hashing
//
// using SHA3-256 over the packed block bytes
package blockdigest
