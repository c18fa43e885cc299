// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package wsvcommand - single mutations of the world state view
//
// an Executor is bound to one open storage transaction and translates
// entity operations into batched key writes. Existence preconditions
// are checked against the transaction view, so a command sees the
// effects of earlier commands in the same block.
package wsvcommand
