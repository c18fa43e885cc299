// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package mutable - apply-then-commit pipeline for candidate blocks
//
// a block is never half committed: its commands are staged into the
// single database transaction and become durable only when the whole
// block went through. The top block marker, the stored block and the
// world state always advance together.
package mutable
