// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package synchroniser - bring the local chain up to the network
//
// consensus hands over either a locally built block that already won
// its round or a notice that the network is ahead. In the second case
// the missing run of blocks is streamed from candidate peers one
// after another, each block validated and committed through its own
// mutable storage before the next is fetched.
package synchroniser
