// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvrecord

// Peer - one node of the network as recorded in the world state view
//
// the TLS certificate is optional and its presence is independent of
// the peer record itself
type Peer struct {
	PublicKey      PublicKey
	Address        string
	TLSCertificate string
	IsSyncing      bool
}

// Validate - check the peer fields; the public key must normalise
func (p Peer) Validate() error {
	if _, err := p.PublicKey.Normalised(); nil != err {
		return err
	}
	return ValidateIdentifier(p.Address)
}
