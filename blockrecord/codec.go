// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/algorand/go-codec/codec"

	"github.com/hyperledger/iroha-sub006/blockdigest"
)

// CodecHandle - canonical msgpack settings, paranoid about decoding
// errors so that a corrupted stored blob never decodes silently
var CodecHandle *codec.MsgpackHandle

func init() {
	CodecHandle = new(codec.MsgpackHandle)
	CodecHandle.ErrorIfNoField = true
	CodecHandle.ErrorIfNoArrayExpand = true
	CodecHandle.Canonical = true
	CodecHandle.WriteExt = true
	CodecHandle.PositiveIntUnsigned = true
}

// Pack - serialise the block to canonical msgpack
func (b *Block) Pack() ([]byte, error) {
	var buffer []byte
	err := codec.NewEncoderBytes(&buffer, CodecHandle).Encode(b)
	if nil != err {
		return nil, err
	}
	return buffer, nil
}

// Unpack - decode a packed block; any trailing or malformed data is an error
func Unpack(buffer []byte) (*Block, error) {
	block := &Block{}
	err := codec.NewDecoderBytes(buffer, CodecHandle).Decode(block)
	if nil != err {
		return nil, err
	}
	return block, nil
}

// Digest - hash of the packed block bytes
func (b *Block) Digest() (blockdigest.Digest, error) {
	packed, err := b.Pack()
	if nil != err {
		return blockdigest.Digest{}, err
	}
	return blockdigest.NewDigest(packed), nil
}
