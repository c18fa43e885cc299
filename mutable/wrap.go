// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package mutable

import (
	"fmt"

	"github.com/hyperledger/iroha-sub006/blockrecord"
	"github.com/hyperledger/iroha-sub006/fault"
	"github.com/hyperledger/iroha-sub006/wsvrecord"
)

// wrapCommand - add command identifying context without losing the
// error class, so callers can still match on predicates
func wrapCommand(command blockrecord.Command, creator wsvrecord.AccountID, err error) error {
	message := fmt.Sprintf("command %s creator=%s: %s", command, creator, err)

	switch e := err.(type) {
	case fault.CorruptionError:
		return fault.CorruptionError(message)
	case fault.DBError:
		return fault.DBError{Code: e.Code, Description: message}
	case fault.ExistsError:
		return fault.ExistsError(message)
	case fault.InvalidError:
		return fault.InvalidError(message)
	case fault.NotFoundError:
		return fault.NotFoundError(message)
	case fault.ValidationError:
		return fault.ValidationError(message)
	default:
		return fault.ProcessError(message)
	}
}
