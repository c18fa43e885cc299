// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package datamodel

import (
	"sync"

	"github.com/hyperledger/iroha-sub006/fault"
	"github.com/hyperledger/iroha-sub006/wsvrecord"
)

// Call - one invocation of an application extension
type Call struct {
	Caller  wsvrecord.AccountID
	Target  string
	Payload []byte
}

// DataModel - an application extension attached to the commit pipeline
//
// Execute may stage side effects only; they become permanent at
// CommitBlock and must be discarded wholesale at RollbackBlock. The
// transaction-level hooks bracket the commands of one ledger
// transaction inside a block.
type DataModel interface {
	Execute(call Call) error
	CommitTransaction()
	CommitBlock()
	RollbackTransaction()
	RollbackBlock()
}

// Registry - fan-out of calls to named data models
type Registry struct {
	sync.RWMutex
	models map[string]DataModel
}

// NewRegistry - an empty registry
func NewRegistry() *Registry {
	return &Registry{
		models: map[string]DataModel{},
	}
}

// Register - attach a data model under a target name
//
// re-registering a name replaces the previous model
func (r *Registry) Register(target string, model DataModel) {
	r.Lock()
	r.models[target] = model
	r.Unlock()
}

// Execute - route a call to its target
//
// a failing model never leaks a foreign error type into the pipeline
func (r *Registry) Execute(call Call) error {
	r.RLock()
	model, ok := r.models[call.Target]
	r.RUnlock()

	if !ok {
		return fault.ErrDataModelNotFound
	}

	err := model.Execute(call)
	if nil == err {
		return nil
	}
	if _, ok := err.(fault.ProcessError); ok {
		return err
	}
	return fault.ProcessError("data model " + call.Target + ": " + err.Error())
}

// CommitTransaction - transaction boundary reached on all models
func (r *Registry) CommitTransaction() { r.each(DataModel.CommitTransaction) }

// CommitBlock - block committed on all models
func (r *Registry) CommitBlock() { r.each(DataModel.CommitBlock) }

// RollbackTransaction - current transaction abandoned on all models
func (r *Registry) RollbackTransaction() { r.each(DataModel.RollbackTransaction) }

// RollbackBlock - whole block abandoned on all models
func (r *Registry) RollbackBlock() { r.each(DataModel.RollbackBlock) }

func (r *Registry) each(f func(DataModel)) {
	r.RLock()
	defer r.RUnlock()
	for _, model := range r.models {
		f(model)
	}
}
