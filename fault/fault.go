// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

import "fmt"

// error base
type GenericError string

// to allow for different classes of errors
type CorruptionError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ValidationError GenericError

// DBError - underlying store failure with a driver-level code
type DBError struct {
	Code        int
	Description string
}

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyExists    = ExistsError("account already exists")
	ErrAccountNotFound         = NotFoundError("account not found")
	ErrAlreadyInitialised      = ProcessError("already initialised")
	ErrAssetAlreadyExists      = ExistsError("asset already exists")
	ErrAssetNotFound           = NotFoundError("asset not found")
	ErrBlockAlreadyExists      = ExistsError("block already exists")
	ErrBlockValidationFailed   = ValidationError("block validation failed")
	ErrCannotDecodeKey         = InvalidError("key cannot be decoded")
	ErrCorruptedStore          = CorruptionError("store is corrupted")
	ErrDataModelNotFound       = NotFoundError("data model not found")
	ErrDomainAlreadyExists     = ExistsError("domain already exists")
	ErrDomainNotFound          = NotFoundError("domain not found")
	ErrEmptyCommand            = InvalidError("command is empty")
	ErrEmptyTransaction        = ProcessError("transaction has nothing to commit")
	ErrInvalidAmount           = InvalidError("amount is invalid")
	ErrInvalidBlockStoreName   = InvalidError("block store name is invalid")
	ErrInvalidCount            = InvalidError("count is invalid")
	ErrInvalidCursor           = InvalidError("cursor is invalid")
	ErrInvalidIdentifier       = InvalidError("identifier is invalid")
	ErrInvalidLoggerChannel    = ProcessError("invalid logger channel")
	ErrInvalidOutcome          = InvalidError("outcome is invalid")
	ErrInvalidPermission       = InvalidError("permission is invalid")
	ErrInvalidPublicKey        = InvalidError("public key is invalid")
	ErrIterationComplete       = ProcessError("iteration complete")
	ErrKeyDelimiterInField     = InvalidError("key field contains the delimiter")
	ErrMutableStorageFinished  = ProcessError("mutable storage is already finished")
	ErrNotInitialised          = ProcessError("not initialised")
	ErrOutOfSequenceBlock      = InvalidError("block height out of sequence")
	ErrPeerAlreadyExists       = ExistsError("peer already exists")
	ErrPeerNotFound            = NotFoundError("peer not found")
	ErrPeersExhausted          = ProcessError("no candidate peer supplied the required blocks")
	ErrRoleAlreadyExists       = ExistsError("role already exists")
	ErrRoleNotFound            = NotFoundError("role not found")
	ErrSignatoryAlreadyExists  = ExistsError("signatory already exists")
	ErrSignatoryNotFound       = NotFoundError("signatory not found")
	ErrTransactionAlreadyInUse = ProcessError("transaction already in use")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CorruptionError) Error() string { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e ValidationError) Error() string { return string(e) }

func (e DBError) Error() string {
	return fmt.Sprintf("db error: %d: %s", e.Code, e.Description)
}

// determine the class of an error
func IsErrCorruption(e error) bool { _, ok := e.(CorruptionError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrValidation(e error) bool { _, ok := e.(ValidationError); return ok }
func IsErrDB(e error) bool         { _, ok := e.(DBError); return ok }
