// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound       = NotFoundError("account not found")
	ErrAddressMismatch       = InvalidError("address does not match derivation")
	ErrBufferTooSmall        = LengthError("buffer too small")
	ErrBufferUnderrun        = LengthError("buffer underrun")
	ErrConfigurationNotTable = InvalidError("configuration must return a table")
	ErrDerivationExhausted   = ProcessError("no bump produced an off-curve address")
	ErrDuplicateField        = RecordError("duplicate field")
	ErrEmptyFieldName        = RecordError("field name is empty")
	ErrFieldNotInVersion     = InvalidError("field not present in schema version")
	ErrFieldTypeMismatch     = InvalidError("field value type mismatch")
	ErrInvalidCommitment     = InvalidError("invalid commitment")
	ErrInvalidEncoding       = InvalidError("invalid utf-8 encoding")
	ErrInvalidIdentifier     = InvalidError("invalid identifier")
	ErrInvalidInstruction    = InvalidError("invalid instruction")
	ErrInvalidKind           = InvalidError("invalid field kind")
	ErrInvalidPrivateKey     = InvalidError("invalid private key")
	ErrInvalidRate           = InvalidError("invalid rate")
	ErrInvalidSchema         = InvalidError("invalid schema")
	ErrInvalidSchemaVersion  = InvalidError("invalid schema version")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMissingField          = RecordError("missing field")
	ErrMissingSigner         = InvalidError("missing signer")
	ErrNoBlockhash           = NotFoundError("no recent blockhash")
	ErrNoInstructions        = InvalidError("no instructions to submit")
	ErrOnCurve               = InvalidError("address lies on the ed25519 curve")
	ErrSeedTooLong           = LengthError("seed too long")
	ErrTooManySeeds          = LengthError("too many seeds")
	ErrValueTooLong          = LengthError("value too long for length prefix")
	ErrVariantMismatch       = InvalidError("instruction variant mismatch")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
// wrapped errors are classified by the first matching error in the chain
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }

// FieldError - an error raised while processing one named field of a schema
type FieldError struct {
	Schema string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return e.Schema + "." + e.Field + ": " + e.Err.Error()
}

// Unwrap - allow errors.Is/errors.As to reach the underlying instance
func (e *FieldError) Unwrap() error { return e.Err }
