// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances for codec, addressing and ledger use
//
// every error is a single typed string instance so callers compare with
// == or errors.Is.  The type is the class: LengthError for buffer and
// seed sizes, InvalidError for bad values and arguments, RecordError for
// schema construction and missing fields, ProcessError when derivation
// gives up and NotFoundError for absent ledger state.
//
// layout errors arrive wrapped in a FieldError naming the schema and
// field; IsErrX and errors.Is look through the wrapping.
package fault
