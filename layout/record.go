// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/formana/formana/account"
	"github.com/formana/formana/fault"
)

// Record - a decoded instance of a schema, field name to value
type Record map[string]interface{}

// Values - a record can be re-encoded directly
func (r Record) Values() Values {
	return Values(r)
}

func (r Record) get(name string) (interface{}, error) {
	v, ok := r[name]
	if !ok {
		return nil, fault.ErrMissingField
	}
	return v, nil
}

// U8 - fetch a one byte field
func (r Record) U8(name string) (uint8, error) {
	v, err := r.get(name)
	if nil != err {
		return 0, err
	}
	n, ok := v.(uint8)
	if !ok {
		return 0, fault.ErrFieldTypeMismatch
	}
	return n, nil
}

// U64 - fetch an eight byte field
func (r Record) U64(name string) (uint64, error) {
	v, err := r.get(name)
	if nil != err {
		return 0, err
	}
	n, ok := v.(uint64)
	if !ok {
		return 0, fault.ErrFieldTypeMismatch
	}
	return n, nil
}

// Identifier - fetch a 32 byte identifier field
func (r Record) Identifier(name string) (account.Identifier, error) {
	v, err := r.get(name)
	if nil != err {
		return account.Zero, err
	}
	id, ok := v.(account.Identifier)
	if !ok {
		return account.Zero, fault.ErrFieldTypeMismatch
	}
	return id, nil
}

// Text - fetch a string field
func (r Record) Text(name string) (string, error) {
	v, err := r.get(name)
	if nil != err {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fault.ErrFieldTypeMismatch
	}
	return s, nil
}

// Bytes - fetch a byte vector field
func (r Record) Bytes(name string) ([]byte, error) {
	v, err := r.get(name)
	if nil != err {
		return nil, err
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, fault.ErrFieldTypeMismatch
	}
	return b, nil
}
