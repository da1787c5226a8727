// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"

	"github.com/formana/formana/fault"
	"github.com/formana/formana/layout"
)

// Key - opaque key material, hex in text form
type Key []byte

// MarshalText - convert key to hex text
func (k Key) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(k)))
	hex.Encode(buffer, k)
	return buffer, nil
}

// UnmarshalText - convert hex text to key
func (k *Key) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*k = buffer[:n]
	return nil
}

// keys are always present in the layout, nil encodes as empty
func (k Key) bytes() []byte {
	if nil == k {
		return []byte{}
	}
	return []byte(k)
}

// a key given for a version whose layout has no slot for it is an error
func checkKey(schema *layout.Schema, version layout.Version, name string, key []byte) error {
	if 0 == len(key) || !version.Valid() || schema.Has(version, name) {
		return nil
	}
	return &fault.FieldError{Schema: schema.Name(), Field: name, Err: fault.ErrFieldNotInVersion}
}
