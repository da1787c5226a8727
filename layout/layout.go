// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/formana/formana/fault"
	"github.com/formana/formana/field"
)

// Values - field values to encode, keyed by field name
type Values map[string]interface{}

// Encode - write all fields of a version into buffer starting at offset 0
//
// each field is written immediately after the previous one; returns
// the total bytes written.  Values not named by the schema are ignored.
func Encode(schema *Schema, version Version, values Values, buffer []byte) (int, error) {
	if err := validate(schema, version); nil != err {
		return 0, err
	}

	n := 0
	for _, f := range schema.fields {
		if !f.presentIn(version) {
			continue
		}
		value, ok := values[f.Name]
		if !ok {
			return 0, schema.fieldError(f, fault.ErrMissingField)
		}
		written, err := field.Encode(f.Kind, value, buffer, n)
		if nil != err {
			return 0, schema.fieldError(f, err)
		}
		n += written
	}
	return n, nil
}

// Decode - read all fields of a version from the start of buffer
//
// bytes after the last field are ignored, use Span to find where the
// record ends
func Decode(schema *Schema, version Version, buffer []byte) (Record, error) {
	if err := validate(schema, version); nil != err {
		return nil, err
	}

	record := make(Record, len(schema.fields))
	n := 0
	for _, f := range schema.fields {
		if !f.presentIn(version) {
			continue
		}
		value, consumed, err := field.Decode(f.Kind, buffer, n)
		if nil != err {
			return nil, schema.fieldError(f, err)
		}
		record[f.Name] = value
		n += consumed
	}
	return record, nil
}

// Span - exact number of bytes a version of the schema occupies at
// the start of buffer
//
// performs the same walk as Decode without building a record
func Span(schema *Schema, version Version, buffer []byte) (int, error) {
	if err := validate(schema, version); nil != err {
		return 0, err
	}

	n := 0
	for _, f := range schema.fields {
		if !f.presentIn(version) {
			continue
		}
		consumed, err := field.Span(f.Kind, buffer, n)
		if nil != err {
			return 0, schema.fieldError(f, err)
		}
		n += consumed
	}
	return n, nil
}

// Size - exact number of bytes Encode would write
func Size(schema *Schema, version Version, values Values) (int, error) {
	if err := validate(schema, version); nil != err {
		return 0, err
	}

	n := 0
	for _, f := range schema.fields {
		if !f.presentIn(version) {
			continue
		}
		value, ok := values[f.Name]
		if !ok {
			return 0, schema.fieldError(f, fault.ErrMissingField)
		}
		size, err := field.Size(f.Kind, value)
		if nil != err {
			return 0, schema.fieldError(f, err)
		}
		n += size
	}
	return n, nil
}

// Marshal - encode into a newly allocated buffer of exactly the right size
func Marshal(schema *Schema, version Version, values Values) ([]byte, error) {
	size, err := Size(schema, version, values)
	if nil != err {
		return nil, err
	}
	buffer := make([]byte, size)
	n, err := Encode(schema, version, values, buffer)
	if nil != err {
		return nil, err
	}
	return buffer[:n], nil
}

func validate(schema *Schema, version Version) error {
	if nil == schema {
		return fault.ErrInvalidSchema
	}
	if !version.Valid() {
		return fault.ErrInvalidSchemaVersion
	}
	return nil
}
