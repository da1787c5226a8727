// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/formana/formana/fault"
	"github.com/formana/formana/field"
)

// Version - selects which fields of a schema are present
type Version uint8

// enumerate the schema versions
const (
	nullVersion = Version(iota)

	VersionPlain     = Version(iota) // no encryption keys
	VersionEncrypted = Version(iota) // forms carry an encryption key

	// this item must be last
	invalidVersion = Version(iota)
)

// Valid - true for a known version
func (v Version) Valid() bool {
	return v > nullVersion && v < invalidVersion
}

// VersionFromUint - for configuration values
func VersionFromUint(n uint64) (Version, error) {
	v := Version(n)
	if n > 255 || !v.Valid() {
		return nullVersion, fault.ErrInvalidSchemaVersion
	}
	return v, nil
}

// Field - a named field of a schema
//
// Since is the first version containing the field, zero means all
// versions
type Field struct {
	Name  string
	Kind  field.Kind
	Since Version
}

// Schema - an ordered immutable list of fields
type Schema struct {
	name   string
	fields []Field
}

// NewSchema - create a schema, field order is encoding order
func NewSchema(name string, fields ...Field) (*Schema, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if "" == f.Name {
			return nil, fault.ErrEmptyFieldName
		}
		if !f.Kind.Valid() {
			return nil, &fault.FieldError{Schema: name, Field: f.Name, Err: fault.ErrInvalidKind}
		}
		if nullVersion != f.Since && !f.Since.Valid() {
			return nil, &fault.FieldError{Schema: name, Field: f.Name, Err: fault.ErrInvalidSchemaVersion}
		}
		if _, ok := seen[f.Name]; ok {
			return nil, &fault.FieldError{Schema: name, Field: f.Name, Err: fault.ErrDuplicateField}
		}
		seen[f.Name] = struct{}{}
	}

	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
	}
	copy(s.fields, fields)
	return s, nil
}

// MustSchema - for package level schema definitions
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if nil != err {
		panic("invalid schema: " + err.Error())
	}
	return s
}

// Name - the schema name
func (s *Schema) Name() string {
	return s.name
}

// Fields - the ordered fields present in a version
func (s *Schema) Fields(version Version) []Field {
	result := make([]Field, 0, len(s.fields))
	for _, f := range s.fields {
		if f.presentIn(version) {
			result = append(result, f)
		}
	}
	return result
}

// Has - true if the named field is present in a version
func (s *Schema) Has(version Version, name string) bool {
	for _, f := range s.fields {
		if f.Name == name {
			return f.presentIn(version)
		}
	}
	return false
}

// MinimumSize - smallest possible encoding of a version
func (s *Schema) MinimumSize(version Version) int {
	n := 0
	for _, f := range s.fields {
		if f.presentIn(version) {
			n += f.Kind.MinimumSize()
		}
	}
	return n
}

func (f Field) presentIn(version Version) bool {
	return nullVersion == f.Since || version >= f.Since
}

func (s *Schema) fieldError(f Field, err error) error {
	return &fault.FieldError{Schema: s.name, Field: f.Name, Err: err}
}
