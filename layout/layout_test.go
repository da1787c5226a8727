// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formana/formana/account"
	"github.com/formana/formana/fault"
	"github.com/formana/formana/field"
	"github.com/formana/formana/layout"
)

var testSchema = layout.MustSchema(
	"Test",
	layout.Field{Name: "owner", Kind: field.Identifier},
	layout.Field{Name: "name", Kind: field.Text},
	layout.Field{Name: "key", Kind: field.ByteVector, Since: layout.VersionEncrypted},
	layout.Field{Name: "count", Kind: field.U64},
	layout.Field{Name: "flag", Kind: field.U8},
)

var testOwner = account.Identifier{
	0xf0, 0xe1, 0xd2, 0xc3, 0xb4, 0xa5, 0x96, 0x87,
	0x78, 0x69, 0x5a, 0x4b, 0x3c, 0x2d, 0x1e, 0x0f,
	0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
	0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
}

func testValues() layout.Values {
	return layout.Values{
		"owner": testOwner,
		"name":  "abc",
		"key":   []byte{0x01, 0x02},
		"count": uint64(258),
		"flag":  uint8(254),
	}
}

func TestEncodePlain(t *testing.T) {
	buffer := make([]byte, 100)
	n, err := layout.Encode(testSchema, layout.VersionPlain, testValues(), buffer)
	assert.Nil(t, err, "encode error")

	expected := append([]byte{}, testOwner[:]...)
	expected = append(expected, 3, 0, 0, 0, 'a', 'b', 'c')
	expected = append(expected, 2, 1, 0, 0, 0, 0, 0, 0)
	expected = append(expected, 254)

	assert.Equal(t, len(expected), n, "wrong length")
	assert.Equal(t, expected, buffer[:n], "wrong encoding")

	for _, b := range buffer[n:] {
		assert.Equal(t, byte(0), b, "wrote past the end")
	}
}

func TestEncodeEncrypted(t *testing.T) {
	buffer := make([]byte, 100)
	n, err := layout.Encode(testSchema, layout.VersionEncrypted, testValues(), buffer)
	assert.Nil(t, err, "encode error")

	expected := append([]byte{}, testOwner[:]...)
	expected = append(expected, 3, 0, 0, 0, 'a', 'b', 'c')
	expected = append(expected, 2, 0, 0, 0, 0x01, 0x02)
	expected = append(expected, 2, 1, 0, 0, 0, 0, 0, 0)
	expected = append(expected, 254)

	assert.Equal(t, expected, buffer[:n], "wrong encoding")
}

func TestRoundTrip(t *testing.T) {
	for _, version := range []layout.Version{layout.VersionPlain, layout.VersionEncrypted} {
		values := testValues()

		// over-allocated so that trailing zeros are present
		buffer := make([]byte, 1000)
		n, err := layout.Encode(testSchema, version, values, buffer)
		assert.Nil(t, err, "encode error")

		span, err := layout.Span(testSchema, version, buffer)
		assert.Nil(t, err, "span error")
		assert.Equal(t, n, span, "span differs from bytes written")

		size, err := layout.Size(testSchema, version, values)
		assert.Nil(t, err, "size error")
		assert.Equal(t, n, size, "size differs from bytes written")

		record, err := layout.Decode(testSchema, version, buffer[:span])
		assert.Nil(t, err, "decode error")

		for _, f := range testSchema.Fields(version) {
			assert.Equal(t, values[f.Name], record[f.Name], "field: %s", f.Name)
		}
		assert.Equal(t, len(testSchema.Fields(version)), len(record), "record field count")

		owner, err := record.Identifier("owner")
		assert.Nil(t, err, "owner error")
		assert.Equal(t, testOwner, owner, "owner")

		name, err := record.Text("name")
		assert.Nil(t, err, "name error")
		assert.Equal(t, "abc", name, "name")

		count, err := record.U64("count")
		assert.Nil(t, err, "count error")
		assert.Equal(t, uint64(258), count, "count")

		flag, err := record.U8("flag")
		assert.Nil(t, err, "flag error")
		assert.Equal(t, uint8(254), flag, "flag")

		_, err = record.Bytes("key")
		if layout.VersionEncrypted == version {
			assert.Nil(t, err, "key error")
		} else {
			assert.Equal(t, fault.ErrMissingField, err, "plain version has no key")
		}

		marshalled, err := layout.Marshal(testSchema, version, record.Values())
		assert.Nil(t, err, "marshal error")
		assert.Equal(t, buffer[:n], marshalled, "re-encoded record")
	}
}

func TestMissingField(t *testing.T) {
	values := testValues()
	delete(values, "count")

	_, err := layout.Encode(testSchema, layout.VersionPlain, values, make([]byte, 100))
	assert.True(t, errors.Is(err, fault.ErrMissingField), "encode error: %v", err)

	var fieldError *fault.FieldError
	if assert.True(t, errors.As(err, &fieldError), "not a field error") {
		assert.Equal(t, "Test", fieldError.Schema, "schema name")
		assert.Equal(t, "count", fieldError.Field, "field name")
	}

	_, err = layout.Size(testSchema, layout.VersionPlain, values)
	assert.True(t, errors.Is(err, fault.ErrMissingField), "size error: %v", err)

	_, err = layout.Marshal(testSchema, layout.VersionPlain, values)
	assert.True(t, errors.Is(err, fault.ErrMissingField), "marshal error: %v", err)
}

func TestVersionedFieldNotRequired(t *testing.T) {
	values := testValues()
	delete(values, "key")

	_, err := layout.Marshal(testSchema, layout.VersionPlain, values)
	assert.Nil(t, err, "plain version must not need the key")

	_, err = layout.Marshal(testSchema, layout.VersionEncrypted, values)
	assert.True(t, errors.Is(err, fault.ErrMissingField), "encrypted error: %v", err)
}

func TestEncodeBufferTooSmall(t *testing.T) {
	size, err := layout.Size(testSchema, layout.VersionPlain, testValues())
	assert.Nil(t, err, "size error")

	_, err = layout.Encode(testSchema, layout.VersionPlain, testValues(), make([]byte, size-1))
	assert.True(t, errors.Is(err, fault.ErrBufferTooSmall), "error: %v", err)
	assert.True(t, fault.IsErrLength(err), "classification")
}

func TestDecodeTruncated(t *testing.T) {
	b, err := layout.Marshal(testSchema, layout.VersionPlain, testValues())
	assert.Nil(t, err, "marshal error")

	for i := 0; i < len(b); i += 1 {
		_, err := layout.Decode(testSchema, layout.VersionPlain, b[:i])
		assert.True(t, errors.Is(err, fault.ErrBufferUnderrun), "%d: decode error: %v", i, err)

		_, err = layout.Span(testSchema, layout.VersionPlain, b[:i])
		assert.True(t, errors.Is(err, fault.ErrBufferUnderrun), "%d: span error: %v", i, err)
	}
}

func TestTypeMismatchAnnotated(t *testing.T) {
	values := testValues()
	values["flag"] = 7

	_, err := layout.Marshal(testSchema, layout.VersionPlain, values)
	assert.True(t, errors.Is(err, fault.ErrFieldTypeMismatch), "error: %v", err)
	assert.Equal(t, "Test.flag: field value type mismatch", err.Error(), "message")
}

func TestInvalidVersion(t *testing.T) {
	for _, version := range []layout.Version{0, 3, 255} {
		assert.False(t, version.Valid(), "version %d", version)

		_, err := layout.Encode(testSchema, version, testValues(), make([]byte, 100))
		assert.Equal(t, fault.ErrInvalidSchemaVersion, err, "encode version %d", version)

		_, err = layout.Decode(testSchema, version, make([]byte, 100))
		assert.Equal(t, fault.ErrInvalidSchemaVersion, err, "decode version %d", version)

		_, err = layout.Span(testSchema, version, make([]byte, 100))
		assert.Equal(t, fault.ErrInvalidSchemaVersion, err, "span version %d", version)

		_, err = layout.Size(testSchema, version, testValues())
		assert.Equal(t, fault.ErrInvalidSchemaVersion, err, "size version %d", version)
	}

	v, err := layout.VersionFromUint(2)
	assert.Nil(t, err, "version 2")
	assert.Equal(t, layout.VersionEncrypted, v, "version 2")

	_, err = layout.VersionFromUint(258)
	assert.Equal(t, fault.ErrInvalidSchemaVersion, err, "version 258")
}

func TestNilSchema(t *testing.T) {
	_, err := layout.Encode(nil, layout.VersionPlain, testValues(), make([]byte, 100))
	assert.Equal(t, fault.ErrInvalidSchema, err, "encode")

	_, err = layout.Decode(nil, layout.VersionPlain, make([]byte, 100))
	assert.Equal(t, fault.ErrInvalidSchema, err, "decode")

	_, err = layout.Span(nil, layout.VersionPlain, make([]byte, 100))
	assert.Equal(t, fault.ErrInvalidSchema, err, "span")

	_, err = layout.Size(nil, layout.VersionPlain, testValues())
	assert.Equal(t, fault.ErrInvalidSchema, err, "size")

	_, err = layout.Marshal(nil, layout.VersionEncrypted, testValues())
	assert.Equal(t, fault.ErrInvalidSchema, err, "marshal")
	assert.True(t, fault.IsErrInvalid(err), "class: %v", err)
}

func TestSchemaFields(t *testing.T) {
	names := func(fields []layout.Field) []string {
		s := []string{}
		for _, f := range fields {
			s = append(s, f.Name)
		}
		return s
	}

	assert.Equal(t, "Test", testSchema.Name(), "name")
	assert.Equal(t, []string{"owner", "name", "count", "flag"}, names(testSchema.Fields(layout.VersionPlain)), "plain")
	assert.Equal(t, []string{"owner", "name", "key", "count", "flag"}, names(testSchema.Fields(layout.VersionEncrypted)), "encrypted")

	assert.True(t, testSchema.Has(layout.VersionEncrypted, "key"), "encrypted has key")
	assert.False(t, testSchema.Has(layout.VersionPlain, "key"), "plain has key")
	assert.False(t, testSchema.Has(layout.VersionPlain, "nothing"), "unknown field")

	assert.Equal(t, 32+4+8+1, testSchema.MinimumSize(layout.VersionPlain), "plain minimum")
	assert.Equal(t, 32+4+4+8+1, testSchema.MinimumSize(layout.VersionEncrypted), "encrypted minimum")
}

func TestNewSchemaErrors(t *testing.T) {
	_, err := layout.NewSchema("Bad", layout.Field{Name: "", Kind: field.U8})
	assert.Equal(t, fault.ErrEmptyFieldName, err, "empty name")

	_, err = layout.NewSchema("Bad",
		layout.Field{Name: "a", Kind: field.U8},
		layout.Field{Name: "a", Kind: field.Text},
	)
	assert.True(t, errors.Is(err, fault.ErrDuplicateField), "duplicate: %v", err)

	_, err = layout.NewSchema("Bad", layout.Field{Name: "a", Kind: field.Kind(0)})
	assert.True(t, errors.Is(err, fault.ErrInvalidKind), "kind: %v", err)

	_, err = layout.NewSchema("Bad", layout.Field{Name: "a", Kind: field.U8, Since: layout.Version(9)})
	assert.True(t, errors.Is(err, fault.ErrInvalidSchemaVersion), "since: %v", err)

	assert.Panics(t, func() {
		layout.MustSchema("Bad", layout.Field{Name: "", Kind: field.U8})
	}, "must schema")
}

func TestRecordAccessorErrors(t *testing.T) {
	r := layout.Record{"n": uint8(1)}

	_, err := r.U64("n")
	assert.Equal(t, fault.ErrFieldTypeMismatch, err, "u64")
	_, err = r.Text("n")
	assert.Equal(t, fault.ErrFieldTypeMismatch, err, "text")
	_, err = r.Bytes("n")
	assert.Equal(t, fault.ErrFieldTypeMismatch, err, "bytes")
	_, err = r.Identifier("n")
	assert.Equal(t, fault.ErrFieldTypeMismatch, err, "identifier")
	_, err = r.U8("x")
	assert.Equal(t, fault.ErrMissingField, err, "missing")
}
