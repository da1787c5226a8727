// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/formana/formana/account"
	"github.com/formana/formana/address"
	"github.com/formana/formana/fault"
	"github.com/formana/formana/layout"
	"github.com/formana/formana/record"
)

var (
	programID = account.MustIdentifierFromBase58("Ba81kSwqCSWckTBbMAiA29e5T4ZwVrmRFGJHJFgJXHqT")
	creator   = account.MustIdentifierFromBase58("4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw")
	formKey   = account.MustIdentifierFromBase58("F7jQn5zgpcGonwsAwi4raEuWYggTeMb6REJYFgFBszJ2")
)

func TestCreateFormEndToEnd(t *testing.T) {
	c := record.CreateForm{
		Code:      "blog-3",
		SchemaURL: "https://example.com",
	}

	expected := []byte{0x00}
	expected = append(expected, 6, 0, 0, 0)
	expected = append(expected, "blog-3"...)
	expected = append(expected, 19, 0, 0, 0)
	expected = append(expected, "https://example.com"...)

	// encode into an oversized buffer the way a client would
	buffer := make([]byte, 1000)
	n, err := layout.Encode(record.CreateFormInstruction, layout.VersionPlain, c.Values(), buffer)
	assert.Nil(t, err, "encode error")
	assert.Equal(t, 34, n, "bytes written")

	span, err := layout.Span(record.CreateFormInstruction, layout.VersionPlain, buffer)
	assert.Nil(t, err, "span error")
	assert.Equal(t, n, span, "span")
	assert.Equal(t, expected, buffer[:span], "payload")

	packed, err := c.Pack(layout.VersionPlain)
	assert.Nil(t, err, "pack error")
	assert.Equal(t, expected, packed, "packed payload")

	decoded, m, err := record.UnpackCreateForm(layout.VersionPlain, buffer[:span])
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, span, m, "unpacked length")
	assert.Equal(t, &c, decoded, "decoded")

	// derive twice, separately
	first, err := address.FormAddress(programID, creator, decoded.Code)
	assert.Nil(t, err, "first derive")
	second, err := address.FormAddress(programID, creator, decoded.Code)
	assert.Nil(t, err, "second derive")
	assert.Equal(t, first, second, "derivation not deterministic")
	assert.Equal(t, formKey, first.Address, "form address")
}

func TestCreateFormEncrypted(t *testing.T) {
	c := record.CreateForm{
		Code:          "blog-3",
		SchemaURL:     "https://example.com",
		EncryptionKey: record.Key{0xaa, 0xbb},
	}

	keyless := c
	keyless.EncryptionKey = nil
	plain, err := keyless.Pack(layout.VersionPlain)
	assert.Nil(t, err, "plain pack error")

	encrypted, err := c.Pack(layout.VersionEncrypted)
	assert.Nil(t, err, "encrypted pack error")

	assert.Equal(t, append(plain, 2, 0, 0, 0, 0xaa, 0xbb), encrypted, "encrypted payload")

	decoded, n, err := record.UnpackCreateForm(layout.VersionEncrypted, encrypted)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(encrypted), n, "length")
	assert.Equal(t, &c, decoded, "decoded")

	// the plain schema ignores the trailing key
	decoded, n, err = record.UnpackCreateForm(layout.VersionPlain, encrypted)
	assert.Nil(t, err, "plain unpack error")
	assert.Equal(t, len(plain), n, "plain length")
	assert.Nil(t, decoded.EncryptionKey, "plain key")

	// decoding plain data as encrypted runs out of bytes
	_, _, err = record.UnpackCreateForm(layout.VersionEncrypted, plain)
	assert.True(t, errors.Is(err, fault.ErrBufferUnderrun), "version mismatch: %v", err)
}

func TestKeyNotInVersion(t *testing.T) {
	c := record.CreateForm{
		Code:          "blog-3",
		SchemaURL:     "https://example.com",
		EncryptionKey: record.Key{0xaa},
	}
	_, err := c.Pack(layout.VersionPlain)
	assert.True(t, errors.Is(err, fault.ErrFieldNotInVersion), "create form: %v", err)
	assert.True(t, fault.IsErrInvalid(err), "create form class: %v", err)

	var fieldError *fault.FieldError
	assert.True(t, errors.As(err, &fieldError), "field error: %v", err)
	assert.Equal(t, record.FieldEncryptionKey, fieldError.Field, "field")

	form := record.Form{
		Creator:       creator,
		Code:          "blog-3",
		SchemaURL:     "https://example.com",
		EncryptionKey: record.Key{0xaa},
	}
	_, err = form.Pack(layout.VersionPlain)
	assert.True(t, errors.Is(err, fault.ErrFieldNotInVersion), "form: %v", err)

	_, err = record.FormAccountSize(layout.VersionPlain, "blog-3", "https://example.com", []byte{0xaa})
	assert.True(t, errors.Is(err, fault.ErrFieldNotInVersion), "form size: %v", err)

	submission := record.Submission{
		Form:         formKey,
		Author:       creator,
		ContentURL:   "ipfs://content",
		SymmetricKey: record.Key{1},
	}
	_, err = submission.Pack(layout.VersionPlain)
	assert.True(t, errors.Is(err, fault.ErrFieldNotInVersion), "submission: %v", err)

	_, err = record.SubmissionAccountSize(layout.VersionPlain, "ipfs://content", []byte{1})
	assert.True(t, errors.Is(err, fault.ErrFieldNotInVersion), "submission size: %v", err)

	// an empty key is the same as no key
	_, err = record.FormAccountSize(layout.VersionPlain, "blog-3", "https://example.com", []byte{})
	assert.Nil(t, err, "empty key")
}

func TestCreateSubmission(t *testing.T) {
	c := record.CreateSubmission{
		ContentURL: "ipfs://content",
	}

	expected := append([]byte{1, 14, 0, 0, 0}, "ipfs://content"...)
	for _, version := range []layout.Version{layout.VersionPlain, layout.VersionEncrypted} {
		packed, err := c.Pack(version)
		assert.Nil(t, err, "pack error")
		assert.Equal(t, expected, packed, "payload")

		decoded, n, err := record.UnpackCreateSubmission(version, append(packed, 0, 0, 0))
		assert.Nil(t, err, "unpack error")
		assert.Equal(t, len(expected), n, "length")
		assert.Equal(t, &c, decoded, "decoded")
	}
}

func TestVariantDiscrimination(t *testing.T) {
	form, err := (&record.CreateForm{Code: "a", SchemaURL: "b"}).Pack(layout.VersionPlain)
	assert.Nil(t, err, "form pack")
	submission, err := (&record.CreateSubmission{ContentURL: "c"}).Pack(layout.VersionPlain)
	assert.Nil(t, err, "submission pack")

	v, err := record.PayloadVariant(form)
	assert.Nil(t, err, "form variant")
	assert.Equal(t, record.VariantCreateForm, v, "form variant")

	v, err = record.PayloadVariant(submission)
	assert.Nil(t, err, "submission variant")
	assert.Equal(t, record.VariantCreateSubmission, v, "submission variant")

	_, _, err = record.UnpackCreateForm(layout.VersionPlain, submission)
	assert.Equal(t, fault.ErrVariantMismatch, err, "submission as form")

	_, _, err = record.UnpackCreateSubmission(layout.VersionPlain, form)
	assert.Equal(t, fault.ErrVariantMismatch, err, "form as submission")

	invalid := [][]byte{
		nil,
		{},
		{2},
		{0xff, 0, 0, 0, 0},
	}
	for i, data := range invalid {
		_, err := record.PayloadVariant(data)
		assert.Equal(t, fault.ErrInvalidInstruction, err, "%d: variant", i)
		_, _, err = record.UnpackCreateForm(layout.VersionPlain, data)
		assert.Equal(t, fault.ErrInvalidInstruction, err, "%d: create form", i)
		_, _, err = record.UnpackCreateSubmission(layout.VersionPlain, data)
		assert.Equal(t, fault.ErrInvalidInstruction, err, "%d: create submission", i)
	}

	assert.Equal(t, "CreateForm", record.VariantCreateForm.String(), "name")
	assert.Equal(t, "CreateSubmission", record.VariantCreateSubmission.String(), "name")
	assert.Equal(t, "*unknown*", record.Variant(7).String(), "name")
	assert.Nil(t, record.Variant(7).Schema(), "unknown schema")
}

func TestFormAccount(t *testing.T) {
	forms := []struct {
		version layout.Version
		form    record.Form
		size    int
	}{
		{
			version: layout.VersionPlain,
			form: record.Form{
				Creator:   creator,
				Code:      "blog-3",
				SchemaURL: "https://example.com",
				Bump:      255,
			},
			size: 32 + 10 + 23 + 1,
		},
		{
			version: layout.VersionEncrypted,
			form: record.Form{
				Creator:       creator,
				Code:          "blog-3",
				SchemaURL:     "https://example.com",
				EncryptionKey: record.Key(bytes.Repeat([]byte{0x5a}, 32)),
				Bump:          254,
			},
			size: 32 + 10 + 23 + 36 + 1,
		},
	}

	for i, item := range forms {
		packed, err := item.form.Pack(item.version)
		assert.Nil(t, err, "%d: pack error", i)
		assert.Equal(t, item.size, len(packed), "%d: packed length", i)
		assert.Equal(t, creator[:], packed[:32], "%d: creator first", i)
		assert.Equal(t, item.form.Bump, packed[len(packed)-1], "%d: bump last", i)

		size, err := record.FormAccountSize(item.version, item.form.Code, item.form.SchemaURL, item.form.EncryptionKey)
		assert.Nil(t, err, "%d: size error", i)
		assert.Equal(t, item.size, size, "%d: account size", i)

		// account data read from the ledger may have trailing space
		data := append(packed, make([]byte, 20)...)
		decoded, n, err := record.UnpackForm(item.version, data)
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, item.size, n, "%d: record length", i)
		assert.Equal(t, &item.form, decoded, "%d: decoded", i)
	}
}

func TestFormAccountTruncated(t *testing.T) {
	form := record.Form{
		Creator:   creator,
		Code:      "blog-3",
		SchemaURL: "https://example.com",
		Bump:      255,
	}
	packed, err := form.Pack(layout.VersionPlain)
	assert.Nil(t, err, "pack error")

	for _, n := range []int{0, 10, 32, 40, len(packed) - 1} {
		_, _, err := record.UnpackForm(layout.VersionPlain, packed[:n])
		assert.True(t, errors.Is(err, fault.ErrBufferUnderrun), "length %d: %v", n, err)
	}
}

func TestFormAddress(t *testing.T) {
	form := record.Form{
		Creator: creator,
		Code:    "blog-3",
	}
	derived, err := form.Address(programID)
	assert.Nil(t, err, "derive error")
	assert.Equal(t, formKey, derived.Address, "address")
	assert.Equal(t, uint8(255), derived.Bump, "bump")
}

func TestSubmissionAccount(t *testing.T) {
	submissions := []struct {
		version    layout.Version
		submission record.Submission
		size       int
	}{
		{
			version: layout.VersionPlain,
			submission: record.Submission{
				Form:       formKey,
				Author:     creator,
				Timestamp:  1650000000,
				ContentURL: "ipfs://content",
				Bump:       253,
			},
			size: 32 + 32 + 8 + 18 + 1,
		},
		{
			version: layout.VersionEncrypted,
			submission: record.Submission{
				Form:         formKey,
				Author:       creator,
				Timestamp:    1650000000,
				ContentURL:   "ipfs://content",
				SymmetricKey: record.Key{1, 2, 3},
				Bump:         253,
			},
			size: 32 + 32 + 8 + 18 + 7 + 1,
		},
	}

	for i, item := range submissions {
		packed, err := item.submission.Pack(item.version)
		assert.Nil(t, err, "%d: pack error", i)
		assert.Equal(t, item.size, len(packed), "%d: packed length", i)
		assert.Equal(t, []byte{0x80, 0x00, 0x59, 0x62, 0, 0, 0, 0}, packed[64:72], "%d: timestamp", i)

		size, err := record.SubmissionAccountSize(item.version, item.submission.ContentURL, item.submission.SymmetricKey)
		assert.Nil(t, err, "%d: size error", i)
		assert.Equal(t, item.size, size, "%d: account size", i)

		decoded, n, err := record.UnpackSubmission(item.version, append(packed, 0xee))
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, item.size, n, "%d: record length", i)
		assert.Equal(t, &item.submission, decoded, "%d: decoded", i)

		_, _, err = record.UnpackSubmission(item.version, packed[:len(packed)-1])
		assert.True(t, errors.Is(err, fault.ErrBufferUnderrun), "%d: truncated: %v", i, err)
	}
}

func TestSubmissionTimeAndAddress(t *testing.T) {
	submission := record.Submission{
		Author:    creator,
		Timestamp: 1650000000,
	}
	assert.Equal(t, time.Date(2022, time.April, 15, 5, 20, 0, 0, time.UTC), submission.Time(), "time")

	derived, err := submission.Address(programID, "blog-3")
	assert.Nil(t, err, "derive error")
	assert.Equal(t, "C7iD8NAPsgoxT5YhW3xcELbsjtGHChDPefiRcfAoeeaP", derived.Address.String(), "address")
}

func TestKeyText(t *testing.T) {
	form := record.Form{
		Creator:       creator,
		Code:          "x",
		SchemaURL:     "y",
		EncryptionKey: record.Key{0xde, 0xad},
	}
	b, err := json.Marshal(form)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"creator":"4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw","code":"x","schemaUrl":"y","encryptionKey":"dead","bump":0}`, string(b), "json")

	var decoded record.Form
	err = json.Unmarshal(b, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, form, decoded, "decoded")

	var k record.Key
	err = k.UnmarshalText([]byte("xyz"))
	assert.NotNil(t, err, "bad hex")
}
