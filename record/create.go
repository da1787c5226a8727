// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/formana/formana/fault"
	"github.com/formana/formana/layout"
)

// CreateForm - arguments of the create form instruction
type CreateForm struct {
	Code          string `json:"code"`
	SchemaURL     string `json:"schemaUrl"`
	EncryptionKey Key    `json:"encryptionKey,omitempty"`
}

// CreateSubmission - arguments of the create submission instruction
type CreateSubmission struct {
	ContentURL string `json:"contentUrl"`
}

// Values - layout values including the variant
func (c *CreateForm) Values() layout.Values {
	return layout.Values{
		FieldVariant:       uint8(VariantCreateForm),
		FieldCode:          c.Code,
		FieldSchemaURL:     c.SchemaURL,
		FieldEncryptionKey: c.EncryptionKey.bytes(),
	}
}

// Pack - the instruction payload
func (c *CreateForm) Pack(version layout.Version) ([]byte, error) {
	err := checkKey(CreateFormInstruction, version, FieldEncryptionKey, c.EncryptionKey)
	if nil != err {
		return nil, err
	}
	return layout.Marshal(CreateFormInstruction, version, c.Values())
}

// Values - layout values including the variant
func (c *CreateSubmission) Values() layout.Values {
	return layout.Values{
		FieldVariant:    uint8(VariantCreateSubmission),
		FieldContentURL: c.ContentURL,
	}
}

// Pack - the instruction payload
//
// the submission payload has the same layout in every version
func (c *CreateSubmission) Pack(version layout.Version) ([]byte, error) {
	return layout.Marshal(CreateSubmissionInstruction, version, c.Values())
}

// PayloadVariant - the variant of an instruction payload
//
// only the first byte is examined
func PayloadVariant(data []byte) (Variant, error) {
	if 0 == len(data) {
		return invalidVariant, fault.ErrInvalidInstruction
	}
	v := Variant(data[0])
	if !v.Valid() {
		return invalidVariant, fault.ErrInvalidInstruction
	}
	return v, nil
}

// UnpackCreateForm - decode a create form payload
func UnpackCreateForm(version layout.Version, data []byte) (*CreateForm, int, error) {
	r, n, err := unpackPayload(VariantCreateForm, version, data)
	if nil != err {
		return nil, 0, err
	}

	c := &CreateForm{}
	if c.Code, err = r.Text(FieldCode); nil != err {
		return nil, 0, err
	}
	if c.SchemaURL, err = r.Text(FieldSchemaURL); nil != err {
		return nil, 0, err
	}
	if CreateFormInstruction.Has(version, FieldEncryptionKey) {
		if c.EncryptionKey, err = r.Bytes(FieldEncryptionKey); nil != err {
			return nil, 0, err
		}
	}
	return c, n, nil
}

// UnpackCreateSubmission - decode a create submission payload
func UnpackCreateSubmission(version layout.Version, data []byte) (*CreateSubmission, int, error) {
	r, n, err := unpackPayload(VariantCreateSubmission, version, data)
	if nil != err {
		return nil, 0, err
	}

	c := &CreateSubmission{}
	if c.ContentURL, err = r.Text(FieldContentURL); nil != err {
		return nil, 0, err
	}
	return c, n, nil
}

func unpackPayload(expected Variant, version layout.Version, data []byte) (layout.Record, int, error) {
	v, err := PayloadVariant(data)
	if nil != err {
		return nil, 0, err
	}
	if expected != v {
		return nil, 0, fault.ErrVariantMismatch
	}

	schema := v.Schema()
	n, err := layout.Span(schema, version, data)
	if nil != err {
		return nil, 0, err
	}
	r, err := layout.Decode(schema, version, data[:n])
	if nil != err {
		return nil, 0, err
	}
	return r, n, nil
}
