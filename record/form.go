// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/formana/formana/account"
	"github.com/formana/formana/address"
	"github.com/formana/formana/layout"
)

// Form - the decoded data of a form account
type Form struct {
	Creator       account.Identifier `json:"creator"`
	Code          string             `json:"code"`
	SchemaURL     string             `json:"schemaUrl"`
	EncryptionKey Key                `json:"encryptionKey,omitempty"`
	Bump          uint8              `json:"bump"`
}

// Values - layout values of the form
func (form *Form) Values() layout.Values {
	return layout.Values{
		FieldCreator:       form.Creator,
		FieldCode:          form.Code,
		FieldSchemaURL:     form.SchemaURL,
		FieldEncryptionKey: form.EncryptionKey.bytes(),
		FieldBump:          form.Bump,
	}
}

// Pack - account data of the form
func (form *Form) Pack(version layout.Version) ([]byte, error) {
	err := checkKey(FormAccount, version, FieldEncryptionKey, form.EncryptionKey)
	if nil != err {
		return nil, err
	}
	return layout.Marshal(FormAccount, version, form.Values())
}

// Address - the derived account address of the form
func (form *Form) Address(programID account.Identifier) (address.Derived, error) {
	return address.FormAddress(programID, form.Creator, form.Code)
}

// UnpackForm - decode form account data
//
// account data may be longer than the record, the returned count is
// the number of bytes the record occupies
func UnpackForm(version layout.Version, data []byte) (*Form, int, error) {
	n, err := layout.Span(FormAccount, version, data)
	if nil != err {
		return nil, 0, err
	}
	r, err := layout.Decode(FormAccount, version, data[:n])
	if nil != err {
		return nil, 0, err
	}

	form := &Form{}
	if form.Creator, err = r.Identifier(FieldCreator); nil != err {
		return nil, 0, err
	}
	if form.Code, err = r.Text(FieldCode); nil != err {
		return nil, 0, err
	}
	if form.SchemaURL, err = r.Text(FieldSchemaURL); nil != err {
		return nil, 0, err
	}
	if FormAccount.Has(version, FieldEncryptionKey) {
		if form.EncryptionKey, err = r.Bytes(FieldEncryptionKey); nil != err {
			return nil, 0, err
		}
	}
	if form.Bump, err = r.U8(FieldBump); nil != err {
		return nil, 0, err
	}
	return form, n, nil
}

// FormAccountSize - bytes to allocate for a new form account
func FormAccountSize(version layout.Version, code string, schemaURL string, encryptionKey []byte) (int, error) {
	err := checkKey(FormAccount, version, FieldEncryptionKey, encryptionKey)
	if nil != err {
		return 0, err
	}
	form := Form{
		Code:          code,
		SchemaURL:     schemaURL,
		EncryptionKey: encryptionKey,
	}
	return layout.Size(FormAccount, version, form.Values())
}
