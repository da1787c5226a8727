// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/formana/formana/layout"
	"github.com/formana/formana/record"
)

// Variant - instruction discriminator
type Variant = record.Variant

// the instruction variants
const (
	CreateForm       = record.VariantCreateForm
	CreateSubmission = record.VariantCreateSubmission
)

// Unpack - decode any payload, dispatching on the first byte
//
// returns the variant and the decoded fields, which include the variant
func Unpack(version layout.Version, data []byte) (Variant, layout.Record, error) {
	v, err := record.PayloadVariant(data)
	if nil != err {
		return v, nil, err
	}

	schema := v.Schema()
	n, err := layout.Span(schema, version, data)
	if nil != err {
		return v, nil, err
	}
	r, err := layout.Decode(schema, version, data[:n])
	if nil != err {
		return v, nil, err
	}
	return v, r, nil
}

// UnpackCreateForm - decode a create form payload
func UnpackCreateForm(version layout.Version, data []byte) (*record.CreateForm, error) {
	c, _, err := record.UnpackCreateForm(version, data)
	return c, err
}

// UnpackCreateSubmission - decode a create submission payload
func UnpackCreateSubmission(version layout.Version, data []byte) (*record.CreateSubmission, error) {
	c, _, err := record.UnpackCreateSubmission(version, data)
	return c, err
}
