// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/formana/formana/layout"
)

// Variant - first byte of every instruction payload
type Variant uint8

// enumerate the instruction variants
const (
	VariantCreateForm       = Variant(0)
	VariantCreateSubmission = Variant(1)

	// this item must be last
	invalidVariant = Variant(2)
)

// Valid - true for a known variant
func (v Variant) Valid() bool {
	return v < invalidVariant
}

// Schema - the payload layout of a variant, nil if unknown
func (v Variant) Schema() *layout.Schema {
	switch v {
	case VariantCreateForm:
		return CreateFormInstruction
	case VariantCreateSubmission:
		return CreateSubmissionInstruction
	default:
		return nil
	}
}

func (v Variant) String() string {
	switch v {
	case VariantCreateForm:
		return "CreateForm"
	case VariantCreateSubmission:
		return "CreateSubmission"
	default:
		return "*unknown*"
	}
}
