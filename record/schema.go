// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/formana/formana/field"
	"github.com/formana/formana/layout"
)

// field names shared by the schemas
const (
	FieldAuthor        = "author"
	FieldBump          = "bump"
	FieldCode          = "code"
	FieldContentURL    = "content_url"
	FieldCreator       = "creator"
	FieldEncryptionKey = "encryption_key"
	FieldForm          = "form"
	FieldSchemaURL     = "schema_url"
	FieldSymmetricKey  = "symmetric_key"
	FieldTimestamp     = "timestamp"
	FieldVariant       = "variant"
)

// FormAccount - data stored in a form account
var FormAccount = layout.MustSchema(
	"FormAccount",
	layout.Field{Name: FieldCreator, Kind: field.Identifier},
	layout.Field{Name: FieldCode, Kind: field.Text},
	layout.Field{Name: FieldSchemaURL, Kind: field.Text},
	layout.Field{Name: FieldEncryptionKey, Kind: field.ByteVector, Since: layout.VersionEncrypted},
	layout.Field{Name: FieldBump, Kind: field.U8},
)

// SubmissionAccount - data stored in a submission account
var SubmissionAccount = layout.MustSchema(
	"SubmissionAccount",
	layout.Field{Name: FieldForm, Kind: field.Identifier},
	layout.Field{Name: FieldAuthor, Kind: field.Identifier},
	layout.Field{Name: FieldTimestamp, Kind: field.U64},
	layout.Field{Name: FieldContentURL, Kind: field.Text},
	layout.Field{Name: FieldSymmetricKey, Kind: field.ByteVector, Since: layout.VersionEncrypted},
	layout.Field{Name: FieldBump, Kind: field.U8},
)

// CreateFormInstruction - payload of the create form instruction
var CreateFormInstruction = layout.MustSchema(
	"CreateFormInstruction",
	layout.Field{Name: FieldVariant, Kind: field.U8},
	layout.Field{Name: FieldCode, Kind: field.Text},
	layout.Field{Name: FieldSchemaURL, Kind: field.Text},
	layout.Field{Name: FieldEncryptionKey, Kind: field.ByteVector, Since: layout.VersionEncrypted},
)

// CreateSubmissionInstruction - payload of the create submission instruction
var CreateSubmissionInstruction = layout.MustSchema(
	"CreateSubmissionInstruction",
	layout.Field{Name: FieldVariant, Kind: field.U8},
	layout.Field{Name: FieldContentURL, Kind: field.Text},
)
