// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/formana/formana/account"
	"github.com/formana/formana/layout"
	"github.com/formana/formana/record"
)

// SystemProgramID - the ledger's account creation program
var SystemProgramID = account.Zero

// CreateFormAccounts - accounts of the create form instruction
type CreateFormAccounts struct {
	Authority     AccountMeta
	Form          AccountMeta
	SystemProgram AccountMeta
	Payer         AccountMeta
}

// CreateSubmissionAccounts - accounts of the create submission instruction
type CreateSubmissionAccounts struct {
	Authority     AccountMeta
	Form          AccountMeta
	Submission    AccountMeta
	SystemProgram AccountMeta
	Payer         AccountMeta
}

// DefaultCreateFormAccounts - the flags the program checks for
func DefaultCreateFormAccounts(authority account.Identifier, form account.Identifier, payer account.Identifier) CreateFormAccounts {
	return CreateFormAccounts{
		Authority:     AccountMeta{Address: authority, IsSigner: true},
		Form:          AccountMeta{Address: form, IsWritable: true},
		SystemProgram: AccountMeta{Address: SystemProgramID},
		Payer:         AccountMeta{Address: payer, IsSigner: true, IsWritable: true},
	}
}

// DefaultCreateSubmissionAccounts - the flags the program checks for
//
// the form must be writable as well as the new submission
func DefaultCreateSubmissionAccounts(authority account.Identifier, form account.Identifier, submission account.Identifier, payer account.Identifier) CreateSubmissionAccounts {
	return CreateSubmissionAccounts{
		Authority:     AccountMeta{Address: authority, IsSigner: true},
		Form:          AccountMeta{Address: form, IsWritable: true},
		Submission:    AccountMeta{Address: submission, IsWritable: true},
		SystemProgram: AccountMeta{Address: SystemProgramID},
		Payer:         AccountMeta{Address: payer, IsSigner: true, IsWritable: true},
	}
}

func (a CreateFormAccounts) ordered() []AccountMeta {
	return []AccountMeta{
		a.Authority,
		a.Form,
		a.SystemProgram,
		a.Payer,
	}
}

func (a CreateSubmissionAccounts) ordered() []AccountMeta {
	return []AccountMeta{
		a.Authority,
		a.Form,
		a.Submission,
		a.SystemProgram,
		a.Payer,
	}
}

// BuildCreateForm - a create form instruction
//
// encryptionKey must be empty for layout.VersionPlain
func BuildCreateForm(programID account.Identifier, version layout.Version, accounts CreateFormAccounts, code string, schemaURL string, encryptionKey []byte) (*Instruction, error) {
	c := record.CreateForm{
		Code:          code,
		SchemaURL:     schemaURL,
		EncryptionKey: encryptionKey,
	}
	data, err := c.Pack(version)
	if nil != err {
		return nil, err
	}
	return &Instruction{
		programID: programID,
		accounts:  accounts.ordered(),
		data:      data,
	}, nil
}

// BuildCreateSubmission - a create submission instruction
func BuildCreateSubmission(programID account.Identifier, accounts CreateSubmissionAccounts, contentURL string) (*Instruction, error) {
	c := record.CreateSubmission{
		ContentURL: contentURL,
	}

	// payload is identical in every version
	data, err := c.Pack(layout.VersionPlain)
	if nil != err {
		return nil, err
	}
	return &Instruction{
		programID: programID,
		accounts:  accounts.ordered(),
		data:      data,
	}, nil
}
