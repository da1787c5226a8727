// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"
	"encoding/hex"

	"github.com/formana/formana/account"
	"github.com/formana/formana/address"
	"github.com/formana/formana/instruction"
	"github.com/formana/formana/ledger"
)

// CreateFormData - arguments to create a form
type CreateFormData struct {
	Creator       ledger.Signer
	Payer         ledger.Signer // nil if the creator pays
	Code          string
	SchemaURL     string
	EncryptionKey []byte
}

// CreateFormReply - JSON data to output after form creation
type CreateFormReply struct {
	Form      account.Identifier `json:"form"`
	Bump      uint8              `json:"bump"`
	Payload   string             `json:"payload"`
	Signature string             `json:"signature"`
}

// CreateSubmissionData - arguments to submit to a form
type CreateSubmissionData struct {
	Author     ledger.Signer
	Payer      ledger.Signer // nil if the author pays
	Creator    account.Identifier
	Code       string
	ContentURL string
}

// CreateSubmissionReply - JSON data to output after submission
type CreateSubmissionReply struct {
	Form       account.Identifier `json:"form"`
	Submission account.Identifier `json:"submission"`
	Bump       uint8              `json:"bump"`
	Payload    string             `json:"payload"`
	Signature  string             `json:"signature"`
}

// CreateForm - derive, build and submit a create form instruction
func (client *Client) CreateForm(ctx context.Context, createConfig *CreateFormData) (*CreateFormReply, error) {

	creator := createConfig.Creator.Identifier()
	form, err := address.FormAddress(client.program, creator, createConfig.Code)
	if nil != err {
		return nil, err
	}

	signers, payer := signersAndPayer(createConfig.Creator, createConfig.Payer)

	accounts := instruction.DefaultCreateFormAccounts(creator, form.Address, payer)
	i, err := instruction.BuildCreateForm(client.program, client.version, accounts, createConfig.Code, createConfig.SchemaURL, createConfig.EncryptionKey)
	if nil != err {
		return nil, err
	}

	client.trace("CreateForm Request", i.Accounts())

	result, err := client.ledger.Submit(ctx, []*instruction.Instruction{i}, signers)
	if nil != err {
		return nil, err
	}

	client.trace("CreateForm Reply", result)

	return &CreateFormReply{
		Form:      form.Address,
		Bump:      form.Bump,
		Payload:   hex.EncodeToString(i.Data()),
		Signature: result.Signature,
	}, nil
}

// CreateSubmission - derive, build and submit a create submission instruction
func (client *Client) CreateSubmission(ctx context.Context, submitConfig *CreateSubmissionData) (*CreateSubmissionReply, error) {

	author := submitConfig.Author.Identifier()
	form, err := address.FormAddress(client.program, submitConfig.Creator, submitConfig.Code)
	if nil != err {
		return nil, err
	}
	submission, err := address.SubmissionAddress(client.program, author, submitConfig.Code)
	if nil != err {
		return nil, err
	}

	signers, payer := signersAndPayer(submitConfig.Author, submitConfig.Payer)

	accounts := instruction.DefaultCreateSubmissionAccounts(author, form.Address, submission.Address, payer)
	i, err := instruction.BuildCreateSubmission(client.program, accounts, submitConfig.ContentURL)
	if nil != err {
		return nil, err
	}

	client.trace("CreateSubmission Request", i.Accounts())

	result, err := client.ledger.Submit(ctx, []*instruction.Instruction{i}, signers)
	if nil != err {
		return nil, err
	}

	client.trace("CreateSubmission Reply", result)

	return &CreateSubmissionReply{
		Form:       form.Address,
		Submission: submission.Address,
		Bump:       submission.Bump,
		Payload:    hex.EncodeToString(i.Data()),
		Signature:  result.Signature,
	}, nil
}

// the payer signs first so that it becomes the fee payer
func signersAndPayer(owner ledger.Signer, payer ledger.Signer) ([]ledger.Signer, account.Identifier) {
	if nil == payer || payer.Identifier() == owner.Identifier() {
		return []ledger.Signer{owner}, owner.Identifier()
	}
	return []ledger.Signer{payer, owner}, payer.Identifier()
}
