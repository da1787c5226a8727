// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"

	"github.com/formana/formana/account"
	"github.com/formana/formana/address"
	"github.com/formana/formana/fault"
	"github.com/formana/formana/record"
)

// FormReply - JSON data to output for a form account
type FormReply struct {
	Address account.Identifier `json:"address"`
	Bump    uint8              `json:"bump"`
	Bytes   int                `json:"bytes"`
	Form    *record.Form       `json:"form"`
}

// SubmissionReply - JSON data to output for a submission account
type SubmissionReply struct {
	Address    account.Identifier `json:"address"`
	Bump       uint8              `json:"bump"`
	Bytes      int                `json:"bytes"`
	Submission *record.Submission `json:"submission"`
}

// Form - fetch and decode a creator's form
func (client *Client) Form(ctx context.Context, creator account.Identifier, code string) (*FormReply, error) {

	derived, err := address.FormAddress(client.program, creator, code)
	if nil != err {
		return nil, err
	}

	data, err := client.ledger.AccountBytes(ctx, derived.Address)
	if nil != err {
		return nil, err
	}

	form, n, err := record.UnpackForm(client.version, data)
	if nil != err {
		return nil, err
	}

	// stored bump must be the canonical one
	if form.Bump != derived.Bump {
		return nil, fault.ErrAddressMismatch
	}

	return &FormReply{
		Address: derived.Address,
		Bump:    derived.Bump,
		Bytes:   n,
		Form:    form,
	}, nil
}

// Submission - fetch and decode an author's submission to a form
func (client *Client) Submission(ctx context.Context, author account.Identifier, code string) (*SubmissionReply, error) {

	derived, err := address.SubmissionAddress(client.program, author, code)
	if nil != err {
		return nil, err
	}

	data, err := client.ledger.AccountBytes(ctx, derived.Address)
	if nil != err {
		return nil, err
	}

	submission, n, err := record.UnpackSubmission(client.version, data)
	if nil != err {
		return nil, err
	}

	if submission.Bump != derived.Bump {
		return nil, fault.ErrAddressMismatch
	}

	return &SubmissionReply{
		Address:    derived.Address,
		Bump:       derived.Bump,
		Bytes:      n,
		Submission: submission,
	}, nil
}
