// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"time"

	"github.com/formana/formana/account"
	"github.com/formana/formana/address"
	"github.com/formana/formana/layout"
)

// Submission - the decoded data of a submission account
type Submission struct {
	Form         account.Identifier `json:"form"`
	Author       account.Identifier `json:"author"`
	Timestamp    uint64             `json:"timestamp"`
	ContentURL   string             `json:"contentUrl"`
	SymmetricKey Key                `json:"symmetricKey,omitempty"`
	Bump         uint8              `json:"bump"`
}

// Values - layout values of the submission
func (submission *Submission) Values() layout.Values {
	return layout.Values{
		FieldForm:         submission.Form,
		FieldAuthor:       submission.Author,
		FieldTimestamp:    submission.Timestamp,
		FieldContentURL:   submission.ContentURL,
		FieldSymmetricKey: submission.SymmetricKey.bytes(),
		FieldBump:         submission.Bump,
	}
}

// Pack - account data of the submission
func (submission *Submission) Pack(version layout.Version) ([]byte, error) {
	err := checkKey(SubmissionAccount, version, FieldSymmetricKey, submission.SymmetricKey)
	if nil != err {
		return nil, err
	}
	return layout.Marshal(SubmissionAccount, version, submission.Values())
}

// Time - the ledger clock value recorded at creation
func (submission *Submission) Time() time.Time {
	return time.Unix(int64(submission.Timestamp), 0).UTC()
}

// Address - the derived account address of the submission
//
// the form code is not stored in the submission so must be supplied
func (submission *Submission) Address(programID account.Identifier, code string) (address.Derived, error) {
	return address.SubmissionAddress(programID, submission.Author, code)
}

// UnpackSubmission - decode submission account data
//
// the returned count is the number of bytes the record occupies
func UnpackSubmission(version layout.Version, data []byte) (*Submission, int, error) {
	n, err := layout.Span(SubmissionAccount, version, data)
	if nil != err {
		return nil, 0, err
	}
	r, err := layout.Decode(SubmissionAccount, version, data[:n])
	if nil != err {
		return nil, 0, err
	}

	submission := &Submission{}
	if submission.Form, err = r.Identifier(FieldForm); nil != err {
		return nil, 0, err
	}
	if submission.Author, err = r.Identifier(FieldAuthor); nil != err {
		return nil, 0, err
	}
	if submission.Timestamp, err = r.U64(FieldTimestamp); nil != err {
		return nil, 0, err
	}
	if submission.ContentURL, err = r.Text(FieldContentURL); nil != err {
		return nil, 0, err
	}
	if SubmissionAccount.Has(version, FieldSymmetricKey) {
		if submission.SymmetricKey, err = r.Bytes(FieldSymmetricKey); nil != err {
			return nil, 0, err
		}
	}
	if submission.Bump, err = r.U8(FieldBump); nil != err {
		return nil, 0, err
	}
	return submission, n, nil
}

// SubmissionAccountSize - bytes to allocate for a new submission account
func SubmissionAccountSize(version layout.Version, contentURL string, symmetricKey []byte) (int, error) {
	err := checkKey(SubmissionAccount, version, FieldSymmetricKey, symmetricKey)
	if nil != err {
		return 0, err
	}
	submission := Submission{
		ContentURL:   contentURL,
		SymmetricKey: symmetricKey,
	}
	return layout.Size(SubmissionAccount, version, submission.Values())
}
