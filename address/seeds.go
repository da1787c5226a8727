// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/formana/formana/account"
)

// SubmissionsSeed - literal final seed of a submission address
const SubmissionsSeed = "submissions"

// FormSeeds - seeds of a form account: creator, code
func FormSeeds(creator account.Identifier, code string) [][]byte {
	return [][]byte{
		creator.Bytes(),
		[]byte(code),
	}
}

// SubmissionSeeds - seeds of a submission account: author, form code, "submissions"
func SubmissionSeeds(author account.Identifier, code string) [][]byte {
	return [][]byte{
		author.Bytes(),
		[]byte(code),
		[]byte(SubmissionsSeed),
	}
}

// FormAddress - the account holding a creator's form
func FormAddress(programID account.Identifier, creator account.Identifier, code string) (Derived, error) {
	return Derive(programID, FormSeeds(creator, code))
}

// SubmissionAddress - the account holding an author's submission to a form
//
// the ledger keys submissions by author and form code, so an author
// has one submission per form code
func SubmissionAddress(programID account.Identifier, author account.Identifier, code string) (Derived, error) {
	return Derive(programID, SubmissionSeeds(author, code))
}
