// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/formana/formana/account"
)

// AccountMeta - an account referenced by an instruction
type AccountMeta struct {
	Address    account.Identifier `json:"address"`
	IsSigner   bool               `json:"isSigner"`
	IsWritable bool               `json:"isWritable"`
}

// Instruction - a single program invocation
type Instruction struct {
	programID account.Identifier
	accounts  []AccountMeta
	data      []byte
}

// New - create an instruction from its parts
func New(programID account.Identifier, accounts []AccountMeta, data []byte) *Instruction {
	i := &Instruction{
		programID: programID,
		accounts:  make([]AccountMeta, len(accounts)),
		data:      make([]byte, len(data)),
	}
	copy(i.accounts, accounts)
	copy(i.data, data)
	return i
}

// ProgramID - the program to invoke
func (i *Instruction) ProgramID() account.Identifier {
	return i.programID
}

// Accounts - the ordered account references
func (i *Instruction) Accounts() []AccountMeta {
	accounts := make([]AccountMeta, len(i.accounts))
	copy(accounts, i.accounts)
	return accounts
}

// Data - the encoded payload
func (i *Instruction) Data() []byte {
	data := make([]byte, len(i.data))
	copy(data, i.data)
	return data
}

// Signers - addresses that must sign, in account order
func (i *Instruction) Signers() []account.Identifier {
	signers := make([]account.Identifier, 0, len(i.accounts))
	for _, meta := range i.accounts {
		if meta.IsSigner {
			signers = append(signers, meta.Address)
		}
	}
	return signers
}
