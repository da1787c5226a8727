// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/gagliardetto/solana-go"

	"github.com/formana/formana/instruction"
)

// ToSolana - convert an instruction for the JSON RPC transaction builder
func ToSolana(i *instruction.Instruction) solana.Instruction {
	accounts := i.Accounts()
	metas := make(solana.AccountMetaSlice, 0, len(accounts))
	for _, meta := range accounts {
		metas = append(metas, &solana.AccountMeta{
			PublicKey:  meta.Address.Solana(),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}
	return solana.NewInstruction(i.ProgramID().Solana(), metas, i.Data())
}
