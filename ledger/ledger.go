// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - submit instructions to and read accounts from the ledger
package ledger

//go:generate mockgen -source=ledger.go -destination=mocks/ledger.go -package=mocks

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/formana/formana/account"
	"github.com/formana/formana/instruction"
)

// Client - the operations the form tools need from the ledger
type Client interface {
	Submit(ctx context.Context, instructions []*instruction.Instruction, signers []Signer) (*Result, error)
	AccountBytes(ctx context.Context, address account.Identifier) ([]byte, error)
}

// Endpoint - the subset of the JSON RPC client used by RPC
type Endpoint interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetAccountInfoWithOpts(ctx context.Context, address solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
}

// Result - a submitted transaction
type Result struct {
	Signature string             `json:"signature"`
	Blockhash string             `json:"blockhash"`
	Payer     account.Identifier `json:"payer"`
}
