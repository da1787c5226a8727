// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/formana/formana/account"
	"github.com/formana/formana/fault"
	"github.com/formana/formana/instruction"
)

var _ Client = (*RPC)(nil)

// Options - behaviour of the RPC client
type Options struct {
	Commitment        rpc.CommitmentType
	SkipPreflight     bool
	RequestsPerSecond float64

	// reuse a fetched blockhash for this long, zero fetches every time
	BlockhashTTL time.Duration

	// fee payer, zero selects the first signer
	Payer account.Identifier
}

// RPC - a ledger client over JSON RPC
type RPC struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	blockhashes *cache.Cache
	endpoint    Endpoint
	options     Options
}

// New - create a client on an endpoint
//
// a zero RequestsPerSecond disables request pacing
func New(log *logger.L, endpoint Endpoint, options Options) *RPC {
	if "" == options.Commitment {
		options.Commitment = rpc.CommitmentConfirmed
	}

	var limiter *rate.Limiter
	if options.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(options.RequestsPerSecond), 1)
	}

	var blockhashes *cache.Cache
	if options.BlockhashTTL > 0 {
		blockhashes = cache.New(options.BlockhashTTL, 2*options.BlockhashTTL)
	}

	return &RPC{
		Log:         log,
		Limiter:     limiter,
		blockhashes: blockhashes,
		endpoint:    endpoint,
		options:     options,
	}
}

// Dial - create a client for an endpoint URL
func Dial(log *logger.L, url string, options Options) *RPC {
	return New(log, rpc.New(url), options)
}

// Submit - sign and send instructions as one transaction
//
// the transaction is sent once; confirmation and resubmission are left
// to the caller
func (r *RPC) Submit(ctx context.Context, instructions []*instruction.Instruction, signers []Signer) (*Result, error) {
	if 0 == len(instructions) {
		return nil, fault.ErrNoInstructions
	}
	if 0 == len(signers) {
		return nil, fault.ErrMissingSigner
	}

	payer := r.options.Payer
	if payer.IsZero() {
		payer = signers[0].Identifier()
	}

	blockhash, err := r.latestBlockhash(ctx)
	if nil != err {
		return nil, err
	}

	converted := make([]solana.Instruction, 0, len(instructions))
	for _, i := range instructions {
		converted = append(converted, ToSolana(i))
	}

	tx, err := solana.NewTransaction(converted, blockhash, solana.TransactionPayer(payer.Solana()))
	if nil != err {
		return nil, err
	}

	err = sign(tx, signers)
	if nil != err {
		return nil, err
	}

	r.Log.Debugf("submit: payer: %s  instructions: %d  blockhash: %s", payer, len(instructions), blockhash)

	if err := r.wait(ctx); nil != err {
		return nil, err
	}
	signature, err := r.endpoint.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       r.options.SkipPreflight,
		PreflightCommitment: r.options.Commitment,
	})
	if nil != err {
		r.Log.Errorf("send transaction error: %s", err)
		return nil, err
	}

	r.Log.Infof("submitted: %s", signature)

	return &Result{
		Signature: signature.String(),
		Blockhash: blockhash.String(),
		Payer:     payer,
	}, nil
}

// AccountBytes - the raw data of an account
func (r *RPC) AccountBytes(ctx context.Context, address account.Identifier) ([]byte, error) {
	if err := r.wait(ctx); nil != err {
		return nil, err
	}

	result, err := r.endpoint.GetAccountInfoWithOpts(ctx, address.Solana(), &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: r.options.Commitment,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return nil, fault.ErrAccountNotFound
	}
	if nil != err {
		r.Log.Errorf("account: %s  error: %s", address, err)
		return nil, err
	}
	if nil == result || nil == result.Value || nil == result.Value.Data {
		return nil, fault.ErrAccountNotFound
	}

	data := result.Value.Data.GetBinary()
	r.Log.Debugf("account: %s  owner: %s  bytes: %d", address, result.Value.Owner, len(data))

	return data, nil
}

func (r *RPC) latestBlockhash(ctx context.Context) (solana.Hash, error) {
	key := string(r.options.Commitment)
	if nil != r.blockhashes {
		if h, ok := r.blockhashes.Get(key); ok {
			return h.(solana.Hash), nil
		}
	}

	if err := r.wait(ctx); nil != err {
		return solana.Hash{}, err
	}
	latest, err := r.endpoint.GetLatestBlockhash(ctx, r.options.Commitment)
	if nil != err {
		r.Log.Errorf("latest blockhash error: %s", err)
		return solana.Hash{}, err
	}
	if nil == latest || nil == latest.Value {
		return solana.Hash{}, fault.ErrNoBlockhash
	}

	blockhash := latest.Value.Blockhash
	if nil != r.blockhashes {
		r.blockhashes.SetDefault(key, blockhash)
	}
	return blockhash, nil
}

func (r *RPC) wait(ctx context.Context) error {
	if nil == r.Limiter {
		return nil
	}
	return r.Limiter.Wait(ctx)
}

// fill in the signatures in message account order
func sign(tx *solana.Transaction, signers []Signer) error {
	message, err := tx.Message.MarshalBinary()
	if nil != err {
		return err
	}

	keys := make(map[account.Identifier]Signer, len(signers))
	for _, s := range signers {
		keys[s.Identifier()] = s
	}

	required := int(tx.Message.Header.NumRequiredSignatures)
	tx.Signatures = make([]solana.Signature, 0, required)
	for _, key := range tx.Message.AccountKeys[:required] {
		s, ok := keys[account.IdentifierFromSolana(key)]
		if !ok {
			return fmt.Errorf("%w: %s", fault.ErrMissingSigner, key)
		}
		b, err := s.Sign(message)
		if nil != err {
			return err
		}
		var signature solana.Signature
		copy(signature[:], b)
		tx.Signatures = append(tx.Signatures, signature)
	}
	return nil
}
