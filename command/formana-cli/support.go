// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/formana/formana/account"
	"github.com/formana/formana/command/formana-cli/rpccalls"
	"github.com/formana/formana/configuration"
	"github.com/formana/formana/ledger"
)

func checkCode(code string) (string, error) {
	if "" == code {
		return "", ErrEmptyCode
	}
	return code, nil
}

func checkURL(url string, missing error) (string, error) {
	if "" == url {
		return "", missing
	}
	return url, nil
}

func checkIdentifier(name string, s string) (account.Identifier, error) {
	id, err := account.IdentifierFromBase58(s)
	if nil != err {
		return account.Zero, fmt.Errorf("%s: %q: %w", name, s, err)
	}
	return id, nil
}

// an empty string is a valid empty key
func checkOptionalHex(name string, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if nil != err {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

func checkHexData(s string) ([]byte, error) {
	if "" == s {
		return nil, ErrEmptyData
	}
	return checkOptionalHex("data", s)
}

// keypair signer and an optional separate fee payer
func loadSigners(config *configuration.Configuration) (ledger.Signer, ledger.Signer, error) {
	owner, err := ledger.SignerFromKeygenFile(config.Identity.Keypair)
	if nil != err {
		return nil, nil, fmt.Errorf("identity.keypair: %q: %w", config.Identity.Keypair, err)
	}
	if "" == config.Identity.Payer {
		return owner, nil, nil
	}
	payer, err := ledger.SignerFromKeygenFile(config.Identity.Payer)
	if nil != err {
		return nil, nil, fmt.Errorf("identity.payer: %q: %w", config.Identity.Payer, err)
	}
	return owner, payer, nil
}

// a form program client on the configured ledger
func newClient(m *metadata, payer ledger.Signer) (*rpccalls.Client, error) {
	if nil == m.config {
		return nil, ErrNoConfiguration
	}

	commitment, err := configuration.Commitment(m.config.RPC.Commitment)
	if nil != err {
		return nil, err
	}

	options := ledger.Options{
		Commitment:        commitment,
		SkipPreflight:     m.config.RPC.SkipPreflight,
		RequestsPerSecond: m.config.RPC.RequestsPerSecond,
		BlockhashTTL:      m.config.RPC.BlockhashTTL(),
	}
	if nil != payer {
		options.Payer = payer.Identifier()
	}

	if m.verbose {
		fmt.Fprintf(m.e, "endpoint: %s\n", m.config.RPC.Endpoint)
		fmt.Fprintf(m.e, "program: %s\n", m.program)
		fmt.Fprintf(m.e, "schema version: %d\n", m.version)
	}
	m.log.Infof("endpoint: %s  program: %s", m.config.RPC.Endpoint, m.program)

	client := ledger.Dial(logger.New("ledger"), m.config.RPC.Endpoint, options)
	return rpccalls.NewClient(client, m.program, m.version, m.verbose, m.e), nil
}

// the fetch commands accept an explicit account or fall back to the keypair
func accountOrKeypair(m *metadata, name string, s string) (account.Identifier, error) {
	if "" != s {
		return checkIdentifier(name, s)
	}
	if nil == m.config {
		return account.Zero, ErrNoConfiguration
	}
	owner, _, err := loadSigners(m.config)
	if nil != err {
		return account.Zero, err
	}
	return owner.Identifier(), nil
}
