// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/formana/formana/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// identities used across tests
var (
	ProgramID = account.MustIdentifierFromBase58("Ba81kSwqCSWckTBbMAiA29e5T4ZwVrmRFGJHJFgJXHqT")

	// derived from zero and all 0x01 seeds
	CreatorKey = ed25519.NewKeyFromSeed(make([]byte, ed25519.SeedSize))
	PayerKey   = ed25519.NewKeyFromSeed(seed(0x01))

	Creator = identifier(CreatorKey)
	Payer   = identifier(PayerKey)
)

func seed(b byte) []byte {
	s := make([]byte, ed25519.SeedSize)
	for i := range s {
		s[i] = b
	}
	return s
}

func identifier(privateKey ed25519.PrivateKey) account.Identifier {
	id, err := account.IdentifierFromPublicKey(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		panic(err)
	}
	return id
}

// SetupTestLogger - start logging to a temporary directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
