// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/formana/formana/account"
	"github.com/formana/formana/fault"
	"github.com/formana/formana/layout"
	"github.com/formana/formana/util"
)

// basic defaults (files are relative to the configuration file directory)
const (
	defaultEndpoint      = "http://localhost:8899"
	defaultCommitment    = "confirmed"
	defaultSchemaVersion = uint64(layout.VersionEncrypted)
	defaultKeypairFile   = "id.json"

	defaultLogDirectory = "log"
	defaultLogFile      = "formana.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// RPCType - ledger connection
type RPCType struct {
	Endpoint          string  `gluamapper:"endpoint" json:"endpoint"`
	Commitment        string  `gluamapper:"commitment" json:"commitment"`
	SkipPreflight     bool    `gluamapper:"skip_preflight" json:"skip_preflight"`
	RequestsPerSecond float64 `gluamapper:"requests_per_second" json:"requests_per_second"`
	BlockhashSeconds  uint64  `gluamapper:"blockhash_seconds" json:"blockhash_seconds"`
}

// IdentityType - signing key files
//
// the payer key file is optional, without it the keypair pays fees
type IdentityType struct {
	Keypair string `gluamapper:"keypair" json:"keypair"`
	Payer   string `gluamapper:"payer" json:"payer"`
}

// Configuration - the decoded configuration file
type Configuration struct {
	ProgramID     string               `gluamapper:"program_id" json:"program_id"`
	SchemaVersion uint64               `gluamapper:"schema_version" json:"schema_version"`
	RPC           RPCType              `gluamapper:"rpc" json:"rpc"`
	Identity      IdentityType         `gluamapper:"identity" json:"identity"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	// derived from the above
	Program account.Identifier `gluamapper:"-" json:"-"`
	Version layout.Version     `gluamapper:"-" json:"-"`
}

// Get - read decode and verify the configuration
func Get(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// relative files are relative to the configuration file
	directory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		SchemaVersion: defaultSchemaVersion,
		RPC: RPCType{
			Endpoint:   defaultEndpoint,
			Commitment: defaultCommitment,
		},
		Identity: IdentityType{
			Keypair: defaultKeypairFile,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.Program, err = account.IdentifierFromBase58(options.ProgramID)
	if nil != err {
		return nil, fmt.Errorf("program_id: %q: %w", options.ProgramID, err)
	}

	options.Version, err = layout.VersionFromUint(options.SchemaVersion)
	if nil != err {
		return nil, fmt.Errorf("schema_version: %d: %w", options.SchemaVersion, err)
	}

	options.RPC.Commitment = strings.ToLower(options.RPC.Commitment)
	if _, err := Commitment(options.RPC.Commitment); nil != err {
		return nil, fmt.Errorf("rpc.commitment: %q: %w", options.RPC.Commitment, err)
	}

	if options.RPC.RequestsPerSecond < 0 {
		return nil, fmt.Errorf("rpc.requests_per_second: %v: %w", options.RPC.RequestsPerSecond, fault.ErrInvalidRate)
	}

	// force all relevant items to be absolute paths
	mustBeAbsolute := []*string{
		&options.Identity.Keypair,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(directory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.Identity.Payer,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(directory, *f)
		}
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("logging.file: %q is not plain name", options.Logging.File)
	}

	return options, nil
}

// BlockhashTTL - how long a fetched blockhash may be reused
func (r RPCType) BlockhashTTL() time.Duration {
	return time.Duration(r.BlockhashSeconds) * time.Second
}

// Commitment - convert a commitment name
func Commitment(name string) (rpc.CommitmentType, error) {
	switch c := rpc.CommitmentType(name); c {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
		return c, nil
	default:
		return "", fault.ErrInvalidCommitment
	}
}
