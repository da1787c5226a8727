// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"io"

	"github.com/formana/formana/account"
	"github.com/formana/formana/layout"
	"github.com/formana/formana/ledger"
)

// Client - the form program on one ledger
type Client struct {
	ledger  ledger.Client
	program account.Identifier
	version layout.Version
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a form program client
func NewClient(client ledger.Client, program account.Identifier, version layout.Version, verbose bool, handle io.Writer) *Client {
	return &Client{
		ledger:  client,
		program: program,
		version: version,
		verbose: verbose,
		handle:  handle,
	}
}
