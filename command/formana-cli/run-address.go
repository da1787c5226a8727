// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/formana/formana/account"
	"github.com/formana/formana/address"
)

type addressReply struct {
	Program account.Identifier `json:"program"`
	Owner   account.Identifier `json:"owner"`
	Code    string             `json:"code"`
	Address account.Identifier `json:"address"`
	Bump    uint8              `json:"bump"`
}

func runFormAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	creator, err := checkIdentifier("creator", c.String("creator"))
	if nil != err {
		return err
	}

	code, err := checkCode(c.String("code"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "creator: %s\n", creator)
		fmt.Fprintf(m.e, "code: %q\n", code)
	}

	derived, err := address.FormAddress(m.program, creator, code)
	if nil != err {
		return err
	}

	return printJson(m, addressReply{
		Program: m.program,
		Owner:   creator,
		Code:    code,
		Address: derived.Address,
		Bump:    derived.Bump,
	})
}

func runSubmissionAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	author, err := checkIdentifier("author", c.String("author"))
	if nil != err {
		return err
	}

	code, err := checkCode(c.String("code"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "author: %s\n", author)
		fmt.Fprintf(m.e, "code: %q\n", code)
	}

	derived, err := address.SubmissionAddress(m.program, author, code)
	if nil != err {
		return err
	}

	return printJson(m, addressReply{
		Program: m.program,
		Owner:   author,
		Code:    code,
		Address: derived.Address,
		Bump:    derived.Bump,
	})
}
