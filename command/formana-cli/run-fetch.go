// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/urfave/cli"
)

func runForm(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	creator, err := accountOrKeypair(m, "creator", c.String("creator"))
	if nil != err {
		return err
	}

	code, err := checkCode(c.String("code"))
	if nil != err {
		return err
	}

	client, err := newClient(m, nil)
	if nil != err {
		return err
	}

	response, err := client.Form(context.Background(), creator, code)
	if nil != err {
		return err
	}

	return printJson(m, response)
}

func runSubmission(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	author, err := accountOrKeypair(m, "author", c.String("author"))
	if nil != err {
		return err
	}

	code, err := checkCode(c.String("code"))
	if nil != err {
		return err
	}

	client, err := newClient(m, nil)
	if nil != err {
		return err
	}

	response, err := client.Submission(context.Background(), author, code)
	if nil != err {
		return err
	}

	return printJson(m, response)
}
