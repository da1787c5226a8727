// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/formana/formana/command/formana-cli/rpccalls"
)

func runCreateForm(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if nil == m.config {
		return ErrNoConfiguration
	}

	code, err := checkCode(c.String("code"))
	if nil != err {
		return err
	}

	schemaURL, err := checkURL(c.String("schema-url"), ErrEmptySchemaURL)
	if nil != err {
		return err
	}

	key, err := checkOptionalHex("encryption-key", c.String("encryption-key"))
	if nil != err {
		return err
	}

	creator, payer, err := loadSigners(m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "creator: %s\n", creator.Identifier())
		fmt.Fprintf(m.e, "code: %q\n", code)
		fmt.Fprintf(m.e, "schema url: %q\n", schemaURL)
		fmt.Fprintf(m.e, "encryption key: %x\n", key)
	}

	client, err := newClient(m, payer)
	if nil != err {
		return err
	}

	createConfig := &rpccalls.CreateFormData{
		Creator:       creator,
		Payer:         payer,
		Code:          code,
		SchemaURL:     schemaURL,
		EncryptionKey: key,
	}

	response, err := client.CreateForm(context.Background(), createConfig)
	if nil != err {
		m.log.Errorf("create form: %q error: %s", code, err)
		return err
	}
	m.log.Infof("create form: %q  address: %s  signature: %s", code, response.Form, response.Signature)

	return printJson(m, response)
}

func runCreateSubmission(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if nil == m.config {
		return ErrNoConfiguration
	}

	creator, err := checkIdentifier("creator", c.String("creator"))
	if nil != err {
		return err
	}

	code, err := checkCode(c.String("code"))
	if nil != err {
		return err
	}

	contentURL, err := checkURL(c.String("content-url"), ErrEmptyContentURL)
	if nil != err {
		return err
	}

	author, payer, err := loadSigners(m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "author: %s\n", author.Identifier())
		fmt.Fprintf(m.e, "creator: %s\n", creator)
		fmt.Fprintf(m.e, "code: %q\n", code)
		fmt.Fprintf(m.e, "content url: %q\n", contentURL)
	}

	client, err := newClient(m, payer)
	if nil != err {
		return err
	}

	submitConfig := &rpccalls.CreateSubmissionData{
		Author:     author,
		Payer:      payer,
		Creator:    creator,
		Code:       code,
		ContentURL: contentURL,
	}

	response, err := client.CreateSubmission(context.Background(), submitConfig)
	if nil != err {
		m.log.Errorf("create submission: %q error: %s", code, err)
		return err
	}
	m.log.Infof("create submission: %q  address: %s  signature: %s", code, response.Submission, response.Signature)

	return printJson(m, response)
}
