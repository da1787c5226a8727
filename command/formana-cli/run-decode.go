// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/formana/formana/record"
)

type decodeReply struct {
	Variant string      `json:"variant,omitempty"`
	Bytes   int         `json:"bytes"`
	Unused  int         `json:"unused"`
	Record  interface{} `json:"record"`
}

func runDecodeForm(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := checkHexData(c.String("data"))
	if nil != err {
		return err
	}

	form, n, err := record.UnpackForm(m.version, data)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "decoded: %d bytes\n", n)
	}

	return printJson(m, decodeReply{
		Bytes:  n,
		Unused: len(data) - n,
		Record: form,
	})
}

func runDecodeSubmission(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := checkHexData(c.String("data"))
	if nil != err {
		return err
	}

	submission, n, err := record.UnpackSubmission(m.version, data)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "created: %s\n", submission.Time())
	}

	return printJson(m, decodeReply{
		Bytes:  n,
		Unused: len(data) - n,
		Record: submission,
	})
}

func runDecodeInstruction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := checkHexData(c.String("data"))
	if nil != err {
		return err
	}

	variant, err := record.PayloadVariant(data)
	if nil != err {
		return err
	}

	var decoded interface{}
	n := 0
	switch variant {
	case record.VariantCreateForm:
		decoded, n, err = record.UnpackCreateForm(m.version, data)
	case record.VariantCreateSubmission:
		decoded, n, err = record.UnpackCreateSubmission(m.version, data)
	}
	if nil != err {
		return err
	}

	return printJson(m, decodeReply{
		Variant: variant.String(),
		Bytes:   n,
		Unused:  len(data) - n,
		Record:  decoded,
	})
}
