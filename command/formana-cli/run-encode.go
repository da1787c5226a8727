// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/formana/formana/layout"
	"github.com/formana/formana/record"
)

type encodeReply struct {
	Version layout.Version `json:"version"`
	Variant string         `json:"variant"`
	Bytes   int            `json:"bytes"`
	Payload string         `json:"payload"`
}

func runEncodeForm(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

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

	create := record.CreateForm{
		Code:          code,
		SchemaURL:     schemaURL,
		EncryptionKey: key,
	}
	payload, err := create.Pack(m.version)
	if nil != err {
		return err
	}

	return printEncoded(m, record.VariantCreateForm, payload)
}

func runEncodeSubmission(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contentURL, err := checkURL(c.String("content-url"), ErrEmptyContentURL)
	if nil != err {
		return err
	}

	create := record.CreateSubmission{
		ContentURL: contentURL,
	}
	payload, err := create.Pack(layout.VersionPlain)
	if nil != err {
		return err
	}

	return printEncoded(m, record.VariantCreateSubmission, payload)
}

// the span is recomputed from the payload so the output shows what a
// decoder will consume
func printEncoded(m *metadata, variant record.Variant, payload []byte) error {
	n, err := layout.Span(variant.Schema(), m.version, payload)
	if nil != err {
		return err
	}
	if n != len(payload) {
		return ErrUnexpectedLength
	}

	return printJson(m, encodeReply{
		Version: m.version,
		Variant: variant.String(),
		Bytes:   n,
		Payload: hex.EncodeToString(payload),
	})
}
