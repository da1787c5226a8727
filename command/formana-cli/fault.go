// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/formana/formana/fault"
)

// common errors - keep in alphabetic order
const (
	ErrEmptyCode        = fault.InvalidError("form code is required")
	ErrEmptyContentURL  = fault.InvalidError("content url is required")
	ErrEmptyData        = fault.InvalidError("data is required")
	ErrEmptySchemaURL   = fault.InvalidError("schema url is required")
	ErrNoConfiguration  = fault.NotFoundError("command requires a configuration file")
	ErrUnexpectedLength = fault.InvalidError("unexpected trailing data")
)
