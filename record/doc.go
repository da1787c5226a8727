// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the account and instruction layouts of the form program
//
// Account data and instruction payloads are encoded with the layout
// package.  Each layout is a package level schema; the typed structures
// here convert to and from those schemas.
//
// Forms and submissions only carry encryption keys from
// layout.VersionEncrypted onwards.
package record
