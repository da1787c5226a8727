// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - assemble form program instructions
//
// An instruction is the program identifier, an ordered list of account
// references and the encoded payload.  The program reads accounts by
// position so the builders fix the order; signer and writable flags are
// chosen by the caller.
//
//   CreateForm:        authority, form, system program, payer
//   CreateSubmission:  authority, form, submission, system program, payer
package instruction
