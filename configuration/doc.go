// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must return a table, for example:
//
//   local M = {}
//   M.program_id = "Ba81kSwqCSWckTBbMAiA29e5T4ZwVrmRFGJHJFgJXHqT"
//   M.schema_version = 2
//   M.rpc = {
//       endpoint = "http://localhost:8899",
//       commitment = "confirmed",
//       blockhash_seconds = 20,
//   }
//   M.identity = {
//       keypair = "~/.config/solana/id.json",
//       payer = "payer.json",
//   }
//   return M
package configuration
