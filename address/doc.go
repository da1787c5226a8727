// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - derive program owned account addresses
//
// An address is the SHA-256 digest of the seeds, a single bump byte,
// the program identifier and a fixed marker string.  The bump is
// scanned downwards from 255 and the first digest that is not a valid
// ed25519 point is the address, so no private key can ever sign for it.
//
// Derivation is a pure function of the program identifier and the
// ordered seeds, any client can predict the on-chain location of a
// form or submission without reading the ledger.
package address
