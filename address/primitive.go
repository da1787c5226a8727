// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/sha256"

	"filippo.io/edwards25519"

	"github.com/formana/formana/account"
)

// marker appended to every derivation digest
const derivationMarker = "ProgramDerivedAddress"

// Primitive - the cryptographic operations used by derivation
type Primitive interface {
	// hash of seeds, bump and program
	Digest(programID account.Identifier, seeds [][]byte, bump byte) account.Identifier

	// true if a key pair could own the candidate
	IsOnCurve(candidate account.Identifier) bool
}

type ed25519Primitive struct{}

// Ed25519 - the primitive used by the ledger
var Ed25519 Primitive = ed25519Primitive{}

func (ed25519Primitive) Digest(programID account.Identifier, seeds [][]byte, bump byte) account.Identifier {
	h := sha256.New()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write([]byte{bump})
	h.Write(programID[:])
	h.Write([]byte(derivationMarker))

	var id account.Identifier
	copy(id[:], h.Sum(nil))
	return id
}

// non-canonical encodings of valid points count as on the curve
func (ed25519Primitive) IsOnCurve(candidate account.Identifier) bool {
	_, err := new(edwards25519.Point).SetBytes(candidate[:])
	return nil == err
}
