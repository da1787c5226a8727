// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/formana/formana/fault"
)

// IdentifierLength - number of bytes in an identifier
const IdentifierLength = 32

// Identifier - a 32 byte account address or program identifier
//
// the text form is the base58 encoding of the raw bytes
type Identifier [IdentifierLength]byte

// Zero - the all-zero identifier
var Zero Identifier

// IdentifierFromBytes - copy exactly IdentifierLength bytes
func IdentifierFromBytes(buffer []byte) (Identifier, error) {
	var id Identifier
	if IdentifierLength != len(buffer) {
		return id, fault.ErrInvalidIdentifier
	}
	copy(id[:], buffer)
	return id, nil
}

// IdentifierFromBase58 - decode the text form of an identifier
func IdentifierFromBase58(s string) (Identifier, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return Zero, fault.ErrInvalidIdentifier
	}
	return IdentifierFromBytes(decoded)
}

// MustIdentifierFromBase58 - for constants, panics on invalid input
func MustIdentifierFromBase58(s string) Identifier {
	id, err := IdentifierFromBase58(s)
	if nil != err {
		panic("invalid identifier: " + s)
	}
	return id
}

// IdentifierFromPublicKey - the identifier of an ed25519 key holder
func IdentifierFromPublicKey(publicKey ed25519.PublicKey) (Identifier, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return Zero, fault.ErrInvalidIdentifier
	}
	return IdentifierFromBytes(publicKey)
}

// IdentifierFromSolana - convert from the ledger client key type
func IdentifierFromSolana(key solana.PublicKey) Identifier {
	return Identifier(key)
}

// Solana - convert to the ledger client key type
func (id Identifier) Solana() solana.PublicKey {
	return solana.PublicKey(id)
}

// Bytes - a copy of the identifier as a byte slice
func (id Identifier) Bytes() []byte {
	b := make([]byte, IdentifierLength)
	copy(b, id[:])
	return b
}

// IsZero - true for the all-zero identifier
func (id Identifier) IsZero() bool {
	return id == Zero
}

// Equal - compare two identifiers
func (id Identifier) Equal(other Identifier) bool {
	return bytes.Equal(id[:], other[:])
}

// String - base58 text form
func (id Identifier) String() string {
	return base58.Encode(id[:])
}

// MarshalText - convert an identifier to its base58 JSON form
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert from base58 text form
func (id *Identifier) UnmarshalText(s []byte) error {
	decoded, err := IdentifierFromBase58(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}
