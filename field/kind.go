// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"github.com/formana/formana/account"
)

// Kind - type code for a field
type Kind uint8

// enumerate the possible field kinds
const (
	// null marks beginning of list - not a valid kind
	nullKind = Kind(iota)

	U8         = Kind(iota) // one byte unsigned
	U64        = Kind(iota) // eight byte little-endian unsigned
	Identifier = Kind(iota) // 32 raw bytes
	Text       = Kind(iota) // Uint32(length) + UTF-8 bytes
	ByteVector = Kind(iota) // Uint32(length) + raw bytes

	// this item must be last
	invalidKind = Kind(iota)
)

// byte sizes for fixed parts of the encodings
const (
	lengthPrefixSize = 4
	u8Size           = 1
	u64Size          = 8
	identifierSize   = account.IdentifierLength

	// MaximumLength - largest payload a length prefix can describe
	MaximumLength = 1<<32 - 1
)

var kindNames = [...]string{
	nullKind:    "null",
	U8:          "u8",
	U64:         "u64",
	Identifier:  "identifier",
	Text:        "text",
	ByteVector:  "bytes",
	invalidKind: "invalid",
}

// Valid - true for kinds that can be encoded
func (k Kind) Valid() bool {
	return k > nullKind && k < invalidKind
}

// String - name of the kind
func (k Kind) String() string {
	if k >= invalidKind {
		return kindNames[invalidKind]
	}
	return kindNames[k]
}

// FixedSize - encoded size of fixed width kinds
//
// returns false for length-prefixed kinds
func (k Kind) FixedSize() (int, bool) {
	switch k {
	case U8:
		return u8Size, true
	case U64:
		return u64Size, true
	case Identifier:
		return identifierSize, true
	default:
		return 0, false
	}
}

// MinimumSize - the smallest possible encoding of the kind
func (k Kind) MinimumSize() int {
	if n, ok := k.FixedSize(); ok {
		return n
	}
	return lengthPrefixSize
}
