// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/formana/formana/account"
	"github.com/formana/formana/fault"
)

// Encode - write a single value of the given kind at offset
//
// returns the number of bytes written.  The accepted Go types are:
//   U8 → uint8, U64 → uint64, Identifier → account.Identifier,
//   Text → string, ByteVector → []byte
func Encode(kind Kind, value interface{}, buffer []byte, offset int) (int, error) {
	switch kind {
	case U8:
		v, ok := value.(uint8)
		if !ok {
			return 0, fault.ErrFieldTypeMismatch
		}
		return PutU8(buffer, offset, v)

	case U64:
		v, ok := value.(uint64)
		if !ok {
			return 0, fault.ErrFieldTypeMismatch
		}
		return PutU64(buffer, offset, v)

	case Identifier:
		v, ok := value.(account.Identifier)
		if !ok {
			return 0, fault.ErrFieldTypeMismatch
		}
		return PutIdentifier(buffer, offset, v)

	case Text:
		v, ok := value.(string)
		if !ok {
			return 0, fault.ErrFieldTypeMismatch
		}
		return PutText(buffer, offset, v)

	case ByteVector:
		v, ok := value.([]byte)
		if !ok {
			return 0, fault.ErrFieldTypeMismatch
		}
		return PutBytes(buffer, offset, v)

	default:
		return 0, fault.ErrInvalidKind
	}
}

// Size - exact number of bytes Encode would write for a value
func Size(kind Kind, value interface{}) (int, error) {
	switch kind {
	case U8:
		if _, ok := value.(uint8); !ok {
			return 0, fault.ErrFieldTypeMismatch
		}
		return u8Size, nil

	case U64:
		if _, ok := value.(uint64); !ok {
			return 0, fault.ErrFieldTypeMismatch
		}
		return u64Size, nil

	case Identifier:
		if _, ok := value.(account.Identifier); !ok {
			return 0, fault.ErrFieldTypeMismatch
		}
		return identifierSize, nil

	case Text:
		v, ok := value.(string)
		if !ok {
			return 0, fault.ErrFieldTypeMismatch
		}
		return prefixedSize(len(v))

	case ByteVector:
		v, ok := value.([]byte)
		if !ok {
			return 0, fault.ErrFieldTypeMismatch
		}
		return prefixedSize(len(v))

	default:
		return 0, fault.ErrInvalidKind
	}
}

// PutU8 - write one byte
func PutU8(buffer []byte, offset int, value uint8) (int, error) {
	if !fits(buffer, offset, u8Size) {
		return 0, fault.ErrBufferTooSmall
	}
	buffer[offset] = value
	return u8Size, nil
}

// PutU64 - write eight bytes little-endian
func PutU64(buffer []byte, offset int, value uint64) (int, error) {
	if !fits(buffer, offset, u64Size) {
		return 0, fault.ErrBufferTooSmall
	}
	binary.LittleEndian.PutUint64(buffer[offset:], value)
	return u64Size, nil
}

// PutIdentifier - write the 32 raw bytes, no length prefix
func PutIdentifier(buffer []byte, offset int, value account.Identifier) (int, error) {
	if !fits(buffer, offset, identifierSize) {
		return 0, fault.ErrBufferTooSmall
	}
	copy(buffer[offset:], value[:])
	return identifierSize, nil
}

// PutText - write Uint32(length) followed by the UTF-8 bytes
func PutText(buffer []byte, offset int, value string) (int, error) {
	if !utf8.ValidString(value) {
		return 0, fault.ErrInvalidEncoding
	}
	return putPrefixed(buffer, offset, []byte(value))
}

// PutBytes - write Uint32(length) followed by the raw bytes
func PutBytes(buffer []byte, offset int, value []byte) (int, error) {
	return putPrefixed(buffer, offset, value)
}

func putPrefixed(buffer []byte, offset int, data []byte) (int, error) {
	n, err := prefixedSize(len(data))
	if nil != err {
		return 0, err
	}
	if !fits(buffer, offset, n) {
		return 0, fault.ErrBufferTooSmall
	}
	binary.LittleEndian.PutUint32(buffer[offset:], uint32(len(data)))
	copy(buffer[offset+lengthPrefixSize:], data)
	return n, nil
}

func prefixedSize(length int) (int, error) {
	if uint64(length) > MaximumLength {
		return 0, fault.ErrValueTooLong
	}
	return lengthPrefixSize + length, nil
}

// true if n bytes starting at offset lie inside the buffer
func fits(buffer []byte, offset int, n int) bool {
	if offset < 0 || offset > len(buffer) {
		return false
	}
	return uint64(len(buffer)-offset) >= uint64(n)
}
