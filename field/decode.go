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

// Decode - read a single value of the given kind starting at offset
//
// returns the value and the number of bytes consumed, the value has
// the same Go type that Encode accepts for the kind.  Byte vectors
// are copied so the result does not alias the buffer.
func Decode(kind Kind, buffer []byte, offset int) (interface{}, int, error) {
	switch kind {
	case U8:
		return ReadU8(buffer, offset)
	case U64:
		return ReadU64(buffer, offset)
	case Identifier:
		return ReadIdentifier(buffer, offset)
	case Text:
		return ReadText(buffer, offset)
	case ByteVector:
		return ReadBytes(buffer, offset)
	default:
		return nil, 0, fault.ErrInvalidKind
	}
}

// Span - number of bytes a value of the given kind occupies at offset
//
// performs the same checks as Decode without producing the value
func Span(kind Kind, buffer []byte, offset int) (int, error) {
	if n, ok := kind.FixedSize(); ok {
		if !fits(buffer, offset, n) {
			return 0, fault.ErrBufferUnderrun
		}
		return n, nil
	}

	switch kind {
	case Text:
		data, n, err := readPrefixed(buffer, offset)
		if nil != err {
			return 0, err
		}
		if !utf8.Valid(data) {
			return 0, fault.ErrInvalidEncoding
		}
		return n, nil
	case ByteVector:
		_, n, err := readPrefixed(buffer, offset)
		return n, err
	default:
		return 0, fault.ErrInvalidKind
	}
}

// ReadU8 - read one byte
func ReadU8(buffer []byte, offset int) (uint8, int, error) {
	if !fits(buffer, offset, u8Size) {
		return 0, 0, fault.ErrBufferUnderrun
	}
	return buffer[offset], u8Size, nil
}

// ReadU64 - read eight bytes little-endian
func ReadU64(buffer []byte, offset int) (uint64, int, error) {
	if !fits(buffer, offset, u64Size) {
		return 0, 0, fault.ErrBufferUnderrun
	}
	return binary.LittleEndian.Uint64(buffer[offset:]), u64Size, nil
}

// ReadIdentifier - read 32 raw bytes
func ReadIdentifier(buffer []byte, offset int) (account.Identifier, int, error) {
	var id account.Identifier
	if !fits(buffer, offset, identifierSize) {
		return id, 0, fault.ErrBufferUnderrun
	}
	copy(id[:], buffer[offset:offset+identifierSize])
	return id, identifierSize, nil
}

// ReadText - read Uint32(length) + UTF-8 bytes
func ReadText(buffer []byte, offset int) (string, int, error) {
	data, n, err := readPrefixed(buffer, offset)
	if nil != err {
		return "", 0, err
	}
	if !utf8.Valid(data) {
		return "", 0, fault.ErrInvalidEncoding
	}
	return string(data), n, nil
}

// ReadBytes - read Uint32(length) + raw bytes
func ReadBytes(buffer []byte, offset int) ([]byte, int, error) {
	data, n, err := readPrefixed(buffer, offset)
	if nil != err {
		return nil, 0, err
	}
	result := make([]byte, len(data))
	copy(result, data)
	return result, n, nil
}

// returns a sub-slice of buffer holding the payload and the total
// bytes consumed including the prefix
func readPrefixed(buffer []byte, offset int) ([]byte, int, error) {
	if !fits(buffer, offset, lengthPrefixSize) {
		return nil, 0, fault.ErrBufferUnderrun
	}
	length := binary.LittleEndian.Uint32(buffer[offset:])
	start := offset + lengthPrefixSize

	// compare as uint64 so a huge length cannot overflow int
	if uint64(length) > uint64(len(buffer)-start) {
		return nil, 0, fault.ErrBufferUnderrun
	}
	end := start + int(length)
	return buffer[start:end], lengthPrefixSize + int(length), nil
}
