// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package field - encode and decode primitive field values
//
// All multi-byte integers are little-endian.  Variable length kinds
// carry a four byte length prefix:
//
//   U8          1 byte
//   U64         8 bytes
//   Identifier  32 bytes, no prefix
//   Text        Uint32(length) + UTF-8
//   ByteVector  Uint32(length) + raw bytes
//
// Encoding writes into a caller supplied buffer at a caller supplied
// offset and never allocates; decoding reads from a caller supplied
// buffer and returns the bytes consumed.
package field
