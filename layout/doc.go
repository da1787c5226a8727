// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package layout - compose fields into record schemas
//
// A schema is an ordered list of named fields; the order is the
// encoding order and there is no padding or framing between fields.
// Some fields only exist from a given schema version onwards so every
// operation takes the version explicitly; nothing in the byte stream
// identifies the version.
//
// Buffers passed to Encode may be larger than needed, Span reports the
// exact length of an encoded record so that only the meaningful prefix
// is transmitted.
package layout
