// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
)

// trace - in verbose mode show a titled request or reply
//
// tracing never fails a call, a value that cannot be rendered is
// reported in place of its JSON
func (client *Client) trace(title string, item interface{}) {
	if !client.verbose || nil == client.handle {
		return
	}

	b, err := json.MarshalIndent(item, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: (%s)\n", title, err)
		return
	}
	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
}
