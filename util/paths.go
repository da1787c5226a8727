// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureAbsolute - ensure the path is absolute
//
// a leading "~/" is the user's home directory, as in key file paths
// written by the ledger tools; other relative paths are joined to
// directory
func EnsureAbsolute(directory string, filePath string) string {
	if home, ok := homeRelative(filePath); ok {
		filePath = home
	} else if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

func homeRelative(filePath string) (string, bool) {
	if "~" != filePath && !strings.HasPrefix(filePath, "~/") {
		return "", false
	}
	home, err := os.UserHomeDir()
	if nil != err {
		return "", false
	}
	return filepath.Join(home, strings.TrimPrefix(filePath, "~")), true
}

// IsRegularFile - true if name exists and is not a directory
func IsRegularFile(name string) bool {
	info, err := os.Stat(name)
	return nil == err && info.Mode().IsRegular()
}
