// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - the path relative to directory unless it is
// already absolute
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// IsDirectory - true for an existing directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return nil == err && info.IsDir()
}

// EnsureDirectory - create a private directory and its parents
//
// fails if the path exists and is not a directory
func EnsureDirectory(directory string) error {
	err := os.MkdirAll(directory, 0700)
	if nil != err {
		return err
	}
	if !IsDirectory(directory) {
		return fmt.Errorf("path: %q is not a directory", directory)
	}
	return nil
}
