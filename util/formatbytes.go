// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - small helpers shared by commands and tests
package util

import (
	"fmt"
	"strings"
)

const bytesPerLine = 8

// FormatBytes - Go source of a byte slice literal so that a generated
// packing can be pasted into a test as the expected value
func FormatBytes(name string, data []byte) string {
	var b strings.Builder
	b.WriteString(name + " := []byte{")
	for i, c := range data {
		if 0 == i%bytesPerLine {
			b.WriteString("\n\t")
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "0x%02x,", c)
	}
	b.WriteString("\n}")
	return b.String()
}
