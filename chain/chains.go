// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Bitmark = "bitmark"
	Testing = "testing"
	Local   = "local"
)

// network bytes carried in every transaction envelope
const (
	BitmarkNetwork = 0x17
	TestingNetwork = 0x1e
	LocalNetwork   = 0x1f
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Bitmark, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true for any chain that uses test keys
func IsTesting(name string) bool {
	return Bitmark != name
}

// NetworkByte - the envelope network byte for a chain name
//
// returns zero for an unknown chain
func NetworkByte(name string) byte {
	switch name {
	case Bitmark:
		return BitmarkNetwork
	case Testing:
		return TestingNetwork
	case Local:
		return LocalNetwork
	default:
		return 0
	}
}

// NameFromNetwork - reverse of NetworkByte
func NameFromNetwork(network byte) (string, bool) {
	switch network {
	case BitmarkNetwork:
		return Bitmark, true
	case TestingNetwork:
		return Testing, true
	case LocalNetwork:
		return Local, true
	default:
		return "", false
	}
}
