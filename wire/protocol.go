// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// CashNet represents which bitcoin cash plus network a message belongs to.
type CashNet uint32

// Constants used to indicate the message bitcoin cash plus network. They can
// also be used to seek to the next message when a stream's state is unknown,
// but this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// Mainnet represents the main bitcoin cash plus network.
	Mainnet CashNet = 0xe8f3e1e3

	// Testnet represents the test network.
	Testnet CashNet = 0xf4f3e5f4

	// Regtest represents the regression test network.
	Regtest CashNet = 0xfabfb5da

	// Simnet represents the simulation test network.
	Simnet CashNet = 0x12141c16
)

// cnStrings is a map of cash networks back to their constant names for
// pretty printing.
var cnStrings = map[CashNet]string{
	Mainnet: "Mainnet",
	Testnet: "Testnet",
	Regtest: "Regtest",
	Simnet:  "Simnet",
}

// String returns the CashNet in human-readable form.
func (n CashNet) String() string {
	if s, ok := cnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown CashNet (%d)", uint32(n))
}
