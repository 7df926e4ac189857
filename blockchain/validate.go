// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/holiman/uint256"

	"github.com/grospy/bitcoincashplus/util/difficulty"
	"github.com/grospy/bitcoincashplus/wire"
)

// CheckProofOfWork ensures the block header bits which indicate the target
// difficulty is in min/max range and that the block hash is less than the
// target difficulty as claimed.
//
// A zero or overflowed target rejects every hash here; malformed compact
// encodings are therefore surfaced as ordinary rule violations rather than a
// separate error path.
func CheckProofOfWork(header *wire.BlockHeader, powLimit *uint256.Int) error {
	// The target difficulty must be larger than zero.
	target, overflow := difficulty.CompactToTarget(header.Bits)
	if overflow || target.IsZero() {
		str := fmt.Sprintf("block target difficulty of %08x is not "+
			"satisfiable", header.Bits)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The target difficulty must be less than the maximum allowed.
	if target.Gt(powLimit) {
		str := fmt.Sprintf("block target difficulty of %064x is higher "+
			"than max of %064x", target, powLimit)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The block hash must be less than the claimed target.
	hash := header.BlockHash()
	if difficulty.HashToTarget(&hash).Gt(target) {
		str := fmt.Sprintf("block hash of %064x is higher than expected "+
			"max of %064x", difficulty.HashToTarget(&hash), target)
		return ruleError(ErrHighHash, str)
	}

	return nil
}

// HashToTarget converts the passed block hash into a 256-bit integer that can
// be compared against a difficulty target. It is re-exported here for
// consumers that perform their own target comparisons.
func HashToTarget(hash *chainhash.Hash) *uint256.Int {
	return difficulty.HashToTarget(hash)
}
