// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the immutable consensus parameters for each
// bitcoin cash plus network. Nothing in this package mutates process-wide
// state; callers pass the Params value they want into every consensus
// operation.
package chaincfg

import (
	"time"

	"github.com/holiman/uint256"

	"github.com/grospy/bitcoincashplus/wire"
)

// These variables are the chain proof-of-work limit parameters for each
// default network.
var (
	// bigOne is 1 represented as a uint256.Int. It is defined here to
	// avoid the overhead of creating it multiple times.
	bigOne = uint256.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have for
	// the main network. It is the value 2^224 - 1. Note this is one less
	// than a power of two, so it carries more precision than its compact
	// encoding 0x1d00ffff; target comparisons use the full value.
	mainPowLimit = new(uint256.Int).Sub(new(uint256.Int).Lsh(bigOne, 224), bigOne)

	// testnetPowLimit is the highest proof of work value a block can have
	// for the test network. It matches the main network limit.
	testnetPowLimit = new(uint256.Int).Sub(new(uint256.Int).Lsh(bigOne, 224), bigOne)

	// regtestPowLimit is the highest proof of work value a block can have
	// for the regression test network. It is the value 2^255 - 1, which
	// encodes to the compact form 0x207fffff.
	regtestPowLimit = new(uint256.Int).Sub(new(uint256.Int).Lsh(bigOne, 255), bigOne)

	// simnetPowLimit is the highest proof of work value a block can have
	// for the simulation test network.
	simnetPowLimit = new(uint256.Int).Sub(new(uint256.Int).Lsh(bigOne, 255), bigOne)
)

// Params defines a bitcoin cash plus network by its parameters. These
// parameters may be used by applications to differentiate networks as well as
// addresses and keys for one network from those intended for use on another
// network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.CashNet

	// PowLimit defines the highest allowed proof of work value for a
	// block as a 256-bit integer. A block target never exceeds this value
	// after any retarget.
	PowLimit *uint256.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined by the legacy
	// fixed-interval retarget to determine how it should be changed in
	// order to maintain the desired block generation rate.
	TargetTimespan time.Duration

	// RetargetAdjustmentFactor is the adjustment factor used to limit the
	// minimum and maximum amount of adjustment that can occur between
	// legacy difficulty retargets.
	RetargetAdjustmentFactor int64

	// DifficultyAdjustmentWindowSize is the size of the trailing window
	// examined by the moving-window retarget on every block once it is
	// active.
	DifficultyAdjustmentWindowSize int32

	// ReduceMinDifficulty defines whether the network should reduce the
	// minimum required difficulty after a long enough period of time has
	// passed without finding a block. This is primarily used for test
	// networks.
	ReduceMinDifficulty bool

	// NoRetargeting defines whether the network has difficulty
	// retargeting enabled or not. This should only be set to true for
	// regression and simulation test networks.
	NoRetargeting bool

	// CashPlusActivationHeight is the height at which the moving-window
	// retarget replaces the legacy fixed-interval retarget. The
	// moving-window algorithm is used to compute the required difficulty
	// of every block whose predecessor is at or past this height.
	CashPlusActivationHeight int32
}

// DifficultyAdjustmentInterval returns the legacy retarget interval in
// blocks, derived from the target timespan and the target time per block.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return int64(p.TargetTimespan / p.TargetTimePerBlock)
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name: "mainnet",
	Net:  wire.Mainnet,

	PowLimit:                       mainPowLimit,
	PowLimitBits:                   0x1d00ffff,
	TargetTimePerBlock:             time.Minute * 10,
	TargetTimespan:                 time.Hour * 24 * 14,
	RetargetAdjustmentFactor:       4,
	DifficultyAdjustmentWindowSize: 144,
	ReduceMinDifficulty:            false,
	NoRetargeting:                  false,
	CashPlusActivationHeight:       504031,
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name: "testnet",
	Net:  wire.Testnet,

	PowLimit:                       testnetPowLimit,
	PowLimitBits:                   0x1d00ffff,
	TargetTimePerBlock:             time.Minute * 10,
	TargetTimespan:                 time.Hour * 24 * 14,
	RetargetAdjustmentFactor:       4,
	DifficultyAdjustmentWindowSize: 144,
	ReduceMinDifficulty:            true,
	NoRetargeting:                  false,
	CashPlusActivationHeight:       1188697,
}

// RegtestParams defines the network parameters for the regression test
// network. Difficulty never retargets there so that tests can mine blocks
// cheaply and deterministically.
var RegtestParams = Params{
	Name: "regtest",
	Net:  wire.Regtest,

	PowLimit:                       regtestPowLimit,
	PowLimitBits:                   0x207fffff,
	TargetTimePerBlock:             time.Minute * 10,
	TargetTimespan:                 time.Hour * 24 * 14,
	RetargetAdjustmentFactor:       4,
	DifficultyAdjustmentWindowSize: 144,
	ReduceMinDifficulty:            true,
	NoRetargeting:                  true,
	CashPlusActivationHeight:       0,
}

// SimnetParams defines the network parameters for the simulation test
// network. This network is similar to the regression test network except it
// is intended for private use within a group of individuals doing simulation
// testing.
var SimnetParams = Params{
	Name: "simnet",
	Net:  wire.Simnet,

	PowLimit:                       simnetPowLimit,
	PowLimitBits:                   0x207fffff,
	TargetTimePerBlock:             time.Minute * 10,
	TargetTimespan:                 time.Hour * 24 * 14,
	RetargetAdjustmentFactor:       4,
	DifficultyAdjustmentWindowSize: 144,
	ReduceMinDifficulty:            true,
	NoRetargeting:                  true,
	CashPlusActivationHeight:       0,
}
