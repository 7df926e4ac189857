// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"math"
	"time"

	"github.com/holiman/uint256"

	"github.com/grospy/bitcoincashplus/chaincfg"
	"github.com/grospy/bitcoincashplus/util/difficulty"
	"github.com/grospy/bitcoincashplus/wire"
)

// NextWorkRequired calculates the required difficulty for the block built on
// top of prevNode, in compact form. The header is the block being proposed;
// only its timestamp is consulted, and only for the minimum-difficulty rules
// of test networks.
//
// The retarget algorithm is selected by the chain parameters: before the
// activation height the legacy fixed-interval retarget is used, from the
// activation height on the moving-window retarget runs for every block. The
// two are never combined for the same block.
//
// The result depends only on the supplied chain segment and parameters, so
// this function is safe for concurrent access as long as the chain history
// linked from prevNode is not concurrently mutated.
func NextWorkRequired(prevNode *BlockNode, header *wire.BlockHeader,
	params *chaincfg.Params) (uint32, error) {

	// Genesis block.
	if prevNode == nil {
		return params.PowLimitBits, nil
	}

	// Test networks such as regtest never retarget.
	if params.NoRetargeting {
		return prevNode.bits, nil
	}

	if prevNode.height >= params.CashPlusActivationHeight {
		return nextCashPlusWorkRequired(prevNode, header, params)
	}

	return nextLegacyWorkRequired(prevNode, header, params)
}

// nextLegacyWorkRequired calculates the required difficulty using the legacy
// fixed-interval rules: the difficulty only changes once per retarget
// interval, based on the time the previous interval actually took.
func nextLegacyWorkRequired(prevNode *BlockNode, header *wire.BlockHeader,
	params *chaincfg.Params) (uint32, error) {

	interval := params.DifficultyAdjustmentInterval()

	if (int64(prevNode.height)+1)%interval != 0 {
		// For networks that support it, allow special reduction of the
		// required difficulty once too much time has elapsed without
		// mining a block.
		if params.ReduceMinDifficulty {
			// Return minimum difficulty when more than twice the
			// desired amount of time needed to mine a block has
			// elapsed.
			reductionTime := 2 * int64(params.TargetTimePerBlock/time.Second)
			if header.Timestamp.Unix() > prevNode.timestamp+reductionTime {
				return params.PowLimitBits, nil
			}

			// The block was mined within the desired timeframe, so
			// return the difficulty for the last block which did
			// not have the special minimum difficulty rule applied.
			node := prevNode
			for node.parent != nil &&
				int64(node.height)%interval != 0 &&
				node.bits == params.PowLimitBits {

				node = node.parent
			}
			return node.bits, nil
		}

		// Not at a retarget boundary, so keep the previous difficulty.
		return prevNode.bits, nil
	}

	// This is a retarget boundary, so the actual timespan of the interval
	// that just closed drives the adjustment. The interval start node is
	// interval-1 blocks back since prevNode itself closes the interval.
	firstNode := prevNode.RelativeAncestor(int32(interval) - 1)
	if firstNode == nil {
		return 0, AssertError(fmt.Sprintf("unable to obtain the node at "+
			"the start of the retarget interval ending at height %d",
			prevNode.height))
	}

	return calcLegacyRetarget(prevNode, firstNode.timestamp, params), nil
}

// calcLegacyRetarget calculates the required difficulty for the block after
// lastNode, where lastNode closes a retarget interval whose first block was
// mined at firstBlockTime. The adjustment is clamped to a factor of
// RetargetAdjustmentFactor in either direction, and the result never exceeds
// the proof-of-work limit of the network.
func calcLegacyRetarget(lastNode *BlockNode, firstBlockTime int64,
	params *chaincfg.Params) uint32 {

	// Limit the amount of adjustment that can occur to the previous
	// difficulty.
	actualTimespan := lastNode.timestamp - firstBlockTime
	adjustedTimespan := actualTimespan
	targetTimespan := int64(params.TargetTimespan / time.Second)
	minRetargetTimespan := targetTimespan / params.RetargetAdjustmentFactor
	maxRetargetTimespan := targetTimespan * params.RetargetAdjustmentFactor
	if actualTimespan < minRetargetTimespan {
		adjustedTimespan = minRetargetTimespan
	} else if actualTimespan > maxRetargetTimespan {
		adjustedTimespan = maxRetargetTimespan
	}

	// Calculate new target difficulty as:
	//  currentDifficulty * (adjustedTimespan / targetTimespan)
	// The result uses integer division which means it will be slightly
	// rounded down.
	newTarget, _ := difficulty.CompactToTarget(lastNode.bits)
	newTarget.Mul(newTarget, uint256.NewInt(uint64(adjustedTimespan)))
	newTarget.Div(newTarget, uint256.NewInt(uint64(targetTimespan)))

	// Limit new value to the proof of work limit.
	if newTarget.Gt(params.PowLimit) {
		newTarget.Set(params.PowLimit)
	}

	newTargetBits := difficulty.TargetToCompact(newTarget)
	log.Debugf("difficulty retarget at block height %d: %08x -> %08x "+
		"(actual timespan %v, adjusted timespan %v)", lastNode.height+1,
		lastNode.bits, newTargetBits,
		time.Duration(actualTimespan)*time.Second,
		time.Duration(adjustedTimespan)*time.Second)

	return newTargetBits
}

// suitableBlock locates the block the moving-window retarget anchors a window
// end on. To reduce the influence of a block with a very skewed timestamp,
// the median of the node and its two predecessors, ordered by timestamp, is
// selected as the anchor.
func suitableBlock(node *BlockNode) (*BlockNode, error) {
	if node.parent == nil || node.parent.parent == nil {
		return nil, AssertError(fmt.Sprintf("suitable block anchor at "+
			"height %d requires two linked predecessors", node.height))
	}

	blocks := [3]*BlockNode{node.parent.parent, node.parent, node}

	// Sorting network.
	if blocks[0].timestamp > blocks[2].timestamp {
		blocks[0], blocks[2] = blocks[2], blocks[0]
	}
	if blocks[0].timestamp > blocks[1].timestamp {
		blocks[0], blocks[1] = blocks[1], blocks[0]
	}
	if blocks[1].timestamp > blocks[2].timestamp {
		blocks[1], blocks[2] = blocks[2], blocks[1]
	}

	// The candidate is in the middle now.
	return blocks[1], nil
}

// nextCashPlusWorkRequired calculates the required difficulty using a
// weighted average of the estimated hashrate over a trailing window of
// blocks, producing a new target for every block.
//
// Using the work performed over the window rather than its individual block
// times makes the block timestamps cancel out of most of the calculation;
// only the window boundary timestamps remain, and those are taken from
// median-of-three anchors. Because timestamps are the least trustworthy input
// available, this keeps the algorithm resistant to manipulated values.
func nextCashPlusWorkRequired(prevNode *BlockNode, header *wire.BlockHeader,
	params *chaincfg.Params) (uint32, error) {

	// For networks that support it, allow mining of a minimum-difficulty
	// block once more than twice the desired block time has elapsed.
	if params.ReduceMinDifficulty {
		reductionTime := 2 * int64(params.TargetTimePerBlock/time.Second)
		if header.Timestamp.Unix() > prevNode.timestamp+reductionTime {
			return params.PowLimitBits, nil
		}
	}

	// Anchor the end of the window on the previous node and the start of
	// the window a full window size below it. Callers gate activation so
	// that this much history always exists.
	lastNode, err := suitableBlock(prevNode)
	if err != nil {
		return 0, err
	}

	firstCandidate := prevNode.RelativeAncestor(params.DifficultyAdjustmentWindowSize)
	if firstCandidate == nil {
		return 0, AssertError(fmt.Sprintf("unable to obtain the node %d "+
			"blocks before height %d for the difficulty window",
			params.DifficultyAdjustmentWindowSize, prevNode.height))
	}
	firstNode, err := suitableBlock(firstCandidate)
	if err != nil {
		return 0, err
	}

	// Compute the target based on time and work done during the window.
	nextTarget, err := computeTarget(firstNode, lastNode, params)
	if err != nil {
		return 0, err
	}
	if nextTarget.Gt(params.PowLimit) {
		return params.PowLimitBits, nil
	}

	return difficulty.TargetToCompact(nextTarget), nil
}

// computeTarget computes a target from the work done between two anchor
// blocks and the time required to produce that work.
func computeTarget(firstNode, lastNode *BlockNode,
	params *chaincfg.Params) (*uint256.Int, error) {

	if lastNode.height <= firstNode.height {
		return nil, AssertError(fmt.Sprintf("window end anchor at height "+
			"%d does not follow start anchor at height %d",
			lastNode.height, firstNode.height))
	}

	// From the total work done and the time it took to produce that much
	// work, deduce how much work is expected to be produced in the
	// targeted time between blocks.
	spacing := int64(params.TargetTimePerBlock / time.Second)
	work := new(uint256.Int).Sub(lastNode.workSum, firstNode.workSum)
	work.Mul(work, uint256.NewInt(uint64(spacing)))

	// To avoid difficulty cliffs, the amplitude of the adjustment is
	// bounded by clamping the observed timespan to between half and twice
	// the expected window duration. This also keeps a manipulated anchor
	// timestamp from zeroing the divisor.
	windowSize := int64(params.DifficultyAdjustmentWindowSize)
	actualTimespan := lastNode.timestamp - firstNode.timestamp
	if actualTimespan > 2*windowSize*spacing {
		actualTimespan = 2 * windowSize * spacing
	} else if actualTimespan < windowSize/2*spacing {
		actualTimespan = windowSize / 2 * spacing
	}

	work.Div(work, uint256.NewInt(uint64(actualTimespan)))
	if work.IsZero() {
		work.SetOne()
	}

	// The target is T = (2^256 / W) - 1, but 2^256 does not fit in 256
	// bits. Expressing 1 as W / W gives (2^256 - W) / W, and 2^256 - W is
	// the two's complement negation of W.
	nextTarget := new(uint256.Int).Neg(work)
	nextTarget.Div(nextTarget, work)
	if nextTarget.IsZero() {
		nextTarget.SetOne()
	}

	return nextTarget, nil
}

// BlockProofEquivalentTime returns the time a chain with the per-block work
// of tip would need to produce the difference in accumulated work between the
// to and from nodes. The nodes need not be on the same chain. The result is
// negative when to has less accumulated work than from, and saturates at the
// int64 range when the implied time does not fit.
//
// For a chain built with uniform spacing and uniform bits this is exactly the
// difference between the two block timestamps: the work difference is an
// integral multiple of the per-block work, so the division is exact.
func BlockProofEquivalentTime(to, from, tip *BlockNode,
	params *chaincfg.Params) int64 {

	r := new(uint256.Int)
	sign := int64(1)
	if to.workSum.Gt(from.workSum) {
		r.Sub(to.workSum, from.workSum)
	} else {
		r.Sub(from.workSum, to.workSum)
		sign = -1
	}

	spacing := uint64(params.TargetTimePerBlock / time.Second)
	r.Mul(r, uint256.NewInt(spacing))
	r.Div(r, difficulty.CalcWork(tip.bits))

	if r.BitLen() > 63 {
		return sign * math.MaxInt64
	}
	return sign * int64(r.Uint64())
}
