// Copyright (c) 2015-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"sort"
	"time"

	"github.com/holiman/uint256"

	"github.com/grospy/bitcoincashplus/util/difficulty"
	"github.com/grospy/bitcoincashplus/wire"
)

// medianTimeBlocks is the number of previous blocks which should be used to
// calculate the median time used to validate block timestamps.
const medianTimeBlocks = 11

// BlockNode represents a block within the block chain. It is the read-only
// view of accepted chain history that the difficulty engine operates on; the
// chain-management layer that accepts blocks owns the nodes and their
// lifecycle.
type BlockNode struct {
	// parent is the parent block for this node.
	parent *BlockNode

	// workSum is the total amount of work in the chain up to and including
	// this node. It is computed exactly once, when the node is created,
	// and never recomputed.
	workSum *uint256.Int

	// Some fields from block headers to aid in difficulty calculation and
	// best chain selection. These must be treated as immutable once the
	// node has been created.
	timestamp int64
	bits      uint32
	height    int32
}

// NewBlockNode returns a new block node for the given block header and parent
// node, calculating the height and cumulative work from the parent. The work
// of the node itself is derived from its own bits, so the accumulated chain
// work is fixed at creation. This function is NOT safe for concurrent access.
func NewBlockNode(header *wire.BlockHeader, parent *BlockNode) *BlockNode {
	node := &BlockNode{
		parent:    parent,
		timestamp: header.Timestamp.Unix(),
		bits:      header.Bits,
	}

	node.workSum = difficulty.CalcWork(header.Bits)
	if parent != nil {
		node.height = parent.height + 1
		node.workSum.Add(node.workSum, parent.workSum)
	}

	return node
}

// Parent returns the parent of the block node, or nil for the genesis node.
func (node *BlockNode) Parent() *BlockNode {
	return node.parent
}

// Height returns the position of the block node in the chain.
func (node *BlockNode) Height() int32 {
	return node.height
}

// Timestamp returns the node-observed block time as a unix timestamp.
func (node *BlockNode) Timestamp() int64 {
	return node.timestamp
}

// Bits returns the compact difficulty target the block was produced against.
func (node *BlockNode) Bits() uint32 {
	return node.bits
}

// WorkSum returns a copy of the total amount of work in the chain up to and
// including this node.
func (node *BlockNode) WorkSum() *uint256.Int {
	return new(uint256.Int).Set(node.workSum)
}

// Ancestor returns the ancestor block node at the provided height by
// following the chain backwards from this node. The returned block will be
// nil when a height is requested that is after the height of the passed node
// or is less than zero.
//
// This function is safe for concurrent access.
func (node *BlockNode) Ancestor(height int32) *BlockNode {
	if height < 0 || height > node.height {
		return nil
	}

	n := node
	for ; n != nil && n.height != height; n = n.parent {
		// Intentionally left blank
	}

	return n
}

// RelativeAncestor returns the ancestor block node a relative 'distance'
// blocks before this node. This is equivalent to calling Ancestor with the
// node's height minus provided distance.
//
// This function is safe for concurrent access.
func (node *BlockNode) RelativeAncestor(distance int32) *BlockNode {
	return node.Ancestor(node.height - distance)
}

// CalcPastMedianTime calculates the median time of the previous few blocks
// prior to, and including, the block node.
//
// This function is safe for concurrent access.
func (node *BlockNode) CalcPastMedianTime() time.Time {
	// Create a slice of the previous few block timestamps used to
	// calculate the median per the number defined by the constant
	// medianTimeBlocks.
	timestamps := make([]int64, 0, medianTimeBlocks)
	iterNode := node
	for i := 0; i < medianTimeBlocks && iterNode != nil; i++ {
		timestamps = append(timestamps, iterNode.timestamp)
		iterNode = iterNode.parent
	}

	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i] < timestamps[j]
	})

	// NOTE: The consensus rules incorporate the median of an even number
	// of timestamps by selecting the higher of the two middle values, so
	// the middle index works for both parities.
	medianTimestamp := timestamps[len(timestamps)/2]
	return time.Unix(medianTimestamp, 0)
}

// String returns a string that contains the block height and bits.
func (node *BlockNode) String() string {
	return fmt.Sprintf("height %d (bits %08x)", node.height, node.bits)
}
