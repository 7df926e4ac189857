// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

// ChainView provides a flat, height-indexed view of a specific branch of the
// block chain from its tip back to the genesis block. Looking up the node at
// any height, and therefore any ancestor of the tip, is a constant-time slice
// index rather than a walk over parent references.
//
// The view itself performs no synchronization. The chain-management layer
// that mutates the tip owns that discipline; all reads are safe as long as
// the view is not concurrently mutated.
type ChainView struct {
	nodes []*BlockNode
}

// NewChainView returns a new chain view for the branch ending in the passed
// tip. Passing nil as the tip results in an empty view.
func NewChainView(tip *BlockNode) *ChainView {
	c := &ChainView{}
	c.SetTip(tip)
	return c
}

// Genesis returns the genesis block for the chain view, or nil for an empty
// view.
func (c *ChainView) Genesis() *BlockNode {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[0]
}

// Tip returns the current tip block node for the chain view, or nil for an
// empty view.
func (c *ChainView) Tip() *BlockNode {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[len(c.nodes)-1]
}

// Height returns the height of the tip of the chain view. It will return -1
// for an empty view.
func (c *ChainView) Height() int32 {
	return int32(len(c.nodes)) - 1
}

// SetTip sets the chain view to use the provided block node as the current
// tip and ensures the view is consistent by populating it with the nodes
// obtained by walking backwards from the new tip until a node that is already
// indexed at its height is found. This allows switching between chain tips
// that share a common ancestor without revisiting the shared history.
func (c *ChainView) SetTip(node *BlockNode) {
	if node == nil {
		c.nodes = nil
		return
	}

	needed := int(node.height) + 1
	if cap(c.nodes) < needed {
		nodes := make([]*BlockNode, needed)
		copy(nodes, c.nodes)
		c.nodes = nodes
	}
	c.nodes = c.nodes[:needed]

	for node != nil && c.nodes[node.height] != node {
		c.nodes[node.height] = node
		node = node.parent
	}
}

// NodeByHeight returns the block node at the specified height. Nil will be
// returned if the height does not exist within the view.
//
// This is the constant-time "ancestor at height" lookup used for the repeated
// window walks of the per-block retarget.
func (c *ChainView) NodeByHeight(height int32) *BlockNode {
	if height < 0 || height >= int32(len(c.nodes)) {
		return nil
	}
	return c.nodes[height]
}

// Contains returns whether or not the chain view contains the passed block
// node.
func (c *ChainView) Contains(node *BlockNode) bool {
	if node == nil {
		return false
	}
	return c.NodeByHeight(node.height) == node
}
