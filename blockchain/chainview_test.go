// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"
	"time"

	"github.com/grospy/bitcoincashplus/wire"
)

// extendChain appends count nodes with the given spacing onto parent and
// returns every new node in order.
func extendChain(parent *BlockNode, count int, spacing int64) []*BlockNode {
	nodes := make([]*BlockNode, 0, count)
	for i := 0; i < count; i++ {
		parent = newTestNode(parent, spacing, 0x1d00ffff)
		nodes = append(nodes, parent)
	}
	return nodes
}

// TestChainView ensures the flat view indexes a branch correctly and moves
// between tips that share history without disturbing the common prefix.
func TestChainView(t *testing.T) {
	genesis := NewBlockNode(&wire.BlockHeader{
		Timestamp: time.Unix(1269211443, 0),
		Bits:      0x1d00ffff,
	}, nil)
	mainNodes := extendChain(genesis, 10, 600)
	mainTip := mainNodes[len(mainNodes)-1]

	// A side branch forking after height 5, distinguished by its spacing.
	sideNodes := extendChain(mainNodes[4], 7, 300)
	sideTip := sideNodes[len(sideNodes)-1]

	view := NewChainView(mainTip)
	if view.Height() != 10 {
		t.Fatalf("Height: got %d, want 10", view.Height())
	}
	if view.Genesis() != genesis {
		t.Fatal("Genesis: wrong node")
	}
	if view.Tip() != mainTip {
		t.Fatal("Tip: wrong node")
	}
	for _, node := range mainNodes {
		if view.NodeByHeight(node.Height()) != node {
			t.Fatalf("NodeByHeight(%d): wrong node", node.Height())
		}
		if !view.Contains(node) {
			t.Fatalf("Contains: missing node at height %d", node.Height())
		}
	}
	if view.NodeByHeight(-1) != nil || view.NodeByHeight(11) != nil {
		t.Fatal("NodeByHeight: out-of-range height returned a node")
	}
	if view.Contains(sideTip) {
		t.Fatal("Contains: side branch tip reported as present")
	}
	if view.Contains(nil) {
		t.Fatal("Contains: nil node reported as present")
	}

	// Reorganize onto the side branch. The shared prefix must survive and
	// the displaced main branch nodes must be gone.
	view.SetTip(sideTip)
	if view.Height() != 12 {
		t.Fatalf("Height after reorg: got %d, want 12", view.Height())
	}
	if view.Genesis() != genesis {
		t.Fatal("Genesis after reorg: wrong node")
	}
	for _, node := range mainNodes[:5] {
		if !view.Contains(node) {
			t.Fatalf("Contains after reorg: lost shared node at "+
				"height %d", node.Height())
		}
	}
	for _, node := range sideNodes {
		if view.NodeByHeight(node.Height()) != node {
			t.Fatalf("NodeByHeight after reorg: wrong node at "+
				"height %d", node.Height())
		}
	}
	if view.Contains(mainTip) {
		t.Fatal("Contains after reorg: displaced tip still present")
	}

	// Moving the tip back to an ancestor truncates the view.
	view.SetTip(sideNodes[0])
	if view.Height() != 6 {
		t.Fatalf("Height after truncation: got %d, want 6", view.Height())
	}
	if view.Tip() != sideNodes[0] {
		t.Fatal("Tip after truncation: wrong node")
	}

	// A nil tip empties the view.
	view.SetTip(nil)
	if view.Height() != -1 {
		t.Fatalf("Height of empty view: got %d, want -1", view.Height())
	}
	if view.Genesis() != nil || view.Tip() != nil {
		t.Fatal("empty view: genesis or tip is not nil")
	}
}
