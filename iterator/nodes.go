// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iterator supplies concrete, reusable implementations of the
// graphkit.Nodes and graphkit.Edges contracts, so that every concrete
// graph in package simple (and every algorithm result that hands back
// a node or edge collection) does not need to hand-roll its own
// iterator type.
package iterator

import "github.com/kalvaro/graphkit"

// OrderedNodes implements graphkit.Nodes and graphkit.NodeSlicer over a
// fixed, ordered slice of nodes. Iteration order is the order the
// nodes were passed in.
type OrderedNodes struct {
	idx   int
	nodes []graphkit.Node
}

// NewOrderedNodes returns an OrderedNodes walking the given nodes.
func NewOrderedNodes(nodes []graphkit.Node) *OrderedNodes {
	return &OrderedNodes{idx: -1, nodes: nodes}
}

// Len returns the number of nodes remaining to be iterated.
func (n *OrderedNodes) Len() int {
	if n.idx >= len(n.nodes) {
		return 0
	}
	if n.idx <= 0 {
		return len(n.nodes)
	}
	return len(n.nodes[n.idx:])
}

// Next advances the iterator.
func (n *OrderedNodes) Next() bool {
	if uint(n.idx)+1 < uint(len(n.nodes)) {
		n.idx++
		return true
	}
	n.idx = len(n.nodes)
	return false
}

// Node returns the current node. Next must have been called first.
func (n *OrderedNodes) Node() graphkit.Node {
	if n.idx < 0 || n.idx >= len(n.nodes) {
		return nil
	}
	return n.nodes[n.idx]
}

// NodeSlice returns the remaining nodes and exhausts the iterator.
func (n *OrderedNodes) NodeSlice() []graphkit.Node {
	if n.idx >= len(n.nodes) {
		return nil
	}
	idx := n.idx
	if idx < 0 {
		idx = 0
	}
	out := n.nodes[idx:]
	n.idx = len(n.nodes)
	return out
}

// Reset returns the iterator to its start position.
func (n *OrderedNodes) Reset() {
	n.idx = -1
}
