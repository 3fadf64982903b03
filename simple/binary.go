// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/iterator"
)

// BinaryTree is a minimal in-memory binary tree satisfying
// graphkit.Graph and graphkit.BinaryIncidence. It exists only so that
// package traverse has something concrete to exercise inorder DFS
// against, the same narrow test-fixture role the rest of this package
// plays for every other algorithm package.
type BinaryTree struct {
	nodes map[int64]graphkit.Node
	left  map[int64]int64
	right map[int64]int64
}

// NewBinaryTree returns an empty BinaryTree.
func NewBinaryTree() *BinaryTree {
	return &BinaryTree{
		nodes: make(map[int64]graphkit.Node),
		left:  make(map[int64]int64),
		right: make(map[int64]int64),
	}
}

// AddNode adds n to the tree. AddNode panics if n's ID already exists.
func (t *BinaryTree) AddNode(n graphkit.Node) {
	if t.Node(n.ID()) != nil {
		panic("simple: add of node with existing ID")
	}
	t.nodes[n.ID()] = n
}

// SetLeft makes child the left child of the node with ID parent. Both
// nodes must already have been added with AddNode.
func (t *BinaryTree) SetLeft(parent, child int64) {
	if t.Node(parent) == nil || t.Node(child) == nil {
		panic("simple: SetLeft on missing node")
	}
	t.left[parent] = child
}

// SetRight makes child the right child of the node with ID parent. Both
// nodes must already have been added with AddNode.
func (t *BinaryTree) SetRight(parent, child int64) {
	if t.Node(parent) == nil || t.Node(child) == nil {
		panic("simple: SetRight on missing node")
	}
	t.right[parent] = child
}

// Node implements graphkit.Graph.
func (t *BinaryTree) Node(id int64) graphkit.Node { return t.nodes[id] }

// Nodes implements graphkit.Graph.
func (t *BinaryTree) Nodes() graphkit.Nodes {
	out := make([]graphkit.Node, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, n)
	}
	return iterator.NewOrderedNodes(out)
}

// From implements graphkit.Graph, returning the node's left and right
// children, in that order, when present.
func (t *BinaryTree) From(id int64) graphkit.Nodes {
	var out []graphkit.Node
	if l, ok := t.left[id]; ok {
		out = append(out, t.nodes[l])
	}
	if r, ok := t.right[id]; ok {
		out = append(out, t.nodes[r])
	}
	if out == nil {
		return graphkit.Empty
	}
	return iterator.NewOrderedNodes(out)
}

// HasEdgeBetween implements graphkit.Graph.
func (t *BinaryTree) HasEdgeBetween(xid, yid int64) bool {
	return t.left[xid] == yid || t.right[xid] == yid || t.left[yid] == xid || t.right[yid] == xid
}

// Edge implements graphkit.Graph.
func (t *BinaryTree) Edge(uid, vid int64) graphkit.Edge {
	if t.left[uid] == vid || t.right[uid] == vid {
		return Edge{F: t.nodes[uid], T: t.nodes[vid]}
	}
	return nil
}

// LeftChild implements graphkit.BinaryIncidence.
func (t *BinaryTree) LeftChild(id int64) graphkit.Node {
	if l, ok := t.left[id]; ok {
		return t.nodes[l]
	}
	return nil
}

// RightChild implements graphkit.BinaryIncidence.
func (t *BinaryTree) RightChild(id int64) graphkit.Node {
	if r, ok := t.right[id]; ok {
		return t.nodes[r]
	}
	return nil
}

// LeftEdge implements graphkit.BinaryIncidence.
func (t *BinaryTree) LeftEdge(id int64) graphkit.Edge {
	if l, ok := t.left[id]; ok {
		return Edge{F: t.nodes[id], T: t.nodes[l]}
	}
	return nil
}

// RightEdge implements graphkit.BinaryIncidence.
func (t *BinaryTree) RightEdge(id int64) graphkit.Edge {
	if r, ok := t.right[id]; ok {
		return Edge{F: t.nodes[id], T: t.nodes[r]}
	}
	return nil
}
