// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphkit

// Iterator is a restartable item iterator. It underlies both Nodes and
// Edges below; it is the structural-enumeration cousin of the
// search-state traversal sequence defined in package traverse. This
// one walks a fixed collection of nodes or edges, that one walks the
// frontier of an in-progress search.
type Iterator interface {
	// Next advances the iterator and reports whether the following
	// call to the item accessor will return a valid item. Next must
	// be called before the first item access.
	Next() bool

	// Len returns the number of items remaining to be iterated.
	Len() int

	// Reset returns the iterator to its start position so it can be
	// walked again from the beginning.
	Reset()
}

// Nodes is a Node iterator.
type Nodes interface {
	Iterator
	Node() Node
}

// Edges is an Edge iterator.
type Edges interface {
	Iterator
	Edge() Edge
}

// NodeSlicer is implemented by a Nodes iterator that can hand back its
// remaining elements as a plain slice without incurring the Next/Node
// call overhead of a full walk.
type NodeSlicer interface {
	NodeSlice() []Node
}

// EdgeSlicer is the Edges analogue of NodeSlicer.
type EdgeSlicer interface {
	EdgeSlice() []Edge
}

// NodesOf collects every node remaining in it into a slice, using the
// NodeSlice fast path when available. It is safe to pass a nil Nodes.
func NodesOf(it Nodes) []Node {
	if it == nil {
		return nil
	}
	if s, ok := it.(NodeSlicer); ok {
		return s.NodeSlice()
	}
	n := it.Len()
	if n == 0 {
		return nil
	}
	out := make([]Node, 0, n)
	for it.Next() {
		out = append(out, it.Node())
	}
	return out
}

// EdgesOf is the Edges analogue of NodesOf.
func EdgesOf(it Edges) []Edge {
	if it == nil {
		return nil
	}
	if s, ok := it.(EdgeSlicer); ok {
		return s.EdgeSlice()
	}
	n := it.Len()
	if n == 0 {
		return nil
	}
	out := make([]Edge, 0, n)
	for it.Next() {
		out = append(out, it.Edge())
	}
	return out
}

// emptyNodes is the canonical empty Nodes iterator, returned by From
// when a node has no out-neighbors so that callers can compare against
// it directly instead of checking Len() == 0.
type emptyNodes struct{}

func (emptyNodes) Next() bool     { return false }
func (emptyNodes) Len() int       { return 0 }
func (emptyNodes) Reset()         {}
func (emptyNodes) Node() Node     { panic("graphkit: Node called on empty iterator") }
func (emptyNodes) NodeSlice() []Node { return nil }

// Empty is the canonical empty Nodes value.
var Empty Nodes = emptyNodes{}
