// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iterator

import "github.com/kalvaro/graphkit"

// OrderedEdges implements graphkit.Edges and graphkit.EdgeSlicer over a
// fixed, ordered slice of edges.
type OrderedEdges struct {
	idx   int
	edges []graphkit.Edge
}

// NewOrderedEdges returns an OrderedEdges walking the given edges.
func NewOrderedEdges(edges []graphkit.Edge) *OrderedEdges {
	return &OrderedEdges{idx: -1, edges: edges}
}

func (e *OrderedEdges) Len() int {
	if e.idx >= len(e.edges) {
		return 0
	}
	if e.idx <= 0 {
		return len(e.edges)
	}
	return len(e.edges[e.idx:])
}

func (e *OrderedEdges) Next() bool {
	if uint(e.idx)+1 < uint(len(e.edges)) {
		e.idx++
		return true
	}
	e.idx = len(e.edges)
	return false
}

func (e *OrderedEdges) Edge() graphkit.Edge {
	if e.idx < 0 || e.idx >= len(e.edges) {
		return nil
	}
	return e.edges[e.idx]
}

func (e *OrderedEdges) EdgeSlice() []graphkit.Edge {
	if e.idx >= len(e.edges) {
		return nil
	}
	idx := e.idx
	if idx < 0 {
		idx = 0
	}
	out := e.edges[idx:]
	e.idx = len(e.edges)
	return out
}

func (e *OrderedEdges) Reset() {
	e.idx = -1
}
