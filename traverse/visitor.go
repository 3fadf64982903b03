// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traverse implements the lazy, restartable traversal/search
// family: BFS, DFS (with pre/post/in-order emission and
// edge classification), depth-limited DFS, iterative-deepening DFS,
// uniform-cost search, best-first search and A*. Every search here is
// modeled as a stateful iterator whose Next method pulls exactly one
// step, advancing the frontier by one examination, rather than as a
// coroutine or an eagerly-computed slice: dropping the sequence after
// any Next call is a complete, well-defined cancellation, matching the
// "cooperative lazy generator" concurrency model. This
// mirrors a callback-driven Walk/WalkAll, generalized to the explicit
// Next()-pull idiom a systems language without coroutines calls for.
package traverse

import "github.com/kalvaro/graphkit"

// Graph is the minimum capability a traversal needs: enumerate the
// nodes reachable by one hop from a node. This is deliberately the
// same minimal bound as gonum's traverse.Graph: BFS/DFS never
// need anything else.
type Graph interface {
	From(id int64) graphkit.Nodes
}

// edgeGraph is implemented by a Graph that can also resolve the edge
// object between two node IDs, needed only to hand the visitor a real
// graphkit.Edge in ExamineEdge/TreeEdge/etc. Traversal still works on a
// Graph that doesn't implement this; it synthesizes a minimal edge
// instead.
type edgeGraph interface {
	Edge(uid, vid int64) graphkit.Edge
}

// syntheticEdge is used when the traversed Graph cannot resolve a real
// Edge value for a discovered hop.
type syntheticEdge struct{ f, t graphkit.Node }

func (e syntheticEdge) From() graphkit.Node         { return e.f }
func (e syntheticEdge) To() graphkit.Node           { return e.t }
func (e syntheticEdge) ReversedEdge() graphkit.Edge { return syntheticEdge{e.t, e.f} }

func edgeBetween(g Graph, u, v graphkit.Node) graphkit.Edge {
	if eg, ok := g.(edgeGraph); ok {
		if e := eg.Edge(u.ID(), v.ID()); e != nil {
			return e
		}
	}
	return syntheticEdge{f: u, t: v}
}

// Visitor is a record of optional callbacks invoked at the well-defined
// points of the visitor protocol. A nil callback is simply
// skipped.
type Visitor struct {
	DiscoverVertex func(v graphkit.Node)
	ExamineVertex  func(v graphkit.Node)
	ExamineEdge    func(e graphkit.Edge)
	TreeEdge       func(e graphkit.Edge)
	BackEdge       func(e graphkit.Edge)
	ForwardEdge    func(e graphkit.Edge)
	CrossEdge      func(e graphkit.Edge)
	FinishVertex   func(v graphkit.Node)
}

// Combine returns a Visitor that invokes a's callback then b's callback
// at each point, for every point either defines a callback.
func (a Visitor) Combine(b Visitor) Visitor {
	return Visitor{
		DiscoverVertex: combineNode(a.DiscoverVertex, b.DiscoverVertex),
		ExamineVertex:  combineNode(a.ExamineVertex, b.ExamineVertex),
		ExamineEdge:    combineEdge(a.ExamineEdge, b.ExamineEdge),
		TreeEdge:       combineEdge(a.TreeEdge, b.TreeEdge),
		BackEdge:       combineEdge(a.BackEdge, b.BackEdge),
		ForwardEdge:    combineEdge(a.ForwardEdge, b.ForwardEdge),
		CrossEdge:      combineEdge(a.CrossEdge, b.CrossEdge),
		FinishVertex:   combineNode(a.FinishVertex, b.FinishVertex),
	}
}

func combineNode(a, b func(graphkit.Node)) func(graphkit.Node) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(v graphkit.Node) { a(v); b(v) }
}

func combineEdge(a, b func(graphkit.Edge)) func(graphkit.Edge) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(e graphkit.Edge) { a(e); b(e) }
}

func (v Visitor) discover(n graphkit.Node) {
	if v.DiscoverVertex != nil {
		v.DiscoverVertex(n)
	}
}
func (v Visitor) examine(n graphkit.Node) {
	if v.ExamineVertex != nil {
		v.ExamineVertex(n)
	}
}
func (v Visitor) examineEdge(e graphkit.Edge) {
	if v.ExamineEdge != nil {
		v.ExamineEdge(e)
	}
}
func (v Visitor) tree(e graphkit.Edge) {
	if v.TreeEdge != nil {
		v.TreeEdge(e)
	}
}
func (v Visitor) back(e graphkit.Edge) {
	if v.BackEdge != nil {
		v.BackEdge(e)
	}
}
func (v Visitor) forward(e graphkit.Edge) {
	if v.ForwardEdge != nil {
		v.ForwardEdge(e)
	}
}
func (v Visitor) cross(e graphkit.Edge) {
	if v.CrossEdge != nil {
		v.CrossEdge(e)
	}
}
func (v Visitor) finish(n graphkit.Node) {
	if v.FinishVertex != nil {
		v.FinishVertex(n)
	}
}

// State is the search-state snapshot every lazy traversal yields at
// each step: the vertex just examined, its
// depth or cost from the source, and the predecessor edge that
// discovered it (absent for the source itself).
type State struct {
	Node    graphkit.Node
	Depth   int
	Cost    float64
	Pred    graphkit.Edge
	HasPred bool
}
