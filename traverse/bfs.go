// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import "github.com/kalvaro/graphkit"

type bfsEntry struct {
	node  graphkit.Node
	depth int
	pred  graphkit.Edge
	has   bool
}

// BFS is a breadth-first search sequence: frontier is FIFO, discover
// order is level-order from the source, and Depth(v) is the BFS level.
type BFS struct {
	g       Graph
	visitor Visitor
	queue   []bfsEntry
	visited map[int64]bool
	pred    map[int64]graphkit.Edge
	depth   map[int64]int
}

// NewBFS returns a BFS sequence rooted at from. The source is
// discovered immediately; the first call to Next examines it.
func NewBFS(g Graph, from graphkit.Node, visitor Visitor) *BFS {
	b := &BFS{
		g:       g,
		visitor: visitor,
		visited: make(map[int64]bool),
		pred:    make(map[int64]graphkit.Edge),
		depth:   make(map[int64]int),
	}
	b.discover(from, 0, nil, false)
	return b
}

func (b *BFS) discover(n graphkit.Node, depth int, pred graphkit.Edge, has bool) {
	if b.visited[n.ID()] {
		return
	}
	b.visited[n.ID()] = true
	b.depth[n.ID()] = depth
	if has {
		b.pred[n.ID()] = pred
	}
	b.visitor.discover(n)
	b.queue = append(b.queue, bfsEntry{node: n, depth: depth, pred: pred, has: has})
}

// Next advances the frontier by exactly one examination and reports
// whether a vertex was examined. It returns false once the frontier is
// exhausted.
func (b *BFS) Next() (State, bool) {
	if len(b.queue) == 0 {
		return State{}, false
	}
	cur := b.queue[0]
	b.queue = b.queue[1:]
	b.visitor.examine(cur.node)

	to := b.g.From(cur.node.ID())
	for to.Next() {
		v := to.Node()
		e := edgeBetween(b.g, cur.node, v)
		b.visitor.examineEdge(e)
		if !b.visited[v.ID()] {
			b.visitor.tree(e)
			b.discover(v, cur.depth+1, e, true)
		}
	}

	return State{Node: cur.node, Depth: cur.depth, Cost: float64(cur.depth), Pred: cur.pred, HasPred: cur.has}, true
}

// Visited reports whether the node with the given ID has been
// discovered.
func (b *BFS) Visited(id int64) bool { return b.visited[id] }

// Depth returns the BFS level of the node with the given ID, and
// whether it has been discovered.
func (b *BFS) Depth(id int64) (int, bool) {
	d, ok := b.depth[id]
	return d, ok
}

// To reconstructs the path from the BFS root to the node with the given
// ID by walking predecessor edges backwards's
// predecessor-map reconstruction. It returns ok=false if the node was
// never discovered.
func (b *BFS) To(id int64) (edges []graphkit.Edge, ok bool) {
	if !b.visited[id] {
		return nil, false
	}
	for {
		e, has := b.pred[id]
		if !has {
			break
		}
		edges = append(edges, e)
		id = e.From().ID()
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges, true
}

// All drains the sequence, returning every examined state in
// examination order. It is a convenience for callers who don't need to
// stop early.
func (b *BFS) All() []State {
	var out []State
	for {
		s, ok := b.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

// Walk runs the BFS until until returns true for the examined vertex,
// or the frontier is exhausted, returning the vertex that satisfied
// until (or nil). This mirrors gonum's BreadthFirst.Walk
// signature for callers migrating from a callback style.
func Walk(g Graph, from graphkit.Node, until func(n graphkit.Node, depth int) bool) graphkit.Node {
	b := NewBFS(g, from, Visitor{})
	for {
		s, ok := b.Next()
		if !ok {
			return nil
		}
		if until != nil && until(s.Node, s.Depth) {
			return s.Node
		}
	}
}
