// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/iterator"
)

// WeightedUndirectedGraph is a minimal in-memory weighted undirected
// graph.
type WeightedUndirectedGraph struct {
	nodes  map[int64]graphkit.Node
	edges  map[int64]map[int64]graphkit.WeightedEdge
	self   float64
	absent float64
	nextID int64
}

// NewWeightedUndirectedGraph returns an empty WeightedUndirectedGraph.
// self is the weight reported for a self-loop; absent is the weight
// reported by Weight when no edge exists (by convention +Inf, but left
// to the caller so tests can use a finite sentinel).
func NewWeightedUndirectedGraph(self, absent float64) *WeightedUndirectedGraph {
	return &WeightedUndirectedGraph{
		nodes:  make(map[int64]graphkit.Node),
		edges:  make(map[int64]map[int64]graphkit.WeightedEdge),
		self:   self,
		absent: absent,
	}
}

func (g *WeightedUndirectedGraph) NewNode() graphkit.Node {
	for g.Node(g.nextID) != nil {
		g.nextID++
	}
	return Node(g.nextID)
}

func (g *WeightedUndirectedGraph) AddNode(n graphkit.Node) {
	if g.Node(n.ID()) != nil {
		panic("simple: add of node with existing ID")
	}
	g.nodes[n.ID()] = n
	g.edges[n.ID()] = make(map[int64]graphkit.WeightedEdge)
	if n.ID() >= g.nextID {
		g.nextID = n.ID() + 1
	}
}

func (g *WeightedUndirectedGraph) RemoveNode(id int64) {
	if g.Node(id) == nil {
		return
	}
	for to := range g.edges[id] {
		delete(g.edges[to], id)
	}
	delete(g.edges, id)
	delete(g.nodes, id)
}

func (g *WeightedUndirectedGraph) NewWeightedEdge(from, to graphkit.Node, weight float64) graphkit.WeightedEdge {
	return WeightedEdge{F: from, T: to, W: weight}
}

// SetWeightedEdge implements graphkit.WeightedEdgeAdder. It panics if
// either endpoint is not already a node; use TryAddWeightedEdge for the
// non-panicking contract.
func (g *WeightedUndirectedGraph) SetWeightedEdge(e graphkit.WeightedEdge) {
	if err := g.TryAddWeightedEdge(e); err != nil {
		panic("simple: " + err.Error())
	}
}

// TryAddWeightedEdge adds e, returning graphkit.ErrInvalidEndpoint
// without mutating the graph if either endpoint is missing.
func (g *WeightedUndirectedGraph) TryAddWeightedEdge(e graphkit.WeightedEdge) error {
	from, to := e.From(), e.To()
	if g.Node(from.ID()) == nil || g.Node(to.ID()) == nil {
		return graphkit.ErrInvalidEndpoint
	}
	g.edges[from.ID()][to.ID()] = e
	if r, ok := e.ReversedEdge().(graphkit.WeightedEdge); ok {
		g.edges[to.ID()][from.ID()] = r
	}
	return nil
}

func (g *WeightedUndirectedGraph) RemoveEdge(fid, tid int64) {
	delete(g.edges[fid], tid)
	delete(g.edges[tid], fid)
}

func (g *WeightedUndirectedGraph) Node(id int64) graphkit.Node { return g.nodes[id] }

func (g *WeightedUndirectedGraph) Nodes() graphkit.Nodes {
	if len(g.nodes) == 0 {
		return graphkit.Empty
	}
	nodes := make([]graphkit.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *WeightedUndirectedGraph) From(id int64) graphkit.Nodes {
	nbrs, ok := g.edges[id]
	if !ok || len(nbrs) == 0 {
		return graphkit.Empty
	}
	nodes := make([]graphkit.Node, 0, len(nbrs))
	for to := range nbrs {
		nodes = append(nodes, g.nodes[to])
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *WeightedUndirectedGraph) HasEdgeBetween(xid, yid int64) bool {
	_, ok := g.edges[xid][yid]
	return ok
}

func (g *WeightedUndirectedGraph) EdgeBetween(xid, yid int64) graphkit.Edge {
	if e, ok := g.edges[xid][yid]; ok {
		return e
	}
	return nil
}

func (g *WeightedUndirectedGraph) Edge(uid, vid int64) graphkit.Edge {
	if e, ok := g.edges[uid][vid]; ok {
		return e
	}
	return nil
}

func (g *WeightedUndirectedGraph) WeightedEdge(xid, yid int64) graphkit.WeightedEdge {
	if e, ok := g.edges[xid][yid]; ok {
		return e
	}
	return nil
}

// Weight implements graphkit.Weighted.
func (g *WeightedUndirectedGraph) Weight(xid, yid int64) (float64, bool) {
	if xid == yid {
		return g.self, true
	}
	if e, ok := g.edges[xid][yid]; ok {
		return e.Weight(), true
	}
	return g.absent, false
}

// Degree returns the number of edges incident on the node with the
// given ID.
func (g *WeightedUndirectedGraph) Degree(id int64) int { return len(g.edges[id]) }
