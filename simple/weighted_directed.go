// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/iterator"
)

// WeightedDirectedGraph is a minimal in-memory weighted directed graph.
type WeightedDirectedGraph struct {
	nodes  map[int64]graphkit.Node
	from   map[int64]map[int64]graphkit.WeightedEdge
	to     map[int64]map[int64]graphkit.WeightedEdge
	self   float64
	absent float64
	nextID int64
}

// NewWeightedDirectedGraph returns an empty WeightedDirectedGraph.
func NewWeightedDirectedGraph(self, absent float64) *WeightedDirectedGraph {
	return &WeightedDirectedGraph{
		nodes:  make(map[int64]graphkit.Node),
		from:   make(map[int64]map[int64]graphkit.WeightedEdge),
		to:     make(map[int64]map[int64]graphkit.WeightedEdge),
		self:   self,
		absent: absent,
	}
}

func (g *WeightedDirectedGraph) NewNode() graphkit.Node {
	for g.Node(g.nextID) != nil {
		g.nextID++
	}
	return Node(g.nextID)
}

func (g *WeightedDirectedGraph) AddNode(n graphkit.Node) {
	if g.Node(n.ID()) != nil {
		panic("simple: add of node with existing ID")
	}
	g.nodes[n.ID()] = n
	g.from[n.ID()] = make(map[int64]graphkit.WeightedEdge)
	g.to[n.ID()] = make(map[int64]graphkit.WeightedEdge)
	if n.ID() >= g.nextID {
		g.nextID = n.ID() + 1
	}
}

func (g *WeightedDirectedGraph) RemoveNode(id int64) {
	if g.Node(id) == nil {
		return
	}
	for to := range g.from[id] {
		delete(g.to[to], id)
	}
	for from := range g.to[id] {
		delete(g.from[from], id)
	}
	delete(g.from, id)
	delete(g.to, id)
	delete(g.nodes, id)
}

func (g *WeightedDirectedGraph) NewWeightedEdge(from, to graphkit.Node, weight float64) graphkit.WeightedEdge {
	return WeightedEdge{F: from, T: to, W: weight}
}

func (g *WeightedDirectedGraph) SetWeightedEdge(e graphkit.WeightedEdge) {
	if err := g.TryAddWeightedEdge(e); err != nil {
		panic("simple: " + err.Error())
	}
}

func (g *WeightedDirectedGraph) TryAddWeightedEdge(e graphkit.WeightedEdge) error {
	from, to := e.From(), e.To()
	if g.Node(from.ID()) == nil || g.Node(to.ID()) == nil {
		return graphkit.ErrInvalidEndpoint
	}
	g.from[from.ID()][to.ID()] = e
	g.to[to.ID()][from.ID()] = e
	return nil
}

func (g *WeightedDirectedGraph) RemoveEdge(fid, tid int64) {
	delete(g.from[fid], tid)
	delete(g.to[tid], fid)
}

func (g *WeightedDirectedGraph) Node(id int64) graphkit.Node { return g.nodes[id] }

func (g *WeightedDirectedGraph) Nodes() graphkit.Nodes {
	if len(g.nodes) == 0 {
		return graphkit.Empty
	}
	nodes := make([]graphkit.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *WeightedDirectedGraph) From(id int64) graphkit.Nodes {
	nbrs, ok := g.from[id]
	if !ok || len(nbrs) == 0 {
		return graphkit.Empty
	}
	nodes := make([]graphkit.Node, 0, len(nbrs))
	for to := range nbrs {
		nodes = append(nodes, g.nodes[to])
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *WeightedDirectedGraph) To(id int64) graphkit.Nodes {
	nbrs, ok := g.to[id]
	if !ok || len(nbrs) == 0 {
		return graphkit.Empty
	}
	nodes := make([]graphkit.Node, 0, len(nbrs))
	for from := range nbrs {
		nodes = append(nodes, g.nodes[from])
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *WeightedDirectedGraph) HasEdgeBetween(xid, yid int64) bool {
	if _, ok := g.from[xid][yid]; ok {
		return true
	}
	_, ok := g.from[yid][xid]
	return ok
}

func (g *WeightedDirectedGraph) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := g.from[uid][vid]
	return ok
}

func (g *WeightedDirectedGraph) Edge(uid, vid int64) graphkit.Edge {
	if e, ok := g.from[uid][vid]; ok {
		return e
	}
	return nil
}

func (g *WeightedDirectedGraph) WeightedEdge(xid, yid int64) graphkit.WeightedEdge {
	if e, ok := g.from[xid][yid]; ok {
		return e
	}
	return nil
}

// Weight implements graphkit.Weighted.
func (g *WeightedDirectedGraph) Weight(xid, yid int64) (float64, bool) {
	if xid == yid {
		return g.self, true
	}
	if e, ok := g.from[xid][yid]; ok {
		return e.Weight(), true
	}
	return g.absent, false
}

func (g *WeightedDirectedGraph) OutDegree(id int64) int { return len(g.from[id]) }
func (g *WeightedDirectedGraph) InDegree(id int64) int  { return len(g.to[id]) }
