// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/iterator"
)

// DirectedGraph is a minimal in-memory directed graph.
type DirectedGraph struct {
	nodes  map[int64]graphkit.Node
	from   map[int64]map[int64]graphkit.Edge
	to     map[int64]map[int64]graphkit.Edge
	nextID int64
}

// NewDirectedGraph returns an empty DirectedGraph.
func NewDirectedGraph() *DirectedGraph {
	return &DirectedGraph{
		nodes: make(map[int64]graphkit.Node),
		from:  make(map[int64]map[int64]graphkit.Edge),
		to:    make(map[int64]map[int64]graphkit.Edge),
	}
}

// NewNode implements graphkit.NodeAdder.
func (g *DirectedGraph) NewNode() graphkit.Node {
	for g.Node(g.nextID) != nil {
		g.nextID++
	}
	return Node(g.nextID)
}

// AddNode implements graphkit.NodeAdder.
func (g *DirectedGraph) AddNode(n graphkit.Node) {
	if g.Node(n.ID()) != nil {
		panic("simple: add of node with existing ID")
	}
	g.nodes[n.ID()] = n
	g.from[n.ID()] = make(map[int64]graphkit.Edge)
	g.to[n.ID()] = make(map[int64]graphkit.Edge)
	if n.ID() >= g.nextID {
		g.nextID = n.ID() + 1
	}
}

// RemoveNode implements graphkit.NodeRemover.
func (g *DirectedGraph) RemoveNode(id int64) {
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

// NewEdge implements graphkit.EdgeAdder.
func (g *DirectedGraph) NewEdge(from, to graphkit.Node) graphkit.Edge {
	return Edge{F: from, T: to}
}

// SetEdge implements graphkit.EdgeAdder. SetEdge panics if either
// endpoint is not already a node of the graph; use TryAddEdge for the
// non-panicking contract.
func (g *DirectedGraph) SetEdge(e graphkit.Edge) {
	if err := g.TryAddEdge(e); err != nil {
		panic("simple: " + err.Error())
	}
}

// TryAddEdge adds e to the graph, returning graphkit.ErrInvalidEndpoint
// without mutating the graph if either endpoint is not already a node.
func (g *DirectedGraph) TryAddEdge(e graphkit.Edge) error {
	from, to := e.From(), e.To()
	if g.Node(from.ID()) == nil || g.Node(to.ID()) == nil {
		return graphkit.ErrInvalidEndpoint
	}
	g.from[from.ID()][to.ID()] = e
	g.to[to.ID()][from.ID()] = e
	return nil
}

// RemoveEdge implements graphkit.EdgeRemover.
func (g *DirectedGraph) RemoveEdge(fid, tid int64) {
	delete(g.from[fid], tid)
	delete(g.to[tid], fid)
}

// Node implements graphkit.Graph.
func (g *DirectedGraph) Node(id int64) graphkit.Node { return g.nodes[id] }

// Nodes implements graphkit.Graph.
func (g *DirectedGraph) Nodes() graphkit.Nodes {
	if len(g.nodes) == 0 {
		return graphkit.Empty
	}
	nodes := make([]graphkit.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return iterator.NewOrderedNodes(nodes)
}

// From implements graphkit.Graph: out-neighbors.
func (g *DirectedGraph) From(id int64) graphkit.Nodes {
	return nodesOfMap(g.nodes, g.from[id])
}

// To implements graphkit.Directed: in-neighbors.
func (g *DirectedGraph) To(id int64) graphkit.Nodes {
	return nodesOfMap(g.nodes, g.to[id])
}

func nodesOfMap(nodes map[int64]graphkit.Node, adj map[int64]graphkit.Edge) graphkit.Nodes {
	if len(adj) == 0 {
		return graphkit.Empty
	}
	out := make([]graphkit.Node, 0, len(adj))
	for id := range adj {
		out = append(out, nodes[id])
	}
	return iterator.NewOrderedNodes(out)
}

// HasEdgeBetween implements graphkit.Graph: either direction.
func (g *DirectedGraph) HasEdgeBetween(xid, yid int64) bool {
	if _, ok := g.from[xid][yid]; ok {
		return true
	}
	_, ok := g.from[yid][xid]
	return ok
}

// HasEdgeFromTo implements graphkit.Directed.
func (g *DirectedGraph) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := g.from[uid][vid]
	return ok
}

// Edge implements graphkit.Graph.
func (g *DirectedGraph) Edge(uid, vid int64) graphkit.Edge {
	return g.from[uid][vid]
}

// OutDegree returns the number of out-edges of the node with the given
// ID.
func (g *DirectedGraph) OutDegree(id int64) int { return len(g.from[id]) }

// InDegree returns the number of in-edges of the node with the given
// ID.
func (g *DirectedGraph) InDegree(id int64) int { return len(g.to[id]) }
