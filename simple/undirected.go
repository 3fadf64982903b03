// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/iterator"
)

// UndirectedGraph is a minimal in-memory undirected graph.
type UndirectedGraph struct {
	nodes map[int64]graphkit.Node
	edges map[int64]map[int64]graphkit.Edge
	nextID int64
}

// NewUndirectedGraph returns an empty UndirectedGraph.
func NewUndirectedGraph() *UndirectedGraph {
	return &UndirectedGraph{
		nodes: make(map[int64]graphkit.Node),
		edges: make(map[int64]map[int64]graphkit.Edge),
	}
}

// NewNode implements graphkit.NodeAdder.
func (g *UndirectedGraph) NewNode() graphkit.Node {
	for g.Node(g.nextID) != nil {
		g.nextID++
	}
	return Node(g.nextID)
}

// AddNode implements graphkit.NodeAdder.
func (g *UndirectedGraph) AddNode(n graphkit.Node) {
	if g.Node(n.ID()) != nil {
		panic("simple: add of node with existing ID")
	}
	g.nodes[n.ID()] = n
	g.edges[n.ID()] = make(map[int64]graphkit.Edge)
	if n.ID() >= g.nextID {
		g.nextID = n.ID() + 1
	}
}

// RemoveNode implements graphkit.NodeRemover. Removing a node removes
// all edges incident on it first.
func (g *UndirectedGraph) RemoveNode(id int64) {
	if g.Node(id) == nil {
		return
	}
	for to := range g.edges[id] {
		delete(g.edges[to], id)
	}
	delete(g.edges, id)
	delete(g.nodes, id)
}

// NewEdge implements graphkit.EdgeAdder.
func (g *UndirectedGraph) NewEdge(from, to graphkit.Node) graphkit.Edge {
	return Edge{F: from, T: to}
}

// SetEdge implements graphkit.EdgeAdder. SetEdge panics if either
// endpoint is not already a node of the graph; callers that want the
// non-panicking graphkit.ErrInvalidEndpoint behavior
// should call TryAddEdge instead.
func (g *UndirectedGraph) SetEdge(e graphkit.Edge) {
	if err := g.TryAddEdge(e); err != nil {
		panic("simple: " + err.Error())
	}
}

// TryAddEdge adds e to the graph, returning graphkit.ErrInvalidEndpoint
// without mutating the graph if either endpoint is not already a node
// of the graph.
func (g *UndirectedGraph) TryAddEdge(e graphkit.Edge) error {
	from, to := e.From(), e.To()
	if g.Node(from.ID()) == nil || g.Node(to.ID()) == nil {
		return graphkit.ErrInvalidEndpoint
	}
	g.edges[from.ID()][to.ID()] = e
	g.edges[to.ID()][from.ID()] = e.ReversedEdge()
	return nil
}

// RemoveEdge implements graphkit.EdgeRemover.
func (g *UndirectedGraph) RemoveEdge(fid, tid int64) {
	delete(g.edges[fid], tid)
	delete(g.edges[tid], fid)
}

// Node implements graphkit.Graph.
func (g *UndirectedGraph) Node(id int64) graphkit.Node {
	return g.nodes[id]
}

// Nodes implements graphkit.Graph.
func (g *UndirectedGraph) Nodes() graphkit.Nodes {
	if len(g.nodes) == 0 {
		return graphkit.Empty
	}
	nodes := make([]graphkit.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return iterator.NewOrderedNodes(nodes)
}

// From implements graphkit.Graph.
func (g *UndirectedGraph) From(id int64) graphkit.Nodes {
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

// HasEdgeBetween implements graphkit.Graph.
func (g *UndirectedGraph) HasEdgeBetween(xid, yid int64) bool {
	_, ok := g.edges[xid][yid]
	return ok
}

// EdgeBetween implements graphkit.Undirected.
func (g *UndirectedGraph) EdgeBetween(xid, yid int64) graphkit.Edge {
	return g.edges[xid][yid]
}

// Edge implements graphkit.Graph.
func (g *UndirectedGraph) Edge(uid, vid int64) graphkit.Edge {
	return g.edges[uid][vid]
}

// Degree returns the number of edges incident on the node with the
// given ID.
func (g *UndirectedGraph) Degree(id int64) int {
	return len(g.edges[id])
}
