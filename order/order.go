// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package order computes vertex orderings used to drive sequential
// graph coloring and matrix bandwidth reduction: smallest-last
// (Matula-Beck) and reverse Cuthill-McKee. Neither algorithm has a
// direct counterpart anywhere in the reference corpus this library
// otherwise tracks; both are built from their textbook descriptions in
// the iterative, no-recursion style the rest of this module uses for
// every other per-vertex traversal.
package order

import (
	"sort"

	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/internal/heapq"
	"github.com/kalvaro/graphkit/iterator"
)

func sortedNodes(g graphkit.Graph) []graphkit.Node {
	nodes := graphkit.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	return nodes
}

// SmallestLast computes the Matula-Beck smallest-last vertex ordering
// of the undirected graph g: repeatedly remove a minimum-degree
// vertex of the remaining subgraph (ties broken by lowest ID), then
// reverse the removal sequence. This ordering tends to produce good
// greedy colorings because every vertex, at the time it is colored,
// has few already-colored neighbors relative to its final degree.
//
// Complexity is O((V+E) log V) using a decrease-key-free min-heap with
// lazy staleness checks, the same discipline path and mst use for
// their own frontiers.
func SmallestLast(g graphkit.Graph) []graphkit.Node {
	nodes := sortedNodes(g)
	remaining := make(map[int64]int, len(nodes)) // live degree within the remaining subgraph
	byID := make(map[int64]graphkit.Node, len(nodes))
	removed := make(map[int64]bool, len(nodes))
	// rank is a fraction below 1 that grows with ID; added to a degree it
	// breaks ties toward the lowest ID while int(Priority) stays the degree.
	rank := make(map[int64]float64, len(nodes))
	for i, v := range nodes {
		remaining[v.ID()] = g.From(v.ID()).Len()
		byID[v.ID()] = v
		rank[v.ID()] = float64(i) / float64(len(nodes)+1)
	}

	q := make(heapq.Queue, 0, len(nodes))
	for _, v := range nodes {
		q = append(q, heapq.Item{ID: v.ID(), Priority: float64(remaining[v.ID()]) + rank[v.ID()]})
	}
	q.Init()

	var removalOrder []graphkit.Node
	for len(removalOrder) < len(nodes) {
		item := q.PopItem()
		if removed[item.ID] {
			continue
		}
		if int(item.Priority) != remaining[item.ID] {
			continue // stale entry from an earlier decrement
		}
		removed[item.ID] = true
		removalOrder = append(removalOrder, byID[item.ID])

		it := g.From(item.ID)
		for it.Next() {
			w := it.Node()
			if removed[w.ID()] {
				continue
			}
			remaining[w.ID()]--
			q.PushItem(w.ID(), float64(remaining[w.ID()])+rank[w.ID()])
		}
	}

	for i, j := 0, len(removalOrder)-1; i < j; i, j = i+1, j-1 {
		removalOrder[i], removalOrder[j] = removalOrder[j], removalOrder[i]
	}
	return removalOrder
}

// pseudoPeripheral picks a starting vertex for reverse Cuthill-McKee:
// start at a minimum-degree vertex, BFS from it, then take the
// farthest vertex of minimum degree in that BFS's last level. One
// round of this heuristic is enough to avoid the common
// artificially-small-bandwidth pitfall of starting at an arbitrary
// vertex.
func pseudoPeripheral(g graphkit.Graph, nodes []graphkit.Node) graphkit.Node {
	start := nodes[0]
	for _, v := range nodes {
		if g.From(v.ID()).Len() < g.From(start.ID()).Len() {
			start = v
		}
	}

	depth, lastLevel := bfsLevels(g, start)
	maxDepth := 0
	for _, d := range depth {
		if d > maxDepth {
			maxDepth = d
		}
	}
	_ = lastLevel

	var frontier []graphkit.Node
	for _, v := range nodes {
		if d, ok := depth[v.ID()]; ok && d == maxDepth {
			frontier = append(frontier, v)
		}
	}
	if len(frontier) == 0 {
		return start
	}
	best := frontier[0]
	for _, v := range frontier {
		if g.From(v.ID()).Len() < g.From(best.ID()).Len() {
			best = v
		}
	}
	return best
}

func bfsLevels(g graphkit.Graph, start graphkit.Node) (depth map[int64]int, order []graphkit.Node) {
	depth = map[int64]int{start.ID(): 0}
	queue := []graphkit.Node{start}
	order = append(order, start)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		it := g.From(u.ID())
		for it.Next() {
			w := it.Node()
			if _, seen := depth[w.ID()]; seen {
				continue
			}
			depth[w.ID()] = depth[u.ID()] + 1
			order = append(order, w)
			queue = append(queue, w)
		}
	}
	return depth, order
}

// ReverseCuthillMcKee computes the reverse Cuthill-McKee vertex
// ordering of the undirected graph g, used to shrink the bandwidth of
// g's adjacency matrix: pick a pseudo-peripheral start vertex, BFS
// from it ordering each level by ascending degree, then reverse the
// result. Disconnected components are each ordered independently, in
// ascending-ID component order, and concatenated.
//
// Complexity is O(V+E).
func ReverseCuthillMcKee(g graphkit.Graph) []graphkit.Node {
	nodes := sortedNodes(g)
	visited := make(map[int64]bool, len(nodes))
	var order []graphkit.Node

	for _, root := range nodes {
		if visited[root.ID()] {
			continue
		}
		component := reachable(g, root)
		start := pseudoPeripheral(subgraphOf(g, component), component)

		seen := map[int64]bool{start.ID(): true}
		visited[start.ID()] = true
		queue := []graphkit.Node{start}
		var local []graphkit.Node
		local = append(local, start)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			var neighbors []graphkit.Node
			it := g.From(u.ID())
			for it.Next() {
				w := it.Node()
				if seen[w.ID()] {
					continue
				}
				seen[w.ID()] = true
				visited[w.ID()] = true
				neighbors = append(neighbors, w)
			}
			sort.SliceStable(neighbors, func(i, j int) bool {
				return g.From(neighbors[i].ID()).Len() < g.From(neighbors[j].ID()).Len()
			})
			local = append(local, neighbors...)
			queue = append(queue, neighbors...)
		}

		for i, j := 0, len(local)-1; i < j; i, j = i+1, j-1 {
			local[i], local[j] = local[j], local[i]
		}
		order = append(order, local...)
	}
	return order
}

func reachable(g graphkit.Graph, root graphkit.Node) []graphkit.Node {
	_, nodes := bfsLevels(g, root)
	return nodes
}

// subgraphView restricts g.From to a fixed vertex set, so
// pseudoPeripheral's internal BFS never escapes the component it was
// asked to operate on.
type subgraphView struct {
	g       graphkit.Graph
	members map[int64]bool
}

func subgraphOf(g graphkit.Graph, nodes []graphkit.Node) subgraphView {
	members := make(map[int64]bool, len(nodes))
	for _, n := range nodes {
		members[n.ID()] = true
	}
	return subgraphView{g: g, members: members}
}

func (s subgraphView) From(id int64) graphkit.Nodes {
	all := graphkit.NodesOf(s.g.From(id))
	var kept []graphkit.Node
	for _, n := range all {
		if s.members[n.ID()] {
			kept = append(kept, n)
		}
	}
	return iterator.NewOrderedNodes(kept)
}

func (s subgraphView) Node(id int64) graphkit.Node {
	return s.g.Node(id)
}

func (s subgraphView) Nodes() graphkit.Nodes {
	return s.g.Nodes()
}

func (s subgraphView) HasEdgeBetween(xid, yid int64) bool {
	return s.g.HasEdgeBetween(xid, yid)
}

func (s subgraphView) Edge(uid, vid int64) graphkit.Edge {
	return s.g.Edge(uid, vid)
}
