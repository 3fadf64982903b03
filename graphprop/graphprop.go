// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphprop answers cheap structural questions about a graph:
// connectivity, acyclicity, bipartiteness, and a fast non-planarity
// filter by the Euler formula.
package graphprop

import "github.com/kalvaro/graphkit"

func sortedNodes(g graphkit.Graph) []graphkit.Node {
	return graphkit.NodesOf(g.Nodes())
}

func countEdges(g graphkit.Graph) int {
	_, directed := g.(graphkit.Directed)
	seen := make(map[[2]int64]bool)
	var n int
	for _, u := range sortedNodes(g) {
		it := g.From(u.ID())
		for it.Next() {
			v := it.Node().ID()
			if directed {
				n++
				continue
			}
			key := [2]int64{u.ID(), v}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if !seen[key] {
				seen[key] = true
				n++
			}
		}
	}
	return n
}

// IsConnected reports whether every vertex of g is reachable from
// every other, ignoring edge direction. The empty graph and a
// single-vertex graph both count as connected.
func IsConnected(g graphkit.Graph) bool {
	nodes := sortedNodes(g)
	if len(nodes) <= 1 {
		return true
	}
	visited := reachableUndirected(g, nodes[0].ID())
	return len(visited) == len(nodes)
}

func reachableUndirected(g graphkit.Graph, start int64) map[int64]bool {
	visited := map[int64]bool{start: true}
	queue := []int64{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range neighborsBothWays(g, u) {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	return visited
}

// neighborsBothWays returns u's out-neighbors plus, on a directed
// graph, its in-neighbors too: connectivity predicates in this package
// treat direction as ignorable, the same convention gonum's topo
// package uses for its Undirected wrapper.
func neighborsBothWays(g graphkit.Graph, u int64) []int64 {
	var out []int64
	it := g.From(u)
	for it.Next() {
		out = append(out, it.Node().ID())
	}
	if d, ok := g.(graphkit.Directed); ok {
		it := d.To(u)
		for it.Next() {
			out = append(out, it.Node().ID())
		}
	}
	return out
}

// IsTree reports whether g is connected and acyclic (ignoring
// direction): exactly V-1 edges among V vertices and no cycle. The
// empty graph counts as a (degenerate) tree.
func IsTree(g graphkit.Graph) bool {
	nodes := sortedNodes(g)
	if len(nodes) == 0 {
		return true
	}
	if countEdges(g) != len(nodes)-1 {
		return false
	}
	return IsConnected(g)
}

// IsCyclic reports whether g contains a cycle. On a graphkit.Directed
// graph this means a directed cycle (detected the same way
// topo.KahnTopoSort does, via Kahn's zero-in-degree elimination); on
// an undirected graph it means any cycle at all, detected by DFS
// parent-tracking (a non-parent already-visited neighbor is a back
// edge).
func IsCyclic(g graphkit.Graph) bool {
	if d, ok := g.(graphkit.Directed); ok {
		return directedIsCyclic(d)
	}
	return undirectedIsCyclic(g)
}

func directedIsCyclic(g graphkit.Directed) bool {
	nodes := sortedNodes(g)
	inDegree := make(map[int64]int, len(nodes))
	for _, n := range nodes {
		inDegree[n.ID()] = 0
	}
	for _, u := range nodes {
		it := g.From(u.ID())
		for it.Next() {
			inDegree[it.Node().ID()]++
		}
	}
	var queue []int64
	for _, n := range nodes {
		if inDegree[n.ID()] == 0 {
			queue = append(queue, n.ID())
		}
	}
	visited := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		visited++
		it := g.From(u)
		for it.Next() {
			v := it.Node().ID()
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	return visited != len(nodes)
}

func undirectedIsCyclic(g graphkit.Graph) bool {
	visited := make(map[int64]bool)
	for _, n := range sortedNodes(g) {
		if visited[n.ID()] {
			continue
		}
		if dfsHasCycle(g, n.ID(), -1, visited) {
			return true
		}
	}
	return false
}

func dfsHasCycle(g graphkit.Graph, u, parent int64, visited map[int64]bool) bool {
	visited[u] = true
	it := g.From(u)
	for it.Next() {
		v := it.Node().ID()
		if !visited[v] {
			if dfsHasCycle(g, v, u, visited) {
				return true
			}
		} else if v != parent {
			return true
		}
	}
	return false
}

// Bipartition maps a vertex to the side (0 or 1) of a bipartition.
type Bipartition map[int64]int

// Bipartite two-colors g by BFS, starting a fresh color class at each
// unvisited vertex to cover disconnected graphs. It reports false the
// moment an edge connects two same-colored vertices.
func Bipartite(g graphkit.Graph) (Bipartition, bool) {
	color := make(Bipartition)
	for _, n := range sortedNodes(g) {
		if _, done := color[n.ID()]; done {
			continue
		}
		color[n.ID()] = 0
		queue := []int64{n.ID()}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range neighborsBothWays(g, u) {
				if c, ok := color[v]; ok {
					if c == color[u] {
						return nil, false
					}
					continue
				}
				color[v] = 1 - color[u]
				queue = append(queue, v)
			}
		}
	}
	return color, true
}

// PlanarByEulerFormula applies the necessary-condition filter E > 3V-6
// (or the tighter E > 2V-4 for a known-bipartite graph) and reports
// true when it is violated, i.e. when g is certainly non-planar. A
// false result means only that this cheap filter found no
// contradiction. It is not a proof of planarity, since a full test
// would need a Kuratowski-subdivision search this package does not
// implement.
func PlanarByEulerFormula(g graphkit.Graph) (nonPlanarWitnessed bool) {
	v := len(sortedNodes(g))
	if v < 3 {
		return false
	}
	e := countEdges(g)
	if _, bipartite := Bipartite(g); bipartite {
		return e > 2*v-4
	}
	return e > 3*v-6
}
