// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topo implements connected components (union-find and DFS
// variants),
// strongly connected components (Tarjan and Kosaraju), articulation
// points and bridges, and topological sort (Kahn's and DFS-based).
package topo

import (
	"sort"

	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/set"
	"github.com/kalvaro/graphkit/traverse"
)

// sortedNodes returns g's nodes sorted by ID, the canonical ordering
// every deterministic algorithm in this package relies on
// (TarjanSCC, KosarajuSCC and the topological sorts all start from it).
func sortedNodes(g graphkit.Graph) []graphkit.Node {
	nodes := graphkit.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	return nodes
}

func sortedByID(nodes []graphkit.Node) []graphkit.Node {
	out := append([]graphkit.Node(nil), nodes...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// ConnectedComponentsUnionFind partitions an undirected graph's
// vertices by unioning the endpoints of every edge
// Complexity is O(E.alpha(V) + V).
func ConnectedComponentsUnionFind(g graphkit.Graph) [][]graphkit.Node {
	nodes := sortedNodes(g)
	dsu := set.NewDisjoint()
	for _, n := range nodes {
		dsu.Add(n.ID())
	}
	for _, u := range nodes {
		to := g.From(u.ID())
		for to.Next() {
			dsu.Union(u.ID(), to.Node().ID())
		}
	}
	return groupByRoot(nodes, dsu)
}

func groupByRoot(nodes []graphkit.Node, dsu *set.Disjoint) [][]graphkit.Node {
	byRoot := make(map[int64][]graphkit.Node)
	var roots []int64
	for _, n := range nodes {
		r := dsu.Find(n.ID())
		if _, ok := byRoot[r]; !ok {
			roots = append(roots, r)
		}
		byRoot[r] = append(byRoot[r], n)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })
	out := make([][]graphkit.Node, len(roots))
	for i, r := range roots {
		out[i] = byRoot[r]
	}
	return out
}

// ConnectedComponentsDFS partitions an undirected graph's vertices by
// running a DFS from every unvisited vertex and grouping each tree's
// members under one component id Complexity is
// O(V+E).
func ConnectedComponentsDFS(g graphkit.Graph) [][]graphkit.Node {
	visited := make(map[int64]bool)
	var components [][]graphkit.Node
	for _, root := range sortedNodes(g) {
		if visited[root.ID()] {
			continue
		}
		var members []graphkit.Node
		visitor := traverse.Visitor{DiscoverVertex: func(v graphkit.Node) {
			visited[v.ID()] = true
			members = append(members, v)
		}}
		traverse.NewDFS(g, root, traverse.PreOrder, visitor).All()
		components = append(components, members)
	}
	return components
}
