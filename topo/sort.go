// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/traverse"
)

// KahnTopoSort computes a topological order of the directed graph g by
// repeatedly emitting a zero-in-degree vertex and decrementing its
// out-neighbors' in-degrees It reports ok=false if
// fewer than |V| vertices were emitted, meaning g has a cycle; order
// then holds only the acyclic prefix that could be emitted.
//
// Complexity is O(V+E).
func KahnTopoSort(g graphkit.Directed) (order []graphkit.Node, ok bool) {
	nodes := sortedNodes(g)
	indegree := make(map[int64]int, len(nodes))
	for _, n := range nodes {
		indegree[n.ID()] = 0
	}
	for _, u := range nodes {
		to := g.From(u.ID())
		for to.Next() {
			indegree[to.Node().ID()]++
		}
	}

	var queue []graphkit.Node
	for _, n := range nodes {
		if indegree[n.ID()] == 0 {
			queue = append(queue, n)
		}
	}

	byID := make(map[int64]graphkit.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID()] = n
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		var freed []graphkit.Node
		to := g.From(u.ID())
		for to.Next() {
			v := to.Node()
			indegree[v.ID()]--
			if indegree[v.ID()] == 0 {
				freed = append(freed, v)
			}
		}
		queue = append(queue, sortedByID(freed)...)
	}

	return order, len(order) == len(nodes)
}

// DFSTopoSort computes a topological order of the directed graph g by
// running a post-order DFS from every unvisited vertex and reversing
// the finish sequence A back edge observed during
// the DFS means g has a cycle, reported as ok=false; order is nil in
// that case.
//
// Complexity is O(V+E).
func DFSTopoSort(g graphkit.Directed) (order []graphkit.Node, ok bool) {
	nodes := sortedNodes(g)
	visited := make(map[int64]bool, len(nodes))
	cyclic := false
	var finishOrder []graphkit.Node

	for _, root := range nodes {
		if visited[root.ID()] {
			continue
		}
		visitor := traverse.Visitor{
			DiscoverVertex: func(v graphkit.Node) { visited[v.ID()] = true },
			BackEdge:       func(graphkit.Edge) { cyclic = true },
			FinishVertex:   func(v graphkit.Node) { finishOrder = append(finishOrder, v) },
		}
		traverse.NewDFS(g, root, traverse.PostOrder, visitor).All()
	}
	if cyclic {
		return nil, false
	}
	reverseNodes(finishOrder)
	return finishOrder, true
}
