// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphprop

import "github.com/kalvaro/graphkit"

// EulerianCycle reports whether g has an Eulerian cycle (a closed walk
// using every edge exactly once) and, if so, returns one as a vertex
// sequence starting and ending at the same vertex. A cycle exists iff
// g is connected on its non-isolated vertices and every vertex has
// equal in/out degree (directed) or even degree (undirected).
func EulerianCycle(g graphkit.Graph) ([]graphkit.Node, bool) {
	nodes := nonIsolated(g)
	if len(nodes) == 0 {
		return nil, true
	}
	if !connectedOn(g, nodes) {
		return nil, false
	}
	if d, ok := g.(graphkit.Directed); ok {
		for _, n := range nodes {
			if outDegree(d, n.ID()) != inDegree(d, n.ID()) {
				return nil, false
			}
		}
	} else {
		for _, n := range nodes {
			if len(graphkit.NodesOf(g.From(n.ID())))%2 != 0 {
				return nil, false
			}
		}
	}
	return hierholzer(g, nodes[0].ID()), true
}

// EulerianPath reports whether g has an Eulerian path (a walk using
// every edge exactly once, not necessarily closed) and, if so, returns
// one. A path exists whenever a cycle does (any start works), or when
// exactly two vertices are imbalanced: on a directed graph one with
// out-in==1 (the start) and one with in-out==1 (the end); on an
// undirected graph exactly two vertices of odd degree (either serves
// as start).
func EulerianPath(g graphkit.Graph) ([]graphkit.Node, bool) {
	nodes := nonIsolated(g)
	if len(nodes) == 0 {
		return nil, true
	}
	if !connectedOn(g, nodes) {
		return nil, false
	}

	start := nodes[0].ID()
	if d, ok := g.(graphkit.Directed); ok {
		var starts, ends, balanced int
		candidate := start
		for _, n := range nodes {
			diff := outDegree(d, n.ID()) - inDegree(d, n.ID())
			switch diff {
			case 0:
				balanced++
			case 1:
				starts++
				candidate = n.ID()
			case -1:
				ends++
			default:
				return nil, false
			}
		}
		if !(starts == 0 && ends == 0) && !(starts == 1 && ends == 1) {
			return nil, false
		}
		start = candidate
	} else {
		var odd []int64
		for _, n := range nodes {
			if len(graphkit.NodesOf(g.From(n.ID())))%2 != 0 {
				odd = append(odd, n.ID())
			}
		}
		switch len(odd) {
		case 0:
			// any start works, already set
		case 2:
			start = odd[0]
		default:
			return nil, false
		}
	}
	return hierholzer(g, start), true
}

func nonIsolated(g graphkit.Graph) []graphkit.Node {
	var out []graphkit.Node
	for _, n := range sortedNodes(g) {
		if len(neighborsBothWays(g, n.ID())) > 0 {
			out = append(out, n)
		}
	}
	return out
}

func connectedOn(g graphkit.Graph, nodes []graphkit.Node) bool {
	if len(nodes) <= 1 {
		return true
	}
	visited := reachableUndirected(g, nodes[0].ID())
	for _, n := range nodes {
		if !visited[n.ID()] {
			return false
		}
	}
	return true
}

func outDegree(g graphkit.Graph, u int64) int { return len(graphkit.NodesOf(g.From(u))) }
func inDegree(g graphkit.Directed, u int64) int {
	return len(graphkit.NodesOf(g.To(u)))
}

// hierholzer walks g from start, consuming each edge exactly once:
// follow unused edges until stuck, then splice in the detour found by
// backtracking to the most recent vertex on the current walk that
// still has unused edges. The final stack-pop order, reversed, is the
// Eulerian walk. Each vertex's remaining out-edges are tracked as a
// plain slice of neighbor IDs: the walk follows the last entry, and
// consume deletes a used edge by linear search (from both endpoints'
// slices on an undirected graph).
func hierholzer(g graphkit.Graph, start int64) []graphkit.Node {
	remaining := make(map[int64][]int64)
	for _, n := range sortedNodes(g) {
		for _, w := range graphkit.NodesOf(g.From(n.ID())) {
			remaining[n.ID()] = append(remaining[n.ID()], w.ID())
		}
	}
	_, directed := g.(graphkit.Directed)

	consume := func(u, v int64) {
		remaining[u] = removeOne(remaining[u], v)
		if !directed {
			remaining[v] = removeOne(remaining[v], u)
		}
	}

	stack := []int64{start}
	var walk []int64
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		rem := remaining[u]
		if len(rem) == 0 {
			walk = append(walk, u)
			stack = stack[:len(stack)-1]
			continue
		}
		v := rem[len(rem)-1]
		consume(u, v)
		stack = append(stack, v)
	}

	// walk was built by appending on pop, so it is in reverse order.
	nodes := make([]graphkit.Node, len(walk))
	for i, id := range walk {
		nodes[len(walk)-1-i] = g.Node(id)
	}
	return nodes
}

func removeOne(ids []int64, target int64) []int64 {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
