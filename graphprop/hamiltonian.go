// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphprop

import "github.com/kalvaro/graphkit"

// HamiltonianCycle searches for a Hamiltonian cycle (a closed walk
// visiting every vertex exactly once) by plain DFS backtracking from
// the first node of g.Nodes() (a cycle passes through every vertex,
// so one start suffices), trying every unvisited out-neighbor in turn
// and undoing a choice once it cannot be extended. This is NP-hard in
// general; worst-case time is exponential in vertex count.
func HamiltonianCycle(g graphkit.Graph) ([]graphkit.Node, bool) {
	nodes := sortedNodes(g)
	if len(nodes) == 0 {
		return nil, false
	}
	start := nodes[0].ID()
	visited := map[int64]bool{start: true}
	if path, ok := backtrackHamiltonian(g, start, []int64{start}, visited, len(nodes), true); ok {
		return idsToNodes(g, path), true
	}
	return nil, false
}

// HamiltonianPath searches for a Hamiltonian path (visiting every
// vertex exactly once, not necessarily closed), trying every vertex as
// a start.
func HamiltonianPath(g graphkit.Graph) ([]graphkit.Node, bool) {
	nodes := sortedNodes(g)
	for _, n := range nodes {
		visited := map[int64]bool{n.ID(): true}
		if path, ok := backtrackHamiltonian(g, n.ID(), []int64{n.ID()}, visited, len(nodes), false); ok {
			return idsToNodes(g, path), true
		}
	}
	return nil, len(nodes) == 0
}

// backtrackHamiltonian extends path from cur by one unvisited
// out-neighbor at a time, backtracking (undoing the visited mark) on a
// dead end. On success it returns the completed path. Each extension
// is made on a fresh copy, so the caller's path is never extended in
// place and the caller must take the result from the return value.
func backtrackHamiltonian(g graphkit.Graph, cur int64, path []int64, visited map[int64]bool, n int, closed bool) ([]int64, bool) {
	if len(path) == n {
		if !closed {
			return path, true
		}
		if g.HasEdgeBetween(cur, path[0]) {
			return path, true
		}
		return nil, false
	}
	it := g.From(cur)
	for it.Next() {
		v := it.Node().ID()
		if visited[v] {
			continue
		}
		visited[v] = true
		extended := make([]int64, len(path), len(path)+1)
		copy(extended, path)
		extended = append(extended, v)
		if completed, ok := backtrackHamiltonian(g, v, extended, visited, n, closed); ok {
			return completed, true
		}
		visited[v] = false
	}
	return nil, false
}

func idsToNodes(g graphkit.Graph, ids []int64) []graphkit.Node {
	nodes := make([]graphkit.Node, len(ids))
	for i, id := range ids {
		nodes[i] = g.Node(id)
	}
	return nodes
}

// HamiltonianPathWarnsdorff is a heuristic Hamiltonian path search:
// at each step, move to the unvisited neighbor with the fewest onward
// unvisited neighbors (Warnsdorff's rule, originally devised for
// knight's-tour search on a grid graph). If the heuristic walk dead-
// ends before covering every vertex, it falls back to the exhaustive
// backtracking search from HamiltonianPath rather than reporting
// failure, since the heuristic has no completeness guarantee.
func HamiltonianPathWarnsdorff(g graphkit.Graph) ([]graphkit.Node, bool) {
	nodes := sortedNodes(g)
	if len(nodes) == 0 {
		return nil, true
	}

	visited := map[int64]bool{nodes[0].ID(): true}
	path := []int64{nodes[0].ID()}
	cur := nodes[0].ID()
	for len(path) < len(nodes) {
		next, ok := warnsdorffNext(g, cur, visited)
		if !ok {
			return HamiltonianPath(g)
		}
		visited[next] = true
		path = append(path, next)
		cur = next
	}
	return idsToNodes(g, path), true
}

func warnsdorffNext(g graphkit.Graph, cur int64, visited map[int64]bool) (int64, bool) {
	var best int64
	bestDegree := -1
	found := false
	it := g.From(cur)
	for it.Next() {
		v := it.Node().ID()
		if visited[v] {
			continue
		}
		d := unvisitedDegree(g, v, visited)
		if !found || d < bestDegree || (d == bestDegree && v < best) {
			best, bestDegree, found = v, d, true
		}
	}
	return best, found
}

func unvisitedDegree(g graphkit.Graph, u int64, visited map[int64]bool) int {
	n := 0
	it := g.From(u)
	for it.Next() {
		if !visited[it.Node().ID()] {
			n++
		}
	}
	return n
}
