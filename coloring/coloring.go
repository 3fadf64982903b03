// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coloring assigns colors to the vertices of an undirected
// graph so that no edge joins two same-colored vertices. It offers a
// plain greedy coloring, DSatur, Welsh-Powell, and a generic sequential
// coloring driven by an externally supplied vertex order (see package
// order for smallest-last and reverse Cuthill-McKee orderings).
package coloring

import (
	"sort"

	"github.com/kalvaro/graphkit"
)

// Coloring maps a vertex ID to its assigned color, numbered from 0.
type Coloring map[int64]int

// Count returns the number of distinct colors used, i.e. the
// chromatic number of the approximation c represents.
func (c Coloring) Count() int {
	seen := make(map[int]bool, len(c))
	for _, col := range c {
		seen[col] = true
	}
	return len(seen)
}

// Sets groups vertex IDs by assigned color, each group sorted
// ascending.
func (c Coloring) Sets() map[int][]int64 {
	sets := make(map[int][]int64)
	for id, col := range c {
		sets[col] = append(sets[col], id)
	}
	for _, s := range sets {
		sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	}
	return sets
}

func sortedNodes(g graphkit.Graph) []graphkit.Node {
	nodes := graphkit.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	return nodes
}

func adjacentColors(g graphkit.Graph, uid int64, colors Coloring) map[int]bool {
	used := make(map[int]bool)
	it := g.From(uid)
	for it.Next() {
		if c, ok := colors[it.Node().ID()]; ok {
			used[c] = true
		}
	}
	return used
}

func smallestFeasible(used map[int]bool) int {
	for c := 0; ; c++ {
		if !used[c] {
			return c
		}
	}
}

// Greedy colors the vertices of g in the exact order given, assigning
// each the smallest color id not already used by a colored neighbor.
// The order slice is not modified.
func Greedy(g graphkit.Graph, order []graphkit.Node) Coloring {
	colors := make(Coloring, len(order))
	for _, v := range order {
		colors[v.ID()] = smallestFeasible(adjacentColors(g, v.ID(), colors))
	}
	return colors
}

// DSatur colors g using Brelaz's saturation-degree heuristic:
// repeatedly pick the uncolored vertex with the highest count of
// distinct colors among its colored neighbors, breaking ties by
// highest degree and then by lowest ID, and assign it the smallest
// feasible color.
func DSatur(g graphkit.Graph) Coloring {
	nodes := sortedNodes(g)
	colors := make(Coloring, len(nodes))
	degree := make(map[int64]int, len(nodes))
	for _, v := range nodes {
		degree[v.ID()] = g.From(v.ID()).Len()
	}
	uncolored := make(map[int64]graphkit.Node, len(nodes))
	for _, v := range nodes {
		uncolored[v.ID()] = v
	}

	for len(uncolored) > 0 {
		var chosen graphkit.Node
		bestSat, bestDeg := -1, -1
		for _, v := range nodes {
			if _, ok := uncolored[v.ID()]; !ok {
				continue
			}
			sat := len(adjacentColors(g, v.ID(), colors))
			deg := degree[v.ID()]
			if sat > bestSat || (sat == bestSat && deg > bestDeg) {
				bestSat, bestDeg = sat, deg
				chosen = v
			}
		}
		colors[chosen.ID()] = smallestFeasible(adjacentColors(g, chosen.ID(), colors))
		delete(uncolored, chosen.ID())
	}
	return colors
}

// WelshPowell colors g by sorting vertices in descending degree order,
// then assigning each new color to the first uncolored vertex in that
// order and greedily extending it to every later vertex in the order
// that is non-adjacent to everything already given that color.
func WelshPowell(g graphkit.Graph) Coloring {
	nodes := sortedNodes(g)
	sort.SliceStable(nodes, func(i, j int) bool {
		return g.From(nodes[i].ID()).Len() > g.From(nodes[j].ID()).Len()
	})

	colors := make(Coloring, len(nodes))
	colored := make(map[int64]bool, len(nodes))
	color := 0
	for _, v := range nodes {
		if colored[v.ID()] {
			continue
		}
		colors[v.ID()] = color
		colored[v.ID()] = true
		for _, w := range nodes {
			if colored[w.ID()] {
				continue
			}
			if !adjacentColors(g, w.ID(), colors)[color] {
				colors[w.ID()] = color
				colored[w.ID()] = true
			}
		}
		color++
	}
	return colors
}

// SequentialWithOrder applies Greedy using a vertex ordering produced
// elsewhere, typically package order's SmallestLast or
// ReverseCuthillMcKee; any []graphkit.Node permutation of g's vertices
// works.
func SequentialWithOrder(g graphkit.Graph, order []graphkit.Node) Coloring {
	return Greedy(g, order)
}
