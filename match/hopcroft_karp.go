// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package match computes maximum bipartite matchings via
// Hopcroft-Karp, built on the same layered-BFS-then-DFS shape package
// flow's Dinic uses for blocking flow: a BFS phase finds the shortest
// augmenting-path length, then a DFS phase augments along every
// vertex-disjoint path of exactly that length before the next BFS.
package match

import (
	"math"

	"github.com/kalvaro/graphkit"
)

// Matching maps a left-side vertex ID to its matched right-side vertex
// ID. Only matched left vertices appear as keys.
type Matching map[int64]int64

// HopcroftKarp computes a maximum matching between the disjoint vertex
// sets left and right of the bipartite graph g, where g.From(u) for
// u in left enumerates u's right-side neighbors. It alternates a BFS
// layering phase (layering left vertices by alternating-path distance
// from the unmatched left vertices, up to the first layer adjacent to
// an unmatched right vertex) with a DFS phase that augments along
// every vertex-disjoint shortest augmenting path found, repeating
// until a BFS phase finds no augmenting path at all.
//
// Complexity is O(E·√V).
func HopcroftKarp(g graphkit.Graph, left, right []graphkit.Node) Matching {
	matchLeft := make(map[int64]int64, len(left))  // left ID -> matched right ID
	matchRight := make(map[int64]int64, len(right)) // right ID -> matched left ID

	for {
		dist, freeLeftReachesFree := bfsLayer(g, left, matchLeft, matchRight)
		if !freeLeftReachesFree {
			break
		}
		visited := make(map[int64]bool)
		for _, u := range left {
			if _, matched := matchLeft[u.ID()]; matched {
				continue
			}
			dfsAugment(g, u.ID(), dist, matchLeft, matchRight, visited)
		}
	}

	m := make(Matching, len(matchLeft))
	for u, v := range matchLeft {
		m[u] = v
	}
	return m
}

const infDist = math.MaxInt32

// bfsLayer assigns each left vertex its BFS layer along alternating
// (unmatched, matched) edges, seeding the BFS frontier with every
// currently-unmatched left vertex at layer 0. Layers beyond the first
// one adjacent to a free right vertex are reset to infDist, so
// dfsAugment only follows shortest augmenting paths. ok reports
// whether any free right vertex was reached at all, i.e. whether
// another augmenting phase can make progress.
func bfsLayer(g graphkit.Graph, left []graphkit.Node, matchLeft, matchRight map[int64]int64) (dist map[int64]int, ok bool) {
	dist = make(map[int64]int, len(left))
	var queue []int64
	for _, u := range left {
		if _, matched := matchLeft[u.ID()]; matched {
			dist[u.ID()] = infDist
		} else {
			dist[u.ID()] = 0
			queue = append(queue, u.ID())
		}
	}
	freeReached := false
	limit := infDist

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		it := g.From(u)
		for it.Next() {
			v := it.Node().ID()
			matchedLeft, isMatched := matchRight[v]
			if !isMatched {
				freeReached = true
				if dist[u] < limit {
					limit = dist[u]
				}
				continue
			}
			if d, seen := dist[matchedLeft]; !seen || d == infDist {
				dist[matchedLeft] = dist[u] + 1
				queue = append(queue, matchedLeft)
			}
		}
	}
	for id, d := range dist {
		if d > limit {
			dist[id] = infDist
		}
	}
	return dist, freeReached
}

// dfsAugment searches from the free left vertex u along edges whose
// right endpoint is either free (a successful augmentation) or
// matched to a left vertex exactly one BFS layer further out,
// flipping the match along the path on success.
func dfsAugment(g graphkit.Graph, u int64, dist map[int64]int, matchLeft, matchRight map[int64]int64, visited map[int64]bool) bool {
	it := g.From(u)
	for it.Next() {
		v := it.Node().ID()
		matchedLeft, isMatched := matchRight[v]
		if !isMatched {
			matchLeft[u] = v
			matchRight[v] = u
			return true
		}
		if visited[matchedLeft] || dist[matchedLeft] != dist[u]+1 {
			continue
		}
		visited[matchedLeft] = true
		if dfsAugment(g, matchedLeft, dist, matchLeft, matchRight, visited) {
			matchLeft[u] = v
			matchRight[v] = u
			return true
		}
	}
	return false
}
