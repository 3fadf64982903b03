// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package centrality

import "github.com/kalvaro/graphkit"

// Betweenness computes betweenness centrality for every vertex of the
// unweighted graph g using Brandes' algorithm: for each source, a BFS
// computes the shortest-path count sigma and predecessor sets, then
// dependencies are accumulated backwards in non-increasing distance
// order.
func Betweenness(g graphkit.Graph, directed bool) map[int64]float64 {
	nodes := nodesOf(g)
	cb := make(map[int64]float64, len(nodes))
	for _, v := range nodes {
		cb[v.ID()] = 0
	}

	pred := make(map[int64][]int64, len(nodes))
	sigma := make(map[int64]float64, len(nodes))
	dist := make(map[int64]int, len(nodes))
	delta := make(map[int64]float64, len(nodes))

	for _, s := range nodes {
		var stack []int64
		for _, w := range nodes {
			pred[w.ID()] = pred[w.ID()][:0]
			sigma[w.ID()] = 0
			dist[w.ID()] = -1
		}
		sigma[s.ID()] = 1
		dist[s.ID()] = 0

		queue := []int64{s.ID()}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			it := g.From(v)
			for it.Next() {
				w := it.Node().ID()
				if dist[w] < 0 {
					queue = append(queue, w)
					dist[w] = dist[v] + 1
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		for _, v := range nodes {
			delta[v.ID()] = 0
		}
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s.ID() {
				cb[w] += delta[w]
			}
		}
	}

	n := len(nodes)
	if !directed {
		// Each undirected pair was traversed once from each end, so
		// every dependency was accumulated twice.
		for id := range cb {
			cb[id] /= 2
		}
	}
	if directed && n > 2 {
		norm := 1.0 / float64((n-1)*(n-2))
		for id := range cb {
			cb[id] *= norm
		}
	}
	return cb
}
