// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package centrality

import (
	"math"

	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/path"
	"github.com/kalvaro/graphkit/props"
)

// Closeness computes closeness centrality for every vertex of the
// unweighted graph g by running a BFS from each vertex and summing
// reachable distances: closeness(v) = reachable_count / sum(distances),
// or 0 by convention for a vertex that reaches nothing.
func Closeness(g graphkit.Graph) map[int64]float64 {
	nodes := nodesOf(g)
	c := make(map[int64]float64, len(nodes))
	for _, v := range nodes {
		dist := bfsDistances(g, v)
		var total float64
		reached := 0
		for id, d := range dist {
			if id == v.ID() {
				continue
			}
			total += float64(d)
			reached++
		}
		if total > 0 {
			c[v.ID()] = float64(reached) / total
		}
	}
	return c
}

func bfsDistances(g graphkit.Graph, start graphkit.Node) map[int64]int {
	dist := map[int64]int{start.ID(): 0}
	queue := []graphkit.Node{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		it := g.From(u.ID())
		for it.Next() {
			w := it.Node()
			if _, seen := dist[w.ID()]; seen {
				continue
			}
			dist[w.ID()] = dist[u.ID()] + 1
			queue = append(queue, w)
		}
	}
	return dist
}

// ClosenessWeighted computes closeness centrality for every vertex of
// the weighted graph g, summing Dijkstra distances instead of hop
// counts. weight is used as in package path; if nil,
// props.FromWeighted(g) is used. Unreachable vertices contribute
// neither to the reached count nor to the distance sum.
func ClosenessWeighted(g graphkit.Graph, weight props.WeightFunc) map[int64]float64 {
	nodes := nodesOf(g)
	c := make(map[int64]float64, len(nodes))
	for _, v := range nodes {
		tree := path.DijkstraFrom(g, v, weight)
		var total float64
		reached := 0
		for _, u := range nodes {
			if u.ID() == v.ID() {
				continue
			}
			d := tree.WeightTo(u.ID())
			if !math.IsInf(d, 1) {
				total += d
				reached++
			}
		}
		if total > 0 {
			c[v.ID()] = float64(reached) / total
		}
	}
	return c
}
