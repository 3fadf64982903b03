// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/props"
)

// BellmanFordFrom returns a shortest-path tree for a shortest path
// from u to every node in g reachable from it, tolerating negative
// edge weights. Unlike DijkstraFrom, it never panics on a negative
// weight; instead, Shortest.NegativeCycle reports true and every
// distance is meaningless if a negative cycle reachable from u is
// detected.
//
// Initialize distance[u]=0, everything else +Inf;
// relax every edge |V|-1 times; then run one more relaxation pass. If
// anything still relaxes, a negative cycle exists.
//
// Complexity is O(V.E).
func BellmanFordFrom(g graphkit.Graph, u graphkit.Node, weight props.WeightFunc) Shortest {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	nodes := graphkit.NodesOf(g.Nodes())
	tree := newShortest(u, nodes)
	if _, ok := tree.indexOf[u.ID()]; !ok {
		return tree
	}

	relaxAll := func() bool {
		changed := false
		for _, n := range nodes {
			i := tree.indexOf[n.ID()]
			if math.IsInf(tree.dist[i], 1) {
				continue
			}
			to := g.From(n.ID())
			for to.Next() {
				v := to.Node()
				j := tree.indexOf[v.ID()]
				w, ok := weight(n.ID(), v.ID())
				if !ok {
					continue
				}
				alt := tree.dist[i] + w
				if alt < tree.dist[j] {
					tree.dist[j] = alt
					tree.pred[j] = edgeBetween(g, n, v)
					tree.has[j] = true
					changed = true
				}
			}
		}
		return changed
	}

	for i := 0; i < len(nodes)-1; i++ {
		if !relaxAll() {
			break
		}
	}
	if relaxAll() {
		tree.negativeCycle = true
	}
	return tree
}

// SPFAFrom is the queue-based variant of Bellman-Ford: a FIFO queue
// of vertices whose distance just changed,
// relaxing only their out-edges rather than scanning every edge on
// every pass. A vertex is enqueued at most once at a time (tracked by
// queued); a per-vertex enqueue counter exceeding |V| flags a negative
// cycle, since no vertex on a simple shortest-path tree needs to be
// relaxed more than |V|-1 times.
func SPFAFrom(g graphkit.Graph, u graphkit.Node, weight props.WeightFunc) Shortest {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	nodes := graphkit.NodesOf(g.Nodes())
	tree := newShortest(u, nodes)
	if _, ok := tree.indexOf[u.ID()]; !ok {
		return tree
	}

	queued := make([]bool, len(nodes))
	enqueues := make([]int, len(nodes))
	ui := tree.indexOf[u.ID()]
	queue := []int{ui}
	queued[ui] = true
	enqueues[ui] = 1

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		queued[i] = false
		cur := tree.nodes[i]

		to := g.From(cur.ID())
		for to.Next() {
			v := to.Node()
			j := tree.indexOf[v.ID()]
			w, ok := weight(cur.ID(), v.ID())
			if !ok {
				continue
			}
			alt := tree.dist[i] + w
			if alt < tree.dist[j] {
				tree.dist[j] = alt
				tree.pred[j] = edgeBetween(g, cur, v)
				tree.has[j] = true
				if !queued[j] {
					queue = append(queue, j)
					queued[j] = true
					enqueues[j]++
					if enqueues[j] > len(nodes) {
						tree.negativeCycle = true
						return tree
					}
				}
			}
		}
	}
	return tree
}
