// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/props"
)

// JohnsonAllPaths computes all-pairs shortest paths in a graph that
// may carry negative edge weights (but no negative cycle): a virtual
// vertex q with zero-weight edges to every
// node produces potentials h via Bellman-Ford; each edge (u,v) is
// reweighted to w(u,v)+h[u]-h[v], which the potential property
// guarantees is non-negative; Dijkstra then runs from every vertex on
// the reweighted graph, and distances are unshifted back by
// subtracting h[u] and adding h[v].
//
// If a negative cycle is detected, the returned AllShortest carries
// NegativeCycle()==true and no usable distances.
//
// Complexity is O(V.E + V^2 log V), dominated by the V Dijkstra runs.
func JohnsonAllPaths(g graphkit.Graph, weight props.WeightFunc) AllShortest {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	nodes := graphkit.NodesOf(g.Nodes())

	h := make(map[int64]float64, len(nodes))
	for _, n := range nodes {
		h[n.ID()] = 0
	}
	relaxAll := func() bool {
		changed := false
		for _, u := range nodes {
			to := g.From(u.ID())
			for to.Next() {
				v := to.Node()
				w, ok := weight(u.ID(), v.ID())
				if !ok {
					continue
				}
				if h[u.ID()]+w < h[v.ID()] {
					h[v.ID()] = h[u.ID()] + w
					changed = true
				}
			}
		}
		return changed
	}
	for i := 0; i < len(nodes); i++ {
		if !relaxAll() {
			break
		}
	}
	if relaxAll() {
		paths := newAllShortest(nodes)
		paths.negativeCycle = true
		return paths
	}

	reweighted := props.WeightFunc(func(uid, vid int64) (float64, bool) {
		w, ok := weight(uid, vid)
		if !ok {
			return 0, false
		}
		return w + h[uid] - h[vid], true
	})

	paths := DijkstraAllPaths(g, reweighted)
	for i, u := range nodes {
		for j, v := range nodes {
			d := paths.dist.At(i, j)
			if math.IsInf(d, 1) {
				continue
			}
			paths.dist.Set(i, j, d-h[u.ID()]+h[v.ID()])
		}
	}
	return paths
}
