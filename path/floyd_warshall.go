// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/props"
)

// FloydWarshall computes all-pairs shortest paths in g by dynamic
// programming over intermediate vertices: dist[u][v]
// starts at the edge weight if adjacent (0 on the diagonal, +Inf
// otherwise); for each candidate intermediate k, dist[i][j] is relaxed
// to dist[i][k]+dist[k][j] when that is cheaper. A negative cycle is
// detected if any diagonal entry ends up negative.
//
// Complexity is O(V^3).
func FloydWarshall(g graphkit.Graph, weight props.WeightFunc) AllShortest {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	nodes := graphkit.NodesOf(g.Nodes())
	paths := newAllShortest(nodes)
	n := len(nodes)

	for i, u := range nodes {
		for j, v := range nodes {
			if i == j {
				continue
			}
			if w, ok := weight(u.ID(), v.ID()); ok {
				paths.dist.Set(i, j, w)
				paths.preds[i][j] = []int{i}
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := paths.dist.At(i, k)
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := paths.dist.At(k, j)
				if math.IsInf(dkj, 1) {
					continue
				}
				through := dik + dkj
				paths.relaxVia(i, k, j, through)
			}
		}
	}

	for i := 0; i < n; i++ {
		if paths.dist.At(i, i) < 0 {
			paths.negativeCycle = true
			break
		}
	}
	return paths
}
