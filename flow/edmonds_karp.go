// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/props"
)

// EdmondsKarp computes the maximum flow from source to sink in the
// directed graph g, using capacity to cost each edge (props.FromWeighted(g)
// if capacity is nil). It has the same shape as FordFulkerson but
// finds the shortest augmenting path by edge count via BFS each
// round, bounding the number of augmentations at O(V·E).
func EdmondsKarp(g graphkit.Directed, source, sink graphkit.Node, capacity props.WeightFunc) Result {
	r := buildResidual(g, capacity)
	var total float64
	for {
		path, ok := bfsAugmentingPath(r, source.ID(), sink.ID())
		if !ok {
			break
		}
		amount := r.bottleneck(path)
		r.augment(path, amount)
		total += amount
	}
	return Result{MaxFlow: total, residual: r}
}

// bfsAugmentingPath returns the shortest (by edge count) source-to-sink
// path in the residual graph r using edges with strictly positive
// remaining capacity.
func bfsAugmentingPath(r residual, source, sink int64) ([]int64, bool) {
	parent := map[int64]int64{source: source}
	queue := []int64{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == sink {
			break
		}
		for v, cap := range r[u] {
			if cap <= 0 {
				continue
			}
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			queue = append(queue, v)
		}
	}
	if _, ok := parent[sink]; !ok {
		return nil, false
	}

	var path []int64
	for v := sink; ; {
		path = append(path, v)
		if v == source {
			break
		}
		v = parent[v]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
