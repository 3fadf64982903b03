// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/props"
)

// FordFulkerson computes the maximum flow from source to sink in the
// directed graph g, using capacity to cost each edge (props.FromWeighted(g)
// if capacity is nil). Each round it finds any source-to-sink path in
// the residual graph by DFS, pushes the bottleneck capacity along it,
// and repeats until no augmenting path remains.
func FordFulkerson(g graphkit.Directed, source, sink graphkit.Node, capacity props.WeightFunc) Result {
	r := buildResidual(g, capacity)
	var total float64
	for {
		path, ok := dfsAugmentingPath(r, source.ID(), sink.ID())
		if !ok {
			break
		}
		amount := r.bottleneck(path)
		r.augment(path, amount)
		total += amount
	}
	return Result{MaxFlow: total, residual: r}
}

// dfsAugmentingPath searches the residual graph r for a source-to-sink
// path using edges with strictly positive remaining capacity, via
// plain DFS with an explicit stack so recursion depth never tracks the
// network's size.
func dfsAugmentingPath(r residual, source, sink int64) ([]int64, bool) {
	type frame struct {
		v    int64
		next []int64
		idx  int
	}
	visited := map[int64]bool{source: true}
	neighborsOf := func(u int64) []int64 {
		var ns []int64
		for v, cap := range r[u] {
			if cap > 0 {
				ns = append(ns, v)
			}
		}
		return ns
	}

	stack := []*frame{{v: source, next: neighborsOf(source)}}
	var path []int64
	path = append(path, source)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.v == sink {
			result := make([]int64, len(path))
			copy(result, path)
			return result, true
		}
		if top.idx >= len(top.next) {
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
			continue
		}
		next := top.next[top.idx]
		top.idx++
		if visited[next] {
			continue
		}
		visited[next] = true
		path = append(path, next)
		stack = append(stack, &frame{v: next, next: neighborsOf(next)})
	}
	return nil, false
}
