// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/props"
)

// Dinic computes the maximum flow from source to sink in the directed
// graph g, using capacity to cost each edge (props.FromWeighted(g) if
// capacity is nil). Each round it builds a level graph by BFS from
// source, then repeatedly finds a blocking flow in that level graph by
// DFS (advancing a per-vertex edge cursor so no edge is retried once
// exhausted), stopping when the sink is unreachable in the level
// graph. Complexity is O(V²·E) in general, better on unit-capacity
// networks.
func Dinic(g graphkit.Directed, source, sink graphkit.Node, capacity props.WeightFunc) Result {
	r := buildResidual(g, capacity)
	var total float64
	for {
		level, ok := buildLevelGraph(r, source.ID(), sink.ID())
		if !ok {
			break
		}
		cursor := make(map[int64]int)
		for {
			pushed := blockingFlowDFS(r, level, cursor, source.ID(), sink.ID(), -1)
			if pushed <= 0 {
				break
			}
			total += pushed
		}
	}
	return Result{MaxFlow: total, residual: r}
}

// buildLevelGraph runs a BFS from source over residual edges with
// positive remaining capacity, returning each reached vertex's
// distance from source. ok is false if sink is unreachable.
func buildLevelGraph(r residual, source, sink int64) (level map[int64]int, ok bool) {
	level = map[int64]int{source: 0}
	queue := []int64{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, cap := range r[u] {
			if cap <= 0 {
				continue
			}
			if _, seen := level[v]; seen {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}
	_, reached := level[sink]
	return level, reached
}

// neighborsSorted returns a deterministic view over r[u]'s keys, so
// blockingFlowDFS's per-vertex cursor means the same thing across
// calls within one level-graph phase.
func neighborsSorted(r residual, u int64) []int64 {
	ns := make([]int64, 0, len(r[u]))
	for v := range r[u] {
		ns = append(ns, v)
	}
	for i := 1; i < len(ns); i++ {
		for j := i; j > 0 && ns[j-1] > ns[j]; j-- {
			ns[j-1], ns[j] = ns[j], ns[j-1]
		}
	}
	return ns
}

// blockingFlowDFS pushes a single augmenting path worth of flow
// through the level graph from u to sink, honoring the level
// constraint (every step must advance exactly one level) and the
// available bound (pass -1 for "unbounded" at the top call). cursor
// tracks, per vertex, how many of its level-graph neighbors have
// already been exhausted this phase, so a dead end is never
// revisited.
func blockingFlowDFS(r residual, level map[int64]int, cursor map[int64]int, u, sink int64, available float64) float64 {
	if u == sink {
		return available
	}
	neighbors := neighborsSorted(r, u)
	for cursor[u] < len(neighbors) {
		v := neighbors[cursor[u]]
		cap := r[u][v]
		if cap <= 0 || level[v] != level[u]+1 {
			cursor[u]++
			continue
		}
		send := cap
		if available >= 0 && available < send {
			send = available
		}
		pushed := blockingFlowDFS(r, level, cursor, v, sink, send)
		if pushed > 0 {
			r[u][v] -= pushed
			r[v][u] += pushed
			return pushed
		}
		cursor[u]++
	}
	return 0
}
