// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flow computes maximum flow and minimum cut on a directed,
// capacitated graph: Ford-Fulkerson (DFS augmenting paths),
// Edmonds-Karp (BFS augmenting paths) and Dinic (level graph plus
// blocking flow), together with min-cut extraction from a max-flow
// result.
package flow

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/props"
)

// Result is the outcome of a maximum-flow computation: the flow value
// and the residual capacity graph left behind, from which a min-cut
// can be read off by MinCut.
type Result struct {
	MaxFlow  float64
	residual residual
}

// residual is an adjacency map of residual capacities, keyed
// source-vertex-then-target-vertex. Every original edge (u,v) seeds a
// forward entry residual[u][v]=capacity(u,v) and a reverse entry
// residual[v][u]=0 (or capacity(v,u) if (v,u) is also a real edge);
// pushing flow along (u,v) decrements the forward entry and
// increments the reverse one by the same amount.
type residual map[int64]map[int64]float64

func buildResidual(g graphkit.Directed, capacity props.WeightFunc) residual {
	if capacity == nil {
		capacity = props.FromWeighted(g)
	}
	r := make(residual)
	ensure := func(id int64) {
		if r[id] == nil {
			r[id] = make(map[int64]float64)
		}
	}
	nodes := graphkit.NodesOf(g.Nodes())
	for _, u := range nodes {
		ensure(u.ID())
	}
	for _, u := range nodes {
		it := g.From(u.ID())
		for it.Next() {
			v := it.Node()
			ensure(v.ID())
			w, ok := capacity(u.ID(), v.ID())
			if !ok {
				w = 1
			}
			r[u.ID()][v.ID()] += w
			if _, ok := r[v.ID()][u.ID()]; !ok {
				r[v.ID()][u.ID()] = 0
			}
		}
	}
	return r
}

// bottleneck returns the minimum residual capacity along a path given
// as a sequence of vertex IDs, path[0] being the source.
func (r residual) bottleneck(path []int64) float64 {
	min := r[path[0]][path[1]]
	for i := 1; i < len(path)-1; i++ {
		c := r[path[i]][path[i+1]]
		if c < min {
			min = c
		}
	}
	return min
}

// augment pushes amount units of flow along path, decrementing each
// forward residual and crediting each reverse residual.
func (r residual) augment(path []int64, amount float64) {
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		r[u][v] -= amount
		r[v][u] += amount
	}
}

func (r residual) capacityOf(u, v int64) float64 {
	return r[u][v]
}

// MinCut returns the source-side vertex set, the sink-side vertex
// set, and the original-graph edges crossing from source-side to
// sink-side, computed from the residual graph left behind by a
// completed max-flow run: BFS from source over edges with remaining
// residual capacity reaches exactly the source-side vertices;
// everything else is sink-side, and a min-cut edge is any original
// edge whose tail is reachable and whose head is not.
func (res Result) MinCut(g graphkit.Directed, source graphkit.Node) (sourceSide, sinkSide []graphkit.Node, cutEdges []graphkit.Edge) {
	r := res.residual
	reachable := map[int64]bool{source.ID(): true}
	queue := []int64{source.ID()}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, cap := range r[u] {
			if cap > 0 && !reachable[v] {
				reachable[v] = true
				queue = append(queue, v)
			}
		}
	}

	nodes := graphkit.NodesOf(g.Nodes())
	for _, n := range nodes {
		if reachable[n.ID()] {
			sourceSide = append(sourceSide, n)
		} else {
			sinkSide = append(sinkSide, n)
		}
	}

	for _, u := range nodes {
		if !reachable[u.ID()] {
			continue
		}
		it := g.From(u.ID())
		for it.Next() {
			v := it.Node()
			if !reachable[v.ID()] {
				cutEdges = append(cutEdges, g.Edge(u.ID(), v.ID()))
			}
		}
	}
	return sourceSide, sinkSide, cutEdges
}
