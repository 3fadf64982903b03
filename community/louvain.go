// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package community detects vertex communities in a weighted,
// undirected graph via Louvain modularity optimization. The layout,
// a local-moving phase over a node/community index followed by a
// graph-contraction phase, follows the two-phase structure of
// gonum's own community package, reusing its weight-function and
// reduced-node/edge shapes. The move and aggregation logic itself is
// reconstructed from the modularity-gain formula directly, since
// gonum's louvain.go implementation file was not available to read,
// only its shared helpers and test suite.
package community

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/props"
)

// Assignment maps a vertex ID to its community ID.
type Assignment map[int64]int64

// weightedGraphView is the minimal edge-weight lookup Louvain needs,
// decoupled from graphkit.Graph so the contraction phase can run over
// successive super-vertex graphs without constructing a real
// graphkit.Graph at every level.
type weightedGraphView struct {
	nodes     []int64
	neighbors map[int64]map[int64]float64
}

func viewFrom(g graphkit.Graph, weight props.WeightFunc) weightedGraphView {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	nodes := graphkit.NodesOf(g.Nodes())
	v := weightedGraphView{
		neighbors: make(map[int64]map[int64]float64, len(nodes)),
	}
	for _, n := range nodes {
		v.nodes = append(v.nodes, n.ID())
		v.neighbors[n.ID()] = make(map[int64]float64)
	}
	for _, u := range nodes {
		it := g.From(u.ID())
		for it.Next() {
			w := it.Node()
			weightVal, ok := weight(u.ID(), w.ID())
			if !ok {
				weightVal = 1
			}
			v.neighbors[u.ID()][w.ID()] += weightVal
		}
	}
	return v
}

func (v weightedGraphView) degree(u int64) float64 {
	var d float64
	for _, w := range v.neighbors[u] {
		d += w
	}
	return d
}

func (v weightedGraphView) totalWeight() float64 {
	var m float64
	for u := range v.neighbors {
		m += v.degree(u)
	}
	return m / 2
}

// Louvain computes a community assignment for every vertex of the
// weighted undirected graph g, using weight to cost each edge
// (props.FromWeighted(g) if weight is nil), with resolution parameter
// gamma generalizing the modularity objective
// Q = (1/2m) Σ_ij [A_ij - gamma*k_i*k_j/2m] δ(c_i,c_j).
// gamma<=0 uses 1 (the classical, unweighted-resolution modularity).
//
// Phase 1 moves each vertex, in turn, to whichever neighboring
// community (including staying put) yields the greatest modularity
// gain, repeating until a full pass makes no move. Phase 2 contracts
// each community into a super-vertex, with inter-community edge
// weights summed and intra-community edges folded into a self-loop.
// The two phases repeat on the contracted graph until a pass changes
// nothing, at which point each original vertex's community is read
// back through every contraction level.
func Louvain(g graphkit.Graph, weight props.WeightFunc, gamma float64) Assignment {
	if gamma <= 0 {
		gamma = 1
	}

	view := viewFrom(g, weight)
	// levels[level][id] maps a level-local vertex ID to the
	// community ID it was assigned in that level's local-moving pass.
	var levels []map[int64]int64

	for {
		assign, moved := localMove(view, gamma)
		levels = append(levels, assign)
		if !moved {
			break
		}
		next, changed := contract(view, assign)
		if !changed {
			break
		}
		view = next
	}

	// Fold the per-level assignments back to the original vertex IDs:
	// level 0's IDs are the real vertex IDs; level k's IDs are level
	// (k-1)'s community IDs.
	final := make(Assignment, len(levels[0]))
	for id := range levels[0] {
		c := id
		for _, level := range levels {
			c = level[c]
		}
		final[id] = c
	}
	return final
}

// localMove runs phase 1: repeatedly move each vertex to the
// neighboring community (or its own, unchanged) giving the greatest
// modularity gain, until a full sweep makes no move at all.
func localMove(v weightedGraphView, gamma float64) (assign map[int64]int64, moved bool) {
	m2 := 2 * v.totalWeight()
	if m2 == 0 {
		assign = make(map[int64]int64, len(v.nodes))
		for _, id := range v.nodes {
			assign[id] = id
		}
		return assign, false
	}

	community := make(map[int64]int64, len(v.nodes))
	commWeight := make(map[int64]float64, len(v.nodes)) // sum of degrees in each community
	for _, id := range v.nodes {
		community[id] = id
		commWeight[id] = v.degree(id)
	}

	anyMoved := false
	for {
		passMoved := false
		for _, u := range v.nodes {
			ku := v.degree(u)
			currentComm := community[u]
			commWeight[currentComm] -= ku

			neighborWeight := make(map[int64]float64)
			for w, wt := range v.neighbors[u] {
				if w == u {
					continue
				}
				neighborWeight[community[w]] += wt
			}

			bestComm := currentComm
			bestGain := neighborWeight[currentComm] - gamma*commWeight[currentComm]*ku/m2
			for c, wSum := range neighborWeight {
				gain := wSum - gamma*commWeight[c]*ku/m2
				if gain > bestGain {
					bestGain = gain
					bestComm = c
				}
			}

			community[u] = bestComm
			commWeight[bestComm] += ku
			if bestComm != currentComm {
				passMoved = true
				anyMoved = true
			}
		}
		if !passMoved {
			break
		}
	}
	return community, anyMoved
}

// contract builds the next-level graph by collapsing each community
// from assign into a single super-vertex. Inter-community edge
// weights are summed; intra-community edges become a self-loop on the
// super-vertex, recorded as neighbors[c][c].
func contract(v weightedGraphView, assign map[int64]int64) (next weightedGraphView, changed bool) {
	communities := make(map[int64]bool)
	for _, c := range assign {
		communities[c] = true
	}
	if len(communities) == len(v.nodes) {
		return weightedGraphView{}, false
	}

	next = weightedGraphView{neighbors: make(map[int64]map[int64]float64, len(communities))}
	for c := range communities {
		next.nodes = append(next.nodes, c)
		next.neighbors[c] = make(map[int64]float64)
	}

	for u, neighbors := range v.neighbors {
		cu := assign[u]
		for w, wt := range neighbors {
			cw := assign[w]
			next.neighbors[cu][cw] += wt
		}
	}
	return next, true
}

// Modularity computes Q for the given community assignment of the
// weighted undirected graph g, using the same resolution parameter
// gamma as Louvain.
func Modularity(g graphkit.Graph, weight props.WeightFunc, assign Assignment, gamma float64) float64 {
	if gamma <= 0 {
		gamma = 1
	}
	v := viewFrom(g, weight)
	m2 := 2 * v.totalWeight()
	if m2 == 0 {
		return 0
	}

	var q float64
	for _, u := range v.nodes {
		for w, wt := range v.neighbors[u] {
			if assign[u] != assign[w] {
				continue
			}
			q += wt - gamma*v.degree(u)*v.degree(w)/m2
		}
	}
	return q / m2
}
