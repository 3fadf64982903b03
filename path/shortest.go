// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package path implements the shortest-path family: Dijkstra,
// bidirectional Dijkstra, Bellman-Ford, SPFA, Floyd-Warshall,
// Johnson, Yen's k-shortest, and all-shortest-paths backtracking. Every
// single-source algorithm here builds (or shares) the relaxation
// engine: a distance table, a predecessor-edge table, a min-heap
// frontier and a closed set.
package path

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kalvaro/graphkit"
)

// Shortest is a single-source shortest-path tree, as produced by
// Dijkstra, Bellman-Ford and SPFA.
type Shortest struct {
	from    graphkit.Node
	nodes   []graphkit.Node
	indexOf map[int64]int

	dist []float64
	pred []graphkit.Edge
	has  []bool

	negativeCycle bool
}

func newShortest(from graphkit.Node, nodes []graphkit.Node) Shortest {
	indexOf := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		indexOf[n.ID()] = i
	}
	s := Shortest{
		from:    from,
		nodes:   nodes,
		indexOf: indexOf,
		dist:    make([]float64, len(nodes)),
		pred:    make([]graphkit.Edge, len(nodes)),
		has:     make([]bool, len(nodes)),
	}
	for i := range s.dist {
		s.dist[i] = math.Inf(1)
	}
	if i, ok := indexOf[from.ID()]; ok {
		s.dist[i] = 0
	}
	return s
}

// From returns the source node of the tree.
func (s Shortest) From() graphkit.Node { return s.from }

// NegativeCycle reports whether a negative cycle reachable from the
// source was detected. All distances are meaningless when true.
func (s Shortest) NegativeCycle() bool { return s.negativeCycle }

// WeightTo returns the cost of the shortest known path to vid, or
// +Inf if vid is unreached.
func (s Shortest) WeightTo(vid int64) float64 {
	i, ok := s.indexOf[vid]
	if !ok {
		return math.Inf(1)
	}
	return s.dist[i]
}

// To reconstructs the shortest path from the source to vid by walking
// the predecessor table backwards's reconstruction
// idiom. It returns ok=false if vid is unreached or the tree carries a
// detected negative cycle.
func (s Shortest) To(vid int64) (edges []graphkit.Edge, weight float64, ok bool) {
	if s.negativeCycle {
		return nil, math.Inf(-1), false
	}
	i, seen := s.indexOf[vid]
	if !seen || math.IsInf(s.dist[i], 1) {
		return nil, math.Inf(1), false
	}
	for s.has[i] {
		e := s.pred[i]
		edges = append(edges, e)
		i = s.indexOf[e.From().ID()]
	}
	for a, b := 0, len(edges)-1; a < b; a, b = a+1, b-1 {
		edges[a], edges[b] = edges[b], edges[a]
	}
	return edges, s.dist[s.indexOf[vid]], true
}

// AllShortest is an all-pairs shortest-path table, as produced by
// Floyd-Warshall, Johnson, and repeated Dijkstra, together with the
// multi-predecessor bookkeeping AllBetween needs to recover every
// tied-optimal path between two vertices.
type AllShortest struct {
	nodes   []graphkit.Node
	indexOf map[int64]int

	// dist holds the pairwise distances between nodes, row i / column
	// j being the cost of the shortest known i->j path. A dense matrix
	// is the natural backing store here: every pair is populated, and
	// Floyd-Warshall's triple loop is itself a dense all-pairs scan.
	dist *mat.Dense
	// preds[i][j] holds every k such that the best i->j path's last
	// hop arrives via k's "append when equal, reset
	// when strictly better" rule.
	preds [][][]int

	negativeCycle bool
}

func newAllShortest(nodes []graphkit.Node) AllShortest {
	indexOf := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		indexOf[n.ID()] = i
	}
	n := len(nodes)
	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.Inf(1)
	}
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
	}
	preds := make([][][]int, n)
	for i := range preds {
		preds[i] = make([][]int, n)
	}
	return AllShortest{nodes: nodes, indexOf: indexOf, dist: mat.NewDense(n, n, data), preds: preds}
}

// NegativeCycle reports whether a negative cycle was detected while
// building the table. All distances are meaningless when true.
func (a AllShortest) NegativeCycle() bool { return a.negativeCycle }

// Weight returns the cost of the shortest path between uid and vid, or
// +Inf if vid is unreachable from uid.
func (a AllShortest) Weight(uid, vid int64) float64 {
	i, iok := a.indexOf[uid]
	j, jok := a.indexOf[vid]
	if !iok || !jok {
		return math.Inf(1)
	}
	return a.dist.At(i, j)
}

// Between returns one shortest path between uid and vid (an arbitrary
// choice among ties) and its weight.
func (a AllShortest) Between(uid, vid int64) (nodes []graphkit.Node, weight float64, ok bool) {
	paths, weight := a.AllBetween(uid, vid)
	if len(paths) == 0 {
		return nil, weight, false
	}
	return paths[0], weight, true
}

// AllBetween backtracks the multi-predecessor table to emit every
// node-sequence tying for the optimal cost between uid and vid.
func (a AllShortest) AllBetween(uid, vid int64) (paths [][]graphkit.Node, weight float64) {
	i, iok := a.indexOf[uid]
	j, jok := a.indexOf[vid]
	if !iok || !jok || math.IsInf(a.dist.At(i, j), 1) {
		return nil, math.Inf(1)
	}
	weight = a.dist.At(i, j)
	if uid == vid {
		return [][]graphkit.Node{{a.nodes[i]}}, 0
	}
	var walk func(cur int, tail []graphkit.Node)
	walk = func(cur int, tail []graphkit.Node) {
		if cur == i {
			full := make([]graphkit.Node, 0, len(tail)+1)
			full = append(full, a.nodes[i])
			full = append(full, tail...)
			paths = append(paths, full)
			return
		}
		for _, p := range a.preds[i][cur] {
			next := append([]graphkit.Node{a.nodes[cur]}, tail...)
			walk(p, next)
		}
	}
	walk(j, nil)
	return paths, weight
}

// relax updates the i->j entry when a path through immediate
// predecessor k (i.e. ...->k->j) beats or ties the current best,
// appending k as a tied predecessor rather than replacing the set on a
// tie. Used where k is already known to be the immediate predecessor
// of j, as in Dijkstra's relaxation step.
func (a *AllShortest) relax(i, k, j int, weight float64) {
	switch cur := a.dist.At(i, j); {
	case weight < cur:
		a.dist.Set(i, j, weight)
		a.preds[i][j] = []int{k}
	case weight == cur && weight < math.Inf(1):
		a.preds[i][j] = appendMissing(a.preds[i][j], k)
	}
}

// relaxVia updates the i->j entry when routing through intermediate
// vertex k (i.e. the best i->k path composed with the best k->j path)
// beats or ties the current best. Unlike relax, k itself is not the
// immediate predecessor of j; the predecessors of j on the k->j path
// are, so they are copied or merged in from preds[k][j]. Used by
// Floyd-Warshall's triple loop.
func (a *AllShortest) relaxVia(i, k, j int, weight float64) {
	switch cur := a.dist.At(i, j); {
	case weight < cur:
		a.dist.Set(i, j, weight)
		a.preds[i][j] = append([]int(nil), a.preds[k][j]...)
	case weight == cur && weight < math.Inf(1):
		for _, p := range a.preds[k][j] {
			a.preds[i][j] = appendMissing(a.preds[i][j], p)
		}
	}
}

func appendMissing(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
