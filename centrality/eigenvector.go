// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package centrality

import "github.com/kalvaro/graphkit"

// Eigenvector computes eigenvector centrality for every vertex of the
// graph g by power iteration on the adjacency operator: x[t+1] = A
// x[t], rescaled each round by its own maximum entry so the iterate
// never grows or shrinks without bound. Iteration stops once the
// largest per-vertex change drops below tol, or after maxIter rounds.
// maxIter<=0 uses 100; tol<=0 uses 1e-8.
func Eigenvector(g graphkit.Graph, tol float64, maxIter int) map[int64]float64 {
	if tol <= 0 {
		tol = 1e-8
	}
	if maxIter <= 0 {
		maxIter = 100
	}

	nodes := nodesOf(g)
	n := len(nodes)
	if n == 0 {
		return nil
	}

	x := make(map[int64]float64, n)
	for _, v := range nodes {
		x[v.ID()] = 1.0
	}

	for iter := 0; iter < maxIter; iter++ {
		next := make(map[int64]float64, n)
		for _, v := range nodes {
			it := g.From(v.ID())
			var sum float64
			for it.Next() {
				sum += x[it.Node().ID()]
			}
			next[v.ID()] = sum
		}

		max := 0.0
		for _, v := range next {
			if v > max {
				max = v
			}
		}
		if max == 0 {
			return next
		}
		for id := range next {
			next[id] /= max
		}

		var diff float64
		for id, v := range next {
			delta := v - x[id]
			if delta < 0 {
				delta = -delta
			}
			if delta > diff {
				diff = delta
			}
		}
		x = next
		if diff < tol {
			break
		}
	}
	return x
}
