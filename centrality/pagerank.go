// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package centrality

import "github.com/kalvaro/graphkit"

// DefaultDamping is the damping factor used when PageRank is called
// with d<=0.
const DefaultDamping = 0.85

// PageRank computes PageRank scores for every vertex of the directed
// graph g by power iteration:
//
//	PR[t+1](v) = (1-d)/|V| + d * (Σ_{u→v} PR[t](u)/outdeg(u) + danglingMass/|V|)
//
// where danglingMass is the PageRank mass held by zero-out-degree
// vertices at step t, redistributed uniformly. Iteration stops once
// the L1 distance between successive score vectors drops below tol,
// or after maxIter rounds, whichever comes first. The returned scores
// sum to approximately 1. d<=0 uses DefaultDamping; maxIter<=0 uses
// 100; tol<=0 uses 1e-8.
func PageRank(g graphkit.Directed, d float64, tol float64, maxIter int) map[int64]float64 {
	if d <= 0 {
		d = DefaultDamping
	}
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

	outdeg := make(map[int64]int, n)
	for _, v := range nodes {
		outdeg[v.ID()] = g.From(v.ID()).Len()
	}

	pr := make(map[int64]float64, n)
	for _, v := range nodes {
		pr[v.ID()] = 1.0 / float64(n)
	}

	for iter := 0; iter < maxIter; iter++ {
		var dangling float64
		for _, v := range nodes {
			if outdeg[v.ID()] == 0 {
				dangling += pr[v.ID()]
			}
		}

		next := make(map[int64]float64, n)
		base := (1 - d) / float64(n)
		danglingShare := d * dangling / float64(n)
		for _, v := range nodes {
			next[v.ID()] = base + danglingShare
		}
		for _, u := range nodes {
			if outdeg[u.ID()] == 0 {
				continue
			}
			share := d * pr[u.ID()] / float64(outdeg[u.ID()])
			it := g.From(u.ID())
			for it.Next() {
				next[it.Node().ID()] += share
			}
		}

		var diff float64
		for id, v := range next {
			delta := v - pr[id]
			if delta < 0 {
				delta = -delta
			}
			diff += delta
		}
		pr = next
		if diff < tol {
			break
		}
	}
	return pr
}
