// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package props supplies the two ambient concerns this library groups
// under "the property model": typed, total-lookup key/value bags
// attached to vertices and edges, and the weight-function abstraction
// that lets weighted algorithms stay storage-agnostic.
package props

import "github.com/kalvaro/graphkit"

// WeightFunc maps an edge, named by its endpoint IDs, to a weight. This
// is the shape every weighted algorithm in this module accepts instead
// of reaching into a concrete graph's edge type directly. It is the
// same shape as gonum's path.Weighting, generalized to a named
// type so it can be constructed independently of any one package.
type WeightFunc func(uid, vid int64) (w float64, ok bool)

// Uniform returns a WeightFunc returning the constant c for any pair of
// IDs. It never reports ok=false; callers that need "no such edge" to
// be distinguishable should use Property or Closure instead.
func Uniform(c float64) WeightFunc {
	return func(int64, int64) (float64, bool) { return c, true }
}

// Closure adapts an arbitrary Go function to a WeightFunc.
func Closure(fn func(uid, vid int64) (float64, bool)) WeightFunc {
	return WeightFunc(fn)
}

// Property returns a WeightFunc that reads the edge weight from an
// EdgeBag[float64], using the bag's declared default for any pair with
// no entry and reporting ok=false only when the graph itself reports
// no edge between uid and vid.
func Property(g graphkit.Graph, bag *EdgeBag[float64]) WeightFunc {
	return func(uid, vid int64) (float64, bool) {
		if g.Edge(uid, vid) == nil {
			return 0, false
		}
		return bag.Get(uid, vid), true
	}
}

// FromWeighted adapts a graphkit.Weighted graph directly into a
// WeightFunc. For a graph that does not implement Weighted it falls
// back to unit cost: 1 for an existing edge, 0 for uid == vid, and
// ok=false otherwise.
func FromWeighted(g graphkit.Graph) WeightFunc {
	if w, ok := g.(graphkit.Weighted); ok {
		return w.Weight
	}
	return func(uid, vid int64) (float64, bool) {
		if g.Edge(uid, vid) == nil {
			if uid == vid {
				return 0, true
			}
			return 0, false
		}
		return 1, true
	}
}
