// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package centrality ranks vertices by degree, closeness, betweenness
// (Brandes), PageRank, and eigenvector centrality.
package centrality

import (
	"github.com/kalvaro/graphkit"
)

func nodesOf(g graphkit.Graph) []graphkit.Node {
	return graphkit.NodesOf(g.Nodes())
}

// Degree returns each vertex's raw out-degree (for an Undirected
// graph this is its total degree, since From reports every incident
// edge from both sides).
func Degree(g graphkit.Graph) map[int64]float64 {
	nodes := nodesOf(g)
	c := make(map[int64]float64, len(nodes))
	for _, v := range nodes {
		c[v.ID()] = float64(g.From(v.ID()).Len())
	}
	return c
}

// NormalizedDegree rescales Degree by 1/(|V|-1), so a vertex adjacent
// to every other vertex scores 1.
func NormalizedDegree(g graphkit.Graph) map[int64]float64 {
	nodes := nodesOf(g)
	n := len(nodes)
	c := Degree(g)
	if n <= 1 {
		return c
	}
	for id, d := range c {
		c[id] = d / float64(n-1)
	}
	return c
}
