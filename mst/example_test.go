// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mst_test

import (
	"fmt"

	"github.com/kalvaro/graphkit/mst"
	"github.com/kalvaro/graphkit/simple"
)

// Example computes a minimum spanning tree of a triangle with distinct
// edge weights: Kruskal keeps the two cheapest edges and discards the
// most expensive one, which would close a cycle.
func Example() {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for _, id := range []int64{1, 2, 3} {
		g.AddNode(simple.Node(id))
	}
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(3), W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(3), W: 5})

	edges, total := mst.Kruskal(g, nil)
	fmt.Println(len(edges), total)

	// Output:
	// 2 3
}
