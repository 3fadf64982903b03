// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path_test

import (
	"fmt"

	"github.com/kalvaro/graphkit/path"
	"github.com/kalvaro/graphkit/simple"
)

// Example finds the shortest path from 1 to 4 in a small weighted
// directed graph, where the direct edge is more expensive than the
// two-hop detour through 2.
func Example() {
	g := simple.NewWeightedDirectedGraph(0, 0)
	for _, id := range []int64{1, 2, 3, 4} {
		g.AddNode(simple.Node(id))
	}
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(4), W: 10})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(3), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(3), T: simple.Node(4), W: 1})

	edges, cost, ok := path.DijkstraFromTo(g, simple.Node(1), simple.Node(4), nil)
	fmt.Println(ok, cost, len(edges))

	// Output:
	// true 3 3
}
