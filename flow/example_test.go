// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow_test

import (
	"fmt"

	"github.com/kalvaro/graphkit/flow"
	"github.com/kalvaro/graphkit/simple"
)

// Example computes max flow from 1 to 4 through a diamond with two
// parallel two-hop paths, each capacity-limited to 2, for a combined
// max flow of 4.
func Example() {
	g := simple.NewWeightedDirectedGraph(0, 0)
	for _, id := range []int64{1, 2, 3, 4} {
		g.AddNode(simple.Node(id))
	}
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(4), W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(3), W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(3), T: simple.Node(4), W: 2})

	res := flow.EdmondsKarp(g, simple.Node(1), simple.Node(4), nil)
	fmt.Println(res.MaxFlow)

	// Output:
	// 4
}
