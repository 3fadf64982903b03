// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package order_test

import (
	"fmt"

	"github.com/kalvaro/graphkit/order"
	"github.com/kalvaro/graphkit/simple"
)

// Example computes the smallest-last vertex ordering of a 4-vertex
// path 1-2-3-4, repeatedly peeling a minimum-degree vertex off the
// remaining subgraph and reversing the peel order at the end.
func Example() {
	g := simple.NewUndirectedGraph()
	for _, id := range []int64{1, 2, 3, 4} {
		g.AddNode(simple.Node(id))
	}
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	g.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(3)})
	g.SetEdge(simple.Edge{F: simple.Node(3), T: simple.Node(4)})

	var ids []int64
	for _, n := range order.SmallestLast(g) {
		ids = append(ids, n.ID())
	}
	fmt.Println(ids)

	// Output:
	// [4 3 2 1]
}
