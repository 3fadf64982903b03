// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo_test

import (
	"fmt"

	"github.com/kalvaro/graphkit/simple"
	"github.com/kalvaro/graphkit/topo"
)

// Example computes a topological order of a small DAG by Kahn's
// algorithm, which emits zero-in-degree vertices in ascending-ID
// order whenever more than one is ready at once.
func Example() {
	g := simple.NewDirectedGraph()
	for _, id := range []int64{1, 2, 3, 4} {
		g.AddNode(simple.Node(id))
	}
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(3)})
	g.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(3)})
	g.SetEdge(simple.Edge{F: simple.Node(3), T: simple.Node(4)})

	order, ok := topo.KahnTopoSort(g)
	var ids []int64
	for _, n := range order {
		ids = append(ids, n.ID())
	}
	fmt.Println(ok, ids)

	// Output:
	// true [1 2 3 4]
}
