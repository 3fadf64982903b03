// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphprop_test

import (
	"fmt"

	"github.com/kalvaro/graphkit/graphprop"
	"github.com/kalvaro/graphkit/simple"
)

// Example tests a 4-cycle for the structural properties graphprop
// exposes: it is connected, cyclic, bipartite, and therefore not a
// tree.
func Example() {
	g := simple.NewUndirectedGraph()
	for _, id := range []int64{1, 2, 3, 4} {
		g.AddNode(simple.Node(id))
	}
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	g.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(3)})
	g.SetEdge(simple.Edge{F: simple.Node(3), T: simple.Node(4)})
	g.SetEdge(simple.Edge{F: simple.Node(4), T: simple.Node(1)})

	fmt.Println(graphprop.IsConnected(g))
	fmt.Println(graphprop.IsTree(g))
	fmt.Println(graphprop.IsCyclic(g))
	_, bipartite := graphprop.Bipartite(g)
	fmt.Println(bipartite)

	// Output:
	// true
	// false
	// true
	// true
}
