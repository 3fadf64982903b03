// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple_test

import (
	"fmt"

	"github.com/kalvaro/graphkit/simple"
)

// Example builds a minimal weighted undirected graph, the reference
// storage most algorithm packages in this module test against.
func Example() {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	g.AddNode(simple.Node(1))
	g.AddNode(simple.Node(2))
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 4.5})

	w, ok := g.Weight(1, 2)
	fmt.Println(w, ok)

	w, ok = g.Weight(1, 3)
	fmt.Println(w, ok)

	// Output:
	// 4.5 true
	// 0 false
}
