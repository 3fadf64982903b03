// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package community_test

import (
	"fmt"

	"github.com/kalvaro/graphkit/community"
	"github.com/kalvaro/graphkit/simple"
)

// Example partitions two disconnected triangles. Any modularity
// optimizer must keep each triangle intact and separate from the
// other, regardless of how ties within a triangle are broken, so the
// example checks that structural invariant rather than printing raw
// community IDs.
func Example() {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 6; i++ {
		g.AddNode(simple.Node(i))
	}
	edges := [][2]int64{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
	}
	for _, e := range edges {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}

	assign := community.Louvain(g, nil, 1)
	fmt.Println(assign[0] == assign[1])
	fmt.Println(assign[1] == assign[2])
	fmt.Println(assign[3] == assign[4])
	fmt.Println(assign[0] == assign[3])

	// Output:
	// true
	// true
	// true
	// false
}
