// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package community

import (
	"testing"

	"github.com/kalvaro/graphkit/simple"
)

// twoTriangles is two tightly-connected triangles {0,1,2} and
// {3,4,5} joined by a single bridge edge 2-3: an unambiguous
// two-community structure.
func twoTriangles() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 6; i++ {
		g.AddNode(simple.Node(i))
	}
	edges := [][2]int64{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{2, 3},
	}
	for _, e := range edges {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	return g
}

func TestLouvainSeparatesTwoTriangles(t *testing.T) {
	g := twoTriangles()
	assign := Louvain(g, nil, 0)

	if assign[0] != assign[1] || assign[1] != assign[2] {
		t.Fatalf("first triangle split across communities: %v", assign)
	}
	if assign[3] != assign[4] || assign[4] != assign[5] {
		t.Fatalf("second triangle split across communities: %v", assign)
	}
	if assign[0] == assign[3] {
		t.Fatalf("the two triangles were merged into one community: %v", assign)
	}
}

func TestModularityOfCorrectPartitionIsPositive(t *testing.T) {
	g := twoTriangles()
	assign := Louvain(g, nil, 0)
	q := Modularity(g, nil, assign, 0)
	if q <= 0 {
		t.Fatalf("got modularity %v for a clear two-community graph, want > 0", q)
	}
}

func TestModularityOfTrivialPartitionIsLowerThanLouvains(t *testing.T) {
	g := twoTriangles()
	best := Louvain(g, nil, 0)
	qBest := Modularity(g, nil, best, 0)

	trivial := make(Assignment, 6)
	for i := int64(0); i < 6; i++ {
		trivial[i] = 0
	}
	qTrivial := Modularity(g, nil, trivial, 0)

	if qTrivial >= qBest {
		t.Fatalf("trivial single-community modularity %v should be lower than Louvain's %v", qTrivial, qBest)
	}
}
