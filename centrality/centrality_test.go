// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package centrality

import (
	"math"
	"testing"

	"github.com/kalvaro/graphkit/simple"
)

// star builds an undirected star graph: center 0 connected to leaves
// 1..4. The center has the highest degree, closeness and betweenness.
func star() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 5; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := int64(1); i < 5; i++ {
		g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(i)})
	}
	return g
}

func TestDegreeOnStar(t *testing.T) {
	g := star()
	deg := Degree(g)
	if deg[0] != 4 {
		t.Fatalf("got center degree %v, want 4", deg[0])
	}
	if deg[1] != 1 {
		t.Fatalf("got leaf degree %v, want 1", deg[1])
	}
}

func TestClosenessOnStarFavorsCenter(t *testing.T) {
	g := star()
	c := Closeness(g)
	for i := int64(1); i < 5; i++ {
		if c[0] <= c[i] {
			t.Fatalf("center closeness %v should exceed leaf closeness %v", c[0], c[i])
		}
	}
}

func TestBetweennessOnStarFavorsCenter(t *testing.T) {
	g := star()
	b := Betweenness(g, false)
	if b[0] <= b[1] {
		t.Fatalf("center betweenness %v should exceed leaf betweenness %v", b[0], b[1])
	}
	for i := int64(1); i < 5; i++ {
		if b[i] != 0 {
			t.Fatalf("leaf %d betweenness %v, want 0 (no shortest path routes through a leaf)", i, b[i])
		}
	}
}

// dirChain is a directed chain 0->1->2 plus a back edge 2->0, so
// PageRank has no dangling vertices and converges.
func dirChain() *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for i := int64(0); i < 3; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	g.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(0)})
	return g
}

func TestPageRankSumsToOne(t *testing.T) {
	g := dirChain()
	pr := PageRank(g, 0, 0, 0)
	var sum float64
	for _, v := range pr {
		sum += v
	}
	if math.Abs(sum-1) > 1e-6 {
		t.Fatalf("pagerank scores sum to %v, want ~1", sum)
	}
}

// triangleWithPendant is a triangle {0,1,2} plus a pendant vertex 3
// hanging off 0. Unlike a star, it contains an odd cycle, so plain
// power iteration converges to a single dominant eigenvector instead
// of oscillating between the adjacency spectrum's two largest-magnitude
// eigenvalues.
func triangleWithPendant() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 4; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	g.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(0)})
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(3)})
	return g
}

func TestEigenvectorFavorsHighestDegreeVertex(t *testing.T) {
	g := triangleWithPendant()
	ev := Eigenvector(g, 0, 0)
	if ev[0] <= ev[1] || ev[0] <= ev[3] {
		t.Fatalf("vertex 0 eigenvector score %v should exceed vertex 1 (%v) and vertex 3 (%v)", ev[0], ev[1], ev[3])
	}
	if ev[3] >= ev[1] {
		t.Fatalf("pendant vertex 3 score %v should be lower than triangle vertex 1 score %v", ev[3], ev[1])
	}
}
