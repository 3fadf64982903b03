// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"
	"testing"

	"github.com/kalvaro/graphkit/props"
	"github.com/kalvaro/graphkit/simple"
)

func chainABC(t *testing.T) *simple.WeightedDirectedGraph {
	t.Helper()
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	a, b, c := simple.Node(0), simple.Node(1), simple.Node(2)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)
	g.SetWeightedEdge(simple.WeightedEdge{F: a, T: b, W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: b, T: c, W: 3})
	return g
}

func TestDijkstraOnChain(t *testing.T) {
	g := chainABC(t)
	edges, cost, ok := DijkstraFromTo(g, simple.Node(0), simple.Node(2), nil)
	if !ok {
		t.Fatalf("expected a path from A to C")
	}
	if cost != 5 {
		t.Fatalf("got cost %v, want 5", cost)
	}
	if len(edges) != 2 || edges[0].From().ID() != 0 || edges[0].To().ID() != 1 || edges[1].To().ID() != 2 {
		t.Fatalf("got edges %v, want [(0,1) (1,2)]", edges)
	}

	edges, cost, ok = DijkstraFromTo(g, simple.Node(0), simple.Node(0), nil)
	if !ok || cost != 0 || len(edges) != 0 {
		t.Fatalf("got (%v, %v, %v), want (empty, 0, true) for a self path", edges, cost, ok)
	}
}

func TestBellmanFordWithNegativeEdge(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	a, b, c := simple.Node(0), simple.Node(1), simple.Node(2)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)
	g.SetWeightedEdge(simple.WeightedEdge{F: a, T: b, W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: b, T: c, W: -1})

	tree := BellmanFordFrom(g, a, nil)
	if tree.NegativeCycle() {
		t.Fatalf("did not expect a negative cycle")
	}
	if got := tree.WeightTo(c.ID()); got != 1 {
		t.Fatalf("got dist(A,C) = %v, want 1", got)
	}
}

func TestBellmanFordDetectsNegativeCycle(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	a, b, c := simple.Node(0), simple.Node(1), simple.Node(2)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)
	g.SetWeightedEdge(simple.WeightedEdge{F: a, T: b, W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: b, T: c, W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: c, T: a, W: -3})

	tree := BellmanFordFrom(g, a, nil)
	if !tree.NegativeCycle() {
		t.Fatalf("expected a detected negative cycle")
	}
}

func TestSPFAAgreesWithBellmanFord(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	a, b, c := simple.Node(0), simple.Node(1), simple.Node(2)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)
	g.SetWeightedEdge(simple.WeightedEdge{F: a, T: b, W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: b, T: c, W: -1})

	bf := BellmanFordFrom(g, a, nil)
	spfa := SPFAFrom(g, a, nil)
	if spfa.WeightTo(c.ID()) != bf.WeightTo(c.ID()) {
		t.Fatalf("SPFA disagrees with Bellman-Ford: %v vs %v", spfa.WeightTo(c.ID()), bf.WeightTo(c.ID()))
	}
}

func diamond(t *testing.T) *simple.WeightedDirectedGraph {
	t.Helper()
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < 4; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(2), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(3), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(3), W: 1})
	return g
}

func TestFloydWarshallAgreesWithDijkstraAllPairs(t *testing.T) {
	g := diamond(t)
	fw := FloydWarshall(g, nil)
	dj := DijkstraAllPaths(g, nil)
	for i := int64(0); i < 4; i++ {
		for j := int64(0); j < 4; j++ {
			if fw.Weight(i, j) != dj.Weight(i, j) {
				t.Fatalf("disagreement at (%d,%d): floyd-warshall=%v dijkstra=%v", i, j, fw.Weight(i, j), dj.Weight(i, j))
			}
		}
	}
}

func TestAllShortestFindsBothDiamondPaths(t *testing.T) {
	g := diamond(t)
	fw := FloydWarshall(g, nil)
	paths, weight := fw.AllBetween(0, 3)
	if weight != 2 {
		t.Fatalf("got weight %v, want 2", weight)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d tied paths, want 2", len(paths))
	}
}

func TestJohnsonHandlesNegativeEdges(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	a, b, c := simple.Node(0), simple.Node(1), simple.Node(2)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)
	g.SetWeightedEdge(simple.WeightedEdge{F: a, T: b, W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: b, T: c, W: -1})

	johnson := JohnsonAllPaths(g, nil)
	if johnson.NegativeCycle() {
		t.Fatalf("did not expect a negative cycle")
	}
	if got := johnson.Weight(a.ID(), c.ID()); got != 1 {
		t.Fatalf("got johnson dist(A,C) = %v, want 1", got)
	}
}

func TestJohnsonDetectsNegativeCycle(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	a, b, c := simple.Node(0), simple.Node(1), simple.Node(2)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)
	g.SetWeightedEdge(simple.WeightedEdge{F: a, T: b, W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: b, T: c, W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: c, T: a, W: -3})

	if !JohnsonAllPaths(g, nil).NegativeCycle() {
		t.Fatalf("expected johnson to detect the negative cycle")
	}
}

func TestYenThreeShortestOnChainFindsOnlyOnePath(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	a, b, c := simple.Node(0), simple.Node(1), simple.Node(2)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)
	g.SetWeightedEdge(simple.WeightedEdge{F: a, T: b, W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: b, T: c, W: 2})

	paths := YenKShortestPaths(g, 3, a, c, nil)
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want exactly 1 on a simple chain", len(paths))
	}
	if got := pathCost(paths[0], props.FromWeighted(g)); got != 3 {
		t.Fatalf("got cost %v, want 3", got)
	}
}

func TestYenFindsKShortestOnDiamond(t *testing.T) {
	g := diamond(t)
	paths := YenKShortestPaths(g, 2, simple.Node(0), simple.Node(3), nil)
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
}

func TestBidirectionalDijkstraMatchesDijkstra(t *testing.T) {
	g := diamond(t)
	direct, directCost, ok := DijkstraFromTo(g, simple.Node(0), simple.Node(3), nil)
	if !ok {
		t.Fatalf("expected a path")
	}
	bi, biCost, ok := BidirectionalDijkstra(g, simple.Node(0), simple.Node(3), nil)
	if !ok {
		t.Fatalf("expected bidirectional dijkstra to find a path")
	}
	if biCost != directCost {
		t.Fatalf("got bidirectional cost %v, want %v", biCost, directCost)
	}
	if len(bi) != len(direct) {
		t.Fatalf("got %d edges, want %d", len(bi), len(direct))
	}
}
