// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import (
	"math"
	"testing"

	"github.com/kalvaro/graphkit/simple"
)

func weightedDiamond() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < 4; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(2), W: 4})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(3), W: 5})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(3), W: 1})
	return g
}

func TestUniformCostFindsCheapestCost(t *testing.T) {
	g := weightedDiamond()
	s := NewUniformCost(g, simple.Node(0), Visitor{})
	for {
		st, ok := s.Next()
		if !ok {
			break
		}
		if st.Node.ID() == 3 {
			if st.Cost != 3 {
				t.Fatalf("got cost %v to node 3, want 3 (0->1->2->3)", st.Cost)
			}
		}
	}
	cost, ok := s.Cost(3)
	if !ok || cost != 3 {
		t.Fatalf("got (%v, %v), want (3, true)", cost, ok)
	}
}

func TestAStarMatchesUniformCostWithZeroHeuristic(t *testing.T) {
	g := weightedDiamond()
	s := NewAStar(g, simple.Node(0), func(int64) float64 { return 0 }, Visitor{})
	s.All()
	cost, ok := s.Cost(3)
	if !ok || cost != 3 {
		t.Fatalf("got (%v, %v), want (3, true)", cost, ok)
	}
	path, ok := s.To(3)
	if !ok || len(path) != 3 {
		t.Fatalf("expected a 3-edge path to node 3, got %v", path)
	}
}

func TestPrioritySearchSkipsStaleHeapEntries(t *testing.T) {
	g := weightedDiamond()
	s := NewUniformCost(g, simple.Node(0), Visitor{})
	states := s.All()
	seen := make(map[int64]bool)
	for _, st := range states {
		if seen[st.Node.ID()] {
			t.Fatalf("node %d expanded more than once", st.Node.ID())
		}
		seen[st.Node.ID()] = true
	}
}
