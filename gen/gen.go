// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen builds random graphs: Erdos-Renyi, Barabasi-Albert
// preferential attachment, and Watts-Strogatz small-world rewiring.
// Every generator takes an injectable *rand.Rand so a run is
// reproducible for a fixed seed.
package gen

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/simple"
)

// Rand is the pseudo-random source every generator below takes,
// golang.org/x/exp/rand's *rand.Rand, gonum's own PRNG choice for
// every randomized graph algorithm (see also coloring.Randomized).
type Rand = *rand.Rand

// GraphBuilder is a graph that can have nodes and edges added and
// queried, the minimum surface a generator needs: the Graph half to
// check what is already present, the Builder half to add to it.
// Mirrors gonum's own GraphBuilder in graph/graphs/gen.
type GraphBuilder interface {
	graphkit.Graph
	graphkit.Builder
}

func ensureNodes(dst GraphBuilder, n int) {
	for i := int64(0); i < int64(n); i++ {
		if dst.Node(i) == nil {
			dst.AddNode(simple.Node(i))
		}
	}
}

// ErdosRenyiGnp builds a G(n,p) graph in dst: every one of the n(n-1)/2
// unordered vertex pairs (both directions, for a directed dst) is
// joined independently with probability p. This is the straightforward
// O(n^2) pairwise coin-flip the formula describes directly, rather than
// a geometric-skip construction that amortizes better on very sparse,
// very large graphs.
func ErdosRenyiGnp(dst GraphBuilder, n int, p float64, r Rand) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("gen: bad probability: p=%v", p)
	}
	ensureNodes(dst, n)
	if p == 0 {
		return nil
	}

	_, directed := dst.(graphkit.Directed)
	for u := int64(0); u < int64(n); u++ {
		for v := u + 1; v < int64(n); v++ {
			if r.Float64() < p {
				dst.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			}
			if directed && r.Float64() < p {
				dst.SetEdge(simple.Edge{F: simple.Node(v), T: simple.Node(u)})
			}
		}
	}
	return nil
}

// ErdosRenyiGnm builds a G(n,m) graph in dst: exactly m distinct edges
// chosen uniformly at random among the n(n-1)/2 unordered pairs (or
// n(n-1) ordered pairs for a directed dst). Edges are picked by
// reject-on-resample: draw a random pair, retry if it is a self-loop
// or already present.
func ErdosRenyiGnm(dst GraphBuilder, n, m int, r Rand) error {
	maxEdges := n * (n - 1) / 2
	if _, directed := dst.(graphkit.Directed); directed {
		maxEdges *= 2
	}
	if m < 0 || m > maxEdges {
		return fmt.Errorf("gen: bad size: m=%d", m)
	}
	ensureNodes(dst, n)
	if m == 0 {
		return nil
	}

	hasEdge := dst.HasEdgeBetween
	directed, isDirected := dst.(graphkit.Directed)
	if isDirected {
		hasEdge = directed.HasEdgeFromTo
	}

	added := 0
	for added < m {
		u := int64(r.Intn(n))
		v := int64(r.Intn(n))
		if u == v || hasEdge(u, v) {
			continue
		}
		dst.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		added++
	}
	return nil
}

// BarabasiAlbert builds a scale-free graph in dst of order n, growing
// from an m-vertex seed. Each added vertex draws m edges to existing
// vertices chosen with probability proportional to their current
// degree (preferential attachment), folding each new edge's endpoints
// into the degree-weighted pool in place as it is drawn. The draw
// itself is a direct linear scan over cumulative weights rather than a
// standalone weighted sampler, since the pool is rebuilt on every
// growth step anyway.
func BarabasiAlbert(dst graphkit.UndirectedBuilder, n, m int, r Rand) error {
	if n <= m {
		return fmt.Errorf("gen: n <= m: n=%v m=%d", n, m)
	}
	if m < 1 {
		return fmt.Errorf("gen: bad m: m=%d", m)
	}

	degree := make([]float64, n)
	for u := 0; u < m; u++ {
		dst.AddNode(simple.Node(u))
		degree[u] = 1
	}

	for v := m; v < n; v++ {
		dst.AddNode(simple.Node(v))
		chosen := make(map[int64]bool, m)
		for i := 0; i < m; i++ {
			u := weightedPick(degree[:v], chosen, r)
			chosen[u] = true
			dst.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(int64(v))})
			degree[u]++
			degree[v]++
		}
	}
	return nil
}

// weightedPick draws one vertex among [0,len(weight)) with probability
// proportional to weight, excluding any ID already in exclude (so a
// single growth step never attaches the same edge twice), retrying on
// a collision. All-zero weights fall back to uniform choice.
func weightedPick(weight []float64, exclude map[int64]bool, r Rand) int64 {
	var total float64
	for _, w := range weight {
		total += w
	}

	for {
		var target int64
		if total == 0 {
			target = int64(r.Intn(len(weight)))
		} else {
			x := r.Float64() * total
			var cum float64
			target = int64(len(weight) - 1)
			for i, w := range weight {
				cum += w
				if x < cum {
					target = int64(i)
					break
				}
			}
		}
		if !exclude[target] {
			return target
		}
	}
}

// mutableUndirected is the surface WattsStrogatz needs beyond
// UndirectedBuilder: rewiring replaces an edge rather than only adding
// one.
type mutableUndirected interface {
	graphkit.UndirectedBuilder
	graphkit.EdgeRemover
}

// WattsStrogatz builds a small-world graph in dst of order n: start
// from a ring lattice where each vertex connects to its k nearest
// neighbors, k/2 on each side, then rewire each edge independently with
// probability beta to a uniformly random, non-duplicate, non-self
// endpoint.
//
// No Watts-Strogatz generator exists in gonum (its gen package has
// Erdos-Renyi and Barabasi-Albert-family generators only); built
// directly from the canonical ring-then-rewire construction, in the
// same GraphBuilder-parameterized style as the two generators before
// it.
func WattsStrogatz(dst mutableUndirected, n, k int, beta float64, r Rand) error {
	if k < 2 || k%2 != 0 || k >= n {
		return fmt.Errorf("gen: bad degree: k=%d", k)
	}
	if beta < 0 || beta > 1 {
		return fmt.Errorf("gen: bad rewiring probability: beta=%v", beta)
	}
	ensureNodes(dst, n)

	half := k / 2
	for v := 0; v < n; v++ {
		for i := 1; i <= half; i++ {
			w := (v + i) % n
			dst.SetEdge(simple.Edge{F: simple.Node(int64(v)), T: simple.Node(int64(w))})
		}
	}
	if beta == 0 {
		return nil
	}

	for v := 0; v < n; v++ {
		for i := 1; i <= half; i++ {
			w := (v + i) % n
			if r.Float64() >= beta {
				continue
			}
			dst.RemoveEdge(int64(v), int64(w))
			for {
				nw := int64(r.Intn(n))
				if nw == int64(v) || dst.HasEdgeBetween(int64(v), nw) {
					continue
				}
				dst.SetEdge(simple.Edge{F: simple.Node(int64(v)), T: simple.Node(nw)})
				break
			}
		}
	}
	return nil
}
