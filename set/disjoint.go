// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package set provides the disjoint-set forest (union-find) shared by
// Kruskal's and Boruvka's MST algorithms and the union-find variant of
// connected components.
package set

// Disjoint is a disjoint-set forest over int64 element IDs, with
// path-compressed Find and union-by-rank Union. Unlike gonum's
// path.djSet, Find here is iterative: a recursive find rewires parent
// pointers on the way back out of the call stack, which risks stack
// growth proportional to chain length on a degenerate (unbalanced)
// input, so Find below does two flat passes instead: one to locate the
// root, one to reparent every visited node directly to it.
type Disjoint struct {
	parent map[int64]int64
	rank   map[int64]int
}

// NewDisjoint returns an empty disjoint-set forest.
func NewDisjoint() *Disjoint {
	return &Disjoint{
		parent: make(map[int64]int64),
		rank:   make(map[int64]int),
	}
}

// Add registers e as a new singleton set if it is not already present.
// It is a no-op if e is already known.
func (d *Disjoint) Add(e int64) {
	if _, ok := d.parent[e]; ok {
		return
	}
	d.parent[e] = e
	d.rank[e] = 0
}

// Find returns the representative (root) of the set containing e. It
// panics if e was never added. Find path-compresses: every node
// visited on the way to the root is reparented directly to it.
func (d *Disjoint) Find(e int64) int64 {
	root := e
	for {
		p, ok := d.parent[root]
		if !ok {
			panic("set: Find on unknown element")
		}
		if p == root {
			break
		}
		root = p
	}
	for e != root {
		next := d.parent[e]
		d.parent[e] = root
		e = next
	}
	return root
}

// Union merges the sets containing a and b, attaching the
// lower-ranked root under the higher-ranked one (ties broken toward a)
// so that tree height stays logarithmic. It reports whether a and b
// were previously in different sets; Kruskal and Boruvka use this
// return value directly to decide whether to keep an edge.
func (d *Disjoint) Union(a, b int64) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		ra, rb = rb, ra
	case d.rank[ra] == d.rank[rb]:
		d.rank[ra]++
	}
	d.parent[rb] = ra
	return true
}

// Same reports whether a and b are currently in the same set.
func (d *Disjoint) Same(a, b int64) bool {
	return d.Find(a) == d.Find(b)
}

// Groups returns the current partition as a map from each set's
// representative to its members, in no particular order.
func (d *Disjoint) Groups() map[int64][]int64 {
	groups := make(map[int64][]int64)
	for e := range d.parent {
		r := d.Find(e)
		groups[r] = append(groups[r], e)
	}
	return groups
}
