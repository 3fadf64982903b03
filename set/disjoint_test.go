// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set

import "testing"

func TestDisjointUnionFind(t *testing.T) {
	d := NewDisjoint()
	for i := int64(0); i < 6; i++ {
		d.Add(i)
	}

	if d.Same(0, 1) {
		t.Fatalf("0 and 1 should start in different sets")
	}

	if !d.Union(0, 1) {
		t.Fatalf("first union of 0,1 should report a merge")
	}
	if d.Union(0, 1) {
		t.Fatalf("second union of already-merged 0,1 should report no merge")
	}
	if !d.Same(0, 1) {
		t.Fatalf("0 and 1 should be in the same set after union")
	}

	d.Union(2, 3)
	d.Union(4, 5)
	d.Union(1, 2)

	if !d.Same(0, 3) {
		t.Fatalf("0 and 3 should be joined transitively through 1,2")
	}
	if d.Same(0, 4) {
		t.Fatalf("0 and 4 should remain in different sets")
	}

	groups := d.Groups()
	sizes := make(map[int]int)
	for _, members := range groups {
		sizes[len(members)]++
	}
	if sizes[4] != 1 || sizes[2] != 1 {
		t.Fatalf("expected one group of 4 and one group of 2, got %v", groups)
	}
}

func TestDisjointFindCompresses(t *testing.T) {
	d := NewDisjoint()
	const n = 1000
	for i := int64(0); i < n; i++ {
		d.Add(i)
	}
	// Union every element with 0. Union-by-rank hangs each one
	// directly under the shared root, so afterwards every element's
	// parent is the root (or itself, for the root).
	for i := int64(1); i < n; i++ {
		d.Union(0, i)
	}
	root := d.Find(n - 1)
	for i := int64(0); i < n; i++ {
		if d.Find(i) != root {
			t.Fatalf("element %d did not compress to the shared root", i)
		}
		if d.parent[i] != root && d.parent[i] != i {
			t.Fatalf("element %d was not reparented directly to the root after Find", i)
		}
	}
}
