// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse_test

import (
	"fmt"

	"github.com/kalvaro/graphkit/simple"
	"github.com/kalvaro/graphkit/traverse"
)

// Example walks a small binary tree inorder, visiting left subtree,
// self, right subtree, which yields vertices in sorted order for a
// binary search tree.
//
//	    4
//	   / \
//	  2   6
//	 / \
//	1   3
func Example() {
	t := simple.NewBinaryTree()
	for _, id := range []int64{1, 2, 3, 4, 6} {
		t.AddNode(simple.Node(id))
	}
	t.SetLeft(4, 2)
	t.SetRight(4, 6)
	t.SetLeft(2, 1)
	t.SetRight(2, 3)

	d := traverse.NewDFS(t, simple.Node(4), traverse.InOrder, traverse.Visitor{})
	for _, s := range d.All() {
		fmt.Println(s.Node.ID())
	}

	// Output:
	// 1
	// 2
	// 3
	// 4
	// 6
}
