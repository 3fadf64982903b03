// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set_test

import (
	"fmt"

	"github.com/kalvaro/graphkit/set"
)

// Example builds three singleton sets, merges two of them, and checks
// membership.
func Example() {
	d := set.NewDisjoint()
	d.Add(1)
	d.Add(2)
	d.Add(3)

	fmt.Println(d.Same(1, 2))
	d.Union(1, 2)
	fmt.Println(d.Same(1, 2))
	fmt.Println(d.Same(1, 3))

	// Output:
	// false
	// true
	// false
}
