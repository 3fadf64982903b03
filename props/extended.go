// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any numeric type an Extended value can wrap: the
// Bellman-Ford family needs addition and total order but nothing more
// exotic, so this is deliberately the weakest constraint that supports
// them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Extended is a {finite(x), +infinity} sum type, an alternative to
// a magic sentinel value: Add and Less both give infinity the
// absorbing/maximal behavior shortest-path relaxation relies on
// (infinite + x = infinite; infinite is never < anything, including
// another infinite). The shortest-path functions in package path do
// not use it; they keep float64 distances with math.Inf(1).
type Extended[T Number] struct {
	value    T
	infinite bool
}

// Finite wraps a concrete value.
func Finite[T Number](v T) Extended[T] { return Extended[T]{value: v} }

// Infinite returns the positive-infinity value of Extended[T].
func Infinite[T Number]() Extended[T] { return Extended[T]{infinite: true} }

// IsInfinite reports whether e represents positive infinity.
func (e Extended[T]) IsInfinite() bool { return e.infinite }

// Value returns the wrapped finite value. It panics if e is infinite;
// callers must check IsInfinite first.
func (e Extended[T]) Value() T {
	if e.infinite {
		panic("props: Value called on infinite Extended")
	}
	return e.value
}

// Add implements infinite-absorbing addition: infinite + x is infinite
// regardless of x, for either operand.
func (e Extended[T]) Add(o Extended[T]) Extended[T] {
	if e.infinite || o.infinite {
		return Infinite[T]()
	}
	return Finite(e.value + o.value)
}

// Less reports whether e is strictly less than o. Infinite is never
// less than anything; a finite value is always less than infinite.
func (e Extended[T]) Less(o Extended[T]) bool {
	if e.infinite {
		return false
	}
	if o.infinite {
		return true
	}
	return e.value < o.value
}

// String renders the value for debugging/test failure messages.
func (e Extended[T]) String() string {
	if e.infinite {
		return "+Inf"
	}
	return fmt.Sprint(e.value)
}
