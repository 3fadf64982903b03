// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphkit

import "errors"

// ErrInvalidEndpoint is returned by a graph's edge-mutation methods
// when an edge names an endpoint that is not a node of the graph.
// An edge naming an unknown vertex must never silently create one.
var ErrInvalidEndpoint = errors.New("graphkit: edge references an endpoint not present in the graph")
