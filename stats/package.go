// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats evaluates a fixed set of probability distributions
// over a selected range.
//
// Each distribution is a small value type holding its parameters
// (NormalDist, BinomialDist, ...). Evaluate walks the distribution's
// domain and returns a discretized Curve along with the Split of
// probability mass inside and outside the selected Range. Continuous
// densities are integrated with a fixed-step Riemann sum; discrete
// masses are summed exactly.
package stats // import "github.com/aclements/go-distrange/stats"

import "math"

var inf = math.Inf(1)
