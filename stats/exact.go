// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Exact returns the true probability that an outcome of m falls in
// r, computed from m's CDF rather than from a sampled curve.
//
// Unlike Evaluate, Exact is not limited to the domain a distribution
// is sampled over, so the difference between the two shows how much
// mass the sampled Split misses or overcounts.
func Exact(m Model, r Range) (Split, error) {
	if err := Validate(m, r); err != nil {
		return Split{}, err
	}
	var in float64
	if m.Kind().Continuous() {
		in = cdf(m, r.Max) - cdf(m, r.Min)
	} else {
		// Mass of the integers in [ceil(Min), floor(Max)].
		in = cdf(m, math.Floor(r.Max)) - cdf(m, math.Ceil(r.Min)-1)
	}
	in = math.Max(0, math.Min(1, in))
	return Split{InRange: in, OutOfRange: 1 - in}, nil
}

func cdf(m Model, x float64) float64 {
	switch {
	case math.IsInf(x, -1):
		return 0
	case math.IsInf(x, 1):
		return 1
	}
	return m.CDF(x)
}
