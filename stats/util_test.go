// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks that f(x) ≅ want[x] for every x in want.
func testFunc(t *testing.T, name string, f func(float64) float64, want map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(want))
	for x := range want {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		w := want[x]
		got := f(x)
		if !(aeq(w, got) || math.IsInf(w, 0) && w == got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, w)
		}
	}
}

// testDiscreteCDF checks that dist.CDF(k) is the running sum of
// dist.PMF over dist's support, and that it is flat between integers.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteModel) {
	t.Helper()
	lo, hi := dist.Support()
	if got := dist.CDF(float64(lo) - 1); got != 0 {
		t.Errorf("%s(%v) = %v, want 0", name, lo-1, got)
	}
	sum := 0.0
	for k := lo; k <= hi; k++ {
		sum += dist.PMF(float64(k))
		if got := dist.CDF(float64(k)); !aeq(sum, got) {
			t.Errorf("%s(%v) = %v, want %v", name, k, got, sum)
		}
		if got := dist.CDF(float64(k) + 0.5); !aeq(sum, got) {
			t.Errorf("%s(%v) = %v, want %v", name, float64(k)+0.5, got, sum)
		}
	}
}

func dump(c Curve) string {
	s := ""
	for _, p := range c.Points {
		s += fmt.Sprintf("(%v, %v) ", p.X, p.Y)
	}
	return s
}
