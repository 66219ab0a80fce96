// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-moremath/mathx"
)

// HypergeometricDist is a hypergeometric distribution.
type HypergeometricDist struct {
	// N is the size of the population. N > 0.
	N int

	// K is the number of successes in the population. 0 <= K <= N.
	K int

	// Draws is the number of draws from the population. This is
	// usually written "n", but is called Draws here because of
	// limitations on Go identifier naming. 0 <= Draws <= N.
	Draws int
}

func (d HypergeometricDist) Kind() Kind { return Hypergeometric }

func (d HypergeometricDist) Validate() []string {
	var problems []string
	if d.N <= 0 {
		problems = append(problems, "Hypergeometric: N must be a positive integer.")
	}
	if d.K < 0 || d.K > d.N {
		problems = append(problems, "Hypergeometric: K must be in [0, N].")
	}
	if d.Draws < 0 || d.Draws > d.N {
		problems = append(problems, "Hypergeometric: n must be in [0, N].")
	}
	return problems
}

// PMF is the probability of getting exactly int(k) successes in
// d.Draws draws without replacement from a population of size d.N
// that contains exactly d.K successes.
func (d HypergeometricDist) PMF(k float64) float64 {
	k = math.Floor(k)
	l, h := d.bounds()
	if k < float64(l) || k > float64(h) {
		return 0
	}
	return d.pmf(int(k))
}

func (d HypergeometricDist) pmf(k int) float64 {
	return math.Exp(mathx.Lchoose(d.K, k) + mathx.Lchoose(d.N-d.K, d.Draws-k) - mathx.Lchoose(d.N, d.Draws))
}

// CDF is the probability of getting int(k) or fewer successes.
func (d HypergeometricDist) CDF(k float64) float64 {
	k = math.Floor(k)
	l, h := d.bounds()
	if k < float64(l) {
		return 0
	} else if k >= float64(h) {
		return 1
	}
	ki := int(k)
	p := 0.0
	for i := l; i <= ki; i++ {
		p += d.pmf(i)
	}
	return p
}

// bounds returns the outcomes with non-zero probability.
func (d HypergeometricDist) bounds() (int, int) {
	return max(0, d.Draws+d.K-d.N), min(d.Draws, d.K)
}

// Support returns [0, d.Draws]. Outcomes outside bounds have zero
// mass but are still evaluated.
func (d HypergeometricDist) Support() (int, int) {
	return 0, d.Draws
}

func (d HypergeometricDist) Mean() float64 {
	return float64(d.Draws) * float64(d.K) / float64(d.N)
}

func (d HypergeometricDist) Variance() float64 {
	if d.N <= 1 {
		return 0
	}
	n, k, draws := float64(d.N), float64(d.K), float64(d.Draws)
	return draws * k * (n - k) * (n - draws) / (n * n * (n - 1))
}
