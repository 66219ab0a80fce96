// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-moremath/mathx"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

func (d BinomialDist) Kind() Kind { return Binomial }

func (d BinomialDist) Validate() []string {
	var problems []string
	if d.N < 0 {
		problems = append(problems, "Binomial: n must be a non-negative integer.")
	}
	if !(d.P >= 0 && d.P <= 1) {
		problems = append(problems, "Binomial: p must be between 0 and 1.")
	}
	return problems
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 || k > float64(d.N) {
		return 0
	}
	ki := int(k)

	// Choose overflows for N above about 1030, so work with logs.
	switch d.P {
	case 0:
		if ki == 0 {
			return 1
		}
		return 0
	case 1:
		if ki == d.N {
			return 1
		}
		return 0
	}
	return math.Exp(mathx.Lchoose(d.N, ki) + k*math.Log(d.P) + float64(d.N-ki)*math.Log1p(-d.P))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	} else if k >= float64(d.N) {
		return 1
	}

	return mathx.BetaInc(1-d.P, float64(d.N)-k, k+1)
}

func (d BinomialDist) Support() (int, int) {
	return 0, d.N
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}
