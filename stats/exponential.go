// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ExponentialDist is an exponential distribution with rate Lambda.
type ExponentialDist struct {
	Lambda float64
}

func (d ExponentialDist) Kind() Kind { return Exponential }

func (d ExponentialDist) Validate() []string {
	if !(d.Lambda > 0) || !finite(d.Lambda) {
		return []string{"Exponential: Rate (λ) must be positive."}
	}
	return nil
}

func (d ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

func (d ExponentialDist) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return distuv.Exponential{Rate: d.Lambda}.CDF(x)
}

func (d ExponentialDist) Bounds() (float64, float64) {
	return 0, 10
}

func (d ExponentialDist) Step() float64 {
	return 0.01
}

func (d ExponentialDist) Mean() float64 {
	return 1 / d.Lambda
}

func (d ExponentialDist) Variance() float64 {
	return 1 / (d.Lambda * d.Lambda)
}
