// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NormalDist{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// normalWindow is the half-width of the domain a NormalDist is
// sampled over.
const normalWindow = 4

func (n NormalDist) Kind() Kind { return Normal }

func (n NormalDist) Validate() []string {
	var problems []string
	if !finite(n.Mu) {
		problems = append(problems, "Normal: Mean (μ) must be a finite number.")
	}
	if !(n.Sigma > 0) || !finite(n.Sigma) {
		problems = append(problems, "Normal: Standard deviation (σ) must be positive.")
	}
	return problems
}

func (n NormalDist) PDF(x float64) float64 {
	z := (x - n.Mu) / n.Sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / n.Sigma
}

func (n NormalDist) CDF(x float64) float64 {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}.CDF(x)
}

// Bounds returns [-4, 4] regardless of n.Mu and n.Sigma. Densities
// that are not centered near 0 are therefore only partly sampled;
// see CenteredBounds.
func (n NormalDist) Bounds() (float64, float64) {
	return -normalWindow, normalWindow
}

// CenteredBounds returns the window of 4 standard deviations on
// either side of the mean.
func (n NormalDist) CenteredBounds() (float64, float64) {
	return n.Mu - normalWindow*n.Sigma, n.Mu + normalWindow*n.Sigma
}

func (n NormalDist) Step() float64 {
	return 0.01
}

func (n NormalDist) Mean() float64 {
	return n.Mu
}

func (n NormalDist) Variance() float64 {
	return n.Sigma * n.Sigma
}
