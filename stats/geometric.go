// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// GeometricDist is the distribution of the number of Bernoulli
// trials with success probability P needed to get one success.
type GeometricDist struct {
	P float64
}

// geometricMax is the last number of trials that is evaluated. The
// distribution has unbounded support, so the mass above this is
// dropped from evaluated curves.
const geometricMax = 20

func (d GeometricDist) Kind() Kind { return Geometric }

func (d GeometricDist) Validate() []string {
	if !(d.P > 0 && d.P <= 1) {
		return []string{"Geometric: p must be in (0, 1]."}
	}
	return nil
}

// PMF is the probability that the first success is on trial int(k).
func (d GeometricDist) PMF(k float64) float64 {
	ki := math.Floor(k)
	if ki < 1 {
		return 0
	}
	return math.Pow(1-d.P, ki-1) * d.P
}

func (d GeometricDist) CDF(k float64) float64 {
	ki := math.Floor(k)
	if ki < 1 {
		return 0
	}
	return 1 - math.Pow(1-d.P, ki)
}

func (d GeometricDist) Support() (int, int) {
	return 1, geometricMax
}

func (d GeometricDist) Mean() float64 {
	return 1 / d.P
}

func (d GeometricDist) Variance() float64 {
	return (1 - d.P) / (d.P * d.P)
}
