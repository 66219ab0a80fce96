// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A Model is one of the supported statistical distributions together
// with its parameters.
//
// Every Model is also either a ContinuousModel or a DiscreteModel.
type Model interface {
	// Kind returns which distribution this is.
	Kind() Kind

	// Validate returns one message for each parameter constraint
	// this model violates. A valid model returns nil.
	Validate() []string

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	Mean() float64
	Variance() float64
}

// A ContinuousModel is a Model with a probability density function.
type ContinuousModel interface {
	Model

	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// Bounds returns the domain the density is sampled over.
	// These are fixed per distribution, not derived from the
	// tails of the density, so some weight may fall outside them.
	Bounds() (float64, float64)

	// Step returns the sampling interval over Bounds.
	Step() float64
}

// A DiscreteModel is a Model with a probability mass function over
// the integers.
type DiscreteModel interface {
	Model

	// PMF returns the probability of the outcome int(k).
	PMF(k float64) float64

	// Support returns the first and last integer outcome that is
	// evaluated for this distribution, inclusive.
	Support() (int, int)
}

// finite reports whether x is neither NaN nor infinite.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
