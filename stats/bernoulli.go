// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// BernoulliDist is a Bernoulli distribution: 1 with probability P and
// 0 with probability 1-P.
type BernoulliDist struct {
	P float64
}

func (d BernoulliDist) Kind() Kind { return Bernoulli }

func (d BernoulliDist) Validate() []string {
	if !(d.P >= 0 && d.P <= 1) {
		return []string{"Bernoulli: p must be between 0 and 1."}
	}
	return nil
}

func (d BernoulliDist) PMF(k float64) float64 {
	switch math.Floor(k) {
	case 0:
		return 1 - d.P
	case 1:
		return d.P
	}
	return 0
}

func (d BernoulliDist) CDF(k float64) float64 {
	switch {
	case k < 0:
		return 0
	case k < 1:
		return 1 - d.P
	}
	return 1
}

func (d BernoulliDist) Support() (int, int) {
	return 0, 1
}

func (d BernoulliDist) Mean() float64 {
	return d.P
}

func (d BernoulliDist) Variance() float64 {
	return d.P * (1 - d.P)
}
