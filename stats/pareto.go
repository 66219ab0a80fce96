// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ParetoDist is a Pareto (Type I) distribution with shape Alpha and
// scale (minimum value) Xm.
type ParetoDist struct {
	Alpha, Xm float64
}

// paretoMax is the upper end of the sampled domain.
const paretoMax = 100

func (d ParetoDist) Kind() Kind { return Pareto }

func (d ParetoDist) Validate() []string {
	if !(d.Xm > 0) || !(d.Alpha > 0) || !finite(d.Xm) || !finite(d.Alpha) {
		return []string{"Pareto: xm and alpha must be positive."}
	}
	return nil
}

func (d ParetoDist) PDF(x float64) float64 {
	if x < d.Xm {
		return 0
	}
	return d.Alpha * math.Pow(d.Xm, d.Alpha) / math.Pow(x, d.Alpha+1)
}

func (d ParetoDist) CDF(x float64) float64 {
	if x < d.Xm {
		return 0
	}
	return distuv.Pareto{Xm: d.Xm, Alpha: d.Alpha}.CDF(x)
}

// Bounds returns [Xm, 100]. If Xm >= 100 the domain is empty.
func (d ParetoDist) Bounds() (float64, float64) {
	return d.Xm, paretoMax
}

func (d ParetoDist) Step() float64 {
	return 0.1
}

func (d ParetoDist) Mean() float64 {
	if d.Alpha <= 1 {
		return inf
	}
	return d.Alpha * d.Xm / (d.Alpha - 1)
}

func (d ParetoDist) Variance() float64 {
	if d.Alpha <= 2 {
		return inf
	}
	a1 := d.Alpha - 1
	return d.Xm * d.Xm * d.Alpha / (a1 * a1 * (d.Alpha - 2))
}
