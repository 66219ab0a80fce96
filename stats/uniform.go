// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// UniformDist is a continuous uniform distribution over [A, B].
type UniformDist struct {
	A, B float64
}

func (d UniformDist) Kind() Kind { return Uniform }

func (d UniformDist) Validate() []string {
	if !finite(d.A) || !finite(d.B) || !(d.A < d.B) {
		return []string{"Uniform: 'a' (min) must be less than 'b' (max)."}
	}
	return nil
}

func (d UniformDist) PDF(x float64) float64 {
	if x < d.A || x > d.B {
		return 0
	}
	return 1 / (d.B - d.A)
}

func (d UniformDist) CDF(x float64) float64 {
	return distuv.Uniform{Min: d.A, Max: d.B}.CDF(x)
}

// Bounds extends the support by 2 on each side so the edges of the
// density are visible.
func (d UniformDist) Bounds() (float64, float64) {
	return d.A - 2, d.B + 2
}

func (d UniformDist) Step() float64 {
	return 0.01
}

func (d UniformDist) Mean() float64 {
	return (d.A + d.B) / 2
}

func (d UniformDist) Variance() float64 {
	w := d.B - d.A
	return w * w / 12
}
