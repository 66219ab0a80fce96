// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// A Range is the closed interval [Min, Max] of outcomes whose
// probability is being asked about.
type Range struct {
	Min, Max float64
}

// Contains reports whether Min <= x <= Max.
func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// Validate returns a message for each problem with r.
func (r Range) Validate() []string {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return []string{"Range bounds must be numbers."}
	}
	if r.Min > r.Max {
		return []string{"Minimum range cannot be greater than maximum range."}
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%.1f, %.1f]", r.Min, r.Max)
}

// A Point is one sample of a density or mass function.
type Point struct {
	X, Y float64
}

// A Curve is a density or mass function sampled over a distribution's
// domain, in increasing order of X.
type Curve struct {
	Kind   Kind
	Points []Point
}

// Discrete reports whether c holds point masses at integer X values
// rather than samples of a density.
func (c Curve) Discrete() bool {
	return !c.Kind.Continuous()
}

// Xs returns the X value of every point in c.
func (c Curve) Xs() []float64 {
	xs := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the Y value of every point in c.
func (c Curve) Ys() []float64 {
	ys := make([]float64, len(c.Points))
	for i, p := range c.Points {
		ys[i] = p.Y
	}
	return ys
}

// Peak returns the largest Y value in c, or 0 if c is empty.
func (c Curve) Peak() float64 {
	if len(c.Points) == 0 {
		return 0
	}
	return floats.Max(c.Ys())
}

// Partition splits the points of c into those inside r and those
// outside it, preserving order.
func (c Curve) Partition(r Range) (in, out []Point) {
	for _, p := range c.Points {
		if r.Contains(p.X) {
			in = append(in, p)
		} else {
			out = append(out, p)
		}
	}
	return
}

// A Split divides probability mass between the outcomes inside a
// Range and those outside it.
//
// For continuous distributions these are Riemann sums over the
// sampled domain, so they only approximately sum to 1.
type Split struct {
	InRange, OutOfRange float64
}

// Total returns InRange + OutOfRange.
func (s Split) Total() float64 {
	return s.InRange + s.OutOfRange
}

// Rounded returns s with both parts rounded to two decimal places.
func (s Split) Rounded() Split {
	return Split{Round2(s.InRange), Round2(s.OutOfRange)}
}

// Advisory returns the informational condition, if any, of s as it
// would be displayed.
func (s Split) Advisory() Advisory {
	in := Round2(s.InRange)
	switch {
	case in <= 0:
		return AllOutOfRange
	case in >= 1:
		return AllInRange
	}
	return NoAdvisory
}

// An Advisory is a condition of a Split worth pointing out to the
// user. It is not an error.
type Advisory int

const (
	NoAdvisory Advisory = iota
	AllOutOfRange
	AllInRange
)

func (a Advisory) String() string {
	switch a {
	case AllOutOfRange:
		return "All probability is out of the selected range."
	case AllInRange:
		return "All probability is within the selected range."
	}
	return ""
}

// Round2 rounds x to two decimal places, with halves rounded away
// from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// WindowMode selects the domain a NormalDist is sampled over.
type WindowMode int

const (
	// FixedWindow samples every normal distribution over [-4, 4].
	FixedWindow WindowMode = iota

	// CenteredWindow samples over 4 standard deviations on either
	// side of the mean.
	CenteredWindow
)

// maxSamples limits the number of points a curve may have.
const maxSamples = 1 << 20

// An Evaluator turns a Model into a Curve and a Split.
//
// The zero value is the default configuration.
type Evaluator struct {
	NormalWindow WindowMode
}

// Evaluate is shorthand for Evaluator{}.Evaluate(m, r).
func Evaluate(m Model, r Range) (Curve, Split, error) {
	return Evaluator{}.Evaluate(m, r)
}

// Evaluate samples m over its domain and splits its probability mass
// between the outcomes inside r and those outside it.
//
// If m or r is invalid, Evaluate returns a *ValidationError listing
// every problem and no curve.
func (e Evaluator) Evaluate(m Model, r Range) (Curve, Split, error) {
	if err := Validate(m, r); err != nil {
		return Curve{}, Split{}, err
	}

	switch m := m.(type) {
	case ContinuousModel:
		lo, hi := m.Bounds()
		if n, ok := m.(NormalDist); ok && e.NormalWindow == CenteredWindow {
			lo, hi = n.CenteredBounds()
		}
		if (hi-lo)/m.Step() > maxSamples {
			return Curve{}, Split{}, &ValidationError{Problems: []string{
				fmt.Sprintf("%s: domain [%g, %g] is too wide to sample every %g.", m.Kind().Title(), lo, hi, m.Step()),
			}}
		}
		return integrate(m, lo, hi, m.Step(), r)
	case DiscreteModel:
		if lo, hi := m.Support(); hi-lo > maxSamples {
			return Curve{}, Split{}, &ValidationError{Problems: []string{
				fmt.Sprintf("%s: support [%d, %d] has too many outcomes to evaluate.", m.Kind().Title(), lo, hi),
			}}
		}
		return sum(m, r)
	}
	panic(fmt.Sprintf("model %T is neither continuous nor discrete", m))
}

// integrate samples d's density every step over [lo, hi] and
// accumulates density*step into the bucket each sample falls in.
func integrate(d ContinuousModel, lo, hi, step float64, r Range) (Curve, Split, error) {
	c := Curve{Kind: d.Kind()}
	var s Split
	if hi < lo {
		return c, s, nil
	}
	// The epsilon keeps hi from being lost to rounding in the
	// division.
	n := int(math.Floor((hi-lo)/step + 1e-9))
	c.Points = make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		x := lo + float64(i)*step
		y := d.PDF(x)
		c.Points = append(c.Points, Point{x, y})
		if r.Contains(x) {
			s.InRange += y * step
		} else {
			s.OutOfRange += y * step
		}
	}
	return c, s, nil
}

// sum evaluates d's mass at every integer in its support and adds it
// to the bucket that integer falls in.
func sum(d DiscreteModel, r Range) (Curve, Split, error) {
	c := Curve{Kind: d.Kind()}
	var s Split
	lo, hi := d.Support()
	if hi >= lo {
		c.Points = make([]Point, 0, hi-lo+1)
	}
	for k := lo; k <= hi; k++ {
		x := float64(k)
		y := d.PMF(x)
		c.Points = append(c.Points, Point{x, y})
		if r.Contains(x) {
			s.InRange += y
		} else {
			s.OutOfRange += y
		}
	}
	return c, s, nil
}
