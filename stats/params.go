// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
)

// FromParams returns the Model of the given kind described by params,
// which maps each of kind.Params() to its value.
//
// Missing or unknown parameters, non-integer counts and every
// constraint the resulting model violates are all reported together
// in a *ValidationError.
func FromParams(kind Kind, params map[string]float64) (Model, error) {
	if !kind.valid() {
		return nil, &ValidationError{Problems: []string{fmt.Sprintf("Unknown distribution %v.", kind)}}
	}

	var problems []string
	title := kind.Title()
	for _, name := range kind.Params() {
		if _, ok := params[name]; !ok {
			problems = append(problems, fmt.Sprintf("%s: missing parameter %q.", title, name))
		}
	}
	var unknown []string
	for name := range params {
		if !kind.hasParam(name) {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		problems = append(problems, fmt.Sprintf("%s: unknown parameter %q.", title, name))
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	count := func(name string) int {
		v := params[name]
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			problems = append(problems, fmt.Sprintf("%s: %s must be an integer.", title, name))
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return -1
			}
		}
		return int(v)
	}

	var m Model
	switch kind {
	case Uniform:
		m = UniformDist{A: params["a"], B: params["b"]}
	case Normal:
		m = NormalDist{Mu: params["mean"], Sigma: params["stddev"]}
	case Gamma:
		m = GammaDist{K: params["shape"], Theta: params["scale"]}
	case Exponential:
		m = ExponentialDist{Lambda: params["rate"]}
	case Pareto:
		m = ParetoDist{Alpha: params["alpha"], Xm: params["xm"]}
	case Bernoulli:
		m = BernoulliDist{P: params["p"]}
	case Binomial:
		m = BinomialDist{N: count("n"), P: params["p"]}
	case Hypergeometric:
		m = HypergeometricDist{N: count("N"), K: count("K"), Draws: count("n")}
	case Geometric:
		m = GeometricDist{P: params["p"]}
	}

	problems = append(problems, m.Validate()...)
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return m, nil
}

// Params returns the parameters of m keyed by the names FromParams
// accepts.
func Params(m Model) map[string]float64 {
	switch m := m.(type) {
	case UniformDist:
		return map[string]float64{"a": m.A, "b": m.B}
	case NormalDist:
		return map[string]float64{"mean": m.Mu, "stddev": m.Sigma}
	case GammaDist:
		return map[string]float64{"shape": m.K, "scale": m.Theta}
	case ExponentialDist:
		return map[string]float64{"rate": m.Lambda}
	case ParetoDist:
		return map[string]float64{"alpha": m.Alpha, "xm": m.Xm}
	case BernoulliDist:
		return map[string]float64{"p": m.P}
	case BinomialDist:
		return map[string]float64{"n": float64(m.N), "p": m.P}
	case HypergeometricDist:
		return map[string]float64{"N": float64(m.N), "K": float64(m.K), "n": float64(m.Draws)}
	case GeometricDist:
		return map[string]float64{"p": m.P}
	}
	return nil
}
