// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestFromParams(t *testing.T) {
	for _, test := range []struct {
		kind   Kind
		params map[string]float64
		want   Model
	}{
		{Uniform, map[string]float64{"a": -1, "b": 4}, UniformDist{-1, 4}},
		{Normal, map[string]float64{"mean": 2, "stddev": 0.5}, NormalDist{2, 0.5}},
		{Gamma, map[string]float64{"shape": 3, "scale": 2}, GammaDist{3, 2}},
		{Exponential, map[string]float64{"rate": 0.25}, ExponentialDist{0.25}},
		{Pareto, map[string]float64{"alpha": 1.5, "xm": 2}, ParetoDist{Alpha: 1.5, Xm: 2}},
		{Bernoulli, map[string]float64{"p": 0.5}, BernoulliDist{0.5}},
		{Binomial, map[string]float64{"n": 10, "p": 0.3}, BinomialDist{10, 0.3}},
		{Hypergeometric, map[string]float64{"N": 20, "K": 10, "n": 5}, HypergeometricDist{N: 20, K: 10, Draws: 5}},
		{Geometric, map[string]float64{"p": 1}, GeometricDist{1}},
	} {
		got, err := FromParams(test.kind, test.params)
		if err != nil {
			t.Errorf("FromParams(%v, %v): %v", test.kind, test.params, err)
			continue
		}
		if got != test.want {
			t.Errorf("FromParams(%v, %v) = %+v, want %+v", test.kind, test.params, got, test.want)
		}
		if got.Kind() != test.kind {
			t.Errorf("FromParams(%v, ...).Kind() = %v", test.kind, got.Kind())
		}
		if back := Params(got); !reflect.DeepEqual(back, test.params) {
			t.Errorf("Params(%+v) = %v, want %v", got, back, test.params)
		}
	}
}

func TestFromParamsDefaults(t *testing.T) {
	for k := Kind(0); k < numKinds; k++ {
		m, err := FromParams(k, k.Defaults())
		if err != nil {
			t.Errorf("%v defaults: %v", k, err)
			continue
		}
		if _, _, err := Evaluate(m, Range{-1, 1}); err != nil {
			t.Errorf("%v defaults: %v", k, err)
		}
	}
}

func TestFromParamsProblems(t *testing.T) {
	for _, test := range []struct {
		kind   Kind
		params map[string]float64
		want   []string
	}{
		{Normal, map[string]float64{"mean": 0, "stddev": 0}, []string{"Standard deviation"}},
		{Normal, map[string]float64{"mean": 0}, []string{`missing parameter "stddev"`}},
		{Normal, map[string]float64{"mean": 0, "stddev": 1, "sigma": 1, "mu": 0}, []string{`unknown parameter "mu"`, `unknown parameter "sigma"`}},
		{Binomial, map[string]float64{"n": 2.5, "p": 0.5}, []string{"n must be an integer"}},
		{Binomial, map[string]float64{"n": -2.5, "p": 2}, []string{"n must be an integer", "n must be a non-negative integer", "p must be between 0 and 1"}},
		{Hypergeometric, map[string]float64{"N": 20, "K": 25, "n": 5}, []string{"K must be in [0, N]"}},
		{Hypergeometric, map[string]float64{"N": math.NaN(), "K": 1, "n": 1}, []string{"N must be an integer", "N must be a positive integer", "K must be in [0, N]", "n must be in [0, N]"}},
		{Kind(42), nil, []string{"Unknown distribution"}},
	} {
		m, err := FromParams(test.kind, test.params)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("FromParams(%v, %v) = %+v, %v; want *ValidationError", test.kind, test.params, m, err)
			continue
		}
		if m != nil {
			t.Errorf("FromParams(%v, %v) returned model %+v with error", test.kind, test.params, m)
		}
		if len(verr.Problems) != len(test.want) {
			t.Errorf("FromParams(%v, %v): problems %q, want %d", test.kind, test.params, verr.Problems, len(test.want))
			continue
		}
		for i, want := range test.want {
			if !strings.Contains(verr.Problems[i], want) {
				t.Errorf("FromParams(%v, %v): problem %d is %q, want it to mention %q", test.kind, test.params, i, verr.Problems[i], want)
			}
		}
	}
}

func TestValidationErrorString(t *testing.T) {
	err := &ValidationError{Problems: []string{"one.", "two."}}
	if got, want := err.Error(), "one.; two."; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err = &ValidationError{Problems: []string{"one."}}
	if got, want := err.Error(), "one."; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
