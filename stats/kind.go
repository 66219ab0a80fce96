// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported distributions.
type Kind int

const (
	Uniform Kind = iota
	Normal
	Gamma
	Exponential
	Pareto
	Bernoulli
	Binomial
	Hypergeometric
	Geometric

	numKinds
)

// ContinuousKinds and DiscreteKinds list the supported distributions
// in the order they are offered to the user.
var (
	ContinuousKinds = []Kind{Uniform, Normal, Gamma, Exponential, Pareto}
	DiscreteKinds   = []Kind{Bernoulli, Binomial, Hypergeometric, Geometric}
)

type kindInfo struct {
	title    string
	params   []string
	defaults []float64
}

var kinds = [numKinds]kindInfo{
	Uniform:        {"Uniform Continuous", []string{"a", "b"}, []float64{0, 10}},
	Normal:         {"Normal", []string{"mean", "stddev"}, []float64{0, 1}},
	Gamma:          {"Gamma", []string{"shape", "scale"}, []float64{1, 1}},
	Exponential:    {"Exponential", []string{"rate"}, []float64{1}},
	Pareto:         {"Pareto", []string{"alpha", "xm"}, []float64{1, 1}},
	Bernoulli:      {"Bernoulli", []string{"p"}, []float64{0.5}},
	Binomial:       {"Binomial", []string{"n", "p"}, []float64{10, 0.5}},
	Hypergeometric: {"Hypergeometric", []string{"N", "K", "n"}, []float64{20, 10, 10}},
	Geometric:      {"Geometric", []string{"p"}, []float64{0.5}},
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

// String returns the identifier of k, such as "uniform_continuous".
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return strings.ReplaceAll(strings.ToLower(kinds[k].title), " ", "_")
}

// Title returns the display name of k, such as "Uniform Continuous".
func (k Kind) Title() string {
	if !k.valid() {
		return k.String()
	}
	return kinds[k].title
}

// Continuous reports whether k has a density rather than a mass
// function.
func (k Kind) Continuous() bool {
	return k.valid() && k <= Pareto
}

// Params returns the names of the parameters k requires.
func (k Kind) Params() []string {
	if !k.valid() {
		return nil
	}
	return append([]string(nil), kinds[k].params...)
}

// Defaults returns the initial value of each of k's parameters.
func (k Kind) Defaults() map[string]float64 {
	if !k.valid() {
		return nil
	}
	m := make(map[string]float64, len(kinds[k].params))
	for i, name := range kinds[k].params {
		m[name] = kinds[k].defaults[i]
	}
	return m
}

// ParseKind returns the Kind named by s. It accepts identifiers
// ("uniform_continuous"), display names ("Uniform Continuous") and
// the short form "uniform".
func ParseKind(s string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	if norm == "uniform" {
		return Uniform, nil
	}
	for k := Kind(0); k < numKinds; k++ {
		if k.String() == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown distribution %q", s)
}

func (k Kind) hasParam(name string) bool {
	for _, p := range kinds[k].params {
		if p == name {
			return true
		}
	}
	return false
}
