package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aclements/go-distrange/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, environ map[string]string, args ...string) Config {
	t.Helper()
	fs := flag.NewFlagSet("dist", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if environ == nil {
		environ = map[string]string{}
	}
	cfg, err := ParseConfig(fs, args, environ)
	require.NoError(t, err)
	return cfg
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	cfg := parse(t, nil)
	assert.Equal(t, "normal", cfg.Kind)
	assert.Empty(t, cfg.Params)
	assert.Equal(t, RangeConfig{Min: -1, Max: 1}, cfg.Range)
	assert.False(t, cfg.CenterNormal)
	assert.True(t, cfg.Curve)

	req, err := cfg.Request()
	require.NoError(t, err)
	assert.Equal(t, stats.NormalDist{Mu: 0, Sigma: 1}, req.Model)
	assert.Equal(t, stats.Range{Min: -1, Max: 1}, req.Range)
	assert.Equal(t, stats.FixedWindow, req.Evaluator.NormalWindow)
}

func TestParseConfigEnv(t *testing.T) {
	cfg := parse(t, map[string]string{
		"DIST_KIND":          "binomial",
		"DIST_PARAMS":        "n:20,p:0.25",
		"DIST_MIN":           "3",
		"DIST_MAX":           "8",
		"DIST_CENTER_NORMAL": "true",
		"DIST_CURVE":         "false",
	})
	assert.Equal(t, Config{
		Kind:         "binomial",
		Params:       map[string]float64{"n": 20, "p": 0.25},
		Range:        RangeConfig{Min: 3, Max: 8},
		CenterNormal: true,
		Curve:        false,
	}, cfg)

	req, err := cfg.Request()
	require.NoError(t, err)
	assert.Equal(t, stats.BinomialDist{N: 20, P: 0.25}, req.Model)
	assert.Equal(t, stats.CenteredWindow, req.Evaluator.NormalWindow)
}

func TestParseConfigBadEnv(t *testing.T) {
	fs := flag.NewFlagSet("dist", flag.ContinueOnError)
	_, err := ParseConfig(fs, nil, map[string]string{"DIST_MIN": "low"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestParseConfigFlags(t *testing.T) {
	cfg := parse(t, map[string]string{"DIST_KIND": "gamma", "DIST_PARAMS": "shape:2"},
		"-dist", "hypergeometric", "-param", "N=30", "-param", "K=12", "-param", "n=6",
		"-min", "2", "-max", "4", "-curve=false")
	assert.Equal(t, "hypergeometric", cfg.Kind)
	// Changing the distribution drops the environment's gamma parameters.
	assert.Equal(t, map[string]float64{"N": 30, "K": 12, "n": 6}, cfg.Params)
	assert.Equal(t, RangeConfig{Min: 2, Max: 4}, cfg.Range)
	assert.False(t, cfg.Curve)

	req, err := cfg.Request()
	require.NoError(t, err)
	assert.Equal(t, stats.HypergeometricDist{N: 30, K: 12, Draws: 6}, req.Model)
}

func TestParseConfigBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"-param", "mean"},
		{"-param", "mean=x"},
		{"-min", "nope"},
		{"extra"},
	} {
		fs := flag.NewFlagSet("dist", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		_, err := ParseConfig(fs, args, map[string]string{})
		assert.Error(t, err, "args %q", args)
	}
}

func TestParseConfigFile(t *testing.T) {
	path := writeConfig(t, `
kind: uniform
params:
  a: 0
  b: 10
range:
  min: 2
  max: 5
curve: false
`)
	cfg := parse(t, map[string]string{"DIST_MAX": "9"}, "-config", path)
	assert.Equal(t, Config{
		Kind:   "uniform",
		Params: map[string]float64{"a": 0, "b": 10},
		Range:  RangeConfig{Min: 2, Max: 5},
		Curve:  false,
	}, cfg)

	// Flags override the file; parameters merge.
	cfg = parse(t, nil, "-config", path, "-param", "b=20", "-max", "6")
	assert.Equal(t, map[string]float64{"a": 0, "b": 20}, cfg.Params)
	assert.Equal(t, RangeConfig{Min: 2, Max: 6}, cfg.Range)

	// Fields the file leaves out keep their lower-layer values.
	path = writeConfig(t, "range:\n  max: 3\n")
	cfg = parse(t, map[string]string{"DIST_PARAMS": "mean:1"}, "-config", path)
	assert.Equal(t, "normal", cfg.Kind)
	assert.Equal(t, map[string]float64{"mean": 1}, cfg.Params)
	assert.Equal(t, RangeConfig{Min: -1, Max: 3}, cfg.Range)
}

func TestParseConfigFileErrors(t *testing.T) {
	fs := flag.NewFlagSet("dist", flag.ContinueOnError)
	_, err := ParseConfig(fs, []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, map[string]string{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeConfig(t, "params: [1, 2]\n")
	fs = flag.NewFlagSet("dist", flag.ContinueOnError)
	_, err = ParseConfig(fs, []string{"-config", path}, map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestRequestProblems(t *testing.T) {
	for _, test := range []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			"unknown kind and bad range",
			Config{Kind: "poisson", Range: RangeConfig{Min: 5, Max: 2}},
			[]string{"Minimum range cannot be greater than maximum range.", `unknown distribution "poisson"`},
		},
		{
			"bad parameter and bad range",
			Config{Kind: "normal", Params: map[string]float64{"stddev": 0}, Range: RangeConfig{Min: 5, Max: 2}},
			[]string{"Minimum range cannot be greater than maximum range.", "Normal: Standard deviation (σ) must be positive."},
		},
		{
			"bad range only",
			Config{Kind: "geometric", Range: RangeConfig{Min: 5, Max: 2}},
			[]string{"Minimum range cannot be greater than maximum range."},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.cfg.Request()
			var verr *stats.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, test.want, verr.Problems)
		})
	}
}
