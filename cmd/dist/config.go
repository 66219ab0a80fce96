package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-distrange/stats"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config selects a distribution, its parameters and the range of
// interest.
//
// Settings come from the environment, then from an optional YAML file
// (-config), then from flags. Each layer overrides the ones before
// it. A layer that changes Kind discards the parameters set by the
// layers before it, since they belong to a different distribution.
type Config struct {
	Kind         string             `env:"DIST_KIND" envDefault:"normal" yaml:"kind"`
	Params       map[string]float64 `env:"DIST_PARAMS" yaml:"params"`
	Range        RangeConfig        `yaml:"range"`
	CenterNormal bool               `env:"DIST_CENTER_NORMAL" yaml:"center_normal"`
	Curve        bool               `env:"DIST_CURVE" envDefault:"true" yaml:"curve"`
}

// RangeConfig is the selected range.
type RangeConfig struct {
	Min float64 `env:"DIST_MIN" envDefault:"-1" yaml:"min"`
	Max float64 `env:"DIST_MAX" envDefault:"1" yaml:"max"`
}

// fileConfig is the YAML form of Config. Pointers distinguish unset
// fields from zero values.
type fileConfig struct {
	Kind   string             `yaml:"kind"`
	Params map[string]float64 `yaml:"params"`
	Range  struct {
		Min *float64 `yaml:"min"`
		Max *float64 `yaml:"max"`
	} `yaml:"range"`
	CenterNormal *bool `yaml:"center_normal"`
	Curve        *bool `yaml:"curve"`
}

// paramFlag collects repeated -param name=value flags.
type paramFlag map[string]float64

func (p paramFlag) String() string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%g", name, p[name])
	}
	return b.String()
}

func (p paramFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", name, err)
	}
	p[name] = v
	return nil
}

// ParseConfig reads the environment, the optional -config file and
// args into a Config. If environ is nil, the process environment is
// used.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	var (
		path   string
		fl     = cfg
		params = paramFlag{}
	)
	fs.StringVar(&path, "config", "", "read settings from YAML `file`")
	fs.StringVar(&fl.Kind, "dist", cfg.Kind, "distribution `name`")
	fs.Var(params, "param", "distribution parameter as `name=value` (repeatable)")
	fs.Float64Var(&fl.Range.Min, "min", cfg.Range.Min, "lower end of the selected range")
	fs.Float64Var(&fl.Range.Max, "max", cfg.Range.Max, "upper end of the selected range")
	fs.BoolVar(&fl.CenterNormal, "center-normal", cfg.CenterNormal, "sample normal distributions around their mean instead of over [-4, 4]")
	fs.BoolVar(&fl.Curve, "curve", cfg.Curve, "print the sampled curve")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dist":
			cfg.setKind(fl.Kind)
		case "param":
			cfg.setParams(params)
		case "min":
			cfg.Range.Min = fl.Range.Min
		case "max":
			cfg.Range.Max = fl.Range.Max
		case "center-normal":
			cfg.CenterNormal = fl.CenterNormal
		case "curve":
			cfg.Curve = fl.Curve
		}
	})
	return cfg, nil
}

func (cfg *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.Kind != "" {
		cfg.setKind(fc.Kind)
	}
	cfg.setParams(fc.Params)
	if fc.Range.Min != nil {
		cfg.Range.Min = *fc.Range.Min
	}
	if fc.Range.Max != nil {
		cfg.Range.Max = *fc.Range.Max
	}
	if fc.CenterNormal != nil {
		cfg.CenterNormal = *fc.CenterNormal
	}
	if fc.Curve != nil {
		cfg.Curve = *fc.Curve
	}
	return nil
}

func (cfg *Config) setKind(kind string) {
	if kind != cfg.Kind {
		cfg.Params = nil
	}
	cfg.Kind = kind
}

func (cfg *Config) setParams(params map[string]float64) {
	if len(params) == 0 {
		return
	}
	if cfg.Params == nil {
		cfg.Params = make(map[string]float64, len(params))
	}
	for name, v := range params {
		cfg.Params[name] = v
	}
}

// A Request is a validated Config, ready to evaluate.
type Request struct {
	Model     stats.Model
	Range     stats.Range
	Evaluator stats.Evaluator
	Curve     bool
}

// Request resolves cfg into a Request. Parameters cfg leaves unset
// take the distribution's default values. Invalid settings are
// reported as a *stats.ValidationError.
func (cfg Config) Request() (Request, error) {
	r := stats.Range{Min: cfg.Range.Min, Max: cfg.Range.Max}
	invalid := func(problems ...string) error {
		return &stats.ValidationError{Problems: append(r.Validate(), problems...)}
	}

	kind, err := stats.ParseKind(cfg.Kind)
	if err != nil {
		return Request{}, invalid(err.Error())
	}
	params := kind.Defaults()
	for name, v := range cfg.Params {
		params[name] = v
	}
	m, err := stats.FromParams(kind, params)
	if err != nil {
		var verr *stats.ValidationError
		if !errors.As(err, &verr) {
			return Request{}, err
		}
		return Request{}, invalid(verr.Problems...)
	}
	if err := stats.Validate(m, r); err != nil {
		return Request{}, err
	}

	req := Request{Model: m, Range: r, Curve: cfg.Curve}
	if cfg.CenterNormal {
		req.Evaluator.NormalWindow = stats.CenteredWindow
	}
	return req, nil
}
