// SPDX-License-Identifier: MIT

// Package procrustes: configuration.
//
// Purpose:
//   - Config is the single immutable description of one solve.
//   - Defaults live in Default* constants; NewConfig is the only place they
//     are resolved for functional options, DefaultConfig for everything else.
//   - The YAML form uses gopkg.in/yaml.v3 and the keys pad, translate, scale,
//     unpad_col, unpad_row, check_finite, weight and use_svd.

package procrustes

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/procrustes/pinv"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPad zero-pads A and B to a common shape.
	DefaultPad = true

	// DefaultTranslate leaves column means untouched.
	DefaultTranslate = false

	// DefaultScale leaves Frobenius norms untouched.
	DefaultScale = false

	// DefaultUnpadCol keeps trailing zero columns.
	DefaultUnpadCol = false

	// DefaultUnpadRow keeps trailing zero rows.
	DefaultUnpadRow = false

	// DefaultCheckFinite rejects NaN/±Inf input before any work.
	DefaultCheckFinite = true

	// DefaultMethod is the pseudo-inverse strategy.
	DefaultMethod = pinv.LeastSquares
)

// YAML keys.
const (
	keyPad         = "pad"
	keyTranslate   = "translate"
	keyScale       = "scale"
	keyUnpadCol    = "unpad_col"
	keyUnpadRow    = "unpad_row"
	keyCheckFinite = "check_finite"
	keyWeight      = "weight"
	keyUseSVD      = "use_svd"
)

// Config controls the preprocessing pipeline and the solver.
// Treat it as a value: Solve never mutates it and never retains Weight.
type Config struct {
	Pad         bool
	Translate   bool
	Scale       bool
	UnpadCol    bool
	UnpadRow    bool
	CheckFinite bool

	// Weight holds one non-negative weight per row of A; nil disables weighting.
	Weight []float64

	// Method selects the pseudo-inverse algorithm.
	Method pinv.Method
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		Pad:         DefaultPad,
		Translate:   DefaultTranslate,
		Scale:       DefaultScale,
		UnpadCol:    DefaultUnpadCol,
		UnpadRow:    DefaultUnpadRow,
		CheckFinite: DefaultCheckFinite,
		Method:      DefaultMethod,
	}
}

// ---------- Functional options ----------

// Option mutates a Config under construction. Options apply in order;
// the last writer wins.
type Option func(*Config)

// NewConfig resolves opts on top of DefaultConfig. Nil options are skipped.
// The returned Config owns its Weight slice.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.Weight = cloneWeight(cfg.Weight)

	return cfg
}

// WithPad toggles zero-padding to a common shape.
func WithPad(on bool) Option {
	return func(c *Config) { c.Pad = on }
}

// WithTranslate centers both matrices at the origin.
func WithTranslate() Option {
	return func(c *Config) { c.Translate = true }
}

// WithScale normalizes both matrices to unit Frobenius norm.
func WithScale() Option {
	return func(c *Config) { c.Scale = true }
}

// WithUnpadCol removes trailing near-zero columns before anything else.
func WithUnpadCol() Option {
	return func(c *Config) { c.UnpadCol = true }
}

// WithUnpadRow removes trailing near-zero rows before anything else.
func WithUnpadRow() Option {
	return func(c *Config) { c.UnpadRow = true }
}

// WithCheckFinite toggles the NaN/±Inf scan of A, B and the weights.
func WithCheckFinite(on bool) Option {
	return func(c *Config) { c.CheckFinite = on }
}

// WithWeight sets the per-row weights of A. The slice is copied;
// nil disables weighting.
func WithWeight(w []float64) Option {
	cp := cloneWeight(w)
	return func(c *Config) { c.Weight = cp }
}

// WithMethod selects the pseudo-inverse strategy. Unknown values are
// rejected by Solve with ErrType.
func WithMethod(m pinv.Method) Option {
	return func(c *Config) { c.Method = m }
}

// WithSVD is shorthand for WithMethod(pinv.SVD).
func WithSVD() Option { return WithMethod(pinv.SVD) }

func cloneWeight(w []float64) []float64 {
	if w == nil {
		return nil
	}
	cp := make([]float64, len(w))
	copy(cp, w)

	return cp
}

// ---------- YAML ----------

// configYAML is the on-disk schema.
type configYAML struct {
	Pad         bool      `yaml:"pad"`
	Translate   bool      `yaml:"translate"`
	Scale       bool      `yaml:"scale"`
	UnpadCol    bool      `yaml:"unpad_col"`
	UnpadRow    bool      `yaml:"unpad_row"`
	CheckFinite bool      `yaml:"check_finite"`
	Weight      []float64 `yaml:"weight,omitempty"`
	UseSVD      bool      `yaml:"use_svd"`
}

// MarshalYAML implements yaml.Marshaler.
func (c Config) MarshalYAML() (interface{}, error) {
	if !c.Method.Valid() {
		return nil, fmt.Errorf("Config.MarshalYAML: method %s: %w", c.Method, ErrType)
	}

	return configYAML{
		Pad:         c.Pad,
		Translate:   c.Translate,
		Scale:       c.Scale,
		UnpadCol:    c.UnpadCol,
		UnpadRow:    c.UnpadRow,
		CheckFinite: c.CheckFinite,
		Weight:      c.Weight,
		UseSVD:      c.Method == pinv.SVD,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// Behavior highlights:
//   - Starts from DefaultConfig; omitted keys keep their defaults.
//   - Flags must be YAML booleans. yaml.v3 follows YAML 1.2, so `yes`, `on`
//     and quoted strings are strings, not booleans, and are rejected.
//   - Unknown keys are rejected.
//
// Errors:
//   - ErrType for every violation above and for a non-numeric weight list.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}
	cfg := DefaultConfig()
	if value.ShortTag() == "!!null" {
		*c = cfg
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return procrustesErrorf(opConfigYAML, ErrType, fmt.Errorf("line %d: config must be a mapping", value.Line))
	}

	var err error
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case keyPad:
			err = decodeBool(key, val, &cfg.Pad)
		case keyTranslate:
			err = decodeBool(key, val, &cfg.Translate)
		case keyScale:
			err = decodeBool(key, val, &cfg.Scale)
		case keyUnpadCol:
			err = decodeBool(key, val, &cfg.UnpadCol)
		case keyUnpadRow:
			err = decodeBool(key, val, &cfg.UnpadRow)
		case keyCheckFinite:
			err = decodeBool(key, val, &cfg.CheckFinite)
		case keyWeight:
			err = decodeWeight(key, val, &cfg.Weight)
		case keyUseSVD:
			var useSVD bool
			if err = decodeBool(key, val, &useSVD); err == nil {
				cfg.Method = pinv.FromUseSVD(useSVD)
			}
		default:
			err = fmt.Errorf("line %d: unknown key %q", key.Line, key.Value)
		}
		if err != nil {
			return procrustesErrorf(opConfigYAML, ErrType, err)
		}
	}
	*c = cfg

	return nil
}

func decodeBool(key, val *yaml.Node, dst *bool) error {
	if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!bool" {
		return fmt.Errorf("line %d: %s must be a boolean, got %q", val.Line, key.Value, val.Value)
	}

	return val.Decode(dst)
}

func decodeWeight(key, val *yaml.Node, dst *[]float64) error {
	if val.ShortTag() == "!!null" {
		*dst = nil
		return nil
	}
	if val.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: %s must be a list of numbers", val.Line, key.Value)
	}
	w := make([]float64, 0, len(val.Content))
	for _, item := range val.Content {
		tag := item.ShortTag()
		if item.Kind != yaml.ScalarNode || (tag != "!!int" && tag != "!!float") {
			return fmt.Errorf("line %d: %s entries must be numbers, got %q", item.Line, key.Value, item.Value)
		}
		var v float64
		if err := item.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %s: %w", item.Line, key.Value, err)
		}
		w = append(w, v)
	}
	*dst = w

	return nil
}
