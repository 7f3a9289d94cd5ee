// SPDX-License-Identifier: MIT

package procrustes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/procrustes"
	"github.com/katalvlaran/procrustes/pinv"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := procrustes.NewConfig()
	assert.Equal(t, procrustes.DefaultConfig(), cfg)
	assert.True(t, cfg.Pad)
	assert.True(t, cfg.CheckFinite)
	assert.False(t, cfg.Translate)
	assert.False(t, cfg.Scale)
	assert.False(t, cfg.UnpadCol)
	assert.False(t, cfg.UnpadRow)
	assert.Nil(t, cfg.Weight)
	assert.Equal(t, pinv.LeastSquares, cfg.Method)
}

func TestNewConfig_Options(t *testing.T) {
	t.Parallel()

	cfg := procrustes.NewConfig(
		procrustes.WithPad(false),
		procrustes.WithTranslate(),
		procrustes.WithScale(),
		procrustes.WithUnpadCol(),
		procrustes.WithUnpadRow(),
		procrustes.WithCheckFinite(false),
		procrustes.WithWeight([]float64{1, 2}),
		procrustes.WithSVD(),
		nil,
	)
	assert.Equal(t, procrustes.Config{
		Pad:         false,
		Translate:   true,
		Scale:       true,
		UnpadCol:    true,
		UnpadRow:    true,
		CheckFinite: false,
		Weight:      []float64{1, 2},
		Method:      pinv.SVD,
	}, cfg)

	// Last writer wins.
	cfg = procrustes.NewConfig(procrustes.WithSVD(), procrustes.WithMethod(pinv.LeastSquares), procrustes.WithPad(false), procrustes.WithPad(true))
	assert.Equal(t, pinv.LeastSquares, cfg.Method)
	assert.True(t, cfg.Pad)
}

func TestNewConfig_WeightIsCopied(t *testing.T) {
	t.Parallel()

	w := []float64{1, 2, 3}
	opt := procrustes.WithWeight(w)
	w[0] = 42

	a := procrustes.NewConfig(opt)
	b := procrustes.NewConfig(opt)
	assert.Equal(t, []float64{1, 2, 3}, a.Weight)

	a.Weight[1] = -1
	assert.Equal(t, []float64{1, 2, 3}, b.Weight, "configs must not share weights")
}

func TestConfig_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		want procrustes.Config
	}{
		{
			name: "empty mapping keeps defaults",
			doc:  "{}",
			want: procrustes.DefaultConfig(),
		},
		{
			name: "partial",
			doc:  "translate: true\nuse_svd: true\n",
			want: procrustes.NewConfig(procrustes.WithTranslate(), procrustes.WithSVD()),
		},
		{
			name: "full",
			doc: `
pad: false
translate: true
scale: true
unpad_col: true
unpad_row: true
check_finite: false
weight: [1, 0.5, 2]
use_svd: false
`,
			want: procrustes.Config{
				Translate: true, Scale: true, UnpadCol: true, UnpadRow: true,
				Weight: []float64{1, 0.5, 2}, Method: pinv.LeastSquares,
			},
		},
		{
			name: "null weight",
			doc:  "weight: ~\n",
			want: procrustes.DefaultConfig(),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var got procrustes.Config
			require.NoError(t, yaml.Unmarshal([]byte(tc.doc), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfig_UnmarshalYAMLRejects(t *testing.T) {
	t.Parallel()

	docs := map[string]string{
		"quoted use_svd": `use_svd: "yes"`,
		"yaml 1.1 yes":   `use_svd: yes`,
		"numeric flag":   `pad: 1`,
		"list flag":      `scale: [true]`,
		"string weight":  `weight: [1, two]`,
		"scalar weight":  `weight: 3`,
		"unknown key":    `rotate: true`,
		"not a mapping":  `[pad, scale]`,
	}

	for name, doc := range docs {
		name, doc := name, doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var cfg procrustes.Config
			err := yaml.Unmarshal([]byte(doc), &cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, procrustes.ErrType)
			assert.Equal(t, procrustes.KindType, procrustes.KindOf(err))
		})
	}
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	in := procrustes.NewConfig(procrustes.WithScale(), procrustes.WithWeight([]float64{2, 3}), procrustes.WithSVD())
	raw, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "use_svd: true")

	var out procrustes.Config
	require.NoError(t, yaml.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	_, err = yaml.Marshal(procrustes.NewConfig(procrustes.WithMethod(pinv.Method(5))))
	assert.ErrorIs(t, err, procrustes.ErrType)
}
