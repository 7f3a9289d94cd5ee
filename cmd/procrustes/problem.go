// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/procrustes"
	"github.com/katalvlaran/procrustes/matrix"
	"github.com/katalvlaran/procrustes/pointset"
)

// problemFile is the -problem schema. Config starts at the defaults so an
// absent config block means "defaults", not "everything off". Unknown
// top-level keys are rejected, matching the config block itself.
type problemFile struct {
	A      [][]float64       `yaml:"a"`
	B      [][]float64       `yaml:"b"`
	Config procrustes.Config `yaml:"config"`
}

type input struct {
	a, b   *matrix.Dense
	cfg    procrustes.Config
	points bool // a and b are planar point sets
}

func loadInput(opts options) (*input, error) {
	var in input
	var err error
	if opts.Problem != "" {
		if in.a, in.b, in.cfg, err = loadProblem(opts.Problem); err != nil {
			return nil, err
		}
	} else {
		if in.a, err = loadPointSet(opts.A); err != nil {
			return nil, err
		}
		if in.b, err = loadPointSet(opts.B); err != nil {
			return nil, err
		}
		in.cfg = procrustes.DefaultConfig()
		in.points = true
	}

	if opts.Config != "" {
		if in.cfg, err = loadConfig(opts.Config); err != nil {
			return nil, err
		}
	}

	return &in, nil
}

func loadProblem(path string) (a, b *matrix.Dense, cfg procrustes.Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("reading problem file: %w", err)
	}

	p := problemFile{Config: procrustes.DefaultConfig()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, cfg, fmt.Errorf("parsing problem YAML: %w", err)
	}
	if a, err = matrix.NewDenseRows(p.A); err != nil {
		return nil, nil, cfg, fmt.Errorf("problem key a: %w", err)
	}
	if b, err = matrix.NewDenseRows(p.B); err != nil {
		return nil, nil, cfg, fmt.Errorf("problem key b: %w", err)
	}

	return a, b, p.Config, nil
}

func loadConfig(path string) (procrustes.Config, error) {
	cfg := procrustes.DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}

	return cfg, nil
}

func loadPointSet(path string) (*matrix.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading point set: %w", err)
	}
	m, err := pointset.ReadFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// report is the result file schema.
type report struct {
	Error           float64           `yaml:"error"`
	Transform       [][]float64       `yaml:"transform,flow"`
	NewA            [][]float64       `yaml:"new_a,flow"`
	NewB            [][]float64       `yaml:"new_b,flow"`
	Underdetermined bool              `yaml:"underdetermined"`
	Method          string            `yaml:"method"`
	MaxDeviation    *float64          `yaml:"max_deviation,omitempty"`
	Config          procrustes.Config `yaml:"config"`
	Version         string            `yaml:"version"`
}

func newReport(res *procrustes.Result, cfg procrustes.Config, points bool) (*report, error) {
	rep := &report{
		Error:           res.Error,
		Transform:       rawRows(res.Transform()),
		NewA:            rawRows(res.NewA()),
		NewB:            rawRows(res.NewB()),
		Underdetermined: res.Underdetermined,
		Method:          res.Method.String(),
		Config:          cfg,
		Version:         Version,
	}
	if !points {
		return rep, nil
	}

	aligned, err := res.Aligned()
	if err != nil {
		return nil, fmt.Errorf("aligned: %w", err)
	}
	dev, err := pointset.Deviations(aligned, res.NewB())
	if err != nil {
		return nil, fmt.Errorf("deviations: %w", err)
	}
	worst := slices.Max(dev)
	rep.MaxDeviation = &worst

	return rep, nil
}

// rawRows copies m into nested slices for serialization.
func rawRows(m matrix.Matrix) [][]float64 {
	d, err := matrix.FromMatrix(m)
	if err != nil {
		return nil
	}

	return d.RawRows()
}

func writeReport(path string, stdout io.Writer, rep *report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshaling result YAML: %w", err)
	}
	if path == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result file: %w", err)
	}

	return nil
}
