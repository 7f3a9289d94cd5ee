// SPDX-License-Identifier: MIT

// Command procrustes fits the linear map T minimizing ‖A·T − B‖²_F.
//
// Usage:
//
//	procrustes -problem problem.yaml [-out result.yaml]
//	procrustes -a a.geojson -b b.geojson [-config config.yaml] [-out result.yaml] [-aligned aligned.geojson]
//
// A problem file holds both matrices and, optionally, the configuration:
//
//	a: [[1, 0], [0, 1], [1, 1]]
//	b: [[0, 1], [-1, 0], [-1, 1]]
//	config: {pad: false, use_svd: true}
//
// The result is written as YAML to -out, or to stdout when -out is empty.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/procrustes"
	"github.com/katalvlaran/procrustes/pointset"
)

// Version is set at build time via -ldflags.
var Version = "dev"

type options struct {
	Problem string
	A, B    string
	Config  string
	Out     string
	Aligned string
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	default:
		log.SetFlags(0)
		log.SetPrefix("procrustes: ")
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("procrustes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Problem, "problem", "", "YAML problem file with a, b and optional config")
	fs.StringVar(&opts.A, "a", "", "GeoJSON point set to transform")
	fs.StringVar(&opts.B, "b", "", "GeoJSON reference point set")
	fs.StringVar(&opts.Config, "config", "", "YAML configuration file (overrides the problem's config block)")
	fs.StringVar(&opts.Out, "out", "", "Result YAML file (default: stdout)")
	fs.StringVar(&opts.Aligned, "aligned", "", "Write the aligned point set A'T as GeoJSON")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	switch {
	case opts.Problem != "" && (opts.A != "" || opts.B != ""):
		return opts, errors.New("-problem cannot be combined with -a/-b")
	case opts.Problem == "" && (opts.A == "" || opts.B == ""):
		return opts, errors.New("need -problem, or both -a and -b")
	}

	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := log.New(stderr, "procrustes: ", 0)

	in, err := loadInput(opts)
	if err != nil {
		return err
	}

	res, err := procrustes.Solve(in.a, in.b, in.cfg)
	if err != nil {
		return fmt.Errorf("solve (%s): %w", procrustes.KindOf(err), err)
	}
	logger.Printf("%s %dx%d onto %dx%d: error=%.6g", res.Method,
		in.a.Rows(), in.a.Cols(), in.b.Rows(), in.b.Cols(), res.Error)
	if res.Underdetermined {
		logger.Printf("underdetermined: %d rows < %d columns, transform is the minimum-norm solution",
			res.NewA().Rows(), res.NewA().Cols())
	}

	rep, err := newReport(res, in.cfg, in.points)
	if err != nil {
		return err
	}
	if rep.MaxDeviation != nil {
		logger.Printf("max point deviation after alignment: %.6g", *rep.MaxDeviation)
	}
	if err = writeReport(opts.Out, stdout, rep); err != nil {
		return err
	}

	if opts.Aligned != "" {
		aligned, err := res.Aligned()
		if err != nil {
			return fmt.Errorf("aligned: %w", err)
		}
		raw, err := pointset.MarshalFeatureCollection(aligned)
		if err != nil {
			return fmt.Errorf("aligned: %w", err)
		}
		if err = os.WriteFile(opts.Aligned, raw, 0o644); err != nil {
			return fmt.Errorf("writing aligned point set: %w", err)
		}
		logger.Printf("wrote %s", opts.Aligned)
	}

	return nil
}
