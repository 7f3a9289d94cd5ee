// SPDX-License-Identifier: MIT

package pointset

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/procrustes/matrix"
)

const (
	opFromGeometry   = "FromGeometry"
	opReadCollection = "ReadFeatureCollection"
	opToMultiPoint   = "ToMultiPoint"
	opDeviations     = "Deviations"
)

// Dims is the number of coordinate columns in a point-set matrix.
const Dims = 2

// FromGeometry returns the vertices of g as a k×2 matrix.
//
// Behavior highlights:
//   - Ring and Polygon drop the closing vertex when it repeats the first one.
//   - Polygon holes are ignored; only the outer ring describes the shape.
//
// Errors:
//   - ErrEmptyGeometry when g is nil or has no vertices.
//   - ErrUnsupportedGeometry for any other orb type.
func FromGeometry(g orb.Geometry) (*matrix.Dense, error) {
	pts, err := vertices(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGeometry, err)
	}

	return fromPoints(pts)
}

func vertices(g orb.Geometry) ([]orb.Point, error) {
	var pts []orb.Point
	switch v := g.(type) {
	case nil:
		return nil, ErrEmptyGeometry
	case orb.Point:
		pts = []orb.Point{v}
	case orb.MultiPoint:
		pts = v
	case orb.LineString:
		pts = v
	case orb.Ring:
		pts = openRing(v)
	case orb.Polygon:
		if len(v) == 0 {
			return nil, ErrEmptyGeometry
		}
		pts = openRing(v[0])
	default:
		return nil, fmt.Errorf("%s: %w", g.GeoJSONType(), ErrUnsupportedGeometry)
	}
	if len(pts) == 0 {
		return nil, ErrEmptyGeometry
	}

	return pts, nil
}

// openRing drops the closing vertex of a closed ring.
func openRing(r orb.Ring) []orb.Point {
	if len(r) > 1 && r.Closed() {
		return r[:len(r)-1]
	}

	return r
}

func fromPoints(pts []orb.Point) (*matrix.Dense, error) {
	data := make([]float64, 0, len(pts)*Dims)
	for _, p := range pts {
		data = append(data, p.X(), p.Y())
	}

	return matrix.NewDenseFrom(len(pts), Dims, data)
}

// ReadFeatureCollection parses a GeoJSON FeatureCollection and stacks the
// vertices of every feature in document order.
func ReadFeatureCollection(data []byte) (*matrix.Dense, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReadCollection, err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("%s: no features: %w", opReadCollection, ErrEmptyGeometry)
	}

	var pts []orb.Point
	for i, f := range fc.Features {
		fp, err := vertices(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("%s: feature %d: %w", opReadCollection, i, err)
		}
		pts = append(pts, fp...)
	}

	return fromPoints(pts)
}

// ToMultiPoint reads the first two columns of m as (x, y) pairs.
// Additional columns, such as zero padding, are ignored.
func ToMultiPoint(m matrix.Matrix) (orb.MultiPoint, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opToMultiPoint, err)
	}
	if m.Cols() < Dims {
		return nil, fmt.Errorf("%s: %d columns: %w", opToMultiPoint, m.Cols(), ErrTooFewColumns)
	}

	mp := make(orb.MultiPoint, m.Rows())
	for i := range mp {
		x, err := m.At(i, 0)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opToMultiPoint, err)
		}
		y, err := m.At(i, 1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opToMultiPoint, err)
		}
		mp[i] = orb.Point{x, y}
	}

	return mp, nil
}

// MarshalFeatureCollection encodes m as a GeoJSON FeatureCollection holding
// a single MultiPoint feature.
func MarshalFeatureCollection(m matrix.Matrix) ([]byte, error) {
	mp, err := ToMultiPoint(m)
	if err != nil {
		return nil, err
	}
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(mp))

	return fc.MarshalJSON()
}

// Deviations returns the planar distance between matching rows of a and b,
// read as points. Both matrices need the same row count and ≥ 2 columns.
func Deviations(a, b matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateSameRows(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opDeviations, err)
	}
	pa, err := ToMultiPoint(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDeviations, err)
	}
	pb, err := ToMultiPoint(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDeviations, err)
	}

	out := make([]float64, len(pa))
	for i := range pa {
		out[i] = planar.Distance(pa[i], pb[i])
	}

	return out, nil
}
