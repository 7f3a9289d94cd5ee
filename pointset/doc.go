// SPDX-License-Identifier: MIT

// Package pointset converts planar geometries into point matrices and back.
//
// A point set is a k×2 matrix: one row per vertex, columns x and y. That is
// the shape procrustes.Generic aligns, so two GeoJSON documents describing
// the same shape can be fitted directly:
//
//	a, _ := pointset.ReadFeatureCollection(rawA)
//	b, _ := pointset.ReadFeatureCollection(rawB)
//	res, _ := procrustes.Generic(a, b)
//	aligned, _ := res.Aligned()
//	out, _ := pointset.MarshalFeatureCollection(aligned)
//
// Geometry handling follows github.com/paulmach/orb: Point, MultiPoint,
// LineString, Ring and Polygon (outer ring only) are supported. Closed rings
// drop their repeated closing vertex so every row is a distinct point.
package pointset
