// Package geom provides the two-dimensional value types the spatial index
// is built on.
//
// A Point is a pair of coordinates of any integer or floating point type.
// Distances are computed as squared Euclidean distances with both
// coordinates widened to float64 before subtraction, so the arithmetic
// cannot overflow for any supported coordinate type.
//
// # Usage
//
//	a := geom.Pt(3, 0)
//	b := geom.Pt(4, 6)
//	d := a.SquaredDist(b)          // 37
//	g := a.AxisGap(b, geom.AxisY)  // 36
//
// Integer coordinates up to magnitude 2^25 (differences up to 2^26) produce
// exact distances.
// Larger magnitudes remain ordered but may be rounded.
package geom
