package geom

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Coordinate is the set of scalar types a Point can be built from.
// Values must be totally ordered; NaN is not supported.
type Coordinate interface {
	constraints.Integer | constraints.Float
}

// Point is a location in the plane.
type Point[T Coordinate] struct {
	X T
	Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Coordinate](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Coord returns the coordinate of p on the given axis.
func (p Point[T]) Coord(a Axis) T {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// Equal reports whether p and o have identical coordinates.
func (p Point[T]) Equal(o Point[T]) bool {
	return p.X == o.X && p.Y == o.Y
}

// SquaredDist returns the squared Euclidean distance between p and o.
func (p Point[T]) SquaredDist(o Point[T]) float64 {
	dx := float64(p.X) - float64(o.X)
	dy := float64(p.Y) - float64(o.Y)
	return dx*dx + dy*dy
}

// AxisGap returns the squared distance between p and o measured along a
// single axis, i.e. the squared distance from p to the line through o
// perpendicular to that axis.
func (p Point[T]) AxisGap(o Point[T], a Axis) float64 {
	d := float64(p.Coord(a)) - float64(o.Coord(a))
	return d * d
}

// Compare orders p and o on axis a first and on the other axis second.
// It returns -1, 0 or +1.
func (p Point[T]) Compare(o Point[T], a Axis) int {
	if c := cmp.Compare(p.Coord(a), o.Coord(a)); c != 0 {
		return c
	}
	b := a.Next()
	return cmp.Compare(p.Coord(b), o.Coord(b))
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}
