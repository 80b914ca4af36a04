package geom

import "fmt"

// Axis selects one of the two coordinate directions.
type Axis uint8

const (
	// AxisX is the horizontal axis. Tree roots split on it.
	AxisX Axis = iota
	// AxisY is the vertical axis.
	AxisY
)

// Next returns the axis following a, wrapping from Y back to X.
func (a Axis) Next() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}
