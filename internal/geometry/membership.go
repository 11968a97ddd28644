package geometry

import (
	"fmt"
	"math"
)

// Tolerance controls how close a point must be to count as on a curve.
// Both values are in plot space and do not depend on the zoom level.
type Tolerance struct {
	// Parabola bounds |y - f(x)| for parabolas.
	Parabola float64 `json:"parabola"`
	// Implicit bounds |F(x, y) - 1| for ellipses and hyperbolas, where F is
	// the left-hand side of the normalized implicit equation.
	Implicit float64 `json:"implicit"`
}

// DefaultTolerance is used by [IsOnCurve].
var DefaultTolerance = Tolerance{Parabola: 0.5, Implicit: 0.1}

// IsOnCurve reports whether pt lies approximately on d, using
// [DefaultTolerance].
func IsOnCurve(d Descriptor, pt Point) bool {
	return DefaultTolerance.IsOnCurve(d, pt)
}

// IsOnCurve reports whether pt lies approximately on d.
func (t Tolerance) IsOnCurve(d Descriptor, pt Point) bool {
	switch d := d.(type) {
	case Parabola:
		return math.Abs(pt.Y-d.Eval(pt.X)) < t.Parabola
	case Ellipse:
		return math.Abs(d.Implicit(pt)-1) < t.Implicit
	case Hyperbola:
		return math.Abs(d.Implicit(pt)-1) < t.Implicit
	default:
		panic(fmt.Sprintf("unhandled descriptor %T", d))
	}
}
