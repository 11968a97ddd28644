package geometry

import (
	"fmt"
	"math"
)

// Sample is the numerical self-check of a descriptor: a point on the curve,
// its distances to a focus and to the matching directrix, and their ratio,
// which should reproduce the eccentricity.
type Sample struct {
	TestPoint       Point   `json:"test_point"`
	DistToFocus     float64 `json:"dist_to_focus"`
	DistToDirectrix float64 `json:"dist_to_directrix"`
	Ratio           float64 `json:"ratio"`
}

func newSample(pt Point, toFocus, toDirectrix float64) Sample {
	return Sample{
		TestPoint:       pt,
		DistToFocus:     toFocus,
		DistToDirectrix: toDirectrix,
		Ratio:           toFocus / toDirectrix,
	}
}

// Verify computes the self-check sample of d. It is pure and never fails
// for a descriptor returned by one of the solvers.
func Verify(d Descriptor) Sample {
	switch d := d.(type) {
	case Parabola:
		return d.Sample()
	case Ellipse:
		return d.Sample()
	case Hyperbola:
		return d.Sample()
	default:
		panic(fmt.Sprintf("unhandled descriptor %T", d))
	}
}

// Residual returns |Ratio - e|, the disagreement between the sample and the
// descriptor's eccentricity.
func (s Sample) Residual(e float64) float64 {
	return math.Abs(s.Ratio - e)
}
