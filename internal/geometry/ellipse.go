package geometry

import "math"

// Ellipse is the axis-aligned ellipse (x-h)²/A² + (y-k)²/B² = 1.
//
// A and B are kept exactly as entered. Orientation follows the raw inputs
// (horizontal iff A > B, so a tie is vertical), while the axis lengths used
// by every formula are the sorted MajorAxis and MinorAxis.
type Ellipse struct {
	A float64 `json:"a"`
	B float64 `json:"b"`

	Center    Point   `json:"center"`
	MajorAxis float64 `json:"major_axis"`
	MinorAxis float64 `json:"minor_axis"`
	// C is the focal distance from the center.
	C float64 `json:"c"`
	E float64 `json:"e"`

	Focus1 Point `json:"focus1"`
	Focus2 Point `json:"focus2"`
	// Directrix1 and Directrix2 are x positions of vertical lines when
	// IsHorizontal, y positions of horizontal lines otherwise. Directrix1 is
	// on the same side as Focus1.
	Directrix1 float64 `json:"directrix1"`
	Directrix2 float64 `json:"directrix2"`

	IsHorizontal bool `json:"is_horizontal"`
}

// SolveEllipse derives the foci, directrices and eccentricity of the ellipse
// with semi-axes a and b centered on (h, k). Both semi-axes must be positive
// and distinct; a circle has no directrix.
func SolveEllipse(a, b, h, k float64) (Ellipse, error) {
	if err := requireFinite(KindEllipse, []string{"a", "b", "centerX", "centerY"}, a, b, h, k); err != nil {
		return Ellipse{}, err
	}
	if err := requirePositive(KindEllipse, "a", a); err != nil {
		return Ellipse{}, err
	}
	if err := requirePositive(KindEllipse, "b", b); err != nil {
		return Ellipse{}, err
	}

	if a == b {
		return Ellipse{}, divisionByZero(KindEllipse, "b", "a ≠ b", b)
	}

	horizontal := a > b
	major := math.Max(a, b)
	minor := math.Min(a, b)
	// e = √(1 - (minor/major)²) keeps no squared axis in the computation.
	r := minor / major
	e := math.Sqrt((1 - r) * (1 + r))
	c := major * e
	d := major / e

	if err := requireFiniteResult(KindEllipse, "a", c, e, d); err != nil {
		return Ellipse{}, err
	}

	el := Ellipse{
		A:            a,
		B:            b,
		Center:       Pt(h, k),
		MajorAxis:    major,
		MinorAxis:    minor,
		C:            c,
		E:            e,
		IsHorizontal: horizontal,
	}
	if horizontal {
		el.Focus1 = Pt(h+c, k)
		el.Focus2 = Pt(h-c, k)
		el.Directrix1 = h + d
		el.Directrix2 = h - d
	} else {
		el.Focus1 = Pt(h, k+c)
		el.Focus2 = Pt(h, k-c)
		el.Directrix1 = k + d
		el.Directrix2 = k - d
	}
	return el, nil
}

func (Ellipse) Kind() Kind { return KindEllipse }

func (e Ellipse) Eccentricity() float64 { return e.E }

func (Ellipse) sealed() {}

// Implicit evaluates (x-h)²/A² + (y-k)²/B², which is 1 on the curve.
func (e Ellipse) Implicit(pt Point) float64 {
	dx := pt.X - e.Center.X
	dy := pt.Y - e.Center.Y
	return dx*dx/(e.A*e.A) + dy*dy/(e.B*e.B)
}

// Sample measures the focus–directrix ratio at the end of the major axis on
// the Focus1 side. The ratio equals E up to rounding.
func (e Ellipse) Sample() Sample {
	if e.IsHorizontal {
		pt := Pt(e.Center.X+e.MajorAxis, e.Center.Y)
		return newSample(pt, pt.Distance(e.Focus1), math.Abs(pt.X-e.Directrix1))
	}
	pt := Pt(e.Center.X, e.Center.Y+e.MajorAxis)
	return newSample(pt, pt.Distance(e.Focus1), math.Abs(pt.Y-e.Directrix1))
}
