package geometry

import "math"

// Hyperbola is the hyperbola (x-h)²/A² - (y-k)²/B² = 1 with a horizontal
// transverse axis.
type Hyperbola struct {
	A float64 `json:"a"`
	B float64 `json:"b"`

	Center Point `json:"center"`
	// C is the focal distance from the center, sqrt(A² + B²).
	C float64 `json:"c"`
	E float64 `json:"e"`

	Focus1 Point `json:"focus1"`
	Focus2 Point `json:"focus2"`
	// Directrix1 and Directrix2 are the x positions of the vertical
	// directrices, right and left of the center.
	Directrix1 float64 `json:"directrix1"`
	Directrix2 float64 `json:"directrix2"`
}

// SolveHyperbola derives the foci, directrices and eccentricity of the
// hyperbola with transverse semi-axis a and conjugate semi-axis b centered
// on (h, k). Both semi-axes must be positive.
func SolveHyperbola(a, b, h, k float64) (Hyperbola, error) {
	if err := requireFinite(KindHyperbola, []string{"a", "b", "centerX", "centerY"}, a, b, h, k); err != nil {
		return Hyperbola{}, err
	}
	if err := requirePositive(KindHyperbola, "a", a); err != nil {
		return Hyperbola{}, err
	}
	if err := requirePositive(KindHyperbola, "b", b); err != nil {
		return Hyperbola{}, err
	}

	c := math.Hypot(a, b)
	e := c / a
	d := a / e

	if err := requireFiniteResult(KindHyperbola, "a", c, e, d); err != nil {
		return Hyperbola{}, err
	}

	return Hyperbola{
		A:          a,
		B:          b,
		Center:     Pt(h, k),
		C:          c,
		E:          e,
		Focus1:     Pt(h+c, k),
		Focus2:     Pt(h-c, k),
		Directrix1: h + d,
		Directrix2: h - d,
	}, nil
}

func (Hyperbola) Kind() Kind { return KindHyperbola }

func (h Hyperbola) Eccentricity() float64 { return h.E }

func (Hyperbola) sealed() {}

// Implicit evaluates (x-h)²/A² - (y-k)²/B², which is 1 on the curve.
func (h Hyperbola) Implicit(pt Point) float64 {
	dx := pt.X - h.Center.X
	dy := pt.Y - h.Center.Y
	return dx*dx/(h.A*h.A) - dy*dy/(h.B*h.B)
}

// BranchHeight returns the non-negative y offset from the center of the
// curve at horizontal offset dx from the center. It is NaN for |dx| < A.
func (h Hyperbola) BranchHeight(dx float64) float64 {
	return math.Sqrt(h.B * h.B * (dx*dx/(h.A*h.A) - 1))
}

// Sample measures the focus–directrix ratio at the right vertex. Vertex,
// focus and directrix are collinear on the transverse axis, so both
// distances are one-dimensional. The ratio equals E up to rounding.
func (h Hyperbola) Sample() Sample {
	pt := Pt(h.Center.X+h.A, h.Center.Y)
	return newSample(pt, math.Abs(pt.X-h.Focus1.X), math.Abs(pt.X-h.Directrix1))
}
