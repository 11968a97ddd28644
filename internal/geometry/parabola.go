package geometry

import "math"

// Parabola is the vertical parabola y = Ax² + Bx + C.
type Parabola struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`

	Vertex Point `json:"vertex"`
	Focus  Point `json:"focus"`
	// DirectrixY is the height of the horizontal directrix line.
	DirectrixY float64 `json:"directrix_y"`
	// FocalParam is the signed distance from the vertex to the focus, 1/(4A).
	FocalParam float64 `json:"focal_param"`
}

// SolveParabola derives the vertex, focus and directrix of y = ax² + bx + c.
// a must be non-zero.
func SolveParabola(a, b, c float64) (Parabola, error) {
	if err := requireFinite(KindParabola, []string{"A", "B", "C"}, a, b, c); err != nil {
		return Parabola{}, err
	}
	if a == 0 {
		return Parabola{}, divisionByZero(KindParabola, "A", "A ≠ 0", a)
	}

	// k = C - B²/(4A), evaluated through h.
	h := positiveZero(-b / (2 * a))
	k := positiveZero(c + b*h/2)
	p := 1 / (4 * a)

	if err := requireFiniteResult(KindParabola, "A", h, k, p); err != nil {
		return Parabola{}, err
	}

	return Parabola{
		A:          a,
		B:          b,
		C:          c,
		Vertex:     Pt(h, k),
		Focus:      Pt(h, k+p),
		DirectrixY: k - p,
		FocalParam: p,
	}, nil
}

func (Parabola) Kind() Kind { return KindParabola }

// Eccentricity is always 1 for a parabola.
func (Parabola) Eccentricity() float64 { return 1 }

func (Parabola) sealed() {}

// Eval returns y at x.
func (p Parabola) Eval(x float64) float64 {
	return p.A*x*x + p.B*x + p.C
}

// testPointOffset is how far right of the vertex the self-check samples the
// curve. The value has no geometric significance.
const testPointOffset = 2

// Sample measures the focus–directrix ratio at a point on the curve right of
// the vertex. The ratio is 1 up to rounding.
// Distances are taken from offsets relative to the vertex, which keeps them
// exact however far the vertex sits from the origin.
func (p Parabola) Sample() Sample {
	dy := p.A * testPointOffset * testPointOffset
	pt := Pt(p.Vertex.X+testPointOffset, p.Vertex.Y+dy)
	toFocus := math.Hypot(testPointOffset, dy-p.FocalParam)
	toDirectrix := math.Abs(dy + p.FocalParam)
	return newSample(pt, toFocus, toDirectrix)
}
