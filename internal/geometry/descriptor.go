package geometry

import "fmt"

// Descriptor is the computed geometric summary of one conic. It is
// implemented by exactly [Parabola], [Ellipse] and [Hyperbola]; consumers
// switch over those three types.
//
// A Descriptor is immutable once built.
type Descriptor interface {
	Kind() Kind
	// Eccentricity returns the focus–directrix distance ratio.
	Eccentricity() float64

	sealed()
}

var (
	_ Descriptor = Parabola{}
	_ Descriptor = Ellipse{}
	_ Descriptor = Hyperbola{}
)

// Params holds raw user input for any conic kind.
//
// For a parabola y = Ax² + Bx + C, A, B and C are the coefficients and the
// center is ignored. For an ellipse or hyperbola, A and B are the semi-axis
// lengths, C is ignored and (CenterX, CenterY) is the center.
type Params struct {
	A       float64 `json:"a"`
	B       float64 `json:"b"`
	C       float64 `json:"c"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
}

// DefaultParams returns the values the input form starts with for kind.
func DefaultParams(kind Kind) Params {
	switch kind {
	case KindParabola:
		return Params{A: 1}
	case KindEllipse:
		return Params{A: 5, B: 3}
	case KindHyperbola:
		return Params{A: 4, B: 3}
	default:
		return Params{}
	}
}

// Solve computes the descriptor of the conic of the given kind.
// It fails with a *DomainError rather than produce non-finite geometry.
func Solve(kind Kind, p Params) (Descriptor, error) {
	switch kind {
	case KindParabola:
		return SolveParabola(p.A, p.B, p.C)
	case KindEllipse:
		return SolveEllipse(p.A, p.B, p.CenterX, p.CenterY)
	case KindHyperbola:
		return SolveHyperbola(p.A, p.B, p.CenterX, p.CenterY)
	default:
		return nil, fmt.Errorf("solve: unknown conic kind %d", int(kind))
	}
}

// ParamsOf returns the parameters d was solved from.
func ParamsOf(d Descriptor) Params {
	switch d := d.(type) {
	case Parabola:
		return Params{A: d.A, B: d.B, C: d.C}
	case Ellipse:
		return Params{A: d.A, B: d.B, CenterX: d.Center.X, CenterY: d.Center.Y}
	case Hyperbola:
		return Params{A: d.A, B: d.B, CenterX: d.Center.X, CenterY: d.Center.Y}
	default:
		panic(fmt.Sprintf("unhandled descriptor %T", d))
	}
}

// positiveZero maps -0 to +0 so that derived coordinates print as "0".
func positiveZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}
