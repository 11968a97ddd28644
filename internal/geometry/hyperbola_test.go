package geometry

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestSolveHyperbola(t *testing.T) {
	h, err := SolveHyperbola(4, 3, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Hyperbola{
		A:          4,
		B:          3,
		Center:     Pt(0, 0),
		C:          5,
		E:          1.25,
		Focus1:     Pt(5, 0),
		Focus2:     Pt(-5, 0),
		Directrix1: 3.2,
		Directrix2: -3.2,
	}
	diff(t, want, h, approx)

	s := h.Sample()
	want2 := Sample{TestPoint: Pt(4, 0), DistToFocus: 1, DistToDirectrix: 0.8, Ratio: 1.25}
	diff(t, want2, s, approx)
}

func TestHyperbolaEccentricityAboveOne(t *testing.T) {
	axes := []float64{0.3, 1, 4, 12, 50}
	for _, a := range axes {
		for _, b := range axes {
			for _, c := range []Point{Pt(0, 0), Pt(-7, 2)} {
				t.Run(fmt.Sprintf("%g,%g,%v", a, b, c), func(t *testing.T) {
					h, err := SolveHyperbola(a, b, c.X, c.Y)
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					if h.E <= 1 {
						t.Errorf("got eccentricity %v, expected > 1", h.E)
					}
					if h.C < h.A {
						t.Errorf("focal distance %v below a=%v", h.C, h.A)
					}
					if r := h.Sample().Residual(h.E); r > 1e-6*h.E {
						t.Errorf("ratio differs from eccentricity %v by %v", h.E, r)
					}
				})
			}
		}
	}
}

func TestSolveHyperbolaExtremeMagnitudes(t *testing.T) {
	for _, scale := range []float64{1e-200, 1e-160, 1e200, 1e300} {
		t.Run(fmt.Sprintf("%g", scale), func(t *testing.T) {
			h, err := SolveHyperbola(2*scale, scale, 0, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := math.Sqrt(5) / 2; !approxEqual(h.E, want, 1e-12) {
				t.Errorf("got eccentricity %v, expected %v", h.E, want)
			}
			if want := 4 * scale / math.Sqrt(5); !approxEqual(h.Directrix1, want, 1e-12*want) {
				t.Errorf("got directrix %v, expected %v", h.Directrix1, want)
			}
			if r := h.Sample().Residual(h.E); r > 1e-6*h.E {
				t.Errorf("ratio differs from eccentricity %v by %v", h.E, r)
			}
		})
	}
}

func TestSolveHyperbolaInvalidAxes(t *testing.T) {
	for _, ab := range [][2]float64{{0, 1}, {-4, 3}, {4, 0}, {4, -3}, {math.NaN(), 3}} {
		_, err := SolveHyperbola(ab[0], ab[1], 0, 0)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("a=%g b=%g: got error %v, expected invalid parameter", ab[0], ab[1], err)
		}
	}
}

func TestHyperbolaBranchHeight(t *testing.T) {
	h, err := SolveHyperbola(4, 3, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y := h.BranchHeight(4); y != 0 {
		t.Errorf("BranchHeight(a) = %v, expected 0", y)
	}
	for _, dx := range []float64{4.5, 8, -10} {
		y := h.BranchHeight(dx)
		if v := h.Implicit(Pt(dx, y)); !approxEqual(v, 1, 1e-9) {
			t.Errorf("point (%v, %v) is not on the curve, implicit value %v", dx, y, v)
		}
	}
	if y := h.BranchHeight(1); !math.IsNaN(y) {
		t.Errorf("BranchHeight inside the vertices = %v, expected NaN", y)
	}
}
